package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"github.com/Eduardo-pena2000/parmesana-web-app/repository"
	"gorm.io/gorm"
)

func newReservationService(t *testing.T, db *gorm.DB) *ReservationService {
	t.Helper()
	svc := NewReservationService(repository.NewReservationRepository(db))
	// frozen clock keeps the "in the past" check deterministic
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	}
	return svc
}

func validReservation() *CreateReservationReq {
	return &CreateReservationReq{
		Date:         "2025-06-15",
		Time:         "20:00",
		Guests:       4,
		ContactName:  "María López",
		ContactPhone: "8181234567",
	}
}

func TestReservationCreate(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "8181240001")
	svc := newReservationService(t, db)

	res, err := svc.Create(user.ID, validReservation())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(res.ReservationNumber, "RES250601") || len(res.ReservationNumber) != 12 {
		t.Errorf("reservation number = %q, want RES + yymmdd + 3 digits", res.ReservationNumber)
	}
	if res.Status != entity.ReservationPending {
		t.Errorf("status = %q, want pending", res.Status)
	}
}

func TestReservationGuestBounds(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "8181240002")
	svc := newReservationService(t, db)

	for _, guests := range []int{0, 21, -3} {
		req := validReservation()
		req.Guests = guests
		if _, err := svc.Create(user.ID, req); !errors.Is(err, ErrInvalidGuests) {
			t.Errorf("guests %d: err = %v, want ErrInvalidGuests", guests, err)
		}
	}

	req := validReservation()
	req.Guests = 20
	if _, err := svc.Create(user.ID, req); err != nil {
		t.Errorf("guests 20: %v, want accepted", err)
	}
}

func TestReservationInPast(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "8181240003")
	svc := newReservationService(t, db)

	req := validReservation()
	req.Date = "2025-05-30"
	if _, err := svc.Create(user.ID, req); !errors.Is(err, ErrReservationInPast) {
		t.Fatalf("err = %v, want ErrReservationInPast", err)
	}
}

func TestReservationSlotCapacity(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "8181240004")
	svc := newReservationService(t, db)

	for i := 0; i < tablesPerSlot; i++ {
		if _, err := svc.Create(user.ID, validReservation()); err != nil {
			t.Fatalf("reservation %d: %v", i, err)
		}
	}

	if _, err := svc.Create(user.ID, validReservation()); !errors.Is(err, ErrNoTablesAvailable) {
		t.Fatalf("err = %v, want ErrNoTablesAvailable on a full slot", err)
	}

	// same evening, different time slot still has room
	other := validReservation()
	other.Time = "21:00"
	if _, err := svc.Create(user.ID, other); err != nil {
		t.Fatalf("different slot rejected: %v", err)
	}
}

func TestReservationCancelFreesTable(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "8181240005")
	svc := newReservationService(t, db)

	var last *entity.Reservation
	for i := 0; i < tablesPerSlot; i++ {
		res, err := svc.Create(user.ID, validReservation())
		if err != nil {
			t.Fatalf("reservation %d: %v", i, err)
		}
		last = res
	}

	if _, err := svc.Cancel(user.ID, last.ID, "plan cambiado"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	if _, err := svc.Create(user.ID, validReservation()); err != nil {
		t.Fatalf("slot should have room after cancellation: %v", err)
	}
}

func TestReservationNumberRetryOnCollision(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "8181240007")
	svc := newReservationService(t, db)

	// only 1000 numbers exist per day, so a run this size hits duplicates
	// regularly; the retry loop must absorb them and keep numbers unique
	seen := map[string]bool{}
	times := []string{"18:00", "19:00", "20:00", "21:00"}
	for i := 0; i < 4*tablesPerSlot; i++ {
		req := validReservation()
		req.Time = times[i/tablesPerSlot]
		res, err := svc.Create(user.ID, req)
		if err != nil {
			t.Fatalf("reservation %d: %v", i, err)
		}
		if seen[res.ReservationNumber] {
			t.Fatalf("duplicate reservation number persisted: %s", res.ReservationNumber)
		}
		seen[res.ReservationNumber] = true
	}
}

func TestReservationCancelOnlyWhileActive(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "8181240006")
	svc := newReservationService(t, db)

	res, err := svc.Create(user.ID, validReservation())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	db.Model(res).Update("status", entity.ReservationCompleted)

	if _, err := svc.Cancel(user.ID, res.ID, ""); !errors.Is(err, ErrReservationNotCancellable) {
		t.Fatalf("err = %v, want ErrReservationNotCancellable", err)
	}
}
