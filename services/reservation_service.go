package services

import (
	"errors"
	"time"

	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"github.com/Eduardo-pena2000/parmesana-web-app/repository"
	"gorm.io/gorm"
)

// tablesPerSlot is the capacity budget per date/time slot.
const tablesPerSlot = 10

// reservationNumberAttempts bounds the regenerate-and-retry loop on a
// duplicate reservation number. The 3-digit suffix only gives 1000 numbers
// per day, so same-day collisions are a matter of when, not if.
const reservationNumberAttempts = 3

var (
	ErrInvalidSlot               = errors.New("fecha u hora inválida")
	ErrReservationInPast         = errors.New("la fecha de reservación no puede ser en el pasado")
	ErrNoTablesAvailable         = errors.New("no hay mesas disponibles para ese horario")
	ErrInvalidGuests             = errors.New("número de comensales inválido")
	ErrReservationNotCancellable = errors.New("no se puede cancelar esta reservación")
)

type ReservationService struct {
	Repo *repository.ReservationRepository

	now func() time.Time
}

func NewReservationService(repo *repository.ReservationRepository) *ReservationService {
	return &ReservationService{Repo: repo, now: time.Now}
}

type CreateReservationReq struct {
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	Time            string `json:"time" binding:"required"` // HH:MM
	Guests          int    `json:"guests" binding:"required"`
	ContactName     string `json:"contactName" binding:"required"`
	ContactPhone    string `json:"contactPhone" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
	Occasion        string `json:"occasion"`
}

func (s *ReservationService) Create(userID uint, req *CreateReservationReq) (*entity.Reservation, error) {
	if req.Guests < 1 || req.Guests > 20 {
		return nil, ErrInvalidGuests
	}

	slot, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Time, time.Local)
	if err != nil {
		return nil, ErrInvalidSlot
	}
	if slot.Before(s.now()) {
		return nil, ErrReservationInPast
	}

	taken, err := s.Repo.CountActiveForSlot(req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	if taken >= tablesPerSlot {
		return nil, ErrNoTablesAvailable
	}

	res := &entity.Reservation{
		UserID:          userID,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		Status:          entity.ReservationPending,
		SpecialRequests: req.SpecialRequests,
		Occasion:        req.Occasion,
		ContactPhone:    req.ContactPhone,
		ContactName:     req.ContactName,
	}
	for attempt := 0; ; attempt++ {
		res.ReservationNumber = NewReservationNumber(s.now())
		err := s.Repo.Create(res)
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt+1 < reservationNumberAttempts {
			continue
		}
		return nil, err
	}
	return res, nil
}

func (s *ReservationService) ListForUser(userID uint) ([]entity.Reservation, error) {
	return s.Repo.ListForUser(userID)
}

func (s *ReservationService) Cancel(userID, id uint, reason string) (*entity.Reservation, error) {
	res, err := s.Repo.GetForUser(userID, id)
	if err != nil {
		return nil, err
	}
	if res.Status != entity.ReservationPending && res.Status != entity.ReservationConfirmed {
		return nil, ErrReservationNotCancellable
	}
	res.Status = entity.ReservationCancelled
	res.CancellationReason = reason
	if err := s.Repo.Save(res); err != nil {
		return nil, err
	}
	return res, nil
}
