package repository

import (
	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"gorm.io/gorm"
)

type ReservationRepository struct{ DB *gorm.DB }

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) Create(res *entity.Reservation) error {
	return r.DB.Create(res).Error
}

// CountActiveForSlot counts non-cancelled reservations on a date/time slot;
// capacity checks compare against the table budget.
func (r *ReservationRepository) CountActiveForSlot(date, timeOfDay string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Reservation{}).
		Where("date = ? AND time = ? AND status <> ?", date, timeOfDay, entity.ReservationCancelled).
		Count(&n).Error
	return n, err
}

func (r *ReservationRepository) ListForUser(userID uint) ([]entity.Reservation, error) {
	var out []entity.Reservation
	err := r.DB.Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Find(&out).Error
	return out, err
}

func (r *ReservationRepository) GetForUser(userID, id uint) (*entity.Reservation, error) {
	var res entity.Reservation
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) Save(res *entity.Reservation) error {
	return r.DB.Save(res).Error
}
