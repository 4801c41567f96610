package entity

import (
	"time"

	"gorm.io/gorm"
)

type Reservation struct {
	gorm.Model
	ReservationNumber string `gorm:"size:20;uniqueIndex;not null" json:"reservationNumber"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	Date   string `gorm:"size:10;not null;index:idx_reservation_slot" json:"date"` // YYYY-MM-DD
	Time   string `gorm:"size:5;not null;index:idx_reservation_slot" json:"time"`  // HH:MM
	Guests int    `gorm:"not null" json:"guests"`

	Status string `gorm:"size:20;default:pending" json:"status"`

	TableNumber     string `gorm:"size:10" json:"tableNumber,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	Occasion        string `gorm:"size:50" json:"occasion,omitempty"`
	ContactPhone    string `gorm:"size:20;not null" json:"contactPhone"`
	ContactName     string `gorm:"size:100;not null" json:"contactName"`

	CancellationReason string     `json:"cancellationReason,omitempty"`
	ConfirmedAt        *time.Time `json:"confirmedAt,omitempty"`
	ArrivedAt          *time.Time `json:"arrivedAt,omitempty"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
}
