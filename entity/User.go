package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Phone     string  `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Email     *string `gorm:"uniqueIndex" json:"email"`
	Password  string  `json:"-"`
	FirstName string  `gorm:"size:50;not null" json:"firstName"`
	LastName  string  `gorm:"size:50" json:"lastName"`
	Role      string  `gorm:"not null;default:customer" json:"role"`

	LoyaltyPoints int             `json:"loyaltyPoints"`
	TotalOrders   int             `json:"totalOrders"`
	TotalSpent    decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"totalSpent"`

	IsActive  bool       `gorm:"default:true" json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`

	// Relations — preload only when needed
	Addresses    []Address     `json:"-"`
	Orders       []Order       `json:"-"`
	Reservations []Reservation `json:"-"`
}
