package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExtraSelection is a priced extra frozen into an order line.
type ExtraSelection struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// OrderLine is the snapshot of one cart entry at order-creation time.
// Prices are copied, not referenced; later menu edits never change it.
type OrderLine struct {
	MenuItemID uint             `json:"menuItemId"`
	Name       string           `json:"name"`
	Image      string           `json:"image,omitempty"`
	BasePrice  decimal.Decimal  `json:"basePrice"`
	Size       string           `json:"size,omitempty"`
	SizePrice  *decimal.Decimal `json:"sizePrice,omitempty"`
	Extras     []ExtraSelection `json:"extras,omitempty"`
	Quantity   int              `json:"quantity"`
	Notes      string           `json:"notes,omitempty"`
	Total      decimal.Decimal  `json:"total"`
}

type Order struct {
	gorm.Model
	OrderNumber string `gorm:"size:20;uniqueIndex;not null" json:"orderNumber"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	AddressID *uint `json:"addressId,omitempty"`

	Source string `gorm:"size:20;default:web" json:"source"`
	Type   string `gorm:"size:20;default:delivery" json:"type"`
	Status string `gorm:"size:20;default:pending;index" json:"status"`

	Items []OrderLine `gorm:"serializer:json;not null" json:"items"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Tax         decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"tax"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"deliveryFee"`
	Discount    decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"discount"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`

	PaymentMethod string `gorm:"size:20;default:card" json:"paymentMethod"`
	PaymentStatus string `gorm:"size:20;default:pending" json:"paymentStatus"`
	TransactionID string `json:"transactionId,omitempty"`

	DeliveryAddress   *AddressSnapshot `gorm:"serializer:json" json:"deliveryAddress,omitempty"`
	DeliveryTime      *time.Time       `json:"deliveryTime,omitempty"`
	EstimatedDelivery int              `gorm:"default:45" json:"estimatedDelivery"`

	Notes              string `json:"notes,omitempty"`
	CancellationReason string `json:"cancellationReason,omitempty"`

	PointsEarned int `json:"pointsEarned"`
	PointsUsed   int `json:"pointsUsed"`

	Rating *int   `json:"rating,omitempty"`
	Review string `json:"review,omitempty"`

	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
