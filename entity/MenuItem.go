package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SizeOption and ExtraOption live inside the menu item as JSON columns, the
// way the menu is authored: a size replaces the base price, an extra adds to
// the unit price.
type SizeOption struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

type ExtraOption struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Available   bool            `json:"available"`
}

type MenuItem struct {
	gorm.Model
	CategoryID uint     `gorm:"not null" json:"categoryId"`
	Category   Category `json:"-"`

	Name        string `gorm:"size:200;not null" json:"name"`
	Slug        string `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`

	BasePrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"basePrice"`
	Sizes     []SizeOption    `gorm:"serializer:json" json:"sizes"`
	Extras    []ExtraOption   `gorm:"serializer:json" json:"extras"`
	Tags      []string        `gorm:"serializer:json" json:"tags"`

	PreparationTime int  `gorm:"default:20" json:"preparationTime"`
	IsAvailable     bool `gorm:"default:true" json:"isAvailable"`
	IsPopular       bool `gorm:"default:false" json:"isPopular"`
	IsFeatured      bool `gorm:"default:false" json:"isFeatured"`
	IsNew           bool `gorm:"default:false" json:"isNew"`
	DisplayOrder    int  `json:"displayOrder"`
}

// SizePrice returns the price for the named size and whether it matched.
func (m *MenuItem) SizePrice(name string) (decimal.Decimal, bool) {
	for _, s := range m.Sizes {
		if s.Name == name {
			return s.Price, true
		}
	}
	return decimal.Decimal{}, false
}

// Extra returns the named extra and whether it matched.
func (m *MenuItem) Extra(name string) (*ExtraOption, bool) {
	for i := range m.Extras {
		if m.Extras[i].Name == name {
			return &m.Extras[i], true
		}
	}
	return nil, false
}
