package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Label          string `gorm:"size:50;default:Casa" json:"label"`
	Street         string `gorm:"size:200;not null" json:"street"`
	ExteriorNumber string `gorm:"size:20" json:"exteriorNumber"`
	InteriorNumber string `gorm:"size:20" json:"interiorNumber"`
	Neighborhood   string `gorm:"size:100;not null" json:"neighborhood"`
	City           string `gorm:"size:100;not null;default:Cadereyta Jiménez" json:"city"`
	State          string `gorm:"size:100;not null;default:Nuevo León" json:"state"`
	PostalCode     string `gorm:"size:10" json:"postalCode"`
	References     string `json:"references"`

	IsDefault bool `gorm:"default:false" json:"isDefault"`
	IsActive  bool `gorm:"default:true" json:"isActive"`
}

// AddressSnapshot is what gets frozen into an order; editing or deleting the
// Address afterwards does not touch placed orders.
type AddressSnapshot struct {
	Label          string `json:"label,omitempty"`
	Street         string `json:"street"`
	ExteriorNumber string `json:"exteriorNumber,omitempty"`
	InteriorNumber string `json:"interiorNumber,omitempty"`
	Neighborhood   string `json:"neighborhood"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postalCode,omitempty"`
	References     string `json:"references,omitempty"`
}

func (a *Address) Snapshot() *AddressSnapshot {
	return &AddressSnapshot{
		Label:          a.Label,
		Street:         a.Street,
		ExteriorNumber: a.ExteriorNumber,
		InteriorNumber: a.InteriorNumber,
		Neighborhood:   a.Neighborhood,
		City:           a.City,
		State:          a.State,
		PostalCode:     a.PostalCode,
		References:     a.References,
	}
}
