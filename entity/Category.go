package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name         string `gorm:"size:100;not null" json:"name"`
	Slug         string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Icon         string `gorm:"size:10" json:"icon"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`

	MenuItems []MenuItem `json:"menuItems,omitempty"`
}
