package models

import (
	"time"

	"gorm.io/gorm"
)

// Addon is an optional (or mandatory) extra sold with a package. Price is per
// traveler, not a flat fee. Required add-ons are charged regardless of what
// the caller selected.
type Addon struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PackageID uint `gorm:"index;column:package_id" json:"packageId"`

	Name  string  `gorm:"size:255" json:"name"`
	Price float64 `json:"price"`

	Required bool `gorm:"default:false" json:"required"`
	Active   bool `gorm:"default:true" json:"active"`
}
