package models

import (
	"time"

	"gorm.io/gorm"
)

type Hotel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name    string `gorm:"size:255" json:"name"`
	City    string `gorm:"size:191" json:"city"`
	Country string `gorm:"size:191" json:"country"`
	Stars   int    `json:"stars"`
}

// HotelOption is one hotel offered as a choice within a package. Whether it is
// actually bookable for a given departure depends on a HotelPricing row
// existing for the pair.
type HotelOption struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PackageID uint `gorm:"index;column:package_id" json:"packageId"`
	HotelID   uint `gorm:"index;column:hotel_id" json:"hotelId"`

	Active bool `gorm:"default:true" json:"active"`

	Hotel    Hotel          `gorm:"foreignKey:HotelID;references:ID" json:"hotel,omitempty"`
	Pricings []HotelPricing `gorm:"foreignKey:HotelOptionID" json:"pricings,omitempty"`
}
