package models

import (
	"time"

	"gorm.io/gorm"
)

// DepartureOption is one outbound/return date-and-route pairing offered for a
// CHARTER package. INBOUND and REGULAR packages have none.
type DepartureOption struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PackageID uint `gorm:"index;column:package_id" json:"packageId"`

	DepartureDate time.Time `gorm:"column:departure_date" json:"departureDate"`
	ReturnDate    time.Time `gorm:"column:return_date" json:"returnDate"`

	DepartureAirport string `gorm:"size:8;column:departure_airport" json:"departureAirport"`
	ArrivalAirport   string `gorm:"size:8;column:arrival_airport" json:"arrivalAirport"`

	// Flat modifier shown on the departure card as "+X". Display-only: the
	// authoritative calculation never folds it into the total.
	PriceModifier float64 `gorm:"column:price_modifier" json:"priceModifier"`

	Active bool `gorm:"default:true" json:"active"`
}
