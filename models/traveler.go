package models

import (
	"time"
)

// Traveler categories, matching the pricing tiers.
const (
	TravelerAdult     = "ADULT"
	TravelerChild6_12 = "CHILD_6_12"
	TravelerChild2_6  = "CHILD_2_6"
	TravelerInfant    = "INFANT"
)

// Traveler is one passenger on a booking, collected by the booking form.
type Traveler struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	BookingID *uint `gorm:"index;column:booking_id" json:"bookingId"`

	FullName string `json:"fullName"`
	Category string `gorm:"size:16;default:ADULT" json:"category"`

	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Gender      string     `gorm:"size:16" json:"gender,omitempty"`
	Nationality string     `gorm:"size:64" json:"nationality,omitempty"`

	PassportNumber  string     `gorm:"size:64;column:passport_number" json:"passportNumber,omitempty"`
	PassportExpiry  *time.Time `gorm:"column:passport_expiry" json:"passportExpiry,omitempty"`
	PassportCountry string     `gorm:"size:64;column:passport_country" json:"passportCountry,omitempty"`
}
