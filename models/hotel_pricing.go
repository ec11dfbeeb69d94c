package models

import (
	"time"

	"gorm.io/gorm"
)

// Supported room types.
const (
	RoomTypeSingle = "SINGLE"
	RoomTypeDouble = "DOUBLE"
	RoomTypeTriple = "TRIPLE"
	RoomTypeQuad   = "QUAD"
)

// RoomTypes lists the supported values in display order.
var RoomTypes = []string{RoomTypeSingle, RoomTypeDouble, RoomTypeTriple, RoomTypeQuad}

func IsValidRoomType(rt string) bool {
	for _, v := range RoomTypes {
		if v == rt {
			return true
		}
	}
	return false
}

// HotelPricing ties one HotelOption to one DepartureOption. The row existing
// is what makes the hotel available for that departure; no row means
// unavailable, not free. For INBOUND packages DepartureOptionID is NULL and
// the row is the hotel option's single default pricing.
type HotelPricing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	HotelOptionID     uint  `gorm:"column:hotel_option_id;uniqueIndex:idx_departure_hotel" json:"hotelOptionId"`
	DepartureOptionID *uint `gorm:"column:departure_option_id;uniqueIndex:idx_departure_hotel" json:"departureOptionId,omitempty"`

	Currency string `gorm:"size:8;default:USD" json:"currency"`

	RoomTypePricings []RoomTypePricing `gorm:"foreignKey:HotelPricingID" json:"roomTypePricings,omitempty"`
}

// RoomTypePricing holds the per-traveler-category prices for one room type
// within one HotelPricing. AdultPrice must be positive for the row to be
// usable; nil child/infant prices mean that category is not configured and
// contributes zero cost.
type RoomTypePricing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	HotelPricingID uint   `gorm:"index;column:hotel_pricing_id" json:"hotelPricingId"`
	RoomType       string `gorm:"size:16;column:room_type" json:"roomType"`

	AdultPrice      float64  `gorm:"column:adult_price" json:"adultPrice"`
	ChildPrice6to12 *float64 `gorm:"column:child_price_6_to_12" json:"childPrice6to12,omitempty"`
	ChildPrice2to6  *float64 `gorm:"column:child_price_2_to_6" json:"childPrice2to6,omitempty"`
	InfantPrice     *float64 `gorm:"column:infant_price" json:"infantPrice,omitempty"`
}
