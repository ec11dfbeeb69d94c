package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"uniqueIndex;column:reference_code;size:64" json:"referenceCode"`
	Status        string `gorm:"column:status;size:64;default:CONFIRMED" json:"status"`

	CustomerID uint `gorm:"index;column:customer_id" json:"customerId"`
	PackageID  uint `gorm:"index;column:package_id" json:"packageId"`

	// The selection the price was computed from.
	DepartureOptionID *uint  `gorm:"column:departure_option_id" json:"departureOptionId,omitempty"`
	HotelOptionID     uint   `gorm:"column:hotel_option_id" json:"hotelOptionId"`
	RoomType          string `gorm:"column:room_type;size:16" json:"roomType"`

	Adults        int `gorm:"column:adults;default:1" json:"adults"`
	Children6to12 int `gorm:"column:children_6_to_12;default:0" json:"children6to12"`
	Children2to6  int `gorm:"column:children_2_to_6;default:0" json:"children2to6"`
	Infants       int `gorm:"column:infants;default:0" json:"infants"`

	// Travel dates copied from the departure option at booking time (nil for
	// inbound packages).
	DepartureDate *time.Time `gorm:"column:departure_date" json:"departureDate,omitempty"`
	ReturnDate    *time.Time `gorm:"column:return_date" json:"returnDate,omitempty"`

	TotalPrice float64 `gorm:"column:total_price" json:"totalPrice"`
	Currency   string  `gorm:"size:8" json:"currency"`

	// Full breakdown as computed at booking time. Pricing rows can change
	// later; this is what the customer was actually charged against.
	PriceSnapshot datatypes.JSON `gorm:"column:price_snapshot" json:"priceSnapshot,omitempty"`

	Customer  Customer      `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Package   TravelPackage `gorm:"foreignKey:PackageID;references:ID" json:"package,omitempty"`
	Travelers []Traveler    `gorm:"foreignKey:BookingID" json:"travelers"`
}
