package services

import (
	"errors"
)

// Not-Found-class errors (404-equivalent for the caller).
var (
	ErrPackageNotFound         = errors.New("package_not_found")
	ErrDepartureNotFound       = errors.New("departure_option_not_found")
	ErrHotelOptionNotFound     = errors.New("hotel_option_not_found")
	ErrHotelPricingNotFound    = errors.New("hotel_pricing_not_found")
	ErrRoomTypePricingNotFound = errors.New("room_type_pricing_not_found")
)

// Validation-class errors (400-equivalent).
var (
	ErrSelectionInvalid         = errors.New("selection_invalid")
	ErrAdultPriceNotConfigured  = errors.New("room_type_pricing_not_configured")
	ErrInboundPricingNotDefault = errors.New("inbound_default_pricing_missing")
)

// Selection is the caller's proposed booking: departure, hotel, room type,
// traveler counts and add-ons. A value object; the resolver never mutates it.
type Selection struct {
	DepartureOptionID *uint  `json:"departureOptionId,omitempty"`
	HotelOptionID     uint   `json:"hotelOptionId"`
	RoomType          string `json:"roomType"`

	Adults        int `json:"adults"`
	Children6to12 int `json:"children6to12"`
	Children2to6  int `json:"children2to6"`
	Infants       int `json:"infants"`

	AddonIDs []uint `json:"addonIds,omitempty"`

	// Inbound-only fields.
	TransferIDs    []string `json:"transferIds,omitempty"`
	PickupLocation string   `json:"pickupLocation,omitempty"`
}

// TotalTravelers counts every person on the selection, infants included.
func (s Selection) TotalTravelers() int {
	return s.Adults + s.Children6to12 + s.Children2to6 + s.Infants
}

// ValidationResult reports the outcome of validating a selection. Errors block
// booking; warnings do not.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (r *ValidationResult) addError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.IsValid = false
}

func (r *ValidationResult) addWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

func newValidationResult() ValidationResult {
	return ValidationResult{IsValid: true, Errors: []string{}, Warnings: []string{}}
}

// BreakdownLine is one labeled amount in a price breakdown.
type BreakdownLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// PriceBreakdown is the itemized result of a price calculation.
// RoomPrice is the adult unit price of the selected room type; HotelPrice is
// the summed traveler-category cost (the hotel component of the subtotal).
// DepartureModifier is informational only and is never part of Total.
type PriceBreakdown struct {
	BasePrice  float64 `json:"basePrice"`
	RoomPrice  float64 `json:"roomPrice"`
	HotelPrice float64 `json:"hotelPrice"`

	AdultCost         float64 `json:"adultCost"`
	Children6to12Cost float64 `json:"children6to12Cost"`
	Children2to6Cost  float64 `json:"children2to6Cost"`
	InfantsCost       float64 `json:"infantsCost"`
	AddonsCost        float64 `json:"addonsCost"`

	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`

	TotalPerPerson    float64 `json:"totalPerPerson"`
	DepartureModifier float64 `json:"departureModifier,omitempty"`

	Currency  string          `json:"currency"`
	Breakdown []BreakdownLine `json:"breakdown"`
	Warnings  []string        `json:"warnings,omitempty"`
}

// PackageSearchParams are the catalog search filters.
type PackageSearchParams struct {
	Type        string  `form:"type"`
	Destination string  `form:"destination"`
	MinPrice    float64 `form:"minPrice"`
	MaxPrice    float64 `form:"maxPrice"`
	Sort        string  `form:"sort"` // price_asc | price_desc | newest
	Page        int     `form:"page"`
	Limit       int     `form:"limit"`
}

// PackageSearchResult is one page of search results plus the total match
// count across all pages.
type PackageSearchResult struct {
	Packages []PackageSummary `json:"packages"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

// PackageSummary is the card-level view of a package in search results.
type PackageSummary struct {
	ID            uint    `json:"id"`
	Slug          string  `json:"slug"`
	Title         string  `json:"title"`
	Type          string  `json:"type"`
	Destination   string  `json:"destination"`
	Nights        int     `json:"nights"`
	Days          int     `json:"days"`
	BasePrice     float64 `json:"basePrice"`
	Currency      string  `json:"currency"`
	Discount      float64 `json:"discountPercent"`
	CreatedAtUnix int64   `json:"-"`
}
