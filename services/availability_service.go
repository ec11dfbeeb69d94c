package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"travel-backend/models"
)

// AvailabilityService resolves which hotel options of a package are actually
// bookable for a chosen departure. Availability is an exact match on the
// {departure option, hotel option} pricing pair: no pricing row, no hotel.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// ResolveForPackage returns the active hotel options of pkg that have a
// HotelPricing row keyed to departureOptionID. A nil departureOptionID
// (inbound packages) returns every active hotel option; their pricing comes
// from the NULL-departure default rows instead.
func (s *AvailabilityService) ResolveForPackage(pkg *models.TravelPackage, departureOptionID *uint) ([]models.HotelOption, error) {
	if departureOptionID == nil {
		var options []models.HotelOption
		err := s.DB.
			Preload("Hotel").
			Where("package_id = ? AND active = ?", pkg.ID, true).
			Find(&options).Error
		if err != nil {
			return nil, fmt.Errorf("failed to list hotel options: %w", err)
		}
		if options == nil {
			options = []models.HotelOption{}
		}
		return options, nil
	}

	if opt := findDepartureOption(pkg, *departureOptionID); opt == nil {
		return nil, ErrDepartureNotFound
	}

	var options []models.HotelOption
	err := s.DB.
		Preload("Hotel").
		Select("hotel_options.*").
		Joins("JOIN hotel_pricings ON hotel_pricings.hotel_option_id = hotel_options.id AND hotel_pricings.deleted_at IS NULL").
		Where("hotel_options.package_id = ? AND hotel_options.active = ?", pkg.ID, true).
		Where("hotel_pricings.departure_option_id = ?", *departureOptionID).
		Find(&options).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve availability: %w", err)
	}
	if options == nil {
		options = []models.HotelOption{}
	}
	return options, nil
}

// PricingFor fetches the HotelPricing row (with its room type pricings) for
// one {departure, hotel option} pair. departureOptionID nil matches the
// inbound default row. Returns ErrHotelPricingNotFound when the pair is not
// configured: unavailable, never free.
func (s *AvailabilityService) PricingFor(hotelOptionID uint, departureOptionID *uint) (*models.HotelPricing, error) {
	q := s.DB.Preload("RoomTypePricings").Where("hotel_option_id = ?", hotelOptionID)
	if departureOptionID == nil {
		q = q.Where("departure_option_id IS NULL")
	} else {
		q = q.Where("departure_option_id = ?", *departureOptionID)
	}

	var pricing models.HotelPricing
	if err := q.First(&pricing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelPricingNotFound
		}
		return nil, fmt.Errorf("failed to load hotel pricing: %w", err)
	}
	return &pricing, nil
}
