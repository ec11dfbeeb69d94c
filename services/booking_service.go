package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"travel-backend/models"
	"travel-backend/utils"
)

var ErrBookingNotFound = errors.New("booking_not_found")

// BookingService creates and reads bookings on top of the package facade. A
// booking is always priced by a fresh authoritative calculation at creation
// time (never by a client-supplied total) and the computed breakdown is
// snapshotted onto the row.
type BookingService struct {
	DB     *gorm.DB
	Facade *PackageFacade
}

func NewBookingService(db *gorm.DB, facade *PackageFacade) *BookingService {
	return &BookingService{DB: db, Facade: facade}
}

// CreateBookingInput is everything the booking form submits.
type CreateBookingInput struct {
	CustomerID uint
	PackageID  uint
	Selection  Selection
	Travelers  []models.Traveler
}

// Create validates the selection, recomputes the price and persists the
// booking plus its travelers in one transaction. On a validation failure the
// returned ValidationResult carries the specific rule violations and err is
// ErrSelectionInvalid.
func (s *BookingService) Create(in CreateBookingInput) (*models.Booking, ValidationResult, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, in.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ValidationResult{}, fmt.Errorf("customer %d not found", in.CustomerID)
		}
		return nil, ValidationResult{}, fmt.Errorf("db error checking customer %d: %w", in.CustomerID, err)
	}

	pkg, err := s.Facade.GetPackageByID(in.PackageID)
	if err != nil {
		return nil, ValidationResult{}, err
	}

	res := s.Facade.Validator.Validate(pkg, in.Selection)
	if !res.IsValid {
		return nil, res, ErrSelectionInvalid
	}

	breakdown, err := s.Facade.CalculateForPackage(pkg, in.Selection)
	if err != nil {
		return nil, res, err
	}

	snapshot, err := json.Marshal(breakdown)
	if err != nil {
		return nil, res, fmt.Errorf("failed to marshal price snapshot: %w", err)
	}

	booking := &models.Booking{
		Status:            "CONFIRMED",
		CustomerID:        customer.ID,
		PackageID:         pkg.ID,
		DepartureOptionID: in.Selection.DepartureOptionID,
		HotelOptionID:     in.Selection.HotelOptionID,
		RoomType:          in.Selection.RoomType,
		Adults:            in.Selection.Adults,
		Children6to12:     in.Selection.Children6to12,
		Children2to6:      in.Selection.Children2to6,
		Infants:           in.Selection.Infants,
		TotalPrice:        breakdown.Total,
		Currency:          breakdown.Currency,
		PriceSnapshot:     datatypes.JSON(snapshot),
	}

	if pkg.Type == models.PackageTypeCharter && in.Selection.DepartureOptionID != nil {
		if opt := findDepartureOption(pkg, *in.Selection.DepartureOptionID); opt != nil {
			dep := opt.DepartureDate
			ret := opt.ReturnDate
			booking.DepartureDate = &dep
			booking.ReturnDate = &ret
		}
	} else {
		// Inbound/regular selections ignore any stray departure id.
		booking.DepartureOptionID = nil
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// retry on reference-code unique collision
		maxRetries := 5
		var createErr error
		for attempt := 0; attempt < maxRetries; attempt++ {
			ref, gErr := utils.GenerateReferenceCode("TRV", 8)
			if gErr != nil {
				return fmt.Errorf("failed to generate reference code: %w", gErr)
			}
			booking.ReferenceCode = ref

			createErr = tx.Create(booking).Error
			if createErr == nil {
				break
			}
			if isDuplicateKeyErr(createErr) {
				log.Printf("booking reference collision (attempt %d) - retrying", attempt+1)
				booking.ID = 0
				continue
			}
			return fmt.Errorf("failed to create booking: %w", createErr)
		}
		if createErr != nil {
			return fmt.Errorf("failed to create booking after retries: %w", createErr)
		}

		for i := range in.Travelers {
			in.Travelers[i].BookingID = &booking.ID
			if in.Travelers[i].Category == "" {
				in.Travelers[i].Category = models.TravelerAdult
			}
			if err := tx.Create(&in.Travelers[i]).Error; err != nil {
				return fmt.Errorf("failed to save traveler: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, res, err
	}

	booking.Travelers = in.Travelers
	booking.Customer = customer
	return booking, res, nil
}

func isDuplicateKeyErr(err error) bool {
	var me *mysqldrv.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return true
	}
	// sqlite (tests) and other drivers
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var bk models.Booking
	err := s.DB.
		Preload("Customer").
		Preload("Package").
		Preload("Travelers").
		First(&bk, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &bk, nil
}

func (s *BookingService) GetAllWithRelations() ([]models.Booking, error) {
	var list []models.Booking
	err := s.DB.
		Preload("Customer").
		Preload("Package").
		Preload("Travelers").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	for i := range list {
		if list[i].Travelers == nil {
			list[i].Travelers = []models.Traveler{}
		}
	}
	return list, nil
}

// Cancel soft-deletes the booking after flipping its status, so the list of
// cancelled bookings stays queryable through Unscoped.
func (s *BookingService) Cancel(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var bk models.Booking
		if err := tx.First(&bk, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if err := tx.Model(&bk).Update("status", "CANCELLED").Error; err != nil {
			return err
		}
		return tx.Delete(&bk).Error
	})
}
