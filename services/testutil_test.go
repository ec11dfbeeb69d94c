package services

import (
	"runtime"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"travel-backend/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skipping sqlite test on windows because CGO is disabled")
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Hotel{},
		&models.TravelPackage{},
		&models.DepartureOption{},
		&models.HotelOption{},
		&models.HotelPricing{},
		&models.RoomTypePricing{},
		&models.Addon{},
		&models.Customer{},
		&models.Booking{},
		&models.Traveler{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func fptr(v float64) *float64 { return &v }
func uptr(v uint) *uint       { return &v }

// charterFixture is a charter package with two departures and two hotel
// options. Hotel option A is priced on both departures, hotel option B only
// on the first, so departure two narrows availability.
type charterFixture struct {
	Pkg        models.TravelPackage
	DepartureA models.DepartureOption
	DepartureB models.DepartureOption
	HotelOptA  models.HotelOption
	HotelOptB  models.HotelOption
	PricingA1  models.HotelPricing
	Insurance  models.Addon // required
	Excursion  models.Addon // optional
}

func seedCharterFixture(t *testing.T, db *gorm.DB) charterFixture {
	t.Helper()

	hotelA := models.Hotel{Name: "Sealine Resort", City: "Antalya", Country: "Turkey", Stars: 5}
	hotelB := models.Hotel{Name: "Old Town Suites", City: "Antalya", Country: "Turkey", Stars: 4}
	mustCreate(t, db, &hotelA)
	mustCreate(t, db, &hotelB)

	pkg := models.TravelPackage{
		Slug:            "antalya-summer",
		Title:           "Antalya Summer",
		Type:            models.PackageTypeCharter,
		Destination:     "Antalya",
		Nights:          7,
		Days:            8,
		BasePrice:       5400,
		Currency:        "USD",
		DiscountPercent: 10,
		Active:          true,
	}
	mustCreate(t, db, &pkg)

	depA := models.DepartureOption{PackageID: pkg.ID, DepartureAirport: "GYD", ArrivalAirport: "AYT", Active: true}
	depB := models.DepartureOption{PackageID: pkg.ID, DepartureAirport: "GYD", ArrivalAirport: "AYT", PriceModifier: 250, Active: true}
	mustCreate(t, db, &depA)
	mustCreate(t, db, &depB)

	optA := models.HotelOption{PackageID: pkg.ID, HotelID: hotelA.ID, Active: true}
	optB := models.HotelOption{PackageID: pkg.ID, HotelID: hotelB.ID, Active: true}
	mustCreate(t, db, &optA)
	mustCreate(t, db, &optB)

	pricingA1 := models.HotelPricing{HotelOptionID: optA.ID, DepartureOptionID: &depA.ID, Currency: "USD"}
	pricingA2 := models.HotelPricing{HotelOptionID: optA.ID, DepartureOptionID: &depB.ID, Currency: "USD"}
	pricingB1 := models.HotelPricing{HotelOptionID: optB.ID, DepartureOptionID: &depA.ID, Currency: "USD"}
	mustCreate(t, db, &pricingA1)
	mustCreate(t, db, &pricingA2)
	mustCreate(t, db, &pricingB1)

	rows := []models.RoomTypePricing{
		{HotelPricingID: pricingA1.ID, RoomType: models.RoomTypeDouble, AdultPrice: 5000, ChildPrice6to12: fptr(2500), InfantPrice: fptr(0)},
		{HotelPricingID: pricingA1.ID, RoomType: models.RoomTypeSingle, AdultPrice: 7000},
		{HotelPricingID: pricingA2.ID, RoomType: models.RoomTypeDouble, AdultPrice: 5600},
		{HotelPricingID: pricingB1.ID, RoomType: models.RoomTypeDouble, AdultPrice: 4400},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("failed to seed room type pricing: %v", err)
	}

	insurance := models.Addon{PackageID: pkg.ID, Name: "Travel insurance", Price: 300, Required: true, Active: true}
	excursion := models.Addon{PackageID: pkg.ID, Name: "Excursion pack", Price: 500, Active: true}
	mustCreate(t, db, &insurance)
	mustCreate(t, db, &excursion)

	loaded := loadPackage(t, db, pkg.ID)
	return charterFixture{
		Pkg:        loaded,
		DepartureA: depA,
		DepartureB: depB,
		HotelOptA:  optA,
		HotelOptB:  optB,
		PricingA1:  pricingA1,
		Insurance:  insurance,
		Excursion:  excursion,
	}
}

// inboundFixture is an inbound package with one hotel option priced by a
// default (NULL departure) row and two configured transfer options.
type inboundFixture struct {
	Pkg      models.TravelPackage
	HotelOpt models.HotelOption
	Pricing  models.HotelPricing
}

func seedInboundFixture(t *testing.T, db *gorm.DB) inboundFixture {
	t.Helper()

	hotel := models.Hotel{Name: "Harbor View", City: "Batumi", Country: "Georgia", Stars: 4}
	mustCreate(t, db, &hotel)

	pkg := models.TravelPackage{
		Slug:        "batumi-break",
		Title:       "Batumi Break",
		Type:        models.PackageTypeInbound,
		Destination: "Batumi",
		Nights:      4,
		Days:        5,
		BasePrice:   1800,
		Currency:    "USD",
		Active:      true,
		InboundConfig: datatypes.JSON(`{
			"transferOptions": [
				{"id": "airport-shuttle", "name": "Airport shuttle", "price": 40},
				{"id": "private-car", "name": "Private car", "price": 110}
			],
			"pickupLocations": ["Batumi Airport"]
		}`),
	}
	mustCreate(t, db, &pkg)

	opt := models.HotelOption{PackageID: pkg.ID, HotelID: hotel.ID, Active: true}
	mustCreate(t, db, &opt)

	pricing := models.HotelPricing{HotelOptionID: opt.ID, Currency: "USD"}
	mustCreate(t, db, &pricing)

	rows := []models.RoomTypePricing{
		{HotelPricingID: pricing.ID, RoomType: models.RoomTypeDouble, AdultPrice: 900, ChildPrice6to12: fptr(450)},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("failed to seed inbound room pricing: %v", err)
	}

	return inboundFixture{Pkg: loadPackage(t, db, pkg.ID), HotelOpt: opt, Pricing: pricing}
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to seed %T: %v", value, err)
	}
}

func loadPackage(t *testing.T, db *gorm.DB, id uint) models.TravelPackage {
	t.Helper()
	var pkg models.TravelPackage
	err := db.
		Preload("DepartureOptions").
		Preload("HotelOptions.Hotel").
		Preload("Addons").
		First(&pkg, id).Error
	if err != nil {
		t.Fatalf("failed to load package %d: %v", id, err)
	}
	return pkg
}
