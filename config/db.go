package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"travel-backend/models"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mustParseTime(layout, value string) time.Time {
	t, err := time.Parse(layout, value)
	if err != nil {
		log.Fatalf("Error parsing time for seeding (%s): %v", value, err)
	}
	return t
}

func floatPtr(v float64) *float64 { return &v }

// SeedDatabase populates a demo catalog when the tables are empty: one
// charter package with a full pricing matrix, one inbound package with
// transfer options, one regular package.
func SeedDatabase() {
	var pkgCount int64
	DB.Model(&models.TravelPackage{}).Count(&pkgCount)
	if pkgCount > 0 {
		log.Println("Packages already seeded")
		return
	}

	// ---------------- Hotels ----------------
	hotels := []models.Hotel{
		{Name: "Sealine Resort", City: "Antalya", Country: "Turkey", Stars: 5},
		{Name: "Old Town Suites", City: "Antalya", Country: "Turkey", Stars: 4},
		{Name: "Harbor View Hotel", City: "Batumi", Country: "Georgia", Stars: 4},
	}
	if err := DB.Create(&hotels).Error; err != nil {
		log.Fatalf("Failed to seed hotels: %v", err)
	}

	// ---------------- Charter package ----------------
	charter := models.TravelPackage{
		Slug:            "antalya-summer-charter",
		Title:           "Antalya Summer Charter",
		Type:            models.PackageTypeCharter,
		Destination:     "Antalya",
		Nights:          7,
		Days:            8,
		BasePrice:       5400,
		PriceRangeMin:   4900,
		PriceRangeMax:   7200,
		Currency:        "USD",
		DiscountPercent: 10,
		Active:          true,
	}
	if err := DB.Create(&charter).Error; err != nil {
		log.Fatalf("Failed to seed charter package: %v", err)
	}

	departures := []models.DepartureOption{
		{
			PackageID:        charter.ID,
			DepartureDate:    mustParseTime("2006-01-02", "2026-06-12"),
			ReturnDate:       mustParseTime("2006-01-02", "2026-06-19"),
			DepartureAirport: "GYD",
			ArrivalAirport:   "AYT",
			Active:           true,
		},
		{
			PackageID:        charter.ID,
			DepartureDate:    mustParseTime("2006-01-02", "2026-06-26"),
			ReturnDate:       mustParseTime("2006-01-02", "2026-07-03"),
			DepartureAirport: "GYD",
			ArrivalAirport:   "AYT",
			PriceModifier:    250,
			Active:           true,
		},
	}
	if err := DB.Create(&departures).Error; err != nil {
		log.Fatalf("Failed to seed departure options: %v", err)
	}

	charterOptions := []models.HotelOption{
		{PackageID: charter.ID, HotelID: hotels[0].ID, Active: true},
		{PackageID: charter.ID, HotelID: hotels[1].ID, Active: true},
	}
	if err := DB.Create(&charterOptions).Error; err != nil {
		log.Fatalf("Failed to seed hotel options: %v", err)
	}

	// Pricing matrix: first hotel priced on both departures, second only on
	// the first one (so the second departure genuinely narrows availability).
	seedPricing := func(hotelOptionID uint, departureID *uint, adultDouble float64) {
		pricing := models.HotelPricing{
			HotelOptionID:     hotelOptionID,
			DepartureOptionID: departureID,
			Currency:          "USD",
		}
		if err := DB.Create(&pricing).Error; err != nil {
			log.Fatalf("Failed to seed hotel pricing: %v", err)
		}
		rows := []models.RoomTypePricing{
			{HotelPricingID: pricing.ID, RoomType: models.RoomTypeSingle, AdultPrice: adultDouble * 1.4},
			{HotelPricingID: pricing.ID, RoomType: models.RoomTypeDouble, AdultPrice: adultDouble, ChildPrice6to12: floatPtr(adultDouble / 2), ChildPrice2to6: floatPtr(adultDouble / 4)},
			{HotelPricingID: pricing.ID, RoomType: models.RoomTypeTriple, AdultPrice: adultDouble * 0.92, ChildPrice6to12: floatPtr(adultDouble / 2)},
			{HotelPricingID: pricing.ID, RoomType: models.RoomTypeQuad, AdultPrice: adultDouble * 0.85},
		}
		if err := DB.Create(&rows).Error; err != nil {
			log.Fatalf("Failed to seed room type pricing: %v", err)
		}
	}

	seedPricing(charterOptions[0].ID, &departures[0].ID, 5400)
	seedPricing(charterOptions[0].ID, &departures[1].ID, 5800)
	seedPricing(charterOptions[1].ID, &departures[0].ID, 4900)

	charterAddons := []models.Addon{
		{PackageID: charter.ID, Name: "Travel insurance", Price: 120, Required: true, Active: true},
		{PackageID: charter.ID, Name: "Excursion pack", Price: 340, Active: true},
	}
	if err := DB.Create(&charterAddons).Error; err != nil {
		log.Fatalf("Failed to seed add-ons: %v", err)
	}

	// ---------------- Inbound package ----------------
	inbound := models.TravelPackage{
		Slug:        "batumi-city-break",
		Title:       "Batumi City Break",
		Type:        models.PackageTypeInbound,
		Destination: "Batumi",
		Nights:      4,
		Days:        5,
		BasePrice:   1800,
		Currency:    "USD",
		Active:      true,
		InboundConfig: datatypes.JSON([]byte(`{
			"transferOptions": [
				{"id": "airport-shuttle", "name": "Airport shuttle", "price": 40},
				{"id": "private-car", "name": "Private car", "price": 110}
			],
			"pickupLocations": ["Batumi Airport", "Central Bus Station"]
		}`)),
	}
	if err := DB.Create(&inbound).Error; err != nil {
		log.Fatalf("Failed to seed inbound package: %v", err)
	}

	inboundOption := models.HotelOption{PackageID: inbound.ID, HotelID: hotels[2].ID, Active: true}
	if err := DB.Create(&inboundOption).Error; err != nil {
		log.Fatalf("Failed to seed inbound hotel option: %v", err)
	}

	inboundPricing := models.HotelPricing{HotelOptionID: inboundOption.ID, Currency: "USD"}
	if err := DB.Create(&inboundPricing).Error; err != nil {
		log.Fatalf("Failed to seed inbound pricing: %v", err)
	}
	inboundRows := []models.RoomTypePricing{
		{HotelPricingID: inboundPricing.ID, RoomType: models.RoomTypeDouble, AdultPrice: 900, ChildPrice6to12: floatPtr(450)},
		{HotelPricingID: inboundPricing.ID, RoomType: models.RoomTypeTriple, AdultPrice: 820},
	}
	if err := DB.Create(&inboundRows).Error; err != nil {
		log.Fatalf("Failed to seed inbound room pricing: %v", err)
	}

	// ---------------- Regular package ----------------
	regular := models.TravelPackage{
		Slug:        "gabala-weekend",
		Title:       "Gabala Weekend Getaway",
		Type:        models.PackageTypeRegular,
		Destination: "Gabala",
		Nights:      2,
		Days:        3,
		BasePrice:   420,
		Currency:    "USD",
		Active:      true,
	}
	if err := DB.Create(&regular).Error; err != nil {
		log.Fatalf("Failed to seed regular package: %v", err)
	}

	log.Println("Demo catalog seeded")
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "travel_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Info,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
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
		return err
	}

	SeedDatabase()
	return nil
}
