package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"travel-backend/models"
)

func charterPkgForCalc() *models.TravelPackage {
	return &models.TravelPackage{
		ID:              1,
		Type:            models.PackageTypeCharter,
		BasePrice:       5400,
		Currency:        "USD",
		DiscountPercent: 10,
		DepartureOptions: []models.DepartureOption{
			{ID: 11, PackageID: 1, PriceModifier: 250, Active: true},
		},
		HotelOptions: []models.HotelOption{
			{ID: 21, PackageID: 1, Active: true},
		},
	}
}

func pricingForCalc() *models.HotelPricing {
	return &models.HotelPricing{
		ID:                31,
		HotelOptionID:     21,
		DepartureOptionID: uptr(11),
		Currency:          "USD",
		RoomTypePricings: []models.RoomTypePricing{
			{ID: 41, HotelPricingID: 31, RoomType: models.RoomTypeDouble,
				AdultPrice: 5000, ChildPrice6to12: fptr(2500), InfantPrice: fptr(0)},
		},
	}
}

// Concrete scenario: 2 adults, 1 child 6-12, 1 infant with a zero
// infant price and a 10% discount.
func TestCalculate_TieredBreakdown(t *testing.T) {
	calc := PriceCalculator{}
	pkg := charterPkgForCalc()

	sel := Selection{
		DepartureOptionID: uptr(11),
		HotelOptionID:     21,
		RoomType:          models.RoomTypeDouble,
		Adults:            2,
		Children6to12:     1,
		Infants:           1,
	}

	got, err := calc.Calculate(pkg, sel, pricingForCalc())
	assert.NoError(t, err)

	assert.Equal(t, 10000.0, got.AdultCost)
	assert.Equal(t, 2500.0, got.Children6to12Cost)
	assert.Equal(t, 0.0, got.InfantsCost)
	assert.Equal(t, 12500.0, got.Subtotal)
	assert.Equal(t, 1250.0, got.Discount)
	assert.Equal(t, 11250.0, got.Total)
	assert.Equal(t, 2812.5, got.TotalPerPerson)
	assert.Equal(t, "USD", got.Currency)

	// zero infant price contributes 0 with a warning, not an error
	assert.NotEmpty(t, got.Warnings)

	// total = subtotal - discount and nothing below adultCost
	assert.Equal(t, got.Subtotal-got.Discount, got.Total)
	assert.GreaterOrEqual(t, got.Subtotal, got.AdultCost)
}

func TestCalculate_NoDiscountMeansTotalEqualsSubtotal(t *testing.T) {
	calc := PriceCalculator{}
	pkg := charterPkgForCalc()
	pkg.DiscountPercent = 0

	sel := Selection{
		DepartureOptionID: uptr(11),
		HotelOptionID:     21,
		RoomType:          models.RoomTypeDouble,
		Adults:            2,
	}

	got, err := calc.Calculate(pkg, sel, pricingForCalc())
	assert.NoError(t, err)
	assert.Equal(t, 0.0, got.Discount)
	assert.Equal(t, got.Subtotal, got.Total)
}

func TestCalculate_IsDeterministic(t *testing.T) {
	calc := PriceCalculator{}
	pkg := charterPkgForCalc()
	sel := Selection{
		DepartureOptionID: uptr(11),
		HotelOptionID:     21,
		RoomType:          models.RoomTypeDouble,
		Adults:            2,
		Children6to12:     1,
	}

	first, err := calc.Calculate(pkg, sel, pricingForCalc())
	assert.NoError(t, err)
	second, err := calc.Calculate(pkg, sel, pricingForCalc())
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

// Concrete scenario: one required add-on (300) auto-included, one
// optional (500) selected, three travelers.
func TestCalculate_AddonsChargedPerTraveler(t *testing.T) {
	calc := PriceCalculator{}
	pkg := charterPkgForCalc()
	pkg.DiscountPercent = 0
	pkg.Addons = []models.Addon{
		{ID: 51, PackageID: 1, Name: "Travel insurance", Price: 300, Required: true, Active: true},
		{ID: 52, PackageID: 1, Name: "Excursion pack", Price: 500, Active: true},
	}

	sel := Selection{
		DepartureOptionID: uptr(11),
		HotelOptionID:     21,
		RoomType:          models.RoomTypeDouble,
		Adults:            2,
		Children6to12:     1,
		// insurance intentionally omitted: it must be merged in anyway
		AddonIDs: []uint{52},
	}

	got, err := calc.Calculate(pkg, sel, pricingForCalc())
	assert.NoError(t, err)
	assert.Equal(t, 2400.0, got.AddonsCost)
}

func TestCalculate_RequiredAddonNotDoubleCharged(t *testing.T) {
	calc := PriceCalculator{}
	pkg := charterPkgForCalc()
	pkg.DiscountPercent = 0
	pkg.Addons = []models.Addon{
		{ID: 51, PackageID: 1, Name: "Travel insurance", Price: 300, Required: true, Active: true},
	}

	sel := Selection{
		DepartureOptionID: uptr(11),
		HotelOptionID:     21,
		RoomType:          models.RoomTypeDouble,
		Adults:            1,
		AddonIDs:          []uint{51}, // selected and required
	}

	got, err := calc.Calculate(pkg, sel, pricingForCalc())
	assert.NoError(t, err)
	assert.Equal(t, 300.0, got.AddonsCost)
}

func TestCalculate_MissingRoomTypePricingIsHardError(t *testing.T) {
	calc := PriceCalculator{}
	pkg := charterPkgForCalc()

	sel := Selection{
		DepartureOptionID: uptr(11),
		HotelOptionID:     21,
		RoomType:          models.RoomTypeQuad, // not priced in the fixture
		Adults:            2,
	}

	_, err := calc.Calculate(pkg, sel, pricingForCalc())
	assert.ErrorIs(t, err, ErrRoomTypePricingNotFound)
}

func TestCalculate_ZeroAdultPriceIsHardError(t *testing.T) {
	calc := PriceCalculator{}
	pkg := charterPkgForCalc()

	pricing := pricingForCalc()
	pricing.RoomTypePricings[0].AdultPrice = 0

	sel := Selection{
		DepartureOptionID: uptr(11),
		HotelOptionID:     21,
		RoomType:          models.RoomTypeDouble,
		Adults:            2,
	}

	_, err := calc.Calculate(pkg, sel, pricing)
	assert.ErrorIs(t, err, ErrAdultPriceNotConfigured)
}

func TestCalculate_NilPricingIsNotFound(t *testing.T) {
	calc := PriceCalculator{}
	sel := Selection{HotelOptionID: 21, RoomType: models.RoomTypeDouble, Adults: 1}

	_, err := calc.Calculate(charterPkgForCalc(), sel, nil)
	assert.ErrorIs(t, err, ErrHotelPricingNotFound)
}

// The departure's flat modifier is reported for display but never folded
// into the total.
func TestCalculate_DepartureModifierIsDisplayOnly(t *testing.T) {
	calc := PriceCalculator{}
	pkg := charterPkgForCalc()
	pkg.DiscountPercent = 0

	sel := Selection{
		DepartureOptionID: uptr(11),
		HotelOptionID:     21,
		RoomType:          models.RoomTypeDouble,
		Adults:            1,
	}

	got, err := calc.Calculate(pkg, sel, pricingForCalc())
	assert.NoError(t, err)
	assert.Equal(t, 250.0, got.DepartureModifier)
	assert.Equal(t, 5000.0, got.Total)
}

func TestCalculate_MisconfiguredChildPriceWarnsAndContributesZero(t *testing.T) {
	calc := PriceCalculator{}
	pkg := charterPkgForCalc()
	pkg.DiscountPercent = 0

	pricing := pricingForCalc()
	pricing.RoomTypePricings[0].ChildPrice6to12 = fptr(-100)

	sel := Selection{
		DepartureOptionID: uptr(11),
		HotelOptionID:     21,
		RoomType:          models.RoomTypeDouble,
		Adults:            1,
		Children6to12:     2,
	}

	got, err := calc.Calculate(pkg, sel, pricing)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, got.Children6to12Cost)
	assert.Equal(t, 5000.0, got.Total)
	assert.NotEmpty(t, got.Warnings)
}

func TestCalculate_InboundTransfersBilledPerTraveler(t *testing.T) {
	calc := PriceCalculator{}
	db := setupTestDB(t)
	fx := seedInboundFixture(t, db)

	pricing := fx.Pricing
	pricing.RoomTypePricings = []models.RoomTypePricing{
		{HotelPricingID: pricing.ID, RoomType: models.RoomTypeDouble, AdultPrice: 900, ChildPrice6to12: fptr(450)},
	}

	sel := Selection{
		HotelOptionID:  fx.HotelOpt.ID,
		RoomType:       models.RoomTypeDouble,
		Adults:         2,
		PickupLocation: "Batumi Airport",
		TransferIDs:    []string{"airport-shuttle"},
	}

	got, err := calc.Calculate(&fx.Pkg, sel, &pricing)
	assert.NoError(t, err)
	// 2 adults x 900 + shuttle 40 x 2 travelers
	assert.Equal(t, 80.0, got.AddonsCost)
	assert.Equal(t, 1880.0, got.Total)
}

func TestCalculate_UnknownTransferIgnoredWithWarning(t *testing.T) {
	calc := PriceCalculator{}
	db := setupTestDB(t)
	fx := seedInboundFixture(t, db)

	pricing := fx.Pricing
	pricing.RoomTypePricings = []models.RoomTypePricing{
		{HotelPricingID: pricing.ID, RoomType: models.RoomTypeDouble, AdultPrice: 900},
	}

	sel := Selection{
		HotelOptionID:  fx.HotelOpt.ID,
		RoomType:       models.RoomTypeDouble,
		Adults:         1,
		PickupLocation: "Batumi Airport",
		TransferIDs:    []string{"helicopter"},
	}

	got, err := calc.Calculate(&fx.Pkg, sel, &pricing)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, got.AddonsCost)
	assert.Equal(t, 900.0, got.Total)
	assert.NotEmpty(t, got.Warnings)
}
