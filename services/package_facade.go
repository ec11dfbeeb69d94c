package services

import (
	"gorm.io/gorm"

	"travel-backend/models"
)

// PackageFacade is the unified entry point when only a package id or slug is
// known. Lookups probe the type-specific services in a fixed order (CHARTER,
// INBOUND, REGULAR) and take the first match. Validation and pricing resolve
// the package first, then dispatch on the loaded type.
type PackageFacade struct {
	Charter *TypedPackageService
	Inbound *TypedPackageService
	Regular *TypedPackageService

	Availability *AvailabilityService
	Validator    SelectionValidator
	Calculator   PriceCalculator
}

func NewPackageFacade(db *gorm.DB) *PackageFacade {
	return &PackageFacade{
		Charter:      NewCharterPackageService(db),
		Inbound:      NewInboundPackageService(db),
		Regular:      NewRegularPackageService(db),
		Availability: NewAvailabilityService(db),
	}
}

// probe order is fixed: charter, inbound, regular.
func (f *PackageFacade) services() []*TypedPackageService {
	return []*TypedPackageService{f.Charter, f.Inbound, f.Regular}
}

// GetPackageByID probes each type service until one matches. Returns
// ErrPackageNotFound when none does.
func (f *PackageFacade) GetPackageByID(id uint) (*models.TravelPackage, error) {
	for _, svc := range f.services() {
		pkg, err := svc.GetByID(id)
		if err != nil {
			return nil, err
		}
		if pkg != nil {
			return pkg, nil
		}
	}
	return nil, ErrPackageNotFound
}

func (f *PackageFacade) GetPackageBySlug(slug string) (*models.TravelPackage, error) {
	for _, svc := range f.services() {
		pkg, err := svc.GetBySlug(slug)
		if err != nil {
			return nil, err
		}
		if pkg != nil {
			return pkg, nil
		}
	}
	return nil, ErrPackageNotFound
}

// SearchPackages delegates to one type service when a type filter is given.
// Without one it fans out to all three, merges, re-sorts and re-paginates
// client-side.
func (f *PackageFacade) SearchPackages(params PackageSearchParams) (PackageSearchResult, error) {
	switch params.Type {
	case models.PackageTypeCharter:
		return f.Charter.Search(params)
	case models.PackageTypeInbound:
		return f.Inbound.Search(params)
	case models.PackageTypeRegular:
		return f.Regular.Search(params)
	}

	merged := []PackageSummary{}
	for _, svc := range f.services() {
		items, err := svc.Matching(params)
		if err != nil {
			return PackageSearchResult{}, err
		}
		merged = append(merged, items...)
	}
	sortSummaries(merged, params.Sort)

	page, limit := normalizePaging(params.Page, params.Limit)
	total := int64(len(merged))

	start := (page - 1) * limit
	if start > len(merged) {
		start = len(merged)
	}
	end := start + limit
	if end > len(merged) {
		end = len(merged)
	}

	return PackageSearchResult{
		Packages: merged[start:end],
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// ResolveAvailability returns the bookable hotel options of a package for an
// optionally chosen departure.
func (f *PackageFacade) ResolveAvailability(packageID uint, departureOptionID *uint) ([]models.HotelOption, error) {
	pkg, err := f.GetPackageByID(packageID)
	if err != nil {
		return nil, err
	}
	return f.Availability.ResolveForPackage(pkg, departureOptionID)
}

// ValidateSelection loads the package and runs the selection validator.
func (f *PackageFacade) ValidateSelection(packageID uint, sel Selection) (ValidationResult, error) {
	pkg, err := f.GetPackageByID(packageID)
	if err != nil {
		return ValidationResult{}, err
	}
	return f.Validator.Validate(pkg, sel), nil
}

// CalculatePrice validates the selection, resolves the pricing rows for the
// package's type and computes the authoritative breakdown. Once a full
// selection exists, a missing pricing row is a hard error; the base-price
// estimate is never substituted.
func (f *PackageFacade) CalculatePrice(packageID uint, sel Selection) (PriceBreakdown, error) {
	pkg, err := f.GetPackageByID(packageID)
	if err != nil {
		return PriceBreakdown{}, err
	}
	return f.CalculateForPackage(pkg, sel)
}

// CalculateForPackage is CalculatePrice for an already-loaded package, used
// by the booking flow to recompute against the same rows it validated.
func (f *PackageFacade) CalculateForPackage(pkg *models.TravelPackage, sel Selection) (PriceBreakdown, error) {
	res := f.Validator.Validate(pkg, sel)
	if !res.IsValid {
		return PriceBreakdown{}, ErrSelectionInvalid
	}

	// Inbound packages price from the hotel option's default row regardless
	// of any (ignored) departure in the selection.
	departureID := sel.DepartureOptionID
	if pkg.Type != models.PackageTypeCharter {
		departureID = nil
	}

	pricing, err := f.Availability.PricingFor(sel.HotelOptionID, departureID)
	if err != nil {
		return PriceBreakdown{}, err
	}

	breakdown, err := f.Calculator.Calculate(pkg, sel, pricing)
	if err != nil {
		return PriceBreakdown{}, err
	}
	breakdown.Warnings = append(res.Warnings, breakdown.Warnings...)
	return breakdown, nil
}
