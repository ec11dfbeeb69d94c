package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"travel-backend/models"
)

// TypedPackageService serves packages of exactly one type. The three
// instances (charter, inbound, regular) share this implementation; the
// behavioral differences between types live in the validator/calculator, not
// in the queries.
type TypedPackageService struct {
	DB          *gorm.DB
	PackageType string
}

func NewCharterPackageService(db *gorm.DB) *TypedPackageService {
	return &TypedPackageService{DB: db, PackageType: models.PackageTypeCharter}
}

func NewInboundPackageService(db *gorm.DB) *TypedPackageService {
	return &TypedPackageService{DB: db, PackageType: models.PackageTypeInbound}
}

func NewRegularPackageService(db *gorm.DB) *TypedPackageService {
	return &TypedPackageService{DB: db, PackageType: models.PackageTypeRegular}
}

func (s *TypedPackageService) preloaded() *gorm.DB {
	return s.DB.
		Preload("DepartureOptions").
		Preload("HotelOptions.Hotel").
		Preload("Addons")
}

// GetByID returns (nil, nil) when no package of this service's type has the
// id, so the facade can keep probing the other types.
func (s *TypedPackageService) GetByID(id uint) (*models.TravelPackage, error) {
	var pkg models.TravelPackage
	err := s.preloaded().
		Where("type = ? AND active = ?", s.PackageType, true).
		First(&pkg, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load package %d: %w", id, err)
	}
	return &pkg, nil
}

func (s *TypedPackageService) GetBySlug(slug string) (*models.TravelPackage, error) {
	var pkg models.TravelPackage
	err := s.preloaded().
		Where("type = ? AND active = ? AND slug = ?", s.PackageType, true, slug).
		First(&pkg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load package %q: %w", slug, err)
	}
	return &pkg, nil
}

func (s *TypedPackageService) filtered(params PackageSearchParams) *gorm.DB {
	q := s.DB.Model(&models.TravelPackage{}).
		Where("type = ? AND active = ?", s.PackageType, true)
	if dest := strings.TrimSpace(params.Destination); dest != "" {
		q = q.Where("destination LIKE ?", "%"+dest+"%")
	}
	if params.MinPrice > 0 {
		q = q.Where("base_price >= ?", params.MinPrice)
	}
	if params.MaxPrice > 0 {
		q = q.Where("base_price <= ?", params.MaxPrice)
	}
	return q
}

// Search pages in SQL. Used when the caller filtered to this one type.
func (s *TypedPackageService) Search(params PackageSearchParams) (PackageSearchResult, error) {
	page, limit := normalizePaging(params.Page, params.Limit)

	var total int64
	if err := s.filtered(params).Count(&total).Error; err != nil {
		return PackageSearchResult{}, fmt.Errorf("failed to count packages: %w", err)
	}

	var pkgs []models.TravelPackage
	err := s.filtered(params).
		Order(sqlOrder(params.Sort)).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&pkgs).Error
	if err != nil {
		return PackageSearchResult{}, fmt.Errorf("failed to search packages: %w", err)
	}

	return PackageSearchResult{
		Packages: summarize(pkgs),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// Matching returns every match unpaginated, for the facade's client-side
// fan-out merge.
func (s *TypedPackageService) Matching(params PackageSearchParams) ([]PackageSummary, error) {
	var pkgs []models.TravelPackage
	if err := s.filtered(params).Find(&pkgs).Error; err != nil {
		return nil, fmt.Errorf("failed to search packages: %w", err)
	}
	return summarize(pkgs), nil
}

func summarize(pkgs []models.TravelPackage) []PackageSummary {
	out := make([]PackageSummary, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, PackageSummary{
			ID:            p.ID,
			Slug:          p.Slug,
			Title:         p.Title,
			Type:          p.Type,
			Destination:   p.Destination,
			Nights:        p.Nights,
			Days:          p.Days,
			BasePrice:     p.BasePrice,
			Currency:      p.Currency,
			Discount:      p.DiscountPercent,
			CreatedAtUnix: p.CreatedAt.Unix(),
		})
	}
	return out
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func sqlOrder(sortKey string) string {
	switch sortKey {
	case "price_asc":
		return "base_price ASC"
	case "price_desc":
		return "base_price DESC"
	default:
		return "created_at DESC"
	}
}

// sortSummaries applies the same ordering as sqlOrder for merged fan-out
// results.
func sortSummaries(items []PackageSummary, sortKey string) {
	switch sortKey {
	case "price_asc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].BasePrice < items[j].BasePrice })
	case "price_desc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].BasePrice > items[j].BasePrice })
	default:
		sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAtUnix > items[j].CreatedAtUnix })
	}
}
