package services

import (
	"fmt"
	"strings"

	"travel-backend/models"
)

// SelectionValidator checks that a proposed selection is internally consistent
// against a loaded package before any price is computed. It reports validity
// only and never mutates the selection or the package.
type SelectionValidator struct{}

// Validate runs the checks in order: departure (when the package type requires
// one), hotel option, room type, adult count, add-on references. The package
// must have its DepartureOptions, HotelOptions and Addons loaded.
func (v SelectionValidator) Validate(pkg *models.TravelPackage, sel Selection) ValidationResult {
	res := newValidationResult()

	switch pkg.Type {
	case models.PackageTypeCharter:
		if sel.DepartureOptionID == nil {
			res.addError("departure option is required for charter packages")
		} else if opt := findDepartureOption(pkg, *sel.DepartureOptionID); opt == nil {
			res.addError(fmt.Sprintf("departure option %d does not belong to this package", *sel.DepartureOptionID))
		} else if !opt.Active {
			res.addError(fmt.Sprintf("departure option %d is no longer available", opt.ID))
		}
	case models.PackageTypeInbound:
		if sel.DepartureOptionID != nil {
			res.addWarning("departure option is ignored for inbound packages")
		}
		if strings.TrimSpace(sel.PickupLocation) == "" {
			res.addWarning("pickup location recommended but not provided")
		}
	}

	if sel.HotelOptionID == 0 {
		res.addError("hotel option is required")
	} else if opt := findHotelOption(pkg, sel.HotelOptionID); opt == nil {
		res.addError(fmt.Sprintf("hotel option %d does not belong to this package", sel.HotelOptionID))
	} else if !opt.Active {
		res.addError(fmt.Sprintf("hotel option %d is no longer available", opt.ID))
	}

	if strings.TrimSpace(sel.RoomType) == "" {
		res.addError("room type is required")
	} else if !models.IsValidRoomType(sel.RoomType) {
		res.addError(fmt.Sprintf("unsupported room type %q", sel.RoomType))
	}

	if sel.Adults < 1 {
		res.addError("at least one adult is required")
	}
	if sel.Children6to12 < 0 || sel.Children2to6 < 0 || sel.Infants < 0 {
		res.addError("traveler counts cannot be negative")
	}

	selected := make(map[uint]bool, len(sel.AddonIDs))
	for _, id := range sel.AddonIDs {
		selected[id] = true
		addon := findAddon(pkg, id)
		if addon == nil {
			res.addError(fmt.Sprintf("add-on %d does not belong to this package", id))
			continue
		}
		if !addon.Active {
			res.addError(fmt.Sprintf("add-on %q is no longer available", addon.Name))
		}
	}

	// Required add-ons missing from the selection are merged in by the
	// calculator; surface that here so the caller is not surprised by the
	// charge.
	for i := range pkg.Addons {
		a := &pkg.Addons[i]
		if a.Required && a.Active && !selected[a.ID] {
			res.addWarning(fmt.Sprintf("required add-on %q will be included automatically", a.Name))
		}
	}

	return res
}

func findDepartureOption(pkg *models.TravelPackage, id uint) *models.DepartureOption {
	for i := range pkg.DepartureOptions {
		if pkg.DepartureOptions[i].ID == id {
			return &pkg.DepartureOptions[i]
		}
	}
	return nil
}

func findHotelOption(pkg *models.TravelPackage, id uint) *models.HotelOption {
	for i := range pkg.HotelOptions {
		if pkg.HotelOptions[i].ID == id {
			return &pkg.HotelOptions[i]
		}
	}
	return nil
}

func findAddon(pkg *models.TravelPackage, id uint) *models.Addon {
	for i := range pkg.Addons {
		if pkg.Addons[i].ID == id {
			return &pkg.Addons[i]
		}
	}
	return nil
}
