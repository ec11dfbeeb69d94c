package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cast"

	"travel-backend/models"
)

// PriceCalculator turns a validated selection plus its resolved pricing rows
// into an itemized breakdown. It is a pure function of its inputs: identical
// rows and selection always produce an identical breakdown.
type PriceCalculator struct{}

// Calculate computes the authoritative price for a validated selection.
// pricing must be the HotelPricing row resolved for the selection's
// {departure, hotel option} pair (the inbound default row for INBOUND
// packages). A missing or non-positive adult price is a hard error; missing
// or non-positive child/infant prices contribute zero with a warning.
func (pc PriceCalculator) Calculate(pkg *models.TravelPackage, sel Selection, pricing *models.HotelPricing) (PriceBreakdown, error) {
	var out PriceBreakdown

	if pricing == nil {
		return out, ErrHotelPricingNotFound
	}

	rtp := findRoomTypePricing(pricing, sel.RoomType)
	if rtp == nil {
		return out, ErrRoomTypePricingNotFound
	}
	if rtp.AdultPrice <= 0 {
		return out, ErrAdultPriceNotConfigured
	}

	warnings := []string{}

	adultCost := rtp.AdultPrice * float64(sel.Adults)
	c612Cost := tierCost(rtp.ChildPrice6to12, sel.Children6to12, "child price (6-12)", pkg.ID, &warnings)
	c26Cost := tierCost(rtp.ChildPrice2to6, sel.Children2to6, "child price (2-6)", pkg.ID, &warnings)
	infantCost := tierCost(rtp.InfantPrice, sel.Infants, "infant price", pkg.ID, &warnings)

	totalTravelers := sel.TotalTravelers()
	if totalTravelers < 1 {
		// Validator contract guarantees adults >= 1; guard anyway so the
		// per-person division cannot blow up on an unvalidated call.
		totalTravelers = 1
	}

	addons := effectiveAddons(pkg, sel.AddonIDs)
	addonsCost := 0.0
	addonLines := make([]BreakdownLine, 0, len(addons))
	for _, a := range addons {
		cost := a.Price * float64(totalTravelers)
		addonsCost += cost
		addonLines = append(addonLines, BreakdownLine{Label: "Add-on: " + a.Name, Amount: cost})
	}

	// Inbound transfers are priced from the package's free-form config and
	// billed like add-ons.
	if pkg.Type == models.PackageTypeInbound && len(sel.TransferIDs) > 0 {
		transferLines, transferCost, tw := inboundTransferCosts(pkg, sel.TransferIDs, totalTravelers)
		addonsCost += transferCost
		addonLines = append(addonLines, transferLines...)
		warnings = append(warnings, tw...)
	}

	subtotal := adultCost + c612Cost + c26Cost + infantCost + addonsCost

	discount := 0.0
	if pkg.DiscountPercent > 0 {
		discount = subtotal * pkg.DiscountPercent / 100
	}
	total := subtotal - discount

	out = PriceBreakdown{
		BasePrice:         pkg.BasePrice,
		RoomPrice:         rtp.AdultPrice,
		HotelPrice:        adultCost + c612Cost + c26Cost + infantCost,
		AdultCost:         adultCost,
		Children6to12Cost: c612Cost,
		Children2to6Cost:  c26Cost,
		InfantsCost:       infantCost,
		AddonsCost:        addonsCost,
		Subtotal:          subtotal,
		Discount:          discount,
		Total:             total,
		TotalPerPerson:    total / float64(totalTravelers),
		Currency:          currencyFor(pkg, pricing),
		Warnings:          warnings,
	}

	// Display-only: shown on the departure card as "+X", never folded into
	// the total.
	if pkg.Type == models.PackageTypeCharter && sel.DepartureOptionID != nil {
		if opt := findDepartureOption(pkg, *sel.DepartureOptionID); opt != nil {
			out.DepartureModifier = opt.PriceModifier
		}
	}

	lines := []BreakdownLine{
		{Label: fmt.Sprintf("Adults x%d", sel.Adults), Amount: adultCost},
	}
	if sel.Children6to12 > 0 {
		lines = append(lines, BreakdownLine{Label: fmt.Sprintf("Children 6-12 x%d", sel.Children6to12), Amount: c612Cost})
	}
	if sel.Children2to6 > 0 {
		lines = append(lines, BreakdownLine{Label: fmt.Sprintf("Children 2-6 x%d", sel.Children2to6), Amount: c26Cost})
	}
	if sel.Infants > 0 {
		lines = append(lines, BreakdownLine{Label: fmt.Sprintf("Infants x%d", sel.Infants), Amount: infantCost})
	}
	lines = append(lines, addonLines...)
	if discount > 0 {
		lines = append(lines, BreakdownLine{Label: fmt.Sprintf("Discount %.0f%%", pkg.DiscountPercent), Amount: -discount})
	}
	out.Breakdown = lines

	return out, nil
}

// tierCost applies the child/infant rule: nil means not configured (zero
// cost, warning); configured but <= 0 is treated as misconfigured the same
// way. Neither blocks the calculation.
func tierCost(price *float64, count int, label string, packageID uint, warnings *[]string) float64 {
	if count <= 0 {
		return 0
	}
	if price == nil {
		msg := fmt.Sprintf("%s not configured; contributing 0", label)
		log.Printf("pricing warning (package %d): %s", packageID, msg)
		*warnings = append(*warnings, msg)
		return 0
	}
	if *price <= 0 {
		msg := fmt.Sprintf("%s misconfigured (%.2f); contributing 0", label, *price)
		log.Printf("pricing warning (package %d): %s", packageID, msg)
		*warnings = append(*warnings, msg)
		return 0
	}
	return *price * float64(count)
}

// effectiveAddons merges the caller's selected add-ons with every required
// active add-on of the package, so a malformed request cannot drop a
// mandatory charge. Unknown or inactive ids are skipped here; the validator
// already rejects them.
func effectiveAddons(pkg *models.TravelPackage, selectedIDs []uint) []models.Addon {
	included := map[uint]bool{}
	out := make([]models.Addon, 0, len(pkg.Addons))

	for i := range pkg.Addons {
		a := pkg.Addons[i]
		if a.Required && a.Active && !included[a.ID] {
			included[a.ID] = true
			out = append(out, a)
		}
	}
	for _, id := range selectedIDs {
		if included[id] {
			continue
		}
		a := findAddon(pkg, id)
		if a == nil || !a.Active {
			continue
		}
		included[id] = true
		out = append(out, *a)
	}
	return out
}

// inboundTransferCosts looks up the selected transfer option ids in the
// package's free-form InboundConfig blob. The blob is operator-edited, so it
// is read leniently: unknown ids and non-numeric prices warn instead of
// failing.
func inboundTransferCosts(pkg *models.TravelPackage, transferIDs []string, totalTravelers int) ([]BreakdownLine, float64, []string) {
	lines := []BreakdownLine{}
	warnings := []string{}

	options := parseTransferOptions(pkg.InboundConfig)
	if len(options) == 0 {
		warnings = append(warnings, "no transfer options configured for this package")
		return lines, 0, warnings
	}

	total := 0.0
	for _, id := range transferIDs {
		opt, ok := options[strings.TrimSpace(id)]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown transfer option %q ignored", id))
			continue
		}
		if opt.Price <= 0 {
			warnings = append(warnings, fmt.Sprintf("transfer option %q has no price configured", opt.Name))
			continue
		}
		cost := opt.Price * float64(totalTravelers)
		total += cost
		lines = append(lines, BreakdownLine{Label: "Transfer: " + opt.Name, Amount: cost})
	}
	return lines, total, warnings
}

type transferOption struct {
	ID    string
	Name  string
	Price float64
}

// parseTransferOptions reads InboundConfig's transferOptions list into a map
// keyed by option id. Loose-typed on purpose: the blob comes from a free-form
// admin editor.
func parseTransferOptions(raw []byte) map[string]transferOption {
	out := map[string]transferOption{}
	if len(raw) == 0 {
		return out
	}

	var cfg map[string]interface{}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		log.Printf("pricing warning: unreadable inbound config: %v", err)
		return out
	}

	list, ok := cfg["transferOptions"].([]interface{})
	if !ok {
		return out
	}
	for _, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		id := strings.TrimSpace(cast.ToString(m["id"]))
		if id == "" {
			continue
		}
		name := strings.TrimSpace(cast.ToString(m["name"]))
		if name == "" {
			name = id
		}
		out[id] = transferOption{
			ID:    id,
			Name:  name,
			Price: cast.ToFloat64(m["price"]),
		}
	}
	return out
}

func findRoomTypePricing(pricing *models.HotelPricing, roomType string) *models.RoomTypePricing {
	for i := range pricing.RoomTypePricings {
		if pricing.RoomTypePricings[i].RoomType == roomType {
			return &pricing.RoomTypePricings[i]
		}
	}
	return nil
}

func currencyFor(pkg *models.TravelPackage, pricing *models.HotelPricing) string {
	if pricing != nil && strings.TrimSpace(pricing.Currency) != "" {
		return pricing.Currency
	}
	return pkg.Currency
}
