package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Package types. CHARTER includes an international flight leg, INBOUND is for
// travelers already in-country (ground transfers instead), REGULAR is the
// generic fallback.
const (
	PackageTypeCharter = "CHARTER"
	PackageTypeInbound = "INBOUND"
	PackageTypeRegular = "REGULAR"
)

type TravelPackage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Slug        string `gorm:"uniqueIndex;size:191" json:"slug"`
	Title       string `gorm:"size:255" json:"title"`
	Type        string `gorm:"index;size:16" json:"type"`
	Destination string `gorm:"index;size:191" json:"destination"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	Nights int `json:"nights"`
	Days   int `json:"days"`

	// Display-only estimates shown before a full selection exists. Never a
	// substitute for a missing pricing row once a selection is made.
	BasePrice     float64 `gorm:"column:base_price" json:"basePrice"`
	PriceRangeMin float64 `gorm:"column:price_range_min" json:"priceRangeMin,omitempty"`
	PriceRangeMax float64 `gorm:"column:price_range_max" json:"priceRangeMax,omitempty"`

	Currency        string  `gorm:"size:8;default:USD" json:"currency"`
	DiscountPercent float64 `gorm:"column:discount_percent" json:"discountPercent"`

	Active bool `gorm:"default:true" json:"active"`

	// Free-form per-package configuration for INBOUND packages: transfer
	// options, pickup locations, default hotel option id.
	InboundConfig datatypes.JSON `gorm:"column:inbound_config" json:"inboundConfig,omitempty"`

	DepartureOptions []DepartureOption `gorm:"foreignKey:PackageID" json:"departureOptions,omitempty"`
	HotelOptions     []HotelOption     `gorm:"foreignKey:PackageID" json:"hotelOptions,omitempty"`
	Addons           []Addon           `gorm:"foreignKey:PackageID" json:"addons,omitempty"`
}

func (TravelPackage) TableName() string { return "packages" }
