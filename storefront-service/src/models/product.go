package models

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Product categories
const (
	CategoryWine    = "wine"
	CategoryLiquor  = "liquor"
	CategorySpirits = "spirits"
)

// Wine types
const (
	TypeRed       = "Red"
	TypeWhite     = "White"
	TypeRose      = "Rosé"
	TypeSparkling = "Sparkling"
	TypeDessert   = "Dessert"
)

// LowStockThreshold is the inventory below which a product is flagged as
// running low.
const LowStockThreshold = 10

var (
	Categories = []string{CategoryWine, CategoryLiquor, CategorySpirits}
	WineTypes  = []string{TypeRed, TypeWhite, TypeRose, TypeSparkling, TypeDessert}
)

// Product is one catalog record. Grape and Type are empty when absent;
// Vintage and Rating are nil when absent.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Type        string   `json:"type,omitempty"`
	Grape       string   `json:"grape,omitempty"`
	Region      string   `json:"region"`
	Country     string   `json:"country"`
	Vintage     *int     `json:"vintage,omitempty"`
	ABV         float64  `json:"abv"`
	VolumeML    int      `json:"volume_ml"`
	PriceCents  int64    `json:"price_cents"`
	Rating      *float64 `json:"rating,omitempty"`
	Badges      []string `json:"badges,omitempty"`
	Inventory   int      `json:"inventory"`
	FlavorNotes []string `json:"flavor_notes"`
	Pairings    []string `json:"pairings"`
	ImageURL    string   `json:"image_url"`
}

// RatingOrZero returns the rating, treating an absent rating as 0.
func (p Product) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

func (p Product) InStock() bool {
	return p.Inventory > 0
}

func (p Product) LowStock() bool {
	return p.Inventory < LowStockThreshold
}

// FormattedPrice renders the price as dollars, e.g. "$34.99".
func (p Product) FormattedPrice() string {
	return FormatPrice(p.PriceCents)
}

// Clone returns a deep copy so callers cannot reach catalog memory.
func (p Product) Clone() Product {
	c := p
	if p.Vintage != nil {
		v := *p.Vintage
		c.Vintage = &v
	}
	if p.Rating != nil {
		r := *p.Rating
		c.Rating = &r
	}
	c.Badges = slices.Clone(p.Badges)
	c.FlavorNotes = slices.Clone(p.FlavorNotes)
	c.Pairings = slices.Clone(p.Pairings)
	return c
}

// Validate checks the record invariants. All violations are reported.
func (p Product) Validate() error {
	var errs []error
	if p.ID == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if p.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if !slices.Contains(Categories, p.Category) {
		errs = append(errs, fmt.Errorf("category %q must be one of %v", p.Category, Categories))
	}
	if p.Category == CategoryWine && !slices.Contains(WineTypes, p.Type) {
		errs = append(errs, fmt.Errorf("wine type %q must be one of %v", p.Type, WineTypes))
	}
	if p.PriceCents < 0 {
		errs = append(errs, fmt.Errorf("price_cents %d must not be negative", p.PriceCents))
	}
	if p.ABV < 0 || p.ABV > 100 {
		errs = append(errs, fmt.Errorf("abv %v must be within 0-100", p.ABV))
	}
	if p.VolumeML <= 0 {
		errs = append(errs, fmt.Errorf("volume_ml %d must be positive", p.VolumeML))
	}
	if p.Inventory < 0 {
		errs = append(errs, fmt.Errorf("inventory %d must not be negative", p.Inventory))
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		errs = append(errs, fmt.Errorf("rating %v must be within 0-5", *p.Rating))
	}
	if len(errs) > 0 {
		return fmt.Errorf("product %q: %w", p.ID, errors.Join(errs...))
	}
	return nil
}

// FormatPrice renders minor units as a dollar amount with two decimals.
func FormatPrice(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}
