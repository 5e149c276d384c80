package catalog

import (
	"math"
	"strings"
)

// SortKey selects the result ordering.
type SortKey string

const (
	SortBest      SortKey = "best"
	SortPriceAsc  SortKey = "priceAsc"
	SortPriceDesc SortKey = "priceDesc"
	SortRating    SortKey = "rating"
)

// ParseSort accepts the canonical camelCase keys and the snake_case
// spellings used by older storefront links. ok is false for anything else.
func ParseSort(s string) (key SortKey, ok bool) {
	switch strings.TrimSpace(s) {
	case "best":
		return SortBest, true
	case "priceAsc", "price_asc":
		return SortPriceAsc, true
	case "priceDesc", "price_desc":
		return SortPriceDesc, true
	case "rating":
		return SortRating, true
	default:
		return SortBest, false
	}
}

func (k SortKey) orDefault() SortKey {
	key, _ := ParseSort(string(k))
	return key
}

// Range is a closed interval. A nil bound is unbounded on that side.
type Range struct {
	Min *float64
	Max *float64
}

func Between(min, max float64) Range {
	return Range{Min: &min, Max: &max}
}

func AtLeast(min float64) Range {
	return Range{Min: &min}
}

func AtMost(max float64) Range {
	return Range{Max: &max}
}

// IsZero reports whether the range places no constraint.
func (r Range) IsZero() bool {
	return r.Min == nil && r.Max == nil
}

// bounds resolves the range against a domain of [0, limit]. Bounds that are
// NaN, infinite or outside the domain become unbounded.
func (r Range) bounds(limit float64) (lo, hi float64) {
	lo, hi = math.Inf(-1), math.Inf(1)
	if r.Min != nil && inDomain(*r.Min, limit) {
		lo = *r.Min
	}
	if r.Max != nil && inDomain(*r.Max, limit) {
		hi = *r.Max
	}
	return lo, hi
}

func inDomain(v, limit float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 && v <= limit
}

// Filters is the structured form of a catalog listing request. The zero
// value matches every product in best-first order without pagination.
type Filters struct {
	Category string
	Types    []string
	Regions  []string
	Grapes   []string
	Q        string
	Price    Range // whole currency units
	ABV      Range // percent
	Sort     SortKey
	Page     int // 1-indexed; 0 disables pagination
}
