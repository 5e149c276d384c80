package catalog

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/narender/cellar-store/storefront-service/src/models"
)

// DefaultPageSize is the number of products added per "load more" page.
const DefaultPageSize = 12

const (
	maxPriceUnits = 1e12
	maxABV        = 100
)

// Result is a filtered, sorted and paginated listing.
type Result struct {
	Products []models.Product
	Total    int // matches before pagination
	Page     int
	PageSize int
	HasMore  bool
}

// Query filters, sorts and paginates products using DefaultPageSize. The
// input slice is never modified.
func Query(products []models.Product, f Filters) []models.Product {
	return Search(products, f, DefaultPageSize).Products
}

// Search is Query with an explicit page size and match metadata. A
// non-positive pageSize falls back to DefaultPageSize.
func Search(products []models.Product, f Filters, pageSize int) Result {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	m := newMatcher(f)
	matched := make([]models.Product, 0, len(products))
	if !m.empty {
		for _, p := range products {
			if m.match(p) {
				matched = append(matched, p)
			}
		}
	}

	slices.SortStableFunc(matched, comparator(f.Sort))

	res := Result{
		Products: matched,
		Total:    len(matched),
		Page:     max(f.Page, 0),
		PageSize: pageSize,
	}
	if f.Page >= 1 {
		limit := res.Total
		if f.Page <= res.Total/pageSize {
			limit = f.Page * pageSize
		}
		res.Products = matched[:limit:limit]
		res.HasMore = limit < res.Total
	}
	return res
}

func comparator(key SortKey) func(a, b models.Product) int {
	switch key.orDefault() {
	case SortPriceAsc:
		return func(a, b models.Product) int {
			return cmp.Compare(a.PriceCents, b.PriceCents)
		}
	case SortPriceDesc:
		return func(a, b models.Product) int {
			return cmp.Compare(b.PriceCents, a.PriceCents)
		}
	default:
		// best and rating both rank by rating; there is no sales data.
		return func(a, b models.Product) int {
			return cmp.Compare(b.RatingOrZero(), a.RatingOrZero())
		}
	}
}

// matcher is Filters compiled into lookups and resolved bounds.
type matcher struct {
	category string
	types    map[string]struct{}
	regions  map[string]struct{}
	grapes   map[string]struct{}
	q        string

	minCents, maxCents int64
	minABV, maxABV     float64

	empty bool // bounds admit no product
}

func newMatcher(f Filters) matcher {
	m := matcher{
		category: f.Category,
		types:    toSet(f.Types),
		regions:  toSet(f.Regions),
		grapes:   toSet(f.Grapes),
		q:        strings.ToLower(f.Q),
		minCents: math.MinInt64,
		maxCents: math.MaxInt64,
	}

	lo, hi := f.Price.bounds(maxPriceUnits)
	if !math.IsInf(lo, 0) {
		m.minCents = toCents(lo).Ceil().IntPart()
	}
	if !math.IsInf(hi, 0) {
		m.maxCents = toCents(hi).Floor().IntPart()
	}

	m.minABV, m.maxABV = f.ABV.bounds(maxABV)

	m.empty = m.minCents > m.maxCents || m.minABV > m.maxABV
	return m
}

// toCents converts whole currency units to minor units without binary
// floating point error, so 19.99 becomes exactly 1999.
func toCents(units float64) decimal.Decimal {
	return decimal.NewFromFloat(units).Shift(2)
}

func (m matcher) match(p models.Product) bool {
	if m.category != "" && p.Category != m.category {
		return false
	}
	if !inSet(m.types, p.Type) || !inSet(m.regions, p.Region) || !inSet(m.grapes, p.Grape) {
		return false
	}
	if p.PriceCents < m.minCents || p.PriceCents > m.maxCents {
		return false
	}
	if p.ABV < m.minABV || p.ABV > m.maxABV {
		return false
	}
	if m.q != "" && !strings.Contains(haystack(p), m.q) {
		return false
	}
	return true
}

func haystack(p models.Product) string {
	return strings.ToLower(strings.Join([]string{p.Name, p.Grape, p.Region, p.Type, p.Country}, " "))
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// inSet is true when the set is inactive, or value is present and non-empty.
func inSet(set map[string]struct{}, value string) bool {
	if set == nil {
		return true
	}
	if value == "" {
		return false
	}
	_, ok := set[value]
	return ok
}
