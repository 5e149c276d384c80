package catalog

import (
	"slices"

	"github.com/samber/lo"

	"github.com/narender/cellar-store/storefront-service/src/models"
)

// Facets are the values a listing page offers as filter choices.
type Facets struct {
	Category string   `json:"category"`
	Types    []string `json:"types"`
	Regions  []string `json:"regions"`
	Grapes   []string `json:"grapes"`
}

// BuildFacets collects the distinct regions of category, the distinct grapes
// across all wines and the fixed wine types, each sorted.
func BuildFacets(products []models.Product, category string) Facets {
	regions := lo.Uniq(lo.FilterMap(products, func(p models.Product, _ int) (string, bool) {
		return p.Region, p.Category == category && p.Region != ""
	}))
	grapes := lo.Uniq(lo.FilterMap(products, func(p models.Product, _ int) (string, bool) {
		return p.Grape, p.Category == models.CategoryWine && p.Grape != ""
	}))
	slices.Sort(regions)
	slices.Sort(grapes)

	return Facets{
		Category: category,
		Types:    slices.Clone(models.WineTypes),
		Regions:  regions,
		Grapes:   grapes,
	}
}
