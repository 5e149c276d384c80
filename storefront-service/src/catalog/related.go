package catalog

import (
	"github.com/samber/lo"

	"github.com/narender/cellar-store/storefront-service/src/models"
)

const (
	// MaxRelated caps the related products shown on a detail page.
	MaxRelated = 8
	// RelatedPriceWindowCents is how close in price a product must be to count
	// as similar.
	RelatedPriceWindowCents = 1000
)

// Related returns other products of p's category that share its grape, then
// its region, then sit within RelatedPriceWindowCents of its price, without
// duplicates and capped at limit (MaxRelated when limit is not positive).
func Related(products []models.Product, p models.Product, limit int) []models.Product {
	if limit <= 0 {
		limit = MaxRelated
	}

	candidates := lo.Filter(products, func(x models.Product, _ int) bool {
		return x.Category == p.Category && x.ID != p.ID
	})

	sameGrape := lo.Filter(candidates, func(x models.Product, _ int) bool {
		return p.Grape != "" && x.Grape == p.Grape
	})
	sameRegion := lo.Filter(candidates, func(x models.Product, _ int) bool {
		return p.Region != "" && x.Region == p.Region
	})
	similarPrice := lo.Filter(candidates, func(x models.Product, _ int) bool {
		diff := x.PriceCents - p.PriceCents
		return diff >= -RelatedPriceWindowCents && diff <= RelatedPriceWindowCents
	})

	related := lo.UniqBy(lo.Flatten([][]models.Product{sameGrape, sameRegion, similarPrice}),
		func(x models.Product) string { return x.ID })

	if len(related) > limit {
		related = related[:limit]
	}
	return related
}
