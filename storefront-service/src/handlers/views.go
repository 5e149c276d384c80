package handlers

import (
	"github.com/narender/cellar-store/storefront-service/src/catalog"
	"github.com/narender/cellar-store/storefront-service/src/models"
)

// productView is a product with the display fields the storefront derives
// from it.
type productView struct {
	models.Product
	FormattedPrice string `json:"formatted_price"`
	InStock        bool   `json:"in_stock"`
	LowStock       bool   `json:"low_stock"`
}

func newProductView(p models.Product) productView {
	return productView{
		Product:        p,
		FormattedPrice: p.FormattedPrice(),
		InStock:        p.InStock(),
		LowStock:       p.LowStock(),
	}
}

func newProductViews(products []models.Product) []productView {
	out := make([]productView, len(products))
	for i, p := range products {
		out[i] = newProductView(p)
	}
	return out
}

type productDetailView struct {
	productView
	Related []productView `json:"related"`
}

type searchView struct {
	Products  []productView `json:"products"`
	Total     int           `json:"total"`
	Page      int           `json:"page"`
	PageSize  int           `json:"pageSize"`
	HasMore   bool          `json:"hasMore"`
	Query     string        `json:"query"`
	NextQuery string        `json:"nextQuery,omitempty"`
}

func newSearchView(f catalog.Filters, res catalog.Result) searchView {
	v := searchView{
		Products: newProductViews(res.Products),
		Total:    res.Total,
		Page:     res.Page,
		PageSize: res.PageSize,
		HasMore:  res.HasMore,
		Query:    f.Encode(),
	}
	if res.HasMore {
		next := f
		next.Page++
		v.NextQuery = next.Encode()
	}
	return v
}

type cartView struct {
	Count     int    `json:"count"`
	ProductID string `json:"productId,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}
