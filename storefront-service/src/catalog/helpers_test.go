package catalog

import (
	"fmt"

	"github.com/narender/cellar-store/storefront-service/src/models"
)

func ptr[T any](v T) *T { return &v }

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

// sampleWines is the six-wine sample catalog.
func sampleWines() []models.Product {
	return []models.Product{
		{ID: "cab-demo-2021", Name: "Château Demo Cabernet Sauvignon 2021", Category: "wine", Type: "Red",
			Grape: "Cabernet Sauvignon", Region: "Napa Valley", Country: "USA", Vintage: ptr(2021),
			ABV: 14.5, VolumeML: 750, PriceCents: 3499, Rating: ptr(4.6), Inventory: 8},
		{ID: "pinot-northcoast-2022", Name: "North Coast Pinot Noir 2022", Category: "wine", Type: "Red",
			Grape: "Pinot Noir", Region: "North Coast", Country: "USA", Vintage: ptr(2022),
			ABV: 13.5, VolumeML: 750, PriceCents: 2599, Rating: ptr(4.4), Inventory: 24},
		{ID: "albarino-rias-2023", Name: "Rías Baixas Albariño 2023", Category: "wine", Type: "White",
			Grape: "Albariño", Region: "Rías Baixas", Country: "Spain", Vintage: ptr(2023),
			ABV: 12.5, VolumeML: 750, PriceCents: 1899, Rating: ptr(4.3), Inventory: 42},
		{ID: "prosecco-brut", Name: "Prosecco Brut NV", Category: "wine", Type: "Sparkling",
			Grape: "Glera", Region: "Veneto", Country: "Italy",
			ABV: 11, VolumeML: 750, PriceCents: 1599, Rating: ptr(4.2), Inventory: 30},
		{ID: "rose-prov-2023", Name: "Provence Rosé 2023", Category: "wine", Type: "Rosé",
			Grape: "Grenache", Region: "Provence", Country: "France", Vintage: ptr(2023),
			ABV: 12.5, VolumeML: 750, PriceCents: 2099, Rating: ptr(4.1), Inventory: 15},
		{ID: "sauternes-dessert", Name: "Sauternes 'Les Demoiselles' 2018", Category: "wine", Type: "Dessert",
			Grape: "Sémillon", Region: "Bordeaux", Country: "France", Vintage: ptr(2018),
			ABV: 13, VolumeML: 375, PriceCents: 2999, Rating: ptr(4.7), Inventory: 6},
	}
}

// sampleCatalog adds spirits and a liquor without grape or type to the wines.
func sampleCatalog() []models.Product {
	return append(sampleWines(),
		models.Product{ID: "highland-single-malt-12", Name: "Glen Demo 12 Year Single Malt", Category: "spirits",
			Region: "Highlands", Country: "Scotland", ABV: 43, VolumeML: 700, PriceCents: 5499, Rating: ptr(4.5), Inventory: 11},
		models.Product{ID: "oaxaca-mezcal-joven", Name: "Oaxaca Joven Mezcal", Category: "spirits",
			Region: "Oaxaca", Country: "Mexico", ABV: 40, VolumeML: 750, PriceCents: 4499, Inventory: 4},
		models.Product{ID: "amaretto-classico", Name: "Amaretto Classico", Category: "liquor",
			Region: "Lombardy", Country: "Italy", ABV: 28, VolumeML: 700, PriceCents: 2499, Rating: ptr(3.9), Inventory: 35},
		models.Product{ID: "grand-cru-reserve", Name: "Grand Cru Reserve 2015", Category: "wine", Type: "Red",
			Grape: "Pinot Noir", Region: "Burgundy", Country: "France", Vintage: ptr(2015),
			ABV: 13.5, VolumeML: 750, PriceCents: 24999, Rating: ptr(4.9), Inventory: 2},
	)
}

// numbered builds n unrated wines priced 10.00, 11.00, ...
func numbered(n int) []models.Product {
	out := make([]models.Product, n)
	for i := range out {
		out[i] = models.Product{
			ID:         fmt.Sprintf("p%02d", i),
			Name:       fmt.Sprintf("Wine %d", i),
			Category:   "wine",
			Type:       "Red",
			Region:     "Somewhere",
			Country:    "Nowhere",
			ABV:        12,
			VolumeML:   750,
			PriceCents: int64(1000 + 100*i),
		}
	}
	return out
}
