package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narender/cellar-store/storefront-service/src/models"
)

func TestNew_ValidCatalog(t *testing.T) {
	c, err := New(sampleCatalog())
	require.NoError(t, err)

	assert.Equal(t, len(sampleCatalog()), c.Len())
	assert.Equal(t, ids(sampleCatalog()), ids(c.Products()))
}

func TestNew_DuplicateID(t *testing.T) {
	products := append(sampleWines(), sampleWines()[0])

	c, err := New(products)

	require.Error(t, err)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Contains(t, err.Error(), "cab-demo-2021")
}

func TestNew_ReportsEveryInvalidRecord(t *testing.T) {
	products := sampleWines()
	products[0].Type = "Orange"
	products[2].PriceCents = -1

	_, err := New(products)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cab-demo-2021")
	assert.Contains(t, err.Error(), "albarino-rias-2023")
}

func TestCatalog_IsolatedFromCallers(t *testing.T) {
	products := sampleWines()
	c, err := New(products)
	require.NoError(t, err)

	*products[0].Rating = 1
	products[0].Name = "changed"

	got, ok := c.Get("cab-demo-2021")
	require.True(t, ok)
	assert.Equal(t, 4.6, *got.Rating)

	*got.Rating = 0
	got.FlavorNotes = append(got.FlavorNotes, "leaked")
	res := c.Search(Filters{}, 0)
	res.Products[0].Name = "mutated"

	again, _ := c.Get("cab-demo-2021")
	assert.Equal(t, 4.6, *again.Rating)
	assert.Empty(t, again.FlavorNotes)
	assert.Equal(t, "Sauternes 'Les Demoiselles' 2018", c.Products()[5].Name)
}

func TestCatalog_GetUnknown(t *testing.T) {
	c, err := New(sampleWines())
	require.NoError(t, err)

	_, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, c.Related("missing", 0))
}

func TestCatalog_Search(t *testing.T) {
	c, err := New(sampleCatalog())
	require.NoError(t, err)

	res := c.Search(ParseQuery("category=wine&page=1"), 4)

	assert.Equal(t, 7, res.Total)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 4, res.PageSize)
	assert.True(t, res.HasMore)
	assert.Equal(t, []string{"grand-cru-reserve", "sauternes-dessert", "cab-demo-2021", "pinot-northcoast-2022"}, ids(res.Products))
}

func TestCatalog_Inventory(t *testing.T) {
	c, err := New(sampleWines())
	require.NoError(t, err)

	inv := c.Inventory()

	assert.Len(t, inv, 6)
	assert.Equal(t, 8, inv["cab-demo-2021"])
	assert.Equal(t, 6, inv["sauternes-dessert"])
}

func TestBuildFacets_Wine(t *testing.T) {
	f := BuildFacets(sampleWines(), models.CategoryWine)

	assert.Equal(t, "wine", f.Category)
	assert.Equal(t, models.WineTypes, f.Types)
	assert.Equal(t, []string{"Bordeaux", "Napa Valley", "North Coast", "Provence", "Rías Baixas", "Veneto"}, f.Regions)
	assert.Equal(t, []string{"Albariño", "Cabernet Sauvignon", "Glera", "Grenache", "Pinot Noir", "Sémillon"}, f.Grapes)
}

func TestBuildFacets_RegionsFollowCategory(t *testing.T) {
	c, err := New(sampleCatalog())
	require.NoError(t, err)

	f := c.Facets(models.CategorySpirits)

	assert.Equal(t, []string{"Highlands", "Oaxaca"}, f.Regions)
	assert.Contains(t, f.Grapes, "Pinot Noir")
	assert.Len(t, f.Grapes, 6)
}

func TestBuildFacets_TypesAreACopy(t *testing.T) {
	f := BuildFacets(nil, models.CategoryWine)
	f.Types[0] = "Orange"

	assert.Equal(t, models.TypeRed, models.WineTypes[0])
	assert.Empty(t, f.Regions)
}

func TestRelated_SimilarPrice(t *testing.T) {
	wines := sampleWines()

	got := Related(wines, wines[0], 0)

	assert.Equal(t, []string{"pinot-northcoast-2022", "sauternes-dessert"}, ids(got))
}

func TestRelated_OrderAndDedup(t *testing.T) {
	c, err := New(sampleCatalog())
	require.NoError(t, err)

	got := c.Related("pinot-northcoast-2022", 0)

	// grape match first, then price neighbours within the inclusive window
	assert.Equal(t, []string{
		"grand-cru-reserve",
		"cab-demo-2021",
		"albarino-rias-2023",
		"prosecco-brut",
		"rose-prov-2023",
		"sauternes-dessert",
	}, ids(got))
	for _, p := range got {
		assert.Equal(t, models.CategoryWine, p.Category)
	}
}

func TestRelated_Limit(t *testing.T) {
	products := numbered(20)

	assert.Len(t, Related(products, products[0], 0), MaxRelated)
	assert.Len(t, Related(products, products[0], 3), 3)
	assert.NotContains(t, ids(Related(products, products[0], 0)), products[0].ID)
}
