package catalog

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narender/cellar-store/storefront-service/src/models"
)

func TestQuery_EmptyFiltersReturnsAllByRating(t *testing.T) {
	got := Query(sampleWines(), Filters{})

	assert.Equal(t, []string{
		"sauternes-dessert",
		"cab-demo-2021",
		"pinot-northcoast-2022",
		"albarino-rias-2023",
		"prosecco-brut",
		"rose-prov-2023",
	}, ids(got))
}

func TestQuery_TypeRed(t *testing.T) {
	got := Query(sampleWines(), Filters{Types: []string{"Red"}})
	assert.Equal(t, []string{"cab-demo-2021", "pinot-northcoast-2022"}, ids(got))
}

func TestQuery_FreeTextMatchesRegion(t *testing.T) {
	got := Query(sampleWines(), Filters{Q: "napa"})
	assert.Equal(t, []string{"cab-demo-2021"}, ids(got))
}

func TestQuery_FreeTextIsCaseInsensitiveAcrossFields(t *testing.T) {
	wines := sampleWines()

	assert.Equal(t, []string{"prosecco-brut"}, ids(Query(wines, Filters{Q: "GLERA"})))
	assert.Equal(t, []string{"albarino-rias-2023"}, ids(Query(wines, Filters{Q: "spain"})))
	assert.Equal(t, []string{"rose-prov-2023"}, ids(Query(wines, Filters{Q: "rosé"})))
	assert.Len(t, Query(wines, Filters{Q: "france"}), 2)
	assert.Empty(t, Query(wines, Filters{Q: "riesling"}))
}

func TestQuery_PriceRangeFromQueryString(t *testing.T) {
	got := Query(sampleWines(), ParseQuery("price=0-20"))
	assert.Equal(t, []string{"albarino-rias-2023", "prosecco-brut"}, ids(got))
}

func TestQuery_PriceBoundsUseExactCents(t *testing.T) {
	wines := sampleWines()

	assert.Contains(t, ids(Query(wines, Filters{Price: AtMost(18.99)})), "albarino-rias-2023")
	assert.NotContains(t, ids(Query(wines, Filters{Price: AtMost(18.98)})), "albarino-rias-2023")
	assert.Equal(t, []string{"prosecco-brut"}, ids(Query(wines, Filters{Price: Between(15.99, 15.99)})))
	assert.Equal(t, []string{"cab-demo-2021"}, ids(Query(wines, Filters{Price: AtLeast(34.99)})))
}

func TestQuery_ABVRange(t *testing.T) {
	got := Query(sampleWines(), Filters{ABV: Between(13, 14)})
	assert.ElementsMatch(t, []string{"pinot-northcoast-2022", "sauternes-dessert"}, ids(got))
}

func TestQuery_CategoryIsExactAndCaseSensitive(t *testing.T) {
	products := sampleCatalog()

	assert.Equal(t, []string{"highland-single-malt-12", "oaxaca-mezcal-joven"},
		ids(Query(products, Filters{Category: "spirits"})))
	assert.Empty(t, Query(products, Filters{Category: "Spirits"}))
	assert.Empty(t, Query(products, Filters{Category: "spirit"}))
}

func TestQuery_MissingFieldExcludedByActiveSet(t *testing.T) {
	products := sampleCatalog()

	got := Query(products, Filters{Grapes: []string{"Pinot Noir", ""}})
	assert.Equal(t, []string{"grand-cru-reserve", "pinot-northcoast-2022"}, ids(got))

	for _, p := range Query(products, Filters{Types: []string{"Red", "White"}}) {
		assert.NotEmpty(t, p.Type)
	}
}

func TestQuery_SetsCombineAcrossFields(t *testing.T) {
	got := Query(sampleCatalog(), Filters{
		Types:   []string{"Red", "Dessert"},
		Regions: []string{"Bordeaux", "Burgundy"},
	})
	assert.Equal(t, []string{"grand-cru-reserve", "sauternes-dessert"}, ids(got))
}

func TestQuery_InvertedRangesYieldEmpty(t *testing.T) {
	products := sampleCatalog()

	assert.Empty(t, Query(products, Filters{Price: Between(50, 10)}))
	assert.Empty(t, Query(products, Filters{ABV: Between(14, 12)}))
	assert.Empty(t, Query(products, ParseQuery("price=50-10")))
	assert.Empty(t, Query(products, Filters{Price: Between(10.001, 10.009)}))
}

func TestQuery_MalformedBoundsAreUnbounded(t *testing.T) {
	products := sampleCatalog()
	all := len(products)

	tests := []struct {
		name string
		f    Filters
	}{
		{"nan price min", Filters{Price: AtLeast(math.NaN())}},
		{"inf price max", Filters{Price: AtMost(math.Inf(1))}},
		{"negative price", Filters{Price: Between(-10, -1)}},
		{"abv above 100", Filters{ABV: Between(0, 150)}},
		{"abv min above 100", Filters{ABV: AtLeast(250)}},
		{"negative abv", Filters{ABV: AtMost(-3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Query(products, tt.f), all)
		})
	}
}

func TestQuery_SortKeys(t *testing.T) {
	wines := sampleWines()

	asc := Query(wines, Filters{Sort: SortPriceAsc})
	assert.True(t, slices.IsSortedFunc(asc, func(a, b models.Product) int { return int(a.PriceCents - b.PriceCents) }))
	assert.Equal(t, "prosecco-brut", asc[0].ID)

	desc := Query(wines, Filters{Sort: SortPriceDesc})
	assert.Equal(t, "cab-demo-2021", desc[0].ID)
	assert.Equal(t, "prosecco-brut", desc[len(desc)-1].ID)

	assert.Equal(t, ids(Query(wines, Filters{Sort: SortBest})), ids(Query(wines, Filters{Sort: SortRating})))
	assert.Equal(t, ids(Query(wines, Filters{})), ids(Query(wines, Filters{Sort: "popularity"})))
}

func TestQuery_StableForTies(t *testing.T) {
	products := numbered(5)
	products[3].Rating = ptr(4.0)

	got := Query(products, Filters{})
	assert.Equal(t, []string{"p03", "p00", "p01", "p02", "p04"}, ids(got))

	products[1].PriceCents = products[0].PriceCents
	got = Query(products, Filters{Sort: SortPriceAsc})
	assert.Equal(t, []string{"p00", "p01", "p02", "p03", "p04"}, ids(got))
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	products := sampleCatalog()
	before := ids(products)

	_ = Query(products, Filters{Sort: SortPriceDesc, Q: "a"})

	assert.Equal(t, before, ids(products))
}

func TestQuery_Deterministic(t *testing.T) {
	products := sampleCatalog()
	f := ParseQuery("type=Red,White&q=o&sort=price_desc")

	assert.Equal(t, ids(Query(products, f)), ids(Query(products, f)))
}

func TestSearch_PaginationIsMonotonicPrefix(t *testing.T) {
	products := numbered(30)

	prev := []string{}
	for page := 1; page <= 4; page++ {
		res := Search(products, Filters{Page: page, Sort: SortPriceAsc}, 12)
		got := ids(res.Products)

		assert.Equal(t, 30, res.Total)
		assert.Equal(t, prev, got[:len(prev)], "page %d must extend page %d", page, page-1)
		prev = got
	}

	assert.Len(t, Search(products, Filters{Page: 1}, 12).Products, 12)
	assert.True(t, Search(products, Filters{Page: 2}, 12).HasMore)
	assert.Len(t, Search(products, Filters{Page: 3}, 12).Products, 30)
	assert.False(t, Search(products, Filters{Page: 3}, 12).HasMore)
}

func TestSearch_NoPagination(t *testing.T) {
	products := numbered(30)

	res := Search(products, Filters{}, 12)
	assert.Len(t, res.Products, 30)
	assert.False(t, res.HasMore)
	assert.Equal(t, 0, res.Page)
}

func TestSearch_HugePageDoesNotOverflow(t *testing.T) {
	res := Search(numbered(5), Filters{Page: math.MaxInt}, 12)
	assert.Len(t, res.Products, 5)
	assert.False(t, res.HasMore)
}

func TestSearch_DefaultPageSize(t *testing.T) {
	res := Search(numbered(20), Filters{Page: 1}, 0)
	assert.Equal(t, DefaultPageSize, res.PageSize)
	assert.Len(t, res.Products, DefaultPageSize)
}

// satisfies is an independent statement of the filter predicates, used to
// check that results and exclusions partition the catalog.
func satisfies(p models.Product, f Filters) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	member := func(set []string, v string) bool {
		return len(set) == 0 || (v != "" && slices.Contains(set, v))
	}
	if !member(f.Types, p.Type) || !member(f.Regions, p.Region) || !member(f.Grapes, p.Grape) {
		return false
	}
	if f.Price.Min != nil && float64(p.PriceCents) < *f.Price.Min*100 {
		return false
	}
	if f.Price.Max != nil && float64(p.PriceCents) > *f.Price.Max*100 {
		return false
	}
	if f.ABV.Min != nil && p.ABV < *f.ABV.Min {
		return false
	}
	if f.ABV.Max != nil && p.ABV > *f.ABV.Max {
		return false
	}
	if f.Q != "" {
		hay := strings.ToLower(p.Name + " " + p.Grape + " " + p.Region + " " + p.Type + " " + p.Country)
		if !strings.Contains(hay, strings.ToLower(f.Q)) {
			return false
		}
	}
	return true
}

func TestQuery_ResultsPartitionCatalog(t *testing.T) {
	products := sampleCatalog()
	queries := []string{
		"",
		"category=wine",
		"category=spirits&abv=40-45",
		"type=Red,White&price=20-40",
		"region=Bordeaux,Burgundy,Veneto",
		"grape=Pinot+Noir&q=coast",
		"q=an",
		"price=25-60&sort=price_asc",
		"abv=12-13&type=White,Rosé,Red",
		"category=liquor&q=amaretto",
	}

	for _, raw := range queries {
		t.Run(raw, func(t *testing.T) {
			f := ParseQuery(raw)
			got := Query(products, f)
			in := make(map[string]bool, len(got))
			for _, p := range got {
				require.True(t, satisfies(p, f), "%s should not match", p.ID)
				in[p.ID] = true
			}
			for _, p := range products {
				if !in[p.ID] {
					assert.False(t, satisfies(p, f), "%s should match", p.ID)
				}
			}
		})
	}
}
