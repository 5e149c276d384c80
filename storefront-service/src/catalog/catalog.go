// Package catalog holds the immutable product catalog and the query engine
// that filters, sorts and paginates it, plus the mapping between Filters and
// URL query strings.
package catalog

import (
	"errors"
	"fmt"

	"github.com/narender/cellar-store/storefront-service/src/models"
)

var ErrDuplicateID = errors.New("duplicate product id")

// Catalog is a validated, read-only product set. It is safe for concurrent
// use because nothing mutates it after New returns.
type Catalog struct {
	products []models.Product
	index    map[string]int
}

// New validates products and takes a private copy of them. Every invalid
// record and duplicate id is reported in the returned error.
func New(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}

	var errs []error
	for _, p := range products {
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := c.index[p.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateID, p.ID))
			continue
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p.Clone())
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Get returns a copy of the product with the given id.
func (c *Catalog) Get(id string) (models.Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i].Clone(), true
}

// Products returns a copy of every product in catalog order.
func (c *Catalog) Products() []models.Product {
	return cloneAll(c.products)
}

// Search runs the query engine over the catalog. Returned products are
// copies.
func (c *Catalog) Search(f Filters, pageSize int) Result {
	res := Search(c.products, f, pageSize)
	res.Products = cloneAll(res.Products)
	return res
}

// Facets lists the filter values available for category.
func (c *Catalog) Facets(category string) Facets {
	return BuildFacets(c.products, category)
}

// Related returns products similar to the one with the given id.
func (c *Catalog) Related(id string, limit int) []models.Product {
	i, ok := c.index[id]
	if !ok {
		return []models.Product{}
	}
	return cloneAll(Related(c.products, c.products[i], limit))
}

// Inventory reports stock per product id.
func (c *Catalog) Inventory() map[string]int {
	out := make(map[string]int, len(c.products))
	for _, p := range c.products {
		out[p.ID] = p.Inventory
	}
	return out
}

func cloneAll(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
