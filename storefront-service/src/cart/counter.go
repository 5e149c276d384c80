// Package cart holds the storefront's shopping-cart counter.
package cart

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrLimitExceeded   = errors.New("cart limit exceeded")
)

// Counter is the running number of items in the cart. It is owned by
// whoever constructs it and safe for concurrent use.
type Counter struct {
	mu    sync.Mutex
	count int
	limit int
}

// NewCounter returns an empty counter. A limit of 0 or less means unlimited.
func NewCounter(limit int) *Counter {
	return &Counter{limit: limit}
}

// Add increases the count by quantity and returns the new count. The count
// is left unchanged when the add would pass the limit.
func (c *Counter) Add(quantity int) (int, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.limit > 0 && c.count+quantity > c.limit {
		return c.count, fmt.Errorf("%w: %d + %d > %d", ErrLimitExceeded, c.count, quantity, c.limit)
	}
	c.count += quantity
	return c.count, nil
}

func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func (c *Counter) Limit() int {
	return c.limit
}
