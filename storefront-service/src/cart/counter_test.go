package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_Add(t *testing.T) {
	c := NewCounter(0)

	n, err := c.Add(1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = c.Add(3)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 4, c.Count())
}

func TestCounter_RejectsNonPositive(t *testing.T) {
	c := NewCounter(0)

	for _, q := range []int{0, -2} {
		_, err := c.Add(q)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
	assert.Zero(t, c.Count())
}

func TestCounter_Limit(t *testing.T) {
	c := NewCounter(5)

	_, err := c.Add(4)
	require.NoError(t, err)

	n, err := c.Add(2)
	assert.ErrorIs(t, err, ErrLimitExceeded)
	assert.Equal(t, 4, n)

	n, err = c.Add(1)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, c.Limit())
}

func TestCounter_Concurrent(t *testing.T) {
	c := NewCounter(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Add(2)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, c.Count())
}
