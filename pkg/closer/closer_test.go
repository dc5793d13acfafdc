package closer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/espressoflow/pos-backend/pkg/closer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseRunsLIFO(t *testing.T) {
	c := closer.New()

	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		c.Add(func(_ context.Context) error {
			order = append(order, i)
			return nil
		})
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestCloseCollectsErrors(t *testing.T) {
	c := closer.New()
	c.Add(func(_ context.Context) error { return errors.New("redis close failed") })
	c.Add(func(_ context.Context) error { return nil })

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis close failed")
}

func TestCloseIsIdempotent(t *testing.T) {
	c := closer.New()

	calls := 0
	c.Add(func(_ context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}
