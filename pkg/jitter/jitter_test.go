package jitter_test

import (
	"testing"
	"time"

	"github.com/espressoflow/pos-backend/pkg/jitter"
	"github.com/stretchr/testify/assert"
)

func TestDurationStaysWithinBounds(t *testing.T) {
	base := time.Second

	for i := 0; i < 100; i++ {
		d := jitter.Duration(base, jitter.DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestExponentialBackoffDoubling(t *testing.T) {
	base := 100 * time.Millisecond
	max := time.Second

	// Без джиттера длительность удваивается до потолка.
	assert.Equal(t, 100*time.Millisecond, jitter.ExponentialBackoff(base, max, 0, 0))
	assert.Equal(t, 200*time.Millisecond, jitter.ExponentialBackoff(base, max, 1, 0))
	assert.Equal(t, 400*time.Millisecond, jitter.ExponentialBackoff(base, max, 2, 0))
	assert.Equal(t, time.Second, jitter.ExponentialBackoff(base, max, 10, 0))
}
