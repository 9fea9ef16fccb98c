package sanitizer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/orderkit/pkg/sanitizer"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, sanitizer.Clamp(5, 1, 10))
	assert.Equal(t, 1, sanitizer.Clamp(-5, 1, 10))
	assert.Equal(t, 10, sanitizer.Clamp(15, 1, 10))
}

func TestRoundToDecimalPlaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		places   int
		expected float64
	}{
		{name: "rounds down", value: 899.991, places: 2, expected: 899.99},
		{name: "rounds up", value: 76.5576, places: 2, expected: 76.56},
		{name: "negative places treated as zero", value: 2.6, places: -1, expected: 3},
		{name: "already rounded", value: 29.99, places: 2, expected: 29.99},
		{name: "half away from zero", value: 1.005, places: 2, expected: 1.01},
		{name: "negative half", value: -2.5, places: 0, expected: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, sanitizer.RoundToDecimalPlaces(tt.value, tt.places), 1e-9)
		})
	}
}

func TestMoney(t *testing.T) {
	t.Parallel()

	t.Run("round money", func(t *testing.T) {
		assert.InDelta(t, 56.98, sanitizer.RoundMoney(56.981), 1e-9)
	})

	t.Run("cents round trip", func(t *testing.T) {
		assert.Equal(t, int64(99999), sanitizer.ToCents(999.99))
		assert.Equal(t, int64(101), sanitizer.ToCents(1.005))
		assert.Equal(t, 999.99, sanitizer.FromCents(99999))
	})

	t.Run("multiply without intermediate rounding", func(t *testing.T) {
		assert.Equal(t, 899.99, sanitizer.MulMoney(999.99, 1, 0.9))
		assert.Equal(t, 56.98, sanitizer.MulMoney(29.99, 2, 0.95))
		assert.Equal(t, 76.56, sanitizer.MulMoney(956.97, 0.08))
		assert.Equal(t, 12.5, sanitizer.MulMoney(12.5))
	})

	t.Run("sum has no drift", func(t *testing.T) {
		assert.Equal(t, 956.97, sanitizer.SumMoney(899.99, 56.98))
		assert.Equal(t, 0.3, sanitizer.SumMoney(0.1, 0.2))
		assert.Equal(t, 0.0, sanitizer.SumMoney())
	})
}

func TestNonFiniteAmounts(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)

	assert.NotPanics(t, func() {
		assert.Equal(t, inf, sanitizer.RoundMoney(inf))
		assert.True(t, math.IsNaN(sanitizer.RoundMoney(math.NaN())))
		assert.Equal(t, int64(0), sanitizer.ToCents(inf))
		assert.Equal(t, inf, sanitizer.SumMoney(10, inf))
		assert.Equal(t, inf, sanitizer.MulMoney(inf, 0.08))
		assert.Equal(t, math.Inf(-1), sanitizer.MulMoney(10, math.Inf(-1)))
	})
}
