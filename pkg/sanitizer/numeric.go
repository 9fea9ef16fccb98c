package sanitizer

import (
	"math"

	"github.com/shopspring/decimal"
)

// Numeric represents numeric types that support basic arithmetic operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// Clamp constrains a numeric value to be within the specified range [min, max].
func Clamp[T Numeric](value T, min T, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// finite reports whether v can be represented as a decimal.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// RoundToDecimalPlaces rounds half away from zero to the given number of
// places. Rounding is done on the shortest decimal form of value, so 1.005
// becomes 1.01 rather than 1.00. NaN and infinities are returned unchanged.
func RoundToDecimalPlaces[T Float](value T, places int) T {
	if !finite(float64(value)) {
		return value
	}
	if places < 0 {
		places = 0
	}
	return T(decimal.NewFromFloat(float64(value)).Round(int32(places)).InexactFloat64())
}

// RoundMoney rounds an amount to two decimal places.
func RoundMoney(value float64) float64 {
	return RoundToDecimalPlaces(value, 2)
}

// ToCents converts an amount to whole cents, rounding half away from zero.
// NaN and infinities have no cent value and yield 0.
func ToCents(value float64) int64 {
	if !finite(value) {
		return 0
	}
	return decimal.NewFromFloat(value).Shift(2).Round(0).IntPart()
}

// FromCents converts whole cents back to an amount.
func FromCents(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}

// SumMoney adds amounts in decimal and rounds the result to two places.
// A non-finite input makes the float sum the result.
func SumMoney(values ...float64) float64 {
	sum := decimal.Zero
	for i, v := range values {
		if !finite(v) {
			return floatSum(values[i:], sum.InexactFloat64())
		}
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	return sum.Round(2).InexactFloat64()
}

// MulMoney multiplies amount by every factor in decimal and rounds the
// product to two places. Intermediate products are not rounded. A
// non-finite input makes the float product the result.
func MulMoney(amount float64, factors ...float64) float64 {
	if !finite(amount) || !allFinite(factors) {
		for _, f := range factors {
			amount *= f
		}
		return amount
	}
	product := decimal.NewFromFloat(amount)
	for _, f := range factors {
		product = product.Mul(decimal.NewFromFloat(f))
	}
	return product.Round(2).InexactFloat64()
}

func allFinite(values []float64) bool {
	for _, v := range values {
		if !finite(v) {
			return false
		}
	}
	return true
}

func floatSum(values []float64, start float64) float64 {
	for _, v := range values {
		start += v
	}
	return start
}
