package validator

import (
	"fmt"
	"math"
)

// finite reports whether v is neither NaN nor an infinity. Integer types
// are always finite.
func finite[T Numeric](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Finite rejects NaN and infinities. YAML decodes .inf and .nan into
// float fields, and JSON overflows like 1e-200² reach them through arithmetic.
func Finite[T Numeric](field string, value T) Rule {
	return newRule(field, KindRange, "validation.finite", "must be a finite number",
		func() bool { return finite(value) })
}

// Min validates an inclusive lower bound.
func Min[T Numeric](field string, value, min T) Rule {
	return newRule(field, KindRange, "validation.min", fmt.Sprintf("must be at least %v", min),
		func() bool { return value >= min }, "min", min)
}

// Max validates an inclusive upper bound.
func Max[T Numeric](field string, value, max T) Rule {
	return newRule(field, KindRange, "validation.max", fmt.Sprintf("must be at most %v", max),
		func() bool { return value <= max }, "max", max)
}

// GreaterThan validates an exclusive lower bound.
func GreaterThan[T Numeric](field string, value, bound T) Rule {
	return newRule(field, KindRange, "validation.greater_than", fmt.Sprintf("must be greater than %v", bound),
		func() bool { return value > bound }, "bound", bound)
}

// LessThan validates an exclusive upper bound.
func LessThan[T Numeric](field string, value, bound T) Rule {
	return newRule(field, KindRange, "validation.less_than", fmt.Sprintf("must be less than %v", bound),
		func() bool { return value < bound }, "bound", bound)
}

// Between validates the inclusive range [min, max].
func Between[T Numeric](field string, value, min, max T) Rule {
	return newRule(field, KindRange, "validation.between", fmt.Sprintf("must be between %v and %v", min, max),
		func() bool { return value >= min && value <= max }, "min", min, "max", max)
}
