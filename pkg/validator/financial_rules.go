package validator

import "fmt"

// Money rules. NaN and infinite amounts always fail.

func PositiveAmount[T Numeric](field string, value T) Rule {
	return newRule(field, KindRange, "validation.positive_amount", "amount must be positive",
		func() bool { return finite(value) && value > 0 })
}

func NonNegativeAmount[T Numeric](field string, value T) Rule {
	return newRule(field, KindRange, "validation.non_negative_amount", "amount cannot be negative",
		func() bool { return finite(value) && value >= 0 })
}

// MaxAmount rejects amounts above max.
func MaxAmount[T Numeric](field string, value, max T) Rule {
	return newRule(field, KindRange, "validation.max_amount", fmt.Sprintf("amount exceeds maximum allowed %v", max),
		func() bool { return finite(value) && value <= max }, "max", max)
}

// ValidPercentage accepts values in [0, 100].
func ValidPercentage(field string, value float64) Rule {
	return newRule(field, KindRange, "validation.percentage", "must be between 0% and 100%",
		func() bool { return finite(value) && value >= 0 && value <= 100 })
}

// ValidDiscount is a line-item discount percentage.
func ValidDiscount(field string, value float64) Rule {
	return ValidPercentage(field, value)
}

// ValidTaxRate accepts a fraction in [0, maxRate], e.g. 0.08 for 8%.
func ValidTaxRate(field string, value, maxRate float64) Rule {
	return newRule(field, KindRange, "validation.tax_rate", fmt.Sprintf("tax rate must be between 0 and %v", maxRate),
		func() bool { return finite(value) && value >= 0 && value <= maxRate }, "max", maxRate)
}

// MinimumPurchase is a record-level rule on an aggregate amount.
func MinimumPurchase[T Numeric](field string, value, minimum T) Rule {
	return newRule(field, KindCrossField, "validation.minimum_purchase", fmt.Sprintf("minimum order amount is %v", minimum),
		func() bool { return finite(value) && value >= minimum }, "minimum", minimum)
}

// MaximumTransaction is a record-level rule on an aggregate amount.
func MaximumTransaction[T Numeric](field string, value, maximum T) Rule {
	return newRule(field, KindCrossField, "validation.maximum_transaction",
		fmt.Sprintf("maximum order amount is %v, please split into multiple orders", maximum),
		func() bool { return finite(value) && value <= maximum }, "maximum", maximum)
}
