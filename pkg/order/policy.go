package order

import (
	"errors"

	"github.com/dmitrymomot/orderkit/pkg/config"
	"github.com/dmitrymomot/orderkit/pkg/validator"
)

// Policy holds the business constants applied during construction.
// Field tags allow loading it from the environment with config.Load.
type Policy struct {
	MinSubtotal           float64 `env:"ORDER_MIN_SUBTOTAL" envDefault:"10"`
	MaxSubtotal           float64 `env:"ORDER_MAX_SUBTOTAL" envDefault:"50000"`
	FreeShippingThreshold float64 `env:"ORDER_FREE_SHIPPING_THRESHOLD" envDefault:"100"`
	FallbackShipping      float64 `env:"ORDER_FALLBACK_SHIPPING" envDefault:"9.99"`
	DefaultTaxRate        float64 `env:"ORDER_DEFAULT_TAX_RATE" envDefault:"0.08"`
	MaxTaxRate            float64 `env:"ORDER_MAX_TAX_RATE" envDefault:"0.2"`
	PerishableLimit       int     `env:"ORDER_PERISHABLE_LIMIT" envDefault:"100"`
	MaxItems              int     `env:"ORDER_MAX_ITEMS" envDefault:"50"`
	MaxQuantity           int     `env:"ORDER_MAX_QUANTITY" envDefault:"1000"`
	MaxUnitPrice          float64 `env:"ORDER_MAX_UNIT_PRICE" envDefault:"1000000"`
}

// DefaultPolicy returns the stock policy without reading the environment.
func DefaultPolicy() Policy {
	return Policy{
		MinSubtotal:           10,
		MaxSubtotal:           50_000,
		FreeShippingThreshold: 100,
		FallbackShipping:      9.99,
		DefaultTaxRate:        0.08,
		MaxTaxRate:            0.2,
		PerishableLimit:       100,
		MaxItems:              50,
		MaxQuantity:           1000,
		MaxUnitPrice:          1_000_000,
	}
}

// LoadPolicy reads the policy from the environment (and a .env file, if any)
// and validates it.
func LoadPolicy() (Policy, error) {
	var p Policy
	if err := config.Load(&p); err != nil {
		return Policy{}, err
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// Validate rejects policies that could never accept an order or that
// contradict themselves.
func (p Policy) Validate() error {
	err := validator.Apply(
		validator.NonNegativeAmount("min_subtotal", p.MinSubtotal),
		validator.CrossField("max_subtotal", "must not be below min_subtotal", "validation.policy_bounds", nil, func() bool {
			return p.MaxSubtotal >= p.MinSubtotal
		}),
		validator.NonNegativeAmount("free_shipping_threshold", p.FreeShippingThreshold),
		validator.NonNegativeAmount("fallback_shipping", p.FallbackShipping),
		validator.Between("max_tax_rate", p.MaxTaxRate, 0, 1),
		validator.Between("default_tax_rate", p.DefaultTaxRate, 0, p.MaxTaxRate),
		validator.Min("perishable_limit", p.PerishableLimit, 1),
		validator.Min("max_items", p.MaxItems, 1),
		validator.Min("max_quantity", p.MaxQuantity, 1),
		validator.PositiveAmount("max_unit_price", p.MaxUnitPrice),
	)
	if err != nil {
		return errors.Join(ErrInvalidPolicy, err)
	}
	return nil
}
