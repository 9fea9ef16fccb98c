package order

import (
	"time"

	"github.com/dmitrymomot/orderkit/pkg/sanitizer"
	"github.com/dmitrymomot/orderkit/pkg/validator"
)

// Validator constructs Orders from raw Input under a Policy.
// It holds no mutable state and may be shared.
type Validator struct {
	policy    Policy
	now       func() time.Time
	aggregate bool
	fields    *validator.Registry[Input]
}

// Option configures a Validator.
type Option func(*Validator)

// WithPolicy replaces the default policy.
func WithPolicy(p Policy) Option {
	return func(v *Validator) { v.policy = p }
}

// WithClock sets the source of CreatedAt for inputs that do not carry one.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// WithAllErrors makes each phase report every failing rule instead of the first one.
// Construction still fails as a whole.
func WithAllErrors() Option {
	return func(v *Validator) { v.aggregate = true }
}

// NewValidator creates a Validator with DefaultPolicy and time.Now unless overridden.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		policy: DefaultPolicy(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.fields = orderRules(v.policy)
	return v
}

// Policy returns the policy in effect.
func (v *Validator) Policy() Policy {
	return v.policy
}

var defaultValidator = NewValidator()

// Construct validates in with the default policy. See Validator.Construct.
func Construct(in Input) (Order, error) {
	return defaultValidator.Construct(in)
}

// Construct runs the field phase, then the cross-field phase, then resolves
// derived defaults. It returns either a complete Order or a
// validator.ValidationErrors; no partial Order is ever returned.
func (v *Validator) Construct(in Input) (Order, error) {
	in = in.normalize()

	validateFields, applyRules := v.fields.Validate, validator.First
	if v.aggregate {
		validateFields, applyRules = v.fields.ValidateAll, validator.Apply
	}

	if err := validateFields(in); err != nil {
		return Order{}, err
	}

	candidate := v.assemble(in)
	if err := applyRules(recordRules(v.policy, candidate)...); err != nil {
		return Order{}, err
	}

	return v.finalize(candidate, in.ShippingCost), nil
}

// assemble builds the candidate record from field-valid input. Unit prices
// are rounded here; the range checks above saw the raw value.
func (v *Validator) assemble(in Input) Order {
	items := make([]LineItem, len(in.Items))
	for i, item := range in.Items {
		items[i] = LineItem{
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			Category:        Category(item.Category),
			Quantity:        item.Quantity,
			UnitPrice:       sanitizer.RoundMoney(item.UnitPrice),
			DiscountPercent: item.DiscountPercent,
		}
	}

	createdAt := v.now()
	if in.CreatedAt != nil {
		createdAt = *in.CreatedAt
	}

	taxRate := v.policy.DefaultTaxRate
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}

	addr := in.ShippingAddress
	return Order{
		ID:            in.OrderID,
		CustomerEmail: in.CustomerEmail,
		Items:         items,
		ShippingAddress: Address{
			Street:  addr.Street,
			City:    addr.City,
			State:   addr.State,
			ZipCode: addr.ZipCode,
			Country: addr.Country,
		},
		Status:    Status(in.Status),
		CreatedAt: createdAt,
		TaxRate:   taxRate,
	}
}

// finalize returns a copy of o with the shipping cost resolved:
// free at or above the threshold, otherwise the explicit value if one was
// supplied, otherwise the fallback fee.
func (v *Validator) finalize(o Order, explicitShipping *float64) Order {
	resolved := o.clone()
	resolved.ShippingCost = v.policy.ShippingFor(o.Subtotal(), explicitShipping)
	return resolved
}

// ShippingFor resolves the shipping cost for a subtotal. A nil explicit
// value means the caller did not supply one.
func (p Policy) ShippingFor(subtotal float64, explicit *float64) float64 {
	switch {
	case subtotal >= p.FreeShippingThreshold:
		return 0
	case explicit != nil:
		return sanitizer.RoundMoney(*explicit)
	default:
		return p.FallbackShipping
	}
}
