// Package order validates raw e-commerce order input and derives totals from
// accepted orders.
//
// Construction happens in two mandatory phases. The field phase checks every
// field on its own, in declaration order, and aborts on the first failure:
// identifier formats, email shape, item collection size, per-item ranges,
// address shape (the postal code rule looks at the country given in the same
// input), status, shipping cost and tax rate. The cross-field phase runs only
// when every field passed; it enforces the per-category quantity ceiling and
// the subtotal bounds, then a finalize step resolves the shipping cost.
// Construction is all or nothing: callers get either a complete Order or a
// validator.ValidationErrors describing the failure.
//
//	o, err := order.Construct(order.Input{...})
//	if errors.Is(err, validator.ErrCrossFieldRule) {
//	    // e.g. subtotal below the minimum order amount
//	}
//	s := order.Summarize(o)
//
// Summarize is pure: it recomputes item totals, subtotal, tax and grand total
// from the current field values every time it is called.
//
// Business constants live in Policy, loadable from the environment with
// config.Load. Status changes after acceptance go through Advance, which
// returns a new Order.
package order
