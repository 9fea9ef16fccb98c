package order

import "github.com/dmitrymomot/orderkit/pkg/sanitizer"

// Summary is the derived view of an Order.
type Summary struct {
	OrderID       string  `json:"order_id" yaml:"order_id"`
	CustomerEmail string  `json:"customer_email" yaml:"customer_email"`
	ItemCount     int     `json:"item_count" yaml:"item_count"`
	Subtotal      float64 `json:"subtotal" yaml:"subtotal"`
	Tax           float64 `json:"tax" yaml:"tax"`
	Shipping      float64 `json:"shipping" yaml:"shipping"`
	Total         float64 `json:"total" yaml:"total"`
	Status        Status  `json:"status" yaml:"status"`
}

// Summarize derives totals from the current field values of o.
// It never mutates o and returns the same result for the same input.
func Summarize(o Order) Summary {
	subtotal := o.Subtotal()
	tax := sanitizer.MulMoney(subtotal, o.TaxRate)

	return Summary{
		OrderID:       o.ID,
		CustomerEmail: o.CustomerEmail,
		ItemCount:     len(o.Items),
		Subtotal:      subtotal,
		Tax:           tax,
		Shipping:      o.ShippingCost,
		Total:         sanitizer.SumMoney(subtotal, tax, o.ShippingCost),
		Status:        o.Status,
	}
}
