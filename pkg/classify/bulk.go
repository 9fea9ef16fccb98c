package classify

import "github.com/dmitrymomot/orderkit/pkg/sanitizer"

// BulkDiscountQuantity is the quantity from which the bulk discount applies.
const BulkDiscountQuantity = 10

var bulkDiscounts = MustLadder([]float64{BulkDiscountQuantity}, []float64{0, 0.10})

// Quote is a priced quantity of one unit.
type Quote struct {
	UnitPrice       float64 `json:"unit_price" yaml:"unit_price"`
	Quantity        int     `json:"quantity" yaml:"quantity"`
	TotalPrice      float64 `json:"total_price" yaml:"total_price"`
	DiscountedPrice float64 `json:"discounted_price" yaml:"discounted_price"`
}

// BulkPrice prices quantity units at unitPrice; quantities of
// BulkDiscountQuantity or more get 10% off. Amounts are rounded to cents.
func BulkPrice(unitPrice float64, quantity int) Quote {
	total := sanitizer.MulMoney(unitPrice, float64(quantity))
	discount := bulkDiscounts.Classify(float64(quantity))
	return Quote{
		UnitPrice:       unitPrice,
		Quantity:        quantity,
		TotalPrice:      total,
		DiscountedPrice: sanitizer.MulMoney(total, 1-discount),
	}
}
