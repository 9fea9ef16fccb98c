package order

import (
	"time"

	"github.com/dmitrymomot/orderkit/pkg/sanitizer"
)

// ItemInput is the raw form of a LineItem.
type ItemInput struct {
	ProductID       string  `json:"product_id" yaml:"product_id"`
	ProductName     string  `json:"product_name" yaml:"product_name"`
	Category        string  `json:"category" yaml:"category"`
	Quantity        int     `json:"quantity" yaml:"quantity"`
	UnitPrice       float64 `json:"unit_price" yaml:"unit_price"`
	DiscountPercent float64 `json:"discount_percent" yaml:"discount_percent"`
}

// AddressInput is the raw form of an Address. An empty Country means "USA".
type AddressInput struct {
	Street  string `json:"street" yaml:"street"`
	City    string `json:"city" yaml:"city"`
	State   string `json:"state" yaml:"state"`
	ZipCode string `json:"zip_code" yaml:"zip_code"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

// Input is the raw form of an Order.
//
// Optional fields are pointers so "not supplied" stays distinct from an
// explicit zero: a nil ShippingCost lets the policy pick the fee, while an
// explicit 0 is kept for orders below the free-shipping threshold.
type Input struct {
	OrderID         string       `json:"order_id" yaml:"order_id"`
	CustomerEmail   string       `json:"customer_email" yaml:"customer_email"`
	Items           []ItemInput  `json:"items" yaml:"items"`
	ShippingAddress AddressInput `json:"shipping_address" yaml:"shipping_address"`
	Status          string       `json:"status,omitempty" yaml:"status,omitempty"`
	CreatedAt       *time.Time   `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	ShippingCost    *float64     `json:"shipping_cost,omitempty" yaml:"shipping_cost,omitempty"`
	TaxRate         *float64     `json:"tax_rate,omitempty" yaml:"tax_rate,omitempty"`
}

const defaultCountry = "USA"

var cleanPlace = sanitizer.Compose(sanitizer.NormalizeWhitespace, sanitizer.TitleCase)

// normalize applies the normalization steps that precede field checks.
// Identifiers are left untouched so malformed ones are reported, not repaired.
func (in Input) normalize() Input {
	in.CustomerEmail = sanitizer.NormalizeEmail(in.CustomerEmail)
	in.Status = sanitizer.TrimToLower(in.Status)
	if in.Status == "" {
		in.Status = string(StatusPending)
	}

	items := make([]ItemInput, len(in.Items))
	for i, item := range in.Items {
		items[i] = item.normalize()
	}
	in.Items = items
	in.ShippingAddress = in.ShippingAddress.normalize()
	return in
}

func (in ItemInput) normalize() ItemInput {
	in.ProductName = sanitizer.NormalizeWhitespace(in.ProductName)
	in.Category = sanitizer.TrimToLower(in.Category)
	return in
}

func (in AddressInput) normalize() AddressInput {
	in.Street = cleanPlace(in.Street)
	in.City = cleanPlace(in.City)
	in.State = sanitizer.TrimToUpper(in.State)
	in.ZipCode = sanitizer.NormalizePostalCode(in.ZipCode)
	in.Country = sanitizer.TrimToUpper(in.Country)
	if in.Country == "" {
		in.Country = defaultCountry
	}
	return in
}
