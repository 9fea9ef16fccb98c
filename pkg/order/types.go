package order

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/orderkit/pkg/sanitizer"
)

// Category is the closed set of product categories.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryFood        Category = "food"
	CategoryBooks       Category = "books"
)

// Categories lists every category in declaration order.
func Categories() []Category {
	return []Category{CategoryElectronics, CategoryClothing, CategoryFood, CategoryBooks}
}

// Perishable reports whether the category is subject to the freshness quantity ceiling.
func (c Category) Perishable() bool {
	switch c {
	case CategoryFood:
		return true
	case CategoryElectronics, CategoryClothing, CategoryBooks:
		return false
	default:
		return false
	}
}

// Status is the closed set of order states.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every status in lifecycle order.
func Statuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
}

// Terminal reports whether no further transition can leave this status.
func (s Status) Terminal() bool {
	switch s {
	case StatusDelivered, StatusCancelled:
		return true
	case StatusPending, StatusProcessing, StatusShipped:
		return false
	default:
		return false
	}
}

// LineItem is one validated order line. Its total is derived, never stored.
type LineItem struct {
	ProductID       string   `json:"product_id" yaml:"product_id"`
	ProductName     string   `json:"product_name" yaml:"product_name"`
	Category        Category `json:"category" yaml:"category"`
	Quantity        int      `json:"quantity" yaml:"quantity"`
	UnitPrice       float64  `json:"unit_price" yaml:"unit_price"`
	DiscountPercent float64  `json:"discount_percent" yaml:"discount_percent"`
}

var hundred = decimal.NewFromInt(100)

// Total is quantity × unit price × (1 − discount/100), rounded to 2 places.
// The product is computed in decimal and rounded once.
func (li LineItem) Total() float64 {
	keep := hundred.Sub(decimal.NewFromFloat(li.DiscountPercent)).Div(hundred)
	return decimal.NewFromFloat(li.UnitPrice).
		Mul(decimal.NewFromInt(int64(li.Quantity))).
		Mul(keep).
		Round(2).
		InexactFloat64()
}

// Address is a validated postal address.
type Address struct {
	Street  string `json:"street" yaml:"street"`
	City    string `json:"city" yaml:"city"`
	State   string `json:"state" yaml:"state"`
	ZipCode string `json:"zip_code" yaml:"zip_code"`
	Country string `json:"country" yaml:"country"`
}

// Order is an accepted order. It exclusively owns its items and address;
// values returned by this package never share the Items backing array with
// the input or with other orders.
type Order struct {
	ID              string     `json:"order_id" yaml:"order_id"`
	CustomerEmail   string     `json:"customer_email" yaml:"customer_email"`
	Items           []LineItem `json:"items" yaml:"items"`
	ShippingAddress Address    `json:"shipping_address" yaml:"shipping_address"`
	Status          Status     `json:"status" yaml:"status"`
	CreatedAt       time.Time  `json:"created_at" yaml:"created_at"`
	ShippingCost    float64    `json:"shipping_cost" yaml:"shipping_cost"`
	TaxRate         float64    `json:"tax_rate" yaml:"tax_rate"`
}

// Subtotal sums every item total in decimal.
func (o Order) Subtotal() float64 {
	totals := make([]float64, len(o.Items))
	for i, item := range o.Items {
		totals[i] = item.Total()
	}
	return sanitizer.SumMoney(totals...)
}

func (o Order) clone() Order {
	o.Items = slices.Clone(o.Items)
	return o
}
