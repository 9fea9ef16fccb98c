package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderkit/pkg/order"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	o, err := newValidator().Construct(validInput())
	require.NoError(t, err)

	s := order.Summarize(o)
	assert.Equal(t, order.Summary{
		OrderID:       "ORD-20240115-A1B2C",
		CustomerEmail: "john.doe@example.com",
		ItemCount:     2,
		Subtotal:      956.97,
		Tax:           76.56,
		Shipping:      0,
		Total:         1033.53,
		Status:        order.StatusPending,
	}, s)

	assert.Equal(t, s, order.Summarize(o), "summarize is pure")
}

func TestSummarize_WithShipping(t *testing.T) {
	t.Parallel()

	o, err := newValidator().Construct(cheapInput(50))
	require.NoError(t, err)

	s := order.Summarize(o)
	assert.Equal(t, 50.0, s.Subtotal)
	assert.Equal(t, 4.0, s.Tax)
	assert.Equal(t, 9.99, s.Shipping)
	assert.Equal(t, 63.99, s.Total)
}

func TestSummarize_ReflectsCurrentValues(t *testing.T) {
	t.Parallel()

	o, err := newValidator().Construct(cheapInput(50))
	require.NoError(t, err)

	o.TaxRate = 0
	o.ShippingCost = 0
	s := order.Summarize(o)
	assert.Equal(t, 50.0, s.Total)
}

func TestLineItem_Total(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item order.LineItem
		want float64
	}{
		{"no discount", order.LineItem{Quantity: 3, UnitPrice: 10.5}, 31.5},
		{"ten percent", order.LineItem{Quantity: 1, UnitPrice: 999.99, DiscountPercent: 10}, 899.99},
		{"five percent", order.LineItem{Quantity: 2, UnitPrice: 29.99, DiscountPercent: 5}, 56.98},
		{"full discount", order.LineItem{Quantity: 4, UnitPrice: 12, DiscountPercent: 100}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.item.Total())
		})
	}
}

func TestOrder_SubtotalWithoutDrift(t *testing.T) {
	t.Parallel()

	o := order.Order{Items: []order.LineItem{
		{Quantity: 1, UnitPrice: 0.1},
		{Quantity: 1, UnitPrice: 0.2},
	}}
	assert.Equal(t, 0.3, o.Subtotal())
}
