package order

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/orderkit/pkg/sanitizer"
	"github.com/dmitrymomot/orderkit/pkg/validator"
)

const (
	productIDPrefix = "PROD-"
	productIDLength = 10
	orderIDPrefix   = "ORD-"
	orderIDLength   = 18
)

var (
	usZip      = regexp.MustCompile(`^\d{5}$`)
	usZipPlus4 = regexp.MustCompile(`^\d{5}-\d{4}$`)
)

func itemRules(p Policy) *validator.Registry[ItemInput] {
	return validator.NewRegistry[ItemInput]().
		Field("product_id", func(in ItemInput) validator.Rule {
			return validator.PrefixedID("product_id", in.ProductID, productIDPrefix, productIDLength, "PROD-XXXXX")
		}).
		Field("product_name", func(in ItemInput) validator.Rule {
			return validator.Required("product_name", in.ProductName)
		}).
		Field("category", func(in ItemInput) validator.Rule {
			return validator.OneOf("category", Category(in.Category), Categories())
		}).
		Field("quantity",
			func(in ItemInput) validator.Rule { return validator.Min("quantity", in.Quantity, 1) },
			func(in ItemInput) validator.Rule { return validator.Max("quantity", in.Quantity, p.MaxQuantity) },
		).
		// Lower bound on the stored price, which is rounded to cents.
		Field("unit_price",
			func(in ItemInput) validator.Rule {
				return validator.PositiveAmount("unit_price", sanitizer.RoundMoney(in.UnitPrice))
			},
			func(in ItemInput) validator.Rule { return validator.MaxAmount("unit_price", in.UnitPrice, p.MaxUnitPrice) },
		).
		Field("discount_percent", func(in ItemInput) validator.Rule {
			return validator.ValidDiscount("discount_percent", in.DiscountPercent)
		})
}

func addressRules() *validator.Registry[AddressInput] {
	return validator.NewRegistry[AddressInput]().
		Field("street", func(in AddressInput) validator.Rule {
			return validator.Required("street", in.Street)
		}).
		Field("city", func(in AddressInput) validator.Rule {
			return validator.Required("city", in.City)
		}).
		Field("state",
			func(in AddressInput) validator.Rule { return validator.Len("state", in.State, 2) },
			func(in AddressInput) validator.Rule { return validator.ValidAlpha("state", in.State) },
		).
		Field("zip_code", func(in AddressInput) validator.Rule {
			if in.Country == defaultCountry {
				return validator.MatchesAny("zip_code", in.ZipCode, "US ZIP (12345 or 12345-6789)", usZip, usZipPlus4)
			}
			return validator.Required("zip_code", in.ZipCode)
		})
}

func orderRules(p Policy) *validator.Registry[Input] {
	items := itemRules(p)
	address := addressRules()

	return validator.NewRegistry[Input]().
		Field("order_id", func(in Input) validator.Rule {
			return validator.PrefixedID("order_id", in.OrderID, orderIDPrefix, orderIDLength, "ORD-YYYYMMDD-XXXXX")
		}).
		Field("customer_email", func(in Input) validator.Rule {
			return validator.ValidEmail("customer_email", in.CustomerEmail)
		}).
		Field("items",
			func(in Input) validator.Rule { return validator.RequiredSlice("items", in.Items) },
			func(in Input) validator.Rule { return validator.MaxLenSlice("items", in.Items, p.MaxItems) },
		).
		Nested("items", func(in Input) []validator.Rule {
			var rules []validator.Rule
			for i, item := range in.Items {
				rules = append(rules, validator.Nest(fmt.Sprintf("items[%d]", i), items.Rules(item)...)...)
			}
			return rules
		}).
		Nested("shipping_address", func(in Input) []validator.Rule {
			return validator.Nest("shipping_address", address.Rules(in.ShippingAddress)...)
		}).
		Field("status", func(in Input) validator.Rule {
			return validator.OneOf("status", Status(in.Status), Statuses())
		}).
		Field("shipping_cost", func(in Input) validator.Rule {
			if in.ShippingCost == nil {
				return validator.Passing
			}
			return validator.NonNegativeAmount("shipping_cost", *in.ShippingCost)
		}).
		Field("tax_rate", func(in Input) validator.Rule {
			if in.TaxRate == nil {
				return validator.Passing
			}
			return validator.ValidTaxRate("tax_rate", *in.TaxRate, p.MaxTaxRate)
		})
}

// recordRules are the cross-field rules, evaluated against a candidate whose
// fields all passed.
func recordRules(p Policy, o Order) []validator.Rule {
	rules := make([]validator.Rule, 0, len(o.Items)+2)
	for i, item := range o.Items {
		if !item.Category.Perishable() {
			continue
		}
		rules = append(rules, validator.CrossField(
			fmt.Sprintf("items[%d].quantity", i),
			fmt.Sprintf("%s orders limited to %d units for freshness", item.Category, p.PerishableLimit),
			"validation.perishable_limit",
			map[string]any{"category": string(item.Category), "limit": p.PerishableLimit},
			func() bool { return item.Quantity <= p.PerishableLimit },
		))
	}

	subtotal := o.Subtotal()
	return append(rules,
		validator.MinimumPurchase("subtotal", subtotal, p.MinSubtotal),
		validator.MaximumTransaction("subtotal", subtotal, p.MaxSubtotal),
	)
}
