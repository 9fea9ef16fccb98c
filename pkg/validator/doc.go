// Package validator provides composable, type-safe validation rules and an
// ordered field rule registry for building records from raw input.
//
// A Rule couples a boolean Check function with rich, translation-friendly
// error metadata. Rules are evaluated either with Apply, which collects every
// failure into a ValidationErrors slice, or with First, which stops at the
// first failure. Every ValidationError carries a Kind so callers can tell a
// malformed value from an out-of-range one, a violated cross-field rule or a
// collection of the wrong size:
//
//	err := validator.First(
//	    validator.PrefixedID("order_id", id, "ORD-", 18, "ORD-YYYYMMDD-XXXXX"),
//	    validator.ValidEmail("customer_email", email),
//	    validator.Between("quantity", qty, 1, 1000),
//	)
//	if errors.Is(err, validator.ErrFieldRange) {
//	    // a numeric value was out of bounds
//	}
//
// # Registry
//
// Registry maps field names to ordered rule builders over a whole input value,
// so a rule for one field can look at sibling values (a postal code rule
// that depends on the country, for example). Fields are evaluated in
// declaration order:
//
//	rules := validator.NewRegistry[AddressInput]().
//	    Field("state", func(in AddressInput) validator.Rule {
//	        return validator.ValidAlpha("state", in.State)
//	    }).
//	    Field("zip_code", func(in AddressInput) validator.Rule {
//	        return validator.When(in.Country == "USA",
//	            validator.MatchesAny("zip_code", in.ZipCode, "US ZIP", usZip, usZipPlus4))
//	    })
//
//	err := rules.Validate(input) // first failure
//	err = rules.ValidateAll(input) // every failure
//
// # Error Handling
//
// ValidationErrors implements Error and Is, so errors.Is works with the kind
// sentinels ErrFieldFormat, ErrFieldRange, ErrCrossFieldRule and
// ErrCollectionSize as well as the umbrella ErrValidationFailed. Individual
// failures can be inspected with Has, Get, GetErrors and Fields.
//
// The package has no global state and is safe for concurrent use.
package validator
