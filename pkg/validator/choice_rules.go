package validator

import (
	"fmt"
	"slices"
)

// OneOf validates that value is one of options.
func OneOf[T comparable](field string, value T, options []T) Rule {
	return newRule(field, KindFormat, "validation.one_of", fmt.Sprintf("must be one of: %v", options),
		func() bool { return slices.Contains(options, value) }, "options", fmt.Sprint(options))
}
