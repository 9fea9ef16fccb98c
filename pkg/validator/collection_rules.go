package validator

import "fmt"

// RequiredSlice fails on a nil or empty slice.
func RequiredSlice[T any](field string, value []T) Rule {
	return newRule(field, KindCollectionSize, "validation.required_items", "must contain at least one item",
		func() bool { return len(value) > 0 })
}

func MaxLenSlice[T any](field string, value []T, max int) Rule {
	return newRule(field, KindCollectionSize, "validation.max_items", fmt.Sprintf("must have at most %d items", max),
		func() bool { return len(value) <= max }, "max", max)
}
