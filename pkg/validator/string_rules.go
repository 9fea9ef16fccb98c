package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Lengths are counted in runes, so "José" is four characters long.

// Required fails on a string that is empty or whitespace only.
func Required(field, value string) Rule {
	return newRule(field, KindFormat, "validation.required", "field is required",
		func() bool { return strings.TrimSpace(value) != "" })
}

func MaxLen(field, value string, max int) Rule {
	return newRule(field, KindFormat, "validation.max_length", fmt.Sprintf("must be at most %d characters long", max),
		func() bool { return utf8.RuneCountInString(value) <= max }, "max", max)
}

func Len(field, value string, exact int) Rule {
	return newRule(field, KindFormat, "validation.exact_length", fmt.Sprintf("must be exactly %d characters long", exact),
		func() bool { return utf8.RuneCountInString(value) == exact }, "length", exact)
}
