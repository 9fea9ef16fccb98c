package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// PrefixedID validates identifiers made of a fixed prefix and a fixed total
// length, such as "PROD-12345". format is the human-readable shape used in
// the error message.
func PrefixedID(field, value, prefix string, length int, format string) Rule {
	return newRule(field, KindFormat, "validation.id_format", fmt.Sprintf("must be in format %s", format),
		func() bool { return strings.HasPrefix(value, prefix) && utf8.RuneCountInString(value) == length },
		"format", format, "prefix", prefix, "length", length)
}
