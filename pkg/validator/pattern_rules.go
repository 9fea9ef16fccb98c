package validator

import (
	"fmt"
	"regexp"
	"slices"
)

// MatchesAny passes when value matches at least one of patterns.
func MatchesAny(field, value, description string, patterns ...*regexp.Regexp) Rule {
	return newRule(field, KindFormat, "validation.regex_pattern", fmt.Sprintf("must match %s pattern", description),
		func() bool {
			return slices.ContainsFunc(patterns, func(re *regexp.Regexp) bool { return re.MatchString(value) })
		}, "description", description)
}
