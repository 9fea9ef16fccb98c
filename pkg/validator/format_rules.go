package validator

import (
	"regexp"
	"slices"
	"strings"
)

var alphaRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

// ValidEmail accepts a value containing "@" whose domain segment (up to the
// next "@", if any) contains a dot.
func ValidEmail(field, value string) Rule {
	return newRule(field, KindFormat, "validation.email", "invalid email format", func() bool {
		_, domain, ok := strings.Cut(value, "@")
		if !ok {
			return false
		}
		domain, _, _ = strings.Cut(domain, "@")
		return strings.Contains(domain, ".")
	})
}

// EmailDomainIn restricts the address to one of domains, ignoring case.
func EmailDomainIn(field, value string, domains []string) Rule {
	return newRule(field, KindFormat, "validation.email_domain", "email domain is not allowed", func() bool {
		at := strings.LastIndex(value, "@")
		if at < 0 {
			return false
		}
		domain := value[at+1:]
		return slices.ContainsFunc(domains, func(d string) bool {
			return strings.EqualFold(d, domain)
		})
	}, "domains", strings.Join(domains, ", "))
}

// ValidAlpha accepts ASCII letters only.
func ValidAlpha(field, value string) Rule {
	return newRule(field, KindFormat, "validation.alpha", "must contain only letters",
		func() bool { return alphaRegex.MatchString(value) })
}
