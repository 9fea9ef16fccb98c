package sanitizer

import "strings"

// NormalizeEmail trims surrounding whitespace and lowercases the whole address.
// The local part is left otherwise untouched.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ExtractEmailDomain returns the lowercased segment between the first "@" and
// the next "@" (or the end of the string). Empty when there is no "@".
func ExtractEmailDomain(email string) string {
	_, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	if !ok {
		return ""
	}
	domain, _, _ = strings.Cut(domain, "@")
	return strings.ToLower(domain)
}

// NormalizePostalCode trims whitespace and uppercases letters, keeping
// separators such as "-" and inner spaces intact.
func NormalizePostalCode(postalCode string) string {
	return strings.ToUpper(NormalizeWhitespace(postalCode))
}
