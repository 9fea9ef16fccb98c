package sanitizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Single-value normalizers, shaped func(string) string so they compose.

func Trim(s string) string { return strings.TrimSpace(s) }
func ToLower(s string) string { return strings.ToLower(s) }
func ToUpper(s string) string { return strings.ToUpper(s) }

// TrimToLower is the normalizer for case-insensitive codes and categories.
func TrimToLower(s string) string { return ToLower(Trim(s)) }

// TrimToUpper is the normalizer for country and state codes.
func TrimToUpper(s string) string { return ToUpper(Trim(s)) }

// NormalizeWhitespace trims s and collapses every inner whitespace run,
// tabs and newlines included, to one space.
func NormalizeWhitespace(s string) string {
	return Trim(whitespaceRun.ReplaceAllString(s, " "))
}

// TitleCase upper-cases the first letter of each word and leaves the rest
// alone, so "new york" becomes "New York" and "McAllen" survives intact.
// A cases.Caser is stateful, hence one per call.
func TitleCase(s string) string {
	return cases.Title(language.AmericanEnglish, cases.NoLower).String(s)
}

// MaxLength cuts s to at most n runes.
func MaxLength(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}
