// Package sanitizer provides the normalization steps applied to raw input
// before or while it is validated.
//
// The helpers are grouped into a few areas:
//
//   - Strings – trimming, case conversion, whitespace collapsing and
//     language-aware title casing.
//
//   - Format – e-mail and postal-code normalization, e-mail domain extraction.
//
//   - Numeric – money rounding, sums and products computed with
//     github.com/shopspring/decimal, plus conversion to and from integer cents.
//
//   - Collections – trimming, filtering and deduplicating string slices and
//     maps.
//
// Helpers never return errors; they always produce a best-effort result. The
// higher-order Apply and Compose helpers build pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NormalizeWhitespace,
//	    sanitizer.TitleCase,
//	)
//
//	city := clean("  san   francisco ") // "San Francisco"
//
// The package holds no state and is safe for concurrent use.
package sanitizer
