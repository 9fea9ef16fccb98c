package validator

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Kind classifies a validation failure.
type Kind uint8

const (
	KindFormat Kind = iota + 1
	KindRange
	KindCrossField
	KindCollectionSize
)

func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindRange:
		return "range"
	case KindCrossField:
		return "cross_field"
	case KindCollectionSize:
		return "collection_size"
	default:
		return "unknown"
	}
}

// Sentinel returns the error matched by errors.Is for this kind.
func (k Kind) Sentinel() error {
	switch k {
	case KindFormat:
		return ErrFieldFormat
	case KindRange:
		return ErrFieldRange
	case KindCrossField:
		return ErrCrossFieldRule
	case KindCollectionSize:
		return ErrCollectionSize
	default:
		return ErrValidationFailed
	}
}

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Kind              Kind
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is reports whether target is the sentinel of the error kind or ErrValidationFailed.
func (e ValidationError) Is(target error) bool {
	return target == ErrValidationFailed || target == e.Kind.Sentinel()
}

// WithFieldPrefix returns a copy of e whose field is nested under prefix,
// e.g. "quantity" under "items[2]" becomes "items[2].quantity".
func (e ValidationError) WithFieldPrefix(prefix string) ValidationError {
	if prefix == "" {
		return e
	}
	e.Field = prefix + "." + e.Field
	if e.TranslationValues != nil {
		values := maps.Clone(e.TranslationValues)
		if _, ok := values["field"]; ok {
			values["field"] = e.Field
		}
		e.TranslationValues = values
	}
	return e
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether any contained error matches target.
func (ve ValidationErrors) Is(target error) bool {
	if target == ErrValidationFailed {
		return true
	}
	for _, err := range ve {
		if err.Is(target) {
			return true
		}
	}
	return false
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Kinds returns the distinct kinds present, in first-seen order.
func (ve ValidationErrors) Kinds() []Kind {
	var kinds []Kind
	seen := make(map[Kind]bool)
	for _, err := range ve {
		if !seen[err.Kind] {
			kinds = append(kinds, err.Kind)
			seen[err.Kind] = true
		}
	}
	return kinds
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// newRule builds a rule whose error carries field plus extra translation
// values given as name/value pairs.
func newRule(field string, kind Kind, key, msg string, check func() bool, kv ...any) Rule {
	values := make(map[string]any, 1+len(kv)/2)
	values["field"] = field
	for i := 0; i+1 < len(kv); i += 2 {
		if name, ok := kv[i].(string); ok {
			values[name] = kv[i+1]
		}
	}
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Kind:              kind,
			Message:           msg,
			TranslationKey:    key,
			TranslationValues: values,
		},
	}
}

// Passing is a rule that always succeeds; it stands in for rules that do not apply.
var Passing = Rule{Check: func() bool { return true }}

// When returns rule if cond holds and Passing otherwise.
func When(cond bool, rule Rule) Rule {
	if !cond {
		return Passing
	}
	return rule
}

// Apply executes every rule and returns all failures.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// First executes rules in order and returns the first failure only.
// Rules after the failing one are not evaluated.
func First(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return ValidationErrors{rule.Error}
		}
	}
	return nil
}

// Nest prefixes the field of every rule's error with prefix.
func Nest(prefix string, rules ...Rule) []Rule {
	nested := make([]Rule, len(rules))
	for i, rule := range rules {
		nested[i] = Rule{Check: rule.Check, Error: rule.Error.WithFieldPrefix(prefix)}
	}
	return nested
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	var single ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}

// KindOf returns the kind of the first validation failure in err, or 0.
func KindOf(err error) Kind {
	errs := ExtractValidationErrors(err)
	if len(errs) == 0 {
		return 0
	}
	return errs[0].Kind
}
