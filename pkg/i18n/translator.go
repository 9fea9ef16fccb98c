package i18n

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/dmitrymomot/orderkit/pkg/logger"
	"github.com/dmitrymomot/orderkit/pkg/validator"
)

// DefaultLanguage is used when no language is requested or matched.
const DefaultLanguage = "en"

//go:embed locales/*.yaml
var bundled embed.FS

// Translator renders messages from loaded catalogs. It is read-only after
// construction and safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads catalogs through adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, values := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if values == nil {
			return nil, fmt.Errorf("%w: nil translations for %q", ErrInvalidCatalog, lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return t, nil
}

// Default returns a Translator over the bundled catalogs.
func Default(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, NewFSAdapter(YAMLParser{}, bundled, "locales"), options...)
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match resolves a requested language or locale name to a supported one.
func (t *Translator) Match(requested string) string {
	return MatchLanguage(requested, t.SupportedLanguages(), t.defaultLang)
}

// HasTranslation reports whether lang has a string at key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key into lang, substituting "%{name}" placeholders from
// args given as name, value pairs. A trailing unpaired arg is ignored.
//
//	t.T("en", "validation.min", "field", "quantity", "min", "1")
//
// Missing translations return the key itself, or "" with WithFallbackToKey(false).
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return substitute(tmpl, pairs(args))
}

// Td works like T but falls back to defaultValue instead of the key.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		tmpl = defaultValue
	}
	return substitute(tmpl, pairs(args))
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	catalog, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", slog.String("lang", lang), slog.String("key", key))
		}
		return "", false
	}

	current := catalog
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			break
		}
		if i == len(parts)-1 {
			if s, ok := val.(string); ok {
				return s, true
			}
			break
		}
		next, ok := val.(map[string]any)
		if !ok {
			break
		}
		current = next
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return "", false
}

// FieldMessage is a validation failure rendered for display.
type FieldMessage struct {
	Field   string `json:"field" yaml:"field"`
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

// ValidationErrors renders each failure in lang, then in the default
// language, and finally falls back to the failure's own message.
func (t *Translator) ValidationErrors(lang string, errs validator.ValidationErrors) []FieldMessage {
	messages := make([]FieldMessage, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, FieldMessage{
			Field:   e.Field,
			Kind:    e.Kind.String(),
			Message: t.validationMessage(lang, e),
		})
	}
	return messages
}

func (t *Translator) validationMessage(lang string, e validator.ValidationError) string {
	if e.TranslationKey == "" {
		return e.Message
	}

	params := make(map[string]string, len(e.TranslationValues))
	for k, v := range e.TranslationValues {
		params[k] = fmt.Sprint(v)
	}

	for _, l := range slices.Compact([]string{lang, t.defaultLang}) {
		if tmpl, ok := t.lookup(l, e.TranslationKey); ok {
			return substitute(tmpl, params)
		}
	}
	return e.Message
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces known "%{name}" placeholders and keeps unknown ones.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}
