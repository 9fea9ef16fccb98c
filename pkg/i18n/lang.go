package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// MatchLanguage resolves requested to one of supported, or returns
// defaultLang when nothing is close enough. requested may be a BCP 47 tag
// ("es-MX"), a POSIX locale name ("es_MX.UTF-8") or an Accept-Language
// value ("fr-CH, es;q=0.9").
func MatchLanguage(requested string, supported []string, defaultLang string) string {
	if len(supported) == 0 {
		return defaultLang
	}

	desired := parseRequested(requested)
	if len(desired) == 0 {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	_, idx, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return defaultLang
	}
	return names[idx]
}

func parseRequested(requested string) []language.Tag {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return nil
	}

	if strings.ContainsAny(requested, ",;") {
		tags, _, err := language.ParseAcceptLanguage(requested)
		if err != nil {
			return nil
		}
		return tags
	}

	// POSIX locale: language_TERRITORY.codeset@modifier
	if i := strings.IndexAny(requested, ".@"); i >= 0 {
		requested = requested[:i]
	}
	tag, err := language.Parse(strings.ReplaceAll(requested, "_", "-"))
	if err != nil {
		return nil
	}
	return []language.Tag{tag}
}
