// Package i18n renders translated messages from YAML or JSON catalogs.
//
// Catalogs are nested maps keyed by language at the top level; keys below it
// are addressed with dot notation ("validation.required"). Templates use
// named placeholders:
//
//	en:
//	  validation:
//	    min: "%{field} must be at least %{min}"
//
// Catalogs are loaded through a TranslationAdapter: MapAdapter for in-memory
// data, FSAdapter for any fs.FS (embedded files or os.DirFS). Default returns
// a Translator over the catalogs bundled with this package, which cover every
// translation key produced by package validator.
//
// Translator.ValidationErrors renders validator failures in a language,
// falling back to the default language and finally to the error's own
// English message.
//
// Language selection goes through golang.org/x/text/language, so regional
// tags and POSIX locale names resolve to the closest supported catalog:
//
//	i18n.MatchLanguage("es_MX.UTF-8", []string{"en", "es"}, "en") // "es"
package i18n
