package i18n

import (
	"errors"
	"fmt"
)

// ErrLanguageNotSupported indicates that the requested language has no catalog.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}

var (
	ErrNilAdapter         = errors.New("translation adapter is nil")
	ErrInvalidCatalog     = errors.New("invalid translation catalog")
	ErrFailedToParseJSON  = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML  = errors.New("failed to parse YAML content")
	ErrFailedToReadDir    = errors.New("failed to read translation directory")
	ErrFailedToReadFile   = errors.New("failed to read translation file")
	ErrNoTranslationFiles = errors.New("no translation files found")
	ErrLoadingCancelled   = errors.New("loading translations cancelled")
)
