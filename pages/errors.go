package pages

import "errors"

var (
	ErrSlugRequired       = errors.New("pages: slug is required")
	ErrSlugExists         = errors.New("pages: slug already exists")
	ErrUnknownLocale      = errors.New("pages: unknown locale")
	ErrNoTranslations     = errors.New("pages: at least one translation is required")
	ErrEnglishRequired    = errors.New("pages: english translation is required")
	ErrDuplicateLocale    = errors.New("pages: duplicate locale provided")
	ErrURLResolverMissing = errors.New("pages: no url resolver configured")
)
