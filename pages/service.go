package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pagecraft-cms/pagecraft/content"
)

// Page is a routable site page: a slug plus per-locale titles and SEO
// metadata. Block content is stored separately, keyed by the page id.
type Page struct {
	ID           uuid.UUID          `json:"id"`
	Slug         string             `json:"slug"`
	Status       string             `json:"status"`
	Translations []*PageTranslation `json:"translations"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Translation returns the page's translation for a locale, if authored.
func (p *Page) Translation(locale content.Locale) (*PageTranslation, bool) {
	for _, tr := range p.Translations {
		if tr.Locale == locale {
			return tr, true
		}
	}
	return nil, false
}

// PageTranslation holds one locale's routing and SEO surface.
type PageTranslation struct {
	ID              uuid.UUID      `json:"id"`
	PageID          uuid.UUID      `json:"page_id"`
	Locale          content.Locale `json:"locale"`
	Title           string         `json:"title"`
	MetaTitle       string         `json:"meta_title,omitempty"`
	MetaDescription string         `json:"meta_description,omitempty"`
	OGImage         string         `json:"og_image,omitempty"`
}

// TranslationInput is one locale's payload for create and update requests.
type TranslationInput struct {
	Locale          content.Locale
	Title           string
	MetaTitle       string
	MetaDescription string
	OGImage         string
}

// CreatePageRequest captures the payload required to create a page.
type CreatePageRequest struct {
	Slug         string
	Status       string
	Translations []TranslationInput
}

// UpdatePageRequest captures the mutable fields for an existing page.
type UpdatePageRequest struct {
	ID           uuid.UUID
	Status       string
	Translations []TranslationInput
}

// Service describes page management capabilities.
type Service interface {
	Create(ctx context.Context, req CreatePageRequest) (*Page, error)
	Get(ctx context.Context, id uuid.UUID) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	List(ctx context.Context) ([]*Page, error)
	Update(ctx context.Context, req UpdatePageRequest) (*Page, error)
	Delete(ctx context.Context, id uuid.UUID) error
	URL(ctx context.Context, id uuid.UUID, locale content.Locale) (string, error)
}

// NotFoundError indicates a missing page resource.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}
