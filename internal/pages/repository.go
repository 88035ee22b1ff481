package pages

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository abstracts page storage. Translations are replaced wholesale
// alongside their page; there is no per-locale patching at this layer.
type Repository interface {
	Create(ctx context.Context, page *PageRecord) (*PageRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PageRecord, error)
	GetBySlug(ctx context.Context, slug string) (*PageRecord, error)
	List(ctx context.Context) ([]*PageRecord, error)
	Update(ctx context.Context, page *PageRecord) (*PageRecord, error)
	ReplaceTranslations(ctx context.Context, pageID uuid.UUID, translations []*TranslationRecord) error
	ListTranslations(ctx context.Context, pageID uuid.UUID) ([]*TranslationRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewPageRepository creates the underlying bun repository for PageRecord rows.
func NewPageRepository(db *bun.DB) repository.Repository[*PageRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PageRecord]{
		NewRecord:          func() *PageRecord { return &PageRecord{} },
		GetID:              func(p *PageRecord) uuid.UUID { return p.ID },
		SetID:              func(p *PageRecord, id uuid.UUID) { p.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(p *PageRecord) string { return p.Slug },
	})
}

// NewTranslationRepository creates the underlying bun repository for
// TranslationRecord rows.
func NewTranslationRepository(db *bun.DB) repository.Repository[*TranslationRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*TranslationRecord]{
		NewRecord:          func() *TranslationRecord { return &TranslationRecord{} },
		GetID:              func(t *TranslationRecord) uuid.UUID { return t.ID },
		SetID:              func(t *TranslationRecord, id uuid.UUID) { t.ID = id },
		GetIdentifier:      func() string { return "" },
		GetIdentifierValue: func(*TranslationRecord) string { return "" },
	})
}
