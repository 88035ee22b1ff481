package pages

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/pagecraft-cms/pagecraft/pages"
)

// BunRepository implements Repository with optional caching.
type BunRepository struct {
	db           *bun.DB
	repo         repository.Repository[*PageRecord]
	translations repository.Repository[*TranslationRecord]
}

// NewBunRepository creates a page repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache creates a page repository with caching services.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	base := NewPageRepository(db)
	translationBase := NewTranslationRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		translationBase = repositorycache.New(translationBase, cacheService, serializer)
	}
	return &BunRepository{
		db:           db,
		repo:         base,
		translations: translationBase,
	}
}

func (r *BunRepository) Create(ctx context.Context, page *PageRecord) (*PageRecord, error) {
	created, err := r.repo.Create(ctx, page)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*PageRecord, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "page", id.String())
	}
	return r.attachTranslations(ctx, record)
}

func (r *BunRepository) GetBySlug(ctx context.Context, slug string) (*PageRecord, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug = ?", slug)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "page", slug)
	}
	if len(records) == 0 {
		return nil, &pages.NotFoundError{Resource: "page", Key: slug}
	}
	return r.attachTranslations(ctx, records[0])
}

func (r *BunRepository) List(ctx context.Context) ([]*PageRecord, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.slug ASC")
	}))
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if _, err := r.attachTranslations(ctx, record); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func (r *BunRepository) Update(ctx context.Context, page *PageRecord) (*PageRecord, error) {
	updated, err := r.repo.Update(ctx, page,
		repository.UpdateByID(page.ID.String()),
		repository.UpdateColumns(
			"slug",
			"status",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "page", page.ID.String())
	}
	return updated, nil
}

func (r *BunRepository) ReplaceTranslations(ctx context.Context, pageID uuid.UUID, translations []*TranslationRecord) error {
	if r.db == nil {
		return fmt.Errorf("page repository: database not configured")
	}

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*TranslationRecord)(nil)).
			Where("?TableAlias.page_id = ?", pageID).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete page translations: %w", err)
		}

		if len(translations) == 0 {
			return nil
		}

		now := time.Now().UTC()
		toInsert := make([]*TranslationRecord, 0, len(translations))
		for _, tr := range translations {
			if tr == nil {
				continue
			}
			cloned := *tr
			cloned.PageID = pageID
			if cloned.ID == uuid.Nil {
				cloned.ID = uuid.New()
			}
			if cloned.CreatedAt.IsZero() {
				cloned.CreatedAt = now
			}
			if cloned.UpdatedAt.IsZero() {
				cloned.UpdatedAt = now
			}
			toInsert = append(toInsert, &cloned)
		}

		if len(toInsert) == 0 {
			return nil
		}

		if _, err := tx.NewInsert().Model(&toInsert).Exec(ctx); err != nil {
			return fmt.Errorf("insert page translations: %w", err)
		}
		return nil
	})
}

func (r *BunRepository) ListTranslations(ctx context.Context, pageID uuid.UUID) ([]*TranslationRecord, error) {
	records, _, err := r.translations.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.page_id = ?", pageID)
		}),
	)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *BunRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &PageRecord{ID: id})
}

func (r *BunRepository) attachTranslations(ctx context.Context, record *PageRecord) (*PageRecord, error) {
	if record == nil {
		return nil, nil
	}
	translations, err := r.ListTranslations(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	record.Translations = translations
	return record, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &pages.NotFoundError{Resource: resource, Key: key}
	}

	return fmt.Errorf("%s repository error: %w", resource, err)
}
