package collections

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NotFoundError indicates a missing collection resource.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// IsNotFound reports whether err is a collection NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// BunRepository implements Repository with optional caching.
type BunRepository struct {
	collections repository.Repository[*CollectionRecord]
	items       repository.Repository[*ItemRecord]
}

// NewBunRepository creates a collection repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache creates a collection repository with caching services.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	collectionBase := NewCollectionRepository(db)
	itemBase := NewItemRepository(db)
	if cacheService != nil && serializer != nil {
		collectionBase = repositorycache.New(collectionBase, cacheService, serializer)
		itemBase = repositorycache.New(itemBase, cacheService, serializer)
	}
	return &BunRepository{
		collections: collectionBase,
		items:       itemBase,
	}
}

func (r *BunRepository) CreateCollection(ctx context.Context, collection *CollectionRecord) (*CollectionRecord, error) {
	created, err := r.collections.Create(ctx, collection)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunRepository) GetCollectionByName(ctx context.Context, name string) (*CollectionRecord, error) {
	records, _, err := r.collections.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.name = ?", name)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "collection", name)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "collection", Key: name}
	}
	return records[0], nil
}

func (r *BunRepository) ListCollections(ctx context.Context) ([]*CollectionRecord, error) {
	records, _, err := r.collections.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.name ASC")
	}))
	return records, err
}

func (r *BunRepository) UpsertItem(ctx context.Context, item *ItemRecord) (*ItemRecord, error) {
	existing, err := r.items.GetByID(ctx, item.ID.String())
	if err != nil {
		if !goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return nil, mapRepositoryError(err, "collection_item", item.ID.String())
		}
		created, err := r.items.Create(ctx, item)
		if err != nil {
			return nil, err
		}
		return created, nil
	}

	item.CreatedAt = existing.CreatedAt
	updated, err := r.items.Update(ctx, item,
		repository.UpdateByID(item.ID.String()),
		repository.UpdateColumns(
			"collection_id",
			"name",
			"content",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "collection_item", item.ID.String())
	}
	return updated, nil
}

func (r *BunRepository) GetItem(ctx context.Context, id uuid.UUID) (*ItemRecord, error) {
	record, err := r.items.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "collection_item", id.String())
	}
	return record, nil
}

func (r *BunRepository) ListItems(ctx context.Context, collectionID uuid.UUID) ([]*ItemRecord, error) {
	records, _, err := r.items.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.collection_id = ?", collectionID)
	}), repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.name ASC")
	}))
	return records, err
}

func (r *BunRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.items.Delete(ctx, &ItemRecord{ID: id})
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}

	return fmt.Errorf("%s repository error: %w", resource, err)
}
