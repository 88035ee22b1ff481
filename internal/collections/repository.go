package collections

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository abstracts collection and item storage.
type Repository interface {
	CreateCollection(ctx context.Context, collection *CollectionRecord) (*CollectionRecord, error)
	GetCollectionByName(ctx context.Context, name string) (*CollectionRecord, error)
	ListCollections(ctx context.Context) ([]*CollectionRecord, error)
	UpsertItem(ctx context.Context, item *ItemRecord) (*ItemRecord, error)
	GetItem(ctx context.Context, id uuid.UUID) (*ItemRecord, error)
	ListItems(ctx context.Context, collectionID uuid.UUID) ([]*ItemRecord, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

// NewCollectionRepository creates the underlying bun repository for
// CollectionRecord rows.
func NewCollectionRepository(db *bun.DB) repository.Repository[*CollectionRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*CollectionRecord]{
		NewRecord:          func() *CollectionRecord { return &CollectionRecord{} },
		GetID:              func(c *CollectionRecord) uuid.UUID { return c.ID },
		SetID:              func(c *CollectionRecord, id uuid.UUID) { c.ID = id },
		GetIdentifier:      func() string { return "name" },
		GetIdentifierValue: func(c *CollectionRecord) string { return c.Name },
	})
}

// NewItemRepository creates the underlying bun repository for ItemRecord rows.
func NewItemRepository(db *bun.DB) repository.Repository[*ItemRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*ItemRecord]{
		NewRecord:          func() *ItemRecord { return &ItemRecord{} },
		GetID:              func(i *ItemRecord) uuid.UUID { return i.ID },
		SetID:              func(i *ItemRecord, id uuid.UUID) { i.ID = id },
		GetIdentifier:      func() string { return "" },
		GetIdentifierValue: func(*ItemRecord) string { return "" },
	})
}
