package collections

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CollectionRecord is the storage row for a user-defined collection.
type CollectionRecord struct {
	bun.BaseModel `bun:"table:collections,alias:c"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Slug      string    `bun:"slug,notnull" json:"slug"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// ItemRecord is the storage row for one collection item. Content carries the
// two-locale field maps with the "_schema" array embedded in both branches.
type ItemRecord struct {
	bun.BaseModel `bun:"table:collection_items,alias:ci"`

	ID           uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	CollectionID uuid.UUID      `bun:"collection_id,notnull,type:uuid" json:"collection_id"`
	Name         string         `bun:"name,notnull" json:"name"`
	Content      map[string]any `bun:"content,type:jsonb,notnull" json:"content"`
	CreatedAt    time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
