package documents

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Record is the storage row for one block's content document. The document
// itself is stored opaquely as JSON; the resolver is the only validation
// gate, nothing at this layer inspects the shape.
type Record struct {
	bun.BaseModel `bun:"table:block_contents,alias:bc"`

	ID        uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	PageID    uuid.UUID      `bun:"page_id,type:uuid" json:"page_id"`
	Region    string         `bun:"region,notnull" json:"region"`
	Position  int            `bun:"position,notnull" json:"position"`
	BlockType string         `bun:"block_type,notnull" json:"block_type"`
	VariantID string         `bun:"variant_id,notnull" json:"variant_id"`
	Content   map[string]any `bun:"content,type:jsonb,notnull" json:"content"`
	CreatedAt time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
