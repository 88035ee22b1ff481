package documents

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pagecraft-cms/pagecraft/blocks"
	"github.com/pagecraft-cms/pagecraft/content"
)

// BlockContent is one persisted block instance: where it sits on a page,
// which variant renders it, and the full two-locale content document.
type BlockContent struct {
	ID        uuid.UUID        `json:"id"`
	PageID    uuid.UUID        `json:"page_id"`
	Region    string           `json:"region"`
	Position  int              `json:"position"`
	BlockType blocks.BlockType `json:"block_type"`
	VariantID string           `json:"variant_id"`
	Content   content.Document `json:"content"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// SaveInput carries everything needed to create or replace a block's
// content. A zero ID means the service derives a deterministic one from
// the page, region, and position.
type SaveInput struct {
	ID        uuid.UUID
	PageID    uuid.UUID
	Region    string
	Position  int
	BlockType blocks.BlockType
	VariantID string
	Content   content.Document
}

// Service persists block content documents. Save always writes the full
// normalized document; overlapping saves follow a last-write-wins
// discipline with no version guard.
type Service interface {
	Save(ctx context.Context, input SaveInput) (*BlockContent, error)
	Get(ctx context.Context, id uuid.UUID) (*BlockContent, error)
	GetResolved(ctx context.Context, id uuid.UUID, locale content.Locale) (map[string]any, error)
	ListByPage(ctx context.Context, pageID uuid.UUID) ([]*BlockContent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotFoundError indicates a missing document resource.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}
