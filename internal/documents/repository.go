package documents

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository abstracts storage of block content records. The memory
// implementation backs tests and embedded use; the bun implementation is
// the production path.
type Repository interface {
	Create(ctx context.Context, record *Record) (*Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	ListByPage(ctx context.Context, pageID uuid.UUID) ([]*Record, error)
	Update(ctx context.Context, record *Record) (*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewRecordRepository creates the underlying bun repository for Record rows.
func NewRecordRepository(db *bun.DB) repository.Repository[*Record] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Record]{
		NewRecord:          func() *Record { return &Record{} },
		GetID:              func(r *Record) uuid.UUID { return r.ID },
		SetID:              func(r *Record, id uuid.UUID) { r.ID = id },
		GetIdentifier:      func() string { return "" },
		GetIdentifierValue: func(*Record) string { return "" },
	})
}
