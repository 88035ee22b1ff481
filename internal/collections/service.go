package collections

import (
	"context"
	"time"

	slug "github.com/goliatone/go-slug"
	"github.com/google/uuid"

	pubcollections "github.com/pagecraft-cms/pagecraft/collections"
	"github.com/pagecraft-cms/pagecraft/content"
	"github.com/pagecraft-cms/pagecraft/internal/identity"
	"github.com/pagecraft-cms/pagecraft/internal/logging"
	"github.com/pagecraft-cms/pagecraft/pkg/interfaces"
)

// Item is the domain view of a stored collection item.
type Item struct {
	ID           uuid.UUID
	CollectionID uuid.UUID
	Name         string
	Rows         []pubcollections.Row
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SaveItemInput carries one item save: the owning collection by name plus
// the editor rows.
type SaveItemInput struct {
	Collection string
	Name       string
	Rows       []pubcollections.Row
}

// Service manages collections and their items. Item content is built with
// the shared row validation, so a failed save never persists anything.
type Service struct {
	repo   Repository
	logger interfaces.Logger
	clock  func() time.Time
}

var _ interfaces.CollectionLookup = (*Service)(nil)

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source, mostly for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService constructs the collection service.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	svc := &Service{
		repo:   repo,
		logger: logging.NoOp(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// EnsureCollection returns the named collection, creating it on first use.
func (s *Service) EnsureCollection(ctx context.Context, name string) (*CollectionRecord, error) {
	record, err := s.repo.GetCollectionByName(ctx, name)
	if err == nil {
		return record, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	normalized, err := slug.Normalize(name)
	if err != nil {
		normalized = name
	}
	now := s.clock().UTC()
	record = &CollectionRecord{
		ID:        identity.CollectionUUID(name),
		Name:      name,
		Slug:      normalized,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.repo.CreateCollection(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("collection created", "name", name, "id", created.ID.String())
	return created, nil
}

// SaveItem validates the rows, builds the two-branch document, and upserts
// the item under a deterministic id derived from collection and item name.
func (s *Service) SaveItem(ctx context.Context, input SaveItemInput) (*Item, error) {
	collection, err := s.EnsureCollection(ctx, input.Collection)
	if err != nil {
		return nil, err
	}

	doc, err := pubcollections.BuildDocument(input.Rows)
	if err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	record := &ItemRecord{
		ID:           identity.UUID("pagecraft:item:" + collection.Name + ":" + input.Name),
		CollectionID: collection.ID,
		Name:         input.Name,
		Content:      doc,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	record, err = s.repo.UpsertItem(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("collection item saved",
		"collection", collection.Name,
		"item", record.Name,
	)
	return toItem(record)
}

// GetItem loads one item and reconstructs its editor rows from the stored
// document.
func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (*Item, error) {
	record, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return toItem(record)
}

// ListItems returns every item of a collection, by name.
func (s *Service) ListItems(ctx context.Context, collectionName string) ([]*Item, error) {
	collection, err := s.repo.GetCollectionByName(ctx, collectionName)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.ListItems(ctx, collection.ID)
	if err != nil {
		return nil, err
	}
	items := make([]*Item, 0, len(records))
	for _, record := range records {
		item, err := toItem(record)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// DeleteItem removes one item.
func (s *Service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteItem(ctx, id)
}

// ListCollections lists the known collections as {id, name} references,
// satisfying interfaces.CollectionLookup for collection-reference fields.
func (s *Service) ListCollections(ctx context.Context) ([]interfaces.CollectionRef, error) {
	records, err := s.repo.ListCollections(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]interfaces.CollectionRef, 0, len(records))
	for _, record := range records {
		refs = append(refs, interfaces.CollectionRef{
			ID:   record.ID.String(),
			Name: record.Name,
		})
	}
	return refs, nil
}

func toItem(record *ItemRecord) (*Item, error) {
	rows, err := pubcollections.ParseDocument(content.Document(record.Content))
	if err != nil {
		return nil, err
	}
	return &Item{
		ID:           record.ID,
		CollectionID: record.CollectionID,
		Name:         record.Name,
		Rows:         rows,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}, nil
}
