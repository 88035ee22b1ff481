package documents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pagecraft-cms/pagecraft/blocks"
	"github.com/pagecraft-cms/pagecraft/content"
	"github.com/pagecraft-cms/pagecraft/documents"
	"github.com/pagecraft-cms/pagecraft/internal/identity"
	"github.com/pagecraft-cms/pagecraft/internal/logging"
	"github.com/pagecraft-cms/pagecraft/internal/validation"
	"github.com/pagecraft-cms/pagecraft/pkg/interfaces"
)

// Service persists block content. Every save first normalizes the document
// through the editor's merge rules, then optionally validates the English
// branch against the variant schema before the row is written.
type Service struct {
	repo     Repository
	registry *blocks.Registry
	logger   interfaces.Logger
	clock    func() time.Time
	idgen    func(input documents.SaveInput) uuid.UUID
	strict   bool
}

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

// WithRegistry overrides the built-in catalog.
func WithRegistry(registry *blocks.Registry) ServiceOption {
	return func(s *Service) {
		if registry != nil {
			s.registry = registry
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

// WithStrictValidation makes Save reject documents whose English branch
// fails the variant's schema instead of persisting them as-is.
func WithStrictValidation(strict bool) ServiceOption {
	return func(s *Service) {
		s.strict = strict
	}
}

// NewService constructs the block content service.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	svc := &Service{
		repo:     repo,
		registry: blocks.DefaultRegistry(),
		logger:   logging.NoOp(),
		clock:    time.Now,
		idgen: func(input documents.SaveInput) uuid.UUID {
			return identity.BlockContentUUID(input.PageID, input.Region, input.Position)
		},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *Service) Save(ctx context.Context, input documents.SaveInput) (*documents.BlockContent, error) {
	normalized := content.NormalizeDocument(input.BlockType, input.VariantID, input.Content,
		content.WithRegistry(s.registry))

	if s.strict {
		schema := s.registry.ResolveVariant(input.BlockType, input.VariantID)
		if err := validation.ValidatePayload(schema, normalized.Branch(content.LocaleEN)); err != nil {
			return nil, fmt.Errorf("save %s/%s: %w", input.BlockType, input.VariantID, err)
		}
	}

	id := input.ID
	if id == uuid.Nil {
		id = s.idgen(input)
	}

	now := s.clock().UTC()
	record := &Record{
		ID:        id,
		PageID:    input.PageID,
		Region:    input.Region,
		Position:  input.Position,
		BlockType: string(input.BlockType),
		VariantID: input.VariantID,
		Content:   normalized,
		UpdatedAt: now,
	}

	existing, err := s.repo.GetByID(ctx, id)
	switch {
	case err == nil:
		record.CreatedAt = existing.CreatedAt
		record, err = s.repo.Update(ctx, record)
	case isNotFound(err):
		record.CreatedAt = now
		record, err = s.repo.Create(ctx, record)
	default:
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("block content saved",
		"id", record.ID.String(),
		"block_type", record.BlockType,
		"variant", record.VariantID,
	)
	return toBlockContent(record), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*documents.BlockContent, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBlockContent(record), nil
}

func (s *Service) GetResolved(ctx context.Context, id uuid.UUID, locale content.Locale) (map[string]any, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	schema := s.registry.ResolveVariant(blocks.BlockType(record.BlockType), record.VariantID)
	return content.ResolveForLocale(record.Content, schema, locale), nil
}

func (s *Service) ListByPage(ctx context.Context, pageID uuid.UUID) ([]*documents.BlockContent, error) {
	records, err := s.repo.ListByPage(ctx, pageID)
	if err != nil {
		return nil, err
	}
	items := make([]*documents.BlockContent, 0, len(records))
	for _, record := range records {
		items = append(items, toBlockContent(record))
	}
	return items, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func toBlockContent(record *Record) *documents.BlockContent {
	return &documents.BlockContent{
		ID:        record.ID,
		PageID:    record.PageID,
		Region:    record.Region,
		Position:  record.Position,
		BlockType: blocks.BlockType(record.BlockType),
		VariantID: record.VariantID,
		Content:   content.Document(record.Content).Clone(),
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func isNotFound(err error) bool {
	var notFound *documents.NotFoundError
	return errors.As(err, &notFound)
}
