package pages

import (
	"context"
	"errors"
	"fmt"
	"time"

	slug "github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/pagecraft-cms/pagecraft/content"
	"github.com/pagecraft-cms/pagecraft/internal/identity"
	"github.com/pagecraft-cms/pagecraft/internal/logging"
	"github.com/pagecraft-cms/pagecraft/pages"
	"github.com/pagecraft-cms/pagecraft/pkg/interfaces"
)

// Service implements pages.Service over a Repository. Slugs are normalized
// on the way in and page ids are derived from the slug so a page keeps its
// identity across re-imports.
type Service struct {
	repo     Repository
	resolver *URLKitResolver
	logger   interfaces.Logger
	clock    func() time.Time
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

// WithURLResolver wires the go-urlkit resolver used by URL.
func WithURLResolver(resolver *URLKitResolver) ServiceOption {
	return func(s *Service) {
		s.resolver = resolver
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

// NewService constructs the page service.
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

func (s *Service) Create(ctx context.Context, req pages.CreatePageRequest) (*pages.Page, error) {
	normalized, err := normalizeSlug(req.Slug)
	if err != nil {
		return nil, err
	}
	translations, err := buildTranslations(req.Translations)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetBySlug(ctx, normalized); err == nil {
		return nil, fmt.Errorf("%w: %s", pages.ErrSlugExists, normalized)
	} else if !isNotFound(err) {
		return nil, err
	}

	now := s.clock().UTC()
	record := &PageRecord{
		ID:        identity.PageUUID(normalized),
		Slug:      normalized,
		Status:    req.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	record, err = s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceTranslations(ctx, record.ID, translations); err != nil {
		return nil, err
	}

	s.logger.Info("page created", "slug", normalized, "id", record.ID.String())
	return s.load(ctx, record.ID)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*pages.Page, error) {
	return s.load(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slugValue string) (*pages.Page, error) {
	normalized, err := normalizeSlug(slugValue)
	if err != nil {
		return nil, err
	}
	record, err := s.repo.GetBySlug(ctx, normalized)
	if err != nil {
		return nil, err
	}
	return toPage(record), nil
}

func (s *Service) List(ctx context.Context) ([]*pages.Page, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*pages.Page, 0, len(records))
	for _, record := range records {
		result = append(result, toPage(record))
	}
	return result, nil
}

func (s *Service) Update(ctx context.Context, req pages.UpdatePageRequest) (*pages.Page, error) {
	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		record.Status = req.Status
	}
	record.UpdatedAt = s.clock().UTC()
	if _, err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	if len(req.Translations) > 0 {
		translations, err := buildTranslations(req.Translations)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceTranslations(ctx, record.ID, translations); err != nil {
			return nil, err
		}
	}

	return s.load(ctx, record.ID)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) URL(ctx context.Context, id uuid.UUID, locale content.Locale) (string, error) {
	if !locale.Valid() {
		return "", fmt.Errorf("%w: %q", pages.ErrUnknownLocale, locale)
	}
	if s.resolver == nil {
		return "", pages.ErrURLResolverMissing
	}
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.resolver.Resolve(record.Slug, locale)
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (*pages.Page, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPage(record), nil
}

func normalizeSlug(value string) (string, error) {
	if value == "" {
		return "", pages.ErrSlugRequired
	}
	normalized, err := slug.Normalize(value)
	if err != nil {
		return "", fmt.Errorf("pages: normalize slug %q: %w", value, err)
	}
	if normalized == "" {
		return "", pages.ErrSlugRequired
	}
	return normalized, nil
}

func buildTranslations(inputs []pages.TranslationInput) ([]*TranslationRecord, error) {
	if len(inputs) == 0 {
		return nil, pages.ErrNoTranslations
	}

	seen := map[content.Locale]struct{}{}
	records := make([]*TranslationRecord, 0, len(inputs))
	for _, input := range inputs {
		if !input.Locale.Valid() {
			return nil, fmt.Errorf("%w: %q", pages.ErrUnknownLocale, input.Locale)
		}
		if _, ok := seen[input.Locale]; ok {
			return nil, fmt.Errorf("%w: %q", pages.ErrDuplicateLocale, input.Locale)
		}
		seen[input.Locale] = struct{}{}
		records = append(records, &TranslationRecord{
			Locale:          string(input.Locale),
			Title:           input.Title,
			MetaTitle:       input.MetaTitle,
			MetaDescription: input.MetaDescription,
			OGImage:         input.OGImage,
		})
	}
	if _, ok := seen[content.LocaleEN]; !ok {
		return nil, pages.ErrEnglishRequired
	}
	return records, nil
}

func toPage(record *PageRecord) *pages.Page {
	page := &pages.Page{
		ID:        record.ID,
		Slug:      record.Slug,
		Status:    record.Status,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
	for _, tr := range record.Translations {
		page.Translations = append(page.Translations, &pages.PageTranslation{
			ID:              tr.ID,
			PageID:          tr.PageID,
			Locale:          content.Locale(tr.Locale),
			Title:           tr.Title,
			MetaTitle:       tr.MetaTitle,
			MetaDescription: tr.MetaDescription,
			OGImage:         tr.OGImage,
		})
	}
	return page
}

func isNotFound(err error) bool {
	var notFound *pages.NotFoundError
	return errors.As(err, &notFound)
}
