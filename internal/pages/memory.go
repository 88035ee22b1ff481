package pages

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/pagecraft-cms/pagecraft/pages"
)

// NewMemoryRepository constructs an "in memory" page repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:   make(map[uuid.UUID]*PageRecord),
		bySlug: make(map[string]uuid.UUID),
	}
}

type memoryRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*PageRecord
	bySlug map[string]uuid.UUID
}

func (m *memoryRepository) Create(_ context.Context, page *PageRecord) (*PageRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := clonePage(page)
	m.byID[cloned.ID] = cloned
	if cloned.Slug != "" {
		m.bySlug[cloned.Slug] = cloned.ID
	}
	return clonePage(cloned), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*PageRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &pages.NotFoundError{Resource: "page", Key: id.String()}
	}
	return clonePage(record), nil
}

func (m *memoryRepository) GetBySlug(_ context.Context, slug string) (*PageRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.bySlug[slug]
	if !ok {
		return nil, &pages.NotFoundError{Resource: "page", Key: slug}
	}
	return clonePage(m.byID[id]), nil
}

func (m *memoryRepository) List(_ context.Context) ([]*PageRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*PageRecord, 0, len(m.byID))
	for _, record := range m.byID {
		records = append(records, clonePage(record))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Slug < records[j].Slug })
	return records, nil
}

func (m *memoryRepository) Update(_ context.Context, page *PageRecord) (*PageRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.byID[page.ID]
	if !ok {
		return nil, &pages.NotFoundError{Resource: "page", Key: page.ID.String()}
	}
	if existing.Slug != page.Slug {
		delete(m.bySlug, existing.Slug)
	}

	cloned := clonePage(page)
	cloned.Translations = existing.Translations
	m.byID[cloned.ID] = cloned
	if cloned.Slug != "" {
		m.bySlug[cloned.Slug] = cloned.ID
	}
	return clonePage(cloned), nil
}

func (m *memoryRepository) ReplaceTranslations(_ context.Context, pageID uuid.UUID, translations []*TranslationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.byID[pageID]
	if !ok {
		return &pages.NotFoundError{Resource: "page", Key: pageID.String()}
	}

	cloned := make([]*TranslationRecord, 0, len(translations))
	for _, tr := range translations {
		if tr == nil {
			continue
		}
		copied := *tr
		copied.PageID = pageID
		if copied.ID == uuid.Nil {
			copied.ID = uuid.New()
		}
		cloned = append(cloned, &copied)
	}
	record.Translations = cloned
	return nil
}

func (m *memoryRepository) ListTranslations(_ context.Context, pageID uuid.UUID) ([]*TranslationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[pageID]
	if !ok {
		return nil, &pages.NotFoundError{Resource: "page", Key: pageID.String()}
	}
	return cloneTranslations(record.Translations), nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.byID[id]
	if !ok {
		return &pages.NotFoundError{Resource: "page", Key: id.String()}
	}
	delete(m.bySlug, record.Slug)
	delete(m.byID, id)
	return nil
}

func clonePage(record *PageRecord) *PageRecord {
	if record == nil {
		return nil
	}
	cloned := *record
	cloned.Translations = cloneTranslations(record.Translations)
	return &cloned
}

func cloneTranslations(translations []*TranslationRecord) []*TranslationRecord {
	if translations == nil {
		return nil
	}
	cloned := make([]*TranslationRecord, 0, len(translations))
	for _, tr := range translations {
		if tr == nil {
			continue
		}
		copied := *tr
		cloned = append(cloned, &copied)
	}
	return cloned
}
