package collections

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/pagecraft-cms/pagecraft/content"
)

// NewMemoryRepository constructs an "in memory" collection repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		collections: make(map[uuid.UUID]*CollectionRecord),
		byName:      make(map[string]uuid.UUID),
		items:       make(map[uuid.UUID]*ItemRecord),
	}
}

type memoryRepository struct {
	mu          sync.RWMutex
	collections map[uuid.UUID]*CollectionRecord
	byName      map[string]uuid.UUID
	items       map[uuid.UUID]*ItemRecord
}

func (m *memoryRepository) CreateCollection(_ context.Context, collection *CollectionRecord) (*CollectionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := *collection
	m.collections[cloned.ID] = &cloned
	if cloned.Name != "" {
		m.byName[cloned.Name] = cloned.ID
	}
	copied := cloned
	return &copied, nil
}

func (m *memoryRepository) GetCollectionByName(_ context.Context, name string) (*CollectionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byName[name]
	if !ok {
		return nil, &NotFoundError{Resource: "collection", Key: name}
	}
	copied := *m.collections[id]
	return &copied, nil
}

func (m *memoryRepository) ListCollections(_ context.Context) ([]*CollectionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*CollectionRecord, 0, len(m.collections))
	for _, record := range m.collections {
		copied := *record
		records = append(records, &copied)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

func (m *memoryRepository) UpsertItem(_ context.Context, item *ItemRecord) (*ItemRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneItem(item)
	if existing, ok := m.items[cloned.ID]; ok {
		cloned.CreatedAt = existing.CreatedAt
	}
	m.items[cloned.ID] = cloned
	return cloneItem(cloned), nil
}

func (m *memoryRepository) GetItem(_ context.Context, id uuid.UUID) (*ItemRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.items[id]
	if !ok {
		return nil, &NotFoundError{Resource: "collection_item", Key: id.String()}
	}
	return cloneItem(record), nil
}

func (m *memoryRepository) ListItems(_ context.Context, collectionID uuid.UUID) ([]*ItemRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*ItemRecord, 0)
	for _, record := range m.items {
		if record.CollectionID == collectionID {
			records = append(records, cloneItem(record))
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

func (m *memoryRepository) DeleteItem(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return &NotFoundError{Resource: "collection_item", Key: id.String()}
	}
	delete(m.items, id)
	return nil
}

func cloneItem(item *ItemRecord) *ItemRecord {
	if item == nil {
		return nil
	}
	cloned := *item
	cloned.Content = content.Document(item.Content).Clone()
	return &cloned
}
