package documents

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/pagecraft-cms/pagecraft/content"
	"github.com/pagecraft-cms/pagecraft/documents"
)

// NewMemoryRepository constructs an "in memory" block content repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID: make(map[uuid.UUID]*Record),
	}
}

type memoryRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Record
}

func (m *memoryRepository) Create(_ context.Context, record *Record) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneRecord(record)
	m.byID[cloned.ID] = cloned
	return cloneRecord(cloned), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &documents.NotFoundError{Resource: "block_content", Key: id.String()}
	}
	return cloneRecord(record), nil
}

func (m *memoryRepository) ListByPage(_ context.Context, pageID uuid.UUID) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Record, 0)
	for _, record := range m.byID {
		if record.PageID == pageID {
			records = append(records, cloneRecord(record))
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Region != records[j].Region {
			return records[i].Region < records[j].Region
		}
		return records[i].Position < records[j].Position
	})
	return records, nil
}

func (m *memoryRepository) Update(_ context.Context, record *Record) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[record.ID]; !ok {
		return nil, &documents.NotFoundError{Resource: "block_content", Key: record.ID.String()}
	}
	cloned := cloneRecord(record)
	m.byID[cloned.ID] = cloned
	return cloneRecord(cloned), nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return &documents.NotFoundError{Resource: "block_content", Key: id.String()}
	}
	delete(m.byID, id)
	return nil
}

func cloneRecord(record *Record) *Record {
	if record == nil {
		return nil
	}
	cloned := *record
	cloned.Content = content.Document(record.Content).Clone()
	return &cloned
}
