package media

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryRepository constructs an "in memory" media repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{records: make(map[uuid.UUID]*Media)}
}

type memoryRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Media
}

func (m *memoryRepository) Create(_ context.Context, record *Media) (*Media, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := record.Clone()
	m.records[cloned.ID] = &cloned
	out := cloned.Clone()
	return &out, nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Media, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "media", Key: id.String()}
	}
	out := record.Clone()
	return &out, nil
}

func (m *memoryRepository) List(_ context.Context, mimePrefix string) ([]*Media, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Media, 0, len(m.records))
	for _, record := range m.records {
		if mimePrefix != "" && !strings.HasPrefix(record.MimeType, mimePrefix) {
			continue
		}
		cloned := record.Clone()
		out = append(out, &cloned)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &NotFoundError{Resource: "media", Key: id.String()}
	}
	delete(m.records, id)
	return nil
}
