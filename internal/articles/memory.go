package articles

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryRepository constructs an "in memory" article repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:   make(map[uuid.UUID]*Article),
		bySlug: make(map[string]uuid.UUID),
	}
}

type memoryRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*Article
	bySlug map[string]uuid.UUID
}

func (m *memoryRepository) Create(_ context.Context, article *Article) (*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := article.Clone()
	m.byID[cloned.ID] = &cloned
	if cloned.Slug != "" {
		m.bySlug[cloned.Slug] = cloned.ID
	}
	out := cloned.Clone()
	return &out, nil
}

func (m *memoryRepository) Update(_ context.Context, article *Article) (*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.byID[article.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "article", Key: article.ID.String()}
	}
	if existing.Slug != "" && existing.Slug != article.Slug {
		delete(m.bySlug, existing.Slug)
	}

	cloned := article.Clone()
	m.byID[cloned.ID] = &cloned
	if cloned.Slug != "" {
		m.bySlug[cloned.Slug] = cloned.ID
	}
	out := cloned.Clone()
	return &out, nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "article", Key: id.String()}
	}
	out := record.Clone()
	return &out, nil
}

func (m *memoryRepository) GetBySlug(_ context.Context, slug string) (*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.bySlug[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "article", Key: slug}
	}
	out := m.byID[id].Clone()
	return &out, nil
}

func (m *memoryRepository) List(_ context.Context) ([]*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Article, 0, len(m.byID))
	for _, record := range m.byID {
		cloned := record.Clone()
		out = append(out, &cloned)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.byID[id]
	if !ok {
		return &NotFoundError{Resource: "article", Key: id.String()}
	}
	delete(m.byID, id)
	if record.Slug != "" {
		delete(m.bySlug, record.Slug)
	}
	return nil
}
