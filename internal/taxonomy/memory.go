package taxonomy

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryRepository constructs an "in memory" taxonomy repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		categories:        make(map[uuid.UUID]*Category),
		tags:              make(map[uuid.UUID]*Tag),
		articleCategories: make(map[uuid.UUID][]uuid.UUID),
		articleTags:       make(map[uuid.UUID][]uuid.UUID),
	}
}

type memoryRepository struct {
	mu                sync.RWMutex
	categories        map[uuid.UUID]*Category
	tags              map[uuid.UUID]*Tag
	articleCategories map[uuid.UUID][]uuid.UUID
	articleTags       map[uuid.UUID][]uuid.UUID
}

func (m *memoryRepository) ListCategories(_ context.Context) ([]*Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Category, 0, len(m.categories))
	for _, record := range m.categories {
		cloned := *record
		out = append(out, &cloned)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memoryRepository) FindCategoryByName(_ context.Context, name string) (*Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(name))
	for _, record := range m.categories {
		if strings.ToLower(record.Name) == needle {
			cloned := *record
			return &cloned, nil
		}
	}
	return nil, &NotFoundError{Resource: "category", Key: name}
}

func (m *memoryRepository) CreateCategory(_ context.Context, category *Category) (*Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := *category
	m.categories[cloned.ID] = &cloned
	out := cloned
	return &out, nil
}

func (m *memoryRepository) ListTags(_ context.Context) ([]*Tag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Tag, 0, len(m.tags))
	for _, record := range m.tags {
		cloned := *record
		out = append(out, &cloned)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memoryRepository) FindTagByName(_ context.Context, name string) (*Tag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(name))
	for _, record := range m.tags {
		if strings.ToLower(record.Name) == needle {
			cloned := *record
			return &cloned, nil
		}
	}
	return nil, &NotFoundError{Resource: "tag", Key: name}
}

func (m *memoryRepository) CreateTag(_ context.Context, tag *Tag) (*Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := *tag
	m.tags[cloned.ID] = &cloned
	out := cloned
	return &out, nil
}

func (m *memoryRepository) ReplaceArticleCategories(_ context.Context, articleID uuid.UUID, categoryIDs []uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.articleCategories[articleID] = append([]uuid.UUID(nil), categoryIDs...)
	return nil
}

func (m *memoryRepository) ReplaceArticleTags(_ context.Context, articleID uuid.UUID, tagIDs []uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.articleTags[articleID] = append([]uuid.UUID(nil), tagIDs...)
	return nil
}

func (m *memoryRepository) CategoriesForArticle(_ context.Context, articleID uuid.UUID) ([]*Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := m.articleCategories[articleID]
	out := make([]*Category, 0, len(ids))
	for _, id := range ids {
		if record, ok := m.categories[id]; ok {
			cloned := *record
			out = append(out, &cloned)
		}
	}
	return out, nil
}

func (m *memoryRepository) TagsForArticle(_ context.Context, articleID uuid.UUID) ([]*Tag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := m.articleTags[articleID]
	out := make([]*Tag, 0, len(ids))
	for _, id := range ids {
		if record, ok := m.tags[id]; ok {
			cloned := *record
			out = append(out, &cloned)
		}
	}
	return out, nil
}
