package blocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryRepository constructs an "in memory" block repository. The
// replace-all swap happens atomically under the repository mutex.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byArticle: make(map[uuid.UUID][]Block),
	}
}

type memoryRepository struct {
	mu        sync.RWMutex
	byArticle map[uuid.UUID][]Block
}

func (m *memoryRepository) ListForArticle(_ context.Context, articleID uuid.UUID) ([]Block, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return CloneList(m.byArticle[articleID]), nil
}

func (m *memoryRepository) ReplaceForArticle(_ context.Context, articleID uuid.UUID, list []Block) ([]Block, error) {
	persisted := AssignDurableIDs(articleID, list)

	m.mu.Lock()
	m.byArticle[articleID] = CloneList(persisted)
	m.mu.Unlock()

	return persisted, nil
}

func (m *memoryRepository) DeleteForArticle(_ context.Context, articleID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.byArticle, articleID)
	return nil
}
