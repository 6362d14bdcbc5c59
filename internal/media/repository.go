package media

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Repository persists media records.
type Repository interface {
	Create(ctx context.Context, record *Media) (*Media, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Media, error)
	List(ctx context.Context, mimePrefix string) ([]*Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotFoundError reports a missing media record.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}
