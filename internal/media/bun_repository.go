package media

import (
	"context"
	"fmt"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepository implements Repository on bun.
type BunRepository struct {
	repo repository.Repository[*Media]
}

// NewBunRepository creates a media repository.
func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{
		repo: repository.MustNewRepository(db, repository.ModelHandlers[*Media]{
			NewRecord:          func() *Media { return &Media{} },
			GetID:              func(m *Media) uuid.UUID { return m.ID },
			SetID:              func(m *Media, id uuid.UUID) { m.ID = id },
			GetIdentifier:      func() string { return "path" },
			GetIdentifierValue: func(m *Media) string { return m.Path },
		}),
	}
}

func (r *BunRepository) Create(ctx context.Context, record *Media) (*Media, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("media repository error: %w", err)
	}
	return created, nil
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Media, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return nil, &NotFoundError{Resource: "media", Key: id.String()}
		}
		return nil, fmt.Errorf("media repository error: %w", err)
	}
	return record, nil
}

func (r *BunRepository) List(ctx context.Context, mimePrefix string) ([]*Media, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			if mimePrefix != "" {
				q = q.Where("?TableAlias.mime_type LIKE ?", mimePrefix+"%")
			}
			return q.Order("created_at DESC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("media repository error: %w", err)
	}
	return records, nil
}

func (r *BunRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, &Media{ID: id}); err != nil {
		if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return &NotFoundError{Resource: "media", Key: id.String()}
		}
		return fmt.Errorf("media repository error: %w", err)
	}
	return nil
}
