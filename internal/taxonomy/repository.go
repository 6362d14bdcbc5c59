package taxonomy

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Repository persists categories, tags, and their article links.
type Repository interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	FindCategoryByName(ctx context.Context, name string) (*Category, error)
	CreateCategory(ctx context.Context, category *Category) (*Category, error)

	ListTags(ctx context.Context) ([]*Tag, error)
	FindTagByName(ctx context.Context, name string) (*Tag, error)
	CreateTag(ctx context.Context, tag *Tag) (*Tag, error)

	ReplaceArticleCategories(ctx context.Context, articleID uuid.UUID, categoryIDs []uuid.UUID) error
	ReplaceArticleTags(ctx context.Context, articleID uuid.UUID, tagIDs []uuid.UUID) error
	CategoriesForArticle(ctx context.Context, articleID uuid.UUID) ([]*Category, error)
	TagsForArticle(ctx context.Context, articleID uuid.UUID) ([]*Tag, error)
}

// NotFoundError reports a missing taxonomy record by lookup key.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}
