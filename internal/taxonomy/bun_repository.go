package taxonomy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepository implements Repository on bun with optional caching for the
// term tables. Link replacement runs delete-then-insert inside a single
// transaction.
type BunRepository struct {
	db         *bun.DB
	categories repository.Repository[*Category]
	tags       repository.Repository[*Tag]
}

// NewBunRepository creates a taxonomy repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache creates a taxonomy repository with caching services.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	categories := repository.MustNewRepository(db, repository.ModelHandlers[*Category]{
		NewRecord:          func() *Category { return &Category{} },
		GetID:              func(c *Category) uuid.UUID { return c.ID },
		SetID:              func(c *Category, id uuid.UUID) { c.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(c *Category) string { return c.Slug },
	})
	tags := repository.MustNewRepository(db, repository.ModelHandlers[*Tag]{
		NewRecord:          func() *Tag { return &Tag{} },
		GetID:              func(t *Tag) uuid.UUID { return t.ID },
		SetID:              func(t *Tag, id uuid.UUID) { t.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(t *Tag) string { return t.Slug },
	})
	if cacheService != nil && serializer != nil {
		categories = repositorycache.New(categories, cacheService, serializer)
		tags = repositorycache.New(tags, cacheService, serializer)
	}
	return &BunRepository{db: db, categories: categories, tags: tags}
}

func (r *BunRepository) ListCategories(ctx context.Context) ([]*Category, error) {
	records, _, err := r.categories.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("name ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("taxonomy repository error: %w", err)
	}
	return records, nil
}

func (r *BunRepository) FindCategoryByName(ctx context.Context, name string) (*Category, error) {
	records, _, err := r.categories.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("lower(?TableAlias.name) = lower(?)", name)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "category", name)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "category", Key: name}
	}
	return records[0], nil
}

func (r *BunRepository) CreateCategory(ctx context.Context, category *Category) (*Category, error) {
	record, err := r.categories.Create(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("taxonomy repository error: %w", err)
	}
	return record, nil
}

func (r *BunRepository) ListTags(ctx context.Context) ([]*Tag, error) {
	records, _, err := r.tags.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("name ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("taxonomy repository error: %w", err)
	}
	return records, nil
}

func (r *BunRepository) FindTagByName(ctx context.Context, name string) (*Tag, error) {
	records, _, err := r.tags.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("lower(?TableAlias.name) = lower(?)", name)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "tag", name)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "tag", Key: name}
	}
	return records[0], nil
}

func (r *BunRepository) CreateTag(ctx context.Context, tag *Tag) (*Tag, error) {
	record, err := r.tags.Create(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("taxonomy repository error: %w", err)
	}
	return record, nil
}

func (r *BunRepository) ReplaceArticleCategories(ctx context.Context, articleID uuid.UUID, categoryIDs []uuid.UUID) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*ArticleCategory)(nil)).
			Where("article_id = ?", articleID).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete article categories: %w", err)
		}
		if len(categoryIDs) == 0 {
			return nil
		}
		links := make([]*ArticleCategory, 0, len(categoryIDs))
		for _, id := range categoryIDs {
			links = append(links, &ArticleCategory{ArticleID: articleID, CategoryID: id})
		}
		if _, err := tx.NewInsert().Model(&links).Exec(ctx); err != nil {
			return fmt.Errorf("insert article categories: %w", err)
		}
		return nil
	})
}

func (r *BunRepository) ReplaceArticleTags(ctx context.Context, articleID uuid.UUID, tagIDs []uuid.UUID) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*ArticleTag)(nil)).
			Where("article_id = ?", articleID).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete article tags: %w", err)
		}
		if len(tagIDs) == 0 {
			return nil
		}
		links := make([]*ArticleTag, 0, len(tagIDs))
		for _, id := range tagIDs {
			links = append(links, &ArticleTag{ArticleID: articleID, TagID: id})
		}
		if _, err := tx.NewInsert().Model(&links).Exec(ctx); err != nil {
			return fmt.Errorf("insert article tags: %w", err)
		}
		return nil
	})
}

func (r *BunRepository) CategoriesForArticle(ctx context.Context, articleID uuid.UUID) ([]*Category, error) {
	var records []*Category
	err := r.db.NewSelect().
		Model(&records).
		Join("JOIN article_categories AS ac ON ac.category_id = c.id").
		Where("ac.article_id = ?", articleID).
		Order("c.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("taxonomy repository error: %w", err)
	}
	return records, nil
}

func (r *BunRepository) TagsForArticle(ctx context.Context, articleID uuid.UUID) ([]*Tag, error) {
	var records []*Tag
	err := r.db.NewSelect().
		Model(&records).
		Join("JOIN article_tags AS at ON at.tag_id = t.id").
		Where("at.article_id = ?", articleID).
		Order("t.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("taxonomy repository error: %w", err)
	}
	return records, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
