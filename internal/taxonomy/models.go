package taxonomy

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Category is a curated grouping for articles.
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:c"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Slug      string    `bun:"slug,notnull,unique" json:"slug"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// Tag is a free-form label for articles.
type Tag struct {
	bun.BaseModel `bun:"table:tags,alias:t"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Slug      string    `bun:"slug,notnull,unique" json:"slug"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// ArticleCategory links an article to a category.
type ArticleCategory struct {
	bun.BaseModel `bun:"table:article_categories,alias:ac"`

	ArticleID  uuid.UUID `bun:"article_id,pk,type:uuid" json:"article_id"`
	CategoryID uuid.UUID `bun:"category_id,pk,type:uuid" json:"category_id"`
}

// ArticleTag links an article to a tag.
type ArticleTag struct {
	bun.BaseModel `bun:"table:article_tags,alias:at"`

	ArticleID uuid.UUID `bun:"article_id,pk,type:uuid" json:"article_id"`
	TagID     uuid.UUID `bun:"tag_id,pk,type:uuid" json:"tag_id"`
}
