package articles

import (
	"time"

	"github.com/goliatone/go-newsroom/internal/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Article is the editorial aggregate root. Blocks live in their own table
// keyed by article id; keywords ride along as an ordered JSON list.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:a"`

	ID            uuid.UUID     `bun:",pk,type:uuid" json:"id"`
	Title         string        `bun:"title,notnull" json:"title"`
	Slug          string        `bun:"slug,notnull" json:"slug"`
	Description   string        `bun:"description" json:"description,omitempty"`
	Status        domain.Status `bun:"status,notnull,default:'draft'" json:"status"`
	FeaturedImage *string       `bun:"featured_image" json:"featured_image,omitempty"`
	AuthorID      uuid.UUID     `bun:"author_id,notnull,type:uuid" json:"author_id"`
	Keywords      []string      `bun:"keywords,type:jsonb" json:"keywords,omitempty"`
	CreatedAt     time.Time     `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time     `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
	PublishedAt   *time.Time    `bun:"published_at,nullzero" json:"published_at,omitempty"`
}

// Clone deep-copies the article.
func (a Article) Clone() Article {
	clone := a
	clone.Keywords = append([]string(nil), a.Keywords...)
	if a.FeaturedImage != nil {
		image := *a.FeaturedImage
		clone.FeaturedImage = &image
	}
	if a.PublishedAt != nil {
		published := *a.PublishedAt
		clone.PublishedAt = &published
	}
	return clone
}
