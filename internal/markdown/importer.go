package markdown

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-newsroom/internal/articles"
	"github.com/goliatone/go-newsroom/internal/blocks"
	"github.com/goliatone/go-newsroom/internal/domain"
	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/internal/taxonomy"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

var (
	ErrTitleMissing  = errors.New("markdown importer: frontmatter title is required")
	ErrStatusUnknown = errors.New("markdown importer: unknown status in frontmatter")
)

// ImporterConfig carries the services an Importer writes through.
type ImporterConfig struct {
	Articles articles.Service
	Taxonomy taxonomy.Service
	Blocks   blocks.Repository
	Logger   interfaces.Logger
}

// Importer converts Markdown documents into persisted articles with block
// content, taxonomy links included.
type Importer struct {
	articles articles.Service
	taxonomy taxonomy.Service
	blocks   blocks.Repository
	logger   interfaces.Logger
}

// NewImporter builds an Importer from the supplied configuration.
func NewImporter(cfg ImporterConfig) *Importer {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Importer{
		articles: cfg.Articles,
		taxonomy: cfg.Taxonomy,
		blocks:   cfg.Blocks,
		logger:   logger,
	}
}

// ImportResult reports what a single document import produced.
type ImportResult struct {
	Article *articles.Article
	Blocks  []blocks.Block
}

// Import parses one document and persists it as an article owned by authorID.
// Draft frontmatter wins over an explicit published status.
func (i *Importer) Import(ctx context.Context, source []byte, authorID uuid.UUID) (*ImportResult, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		return nil, ErrTitleMissing
	}

	status, ok := domain.ParseStatus(meta.Status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStatusUnknown, meta.Status)
	}
	if meta.Draft {
		status = domain.StatusDraft
	}

	article, err := i.articles.Upsert(ctx, articles.UpsertInput{
		Title:       title,
		Slug:        meta.Slug,
		Description: meta.Description,
		Status:      status,
		AuthorID:    authorID,
		Keywords:    meta.Keywords,
	})
	if err != nil {
		return nil, err
	}

	content := BlocksFromMarkdown(body)
	for idx := range content {
		content[idx].ArticleID = article.ID
	}
	saved, err := i.blocks.ReplaceForArticle(ctx, article.ID, content)
	if err != nil {
		return nil, err
	}

	if i.taxonomy != nil {
		if len(meta.Categories) > 0 {
			if _, err := i.taxonomy.SetArticleCategories(ctx, article.ID, meta.Categories); err != nil {
				return nil, err
			}
		}
		if len(meta.Tags) > 0 {
			if _, err := i.taxonomy.SetArticleTags(ctx, article.ID, meta.Tags); err != nil {
				return nil, err
			}
		}
	}

	i.logger.Info("markdown import",
		"article_id", article.ID,
		"slug", article.Slug,
		"blocks", len(saved),
	)
	return &ImportResult{Article: article, Blocks: saved}, nil
}
