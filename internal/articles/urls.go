package articles

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// URLBuilderOptions configures the go-urlkit backed article URL builder.
type URLBuilderOptions struct {
	Manager      *urlkit.RouteManager
	Group        string
	ArticleRoute string
	PreviewRoute string
	SlugParam    string
}

// URLBuilder resolves canonical and preview URLs for articles through a
// go-urlkit route manager supplied by the host.
type URLBuilder struct {
	manager      *urlkit.RouteManager
	group        string
	articleRoute string
	previewRoute string
	slugParam    string
}

// NewURLBuilder constructs a builder, filling in route defaults.
func NewURLBuilder(opts URLBuilderOptions) *URLBuilder {
	if opts.Group == "" {
		opts.Group = "site"
	}
	if opts.ArticleRoute == "" {
		opts.ArticleRoute = "article"
	}
	if opts.PreviewRoute == "" {
		opts.PreviewRoute = "article_preview"
	}
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}
	return &URLBuilder{
		manager:      opts.Manager,
		group:        strings.TrimSpace(opts.Group),
		articleRoute: strings.TrimSpace(opts.ArticleRoute),
		previewRoute: strings.TrimSpace(opts.PreviewRoute),
		slugParam:    opts.SlugParam,
	}
}

// Canonical builds the public reader URL for an article.
func (b *URLBuilder) Canonical(article *Article) (string, error) {
	return b.build(b.articleRoute, article, nil)
}

// Preview builds the draft preview URL for an article.
func (b *URLBuilder) Preview(article *Article) (string, error) {
	return b.build(b.previewRoute, article, map[string]string{"preview": "1"})
}

func (b *URLBuilder) build(route string, article *Article, query map[string]string) (string, error) {
	if b == nil || b.manager == nil || article == nil {
		return "", nil
	}

	group, err := lookupGroup(b.manager, b.group)
	if err != nil || group == nil {
		return "", err
	}

	builder, err := safeBuilder(group, route)
	if err != nil {
		return "", err
	}

	builder.WithParam(b.slugParam, article.Slug)
	for key, value := range query {
		builder.WithQuery(key, value)
	}
	return builder.Build()
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("articles: urlkit group %q: %v", name, rec)
		}
	}()
	group = manager.Group(name)
	return group, nil
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("articles: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, nil
}
