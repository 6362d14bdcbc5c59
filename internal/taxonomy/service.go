package taxonomy

import (
	"context"
	"errors"
	"strings"
	"time"

	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-newsroom/internal/identity"
	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
	"github.com/google/uuid"
)

var ErrNameRequired = errors.New("taxonomy: name required")

// Service exposes ensure-on-demand taxonomy terms and replace-all article
// links. Ensure* matches an existing term case-insensitively before creating
// a new one, so "Tech" and "tech" resolve to the same record.
type Service interface {
	EnsureCategory(ctx context.Context, name string) (*Category, error)
	EnsureTag(ctx context.Context, name string) (*Tag, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	ListTags(ctx context.Context) ([]*Tag, error)
	SetArticleCategories(ctx context.Context, articleID uuid.UUID, names []string) ([]*Category, error)
	SetArticleTags(ctx context.Context, articleID uuid.UUID, names []string) ([]*Tag, error)
	CategoriesForArticle(ctx context.Context, articleID uuid.UUID) ([]*Category, error)
	TagsForArticle(ctx context.Context, articleID uuid.UUID) ([]*Tag, error)
}

// ServiceOption customises service construction.
type ServiceOption func(*service)

func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger interfaces.Logger
}

// NewService constructs the taxonomy service.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) EnsureCategory(ctx context.Context, name string) (*Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrNameRequired
	}

	existing, err := s.repo.FindCategoryByName(ctx, trimmed)
	if err == nil {
		return existing, nil
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		return nil, err
	}

	now := s.now()
	category := &Category{
		ID:        identity.CategoryUUID(trimmed),
		Name:      trimmed,
		Slug:      normalizeTerm(trimmed),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.logger.Debug("taxonomy.category.create", "name", trimmed, "category_id", category.ID)
	return s.repo.CreateCategory(ctx, category)
}

func (s *service) EnsureTag(ctx context.Context, name string) (*Tag, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrNameRequired
	}

	existing, err := s.repo.FindTagByName(ctx, trimmed)
	if err == nil {
		return existing, nil
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		return nil, err
	}

	now := s.now()
	tag := &Tag{
		ID:        identity.TagUUID(trimmed),
		Name:      trimmed,
		Slug:      normalizeTerm(trimmed),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.logger.Debug("taxonomy.tag.create", "name", trimmed, "tag_id", tag.ID)
	return s.repo.CreateTag(ctx, tag)
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) ListTags(ctx context.Context) ([]*Tag, error) {
	return s.repo.ListTags(ctx)
}

// SetArticleCategories ensures each named category exists and replaces the
// article's category links with exactly that set.
func (s *service) SetArticleCategories(ctx context.Context, articleID uuid.UUID, names []string) ([]*Category, error) {
	categories := make([]*Category, 0, len(names))
	ids := make([]uuid.UUID, 0, len(names))
	seen := make(map[uuid.UUID]struct{}, len(names))

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		category, err := s.EnsureCategory(ctx, name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[category.ID]; dup {
			continue
		}
		seen[category.ID] = struct{}{}
		categories = append(categories, category)
		ids = append(ids, category.ID)
	}

	if err := s.repo.ReplaceArticleCategories(ctx, articleID, ids); err != nil {
		return nil, err
	}
	return categories, nil
}

// SetArticleTags ensures each named tag exists and replaces the article's
// tag links with exactly that set.
func (s *service) SetArticleTags(ctx context.Context, articleID uuid.UUID, names []string) ([]*Tag, error) {
	tags := make([]*Tag, 0, len(names))
	ids := make([]uuid.UUID, 0, len(names))
	seen := make(map[uuid.UUID]struct{}, len(names))

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		tag, err := s.EnsureTag(ctx, name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[tag.ID]; dup {
			continue
		}
		seen[tag.ID] = struct{}{}
		tags = append(tags, tag)
		ids = append(ids, tag.ID)
	}

	if err := s.repo.ReplaceArticleTags(ctx, articleID, ids); err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *service) CategoriesForArticle(ctx context.Context, articleID uuid.UUID) ([]*Category, error) {
	return s.repo.CategoriesForArticle(ctx, articleID)
}

func (s *service) TagsForArticle(ctx context.Context, articleID uuid.UUID) ([]*Tag, error) {
	return s.repo.TagsForArticle(ctx, articleID)
}

func normalizeTerm(name string) string {
	normalized, err := slug.Normalize(name)
	if err != nil || normalized == "" {
		return strings.ToLower(strings.TrimSpace(name))
	}
	return normalized
}
