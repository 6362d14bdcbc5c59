package articles

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-newsroom/internal/domain"
	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
	"github.com/google/uuid"
)

var (
	ErrTitleRequired  = errors.New("articles: title required")
	ErrAuthorRequired = errors.New("articles: author required")
	ErrStatusInvalid  = errors.New("articles: unknown status")
)

// Service owns article lifecycle rules: slug derivation while the slug is
// empty, and the one-way published_at transition.
type Service interface {
	Get(ctx context.Context, slugOrID string) (*Article, error)
	List(ctx context.Context) ([]*Article, error)
	Upsert(ctx context.Context, input UpsertInput) (*Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UpsertInput carries article fields for create or update. A nil ID creates.
type UpsertInput struct {
	ID            *uuid.UUID
	Title         string
	Slug          string
	Description   string
	Status        domain.Status
	FeaturedImage *string
	AuthorID      uuid.UUID
	Keywords      []string
}

type IDGenerator func() uuid.UUID

// ServiceOption customises service construction.
type ServiceOption func(*service)

func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
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
	id     IDGenerator
	logger interfaces.Logger
}

// NewService constructs the article service.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get resolves an article by slug first, falling back to id when the value
// parses as a UUID.
func (s *service) Get(ctx context.Context, slugOrID string) (*Article, error) {
	key := strings.TrimSpace(slugOrID)
	record, err := s.repo.GetBySlug(ctx, key)
	if err == nil {
		return record, nil
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		return nil, err
	}
	id, parseErr := uuid.Parse(key)
	if parseErr != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Article, error) {
	return s.repo.List(ctx)
}

func (s *service) Upsert(ctx context.Context, input UpsertInput) (*Article, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if input.AuthorID == uuid.Nil {
		return nil, ErrAuthorRequired
	}
	status := input.Status
	if status == "" {
		status = domain.StatusDraft
	}
	if !status.IsValid() {
		return nil, ErrStatusInvalid
	}

	now := s.now()

	if input.ID == nil {
		return s.createWithID(ctx, s.id(), title, status, input, now)
	}

	existing, err := s.repo.GetByID(ctx, *input.ID)
	if err != nil {
		// A caller-supplied id with no record behind it is a create: the
		// editor mints ids client-side before the first save.
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return s.createWithID(ctx, *input.ID, title, status, input, now)
		}
		return nil, err
	}

	updated := existing.Clone()
	updated.Title = title
	updated.Description = input.Description
	updated.Status = status
	updated.FeaturedImage = input.FeaturedImage
	updated.AuthorID = input.AuthorID
	updated.Keywords = append([]string(nil), input.Keywords...)
	updated.UpdatedAt = now

	// Slug auto-derivation only runs while the slug is still empty. Manual
	// edits stick and are not re-validated.
	slugValue := strings.TrimSpace(input.Slug)
	switch {
	case slugValue != "":
		updated.Slug = slugValue
	case updated.Slug == "":
		updated.Slug = DeriveSlug(title)
	}

	// published_at is set the moment status flips to published and never
	// cleared automatically afterward.
	if status == domain.StatusPublished && existing.PublishedAt == nil {
		published := now
		updated.PublishedAt = &published
	}

	s.logger.Debug("article.update", "article_id", updated.ID, "status", string(updated.Status))
	return s.repo.Update(ctx, &updated)
}

func (s *service) createWithID(ctx context.Context, id uuid.UUID, title string, status domain.Status, input UpsertInput, now time.Time) (*Article, error) {
	article := &Article{
		ID:            id,
		Title:         title,
		Slug:          strings.TrimSpace(input.Slug),
		Description:   input.Description,
		Status:        status,
		FeaturedImage: input.FeaturedImage,
		AuthorID:      input.AuthorID,
		Keywords:      append([]string(nil), input.Keywords...),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if article.Slug == "" {
		article.Slug = DeriveSlug(title)
	}
	if status == domain.StatusPublished {
		published := now
		article.PublishedAt = &published
	}
	s.logger.Debug("article.create", "article_id", article.ID, "slug", article.Slug)
	return s.repo.Create(ctx, article)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
