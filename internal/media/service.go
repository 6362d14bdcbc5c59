package media

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
	"github.com/google/uuid"
)

var (
	ErrFileNameRequired = errors.New("media: file name required")
	ErrEmptyUpload      = errors.New("media: empty upload")
)

// Service manages the media library on top of a blob store.
type Service interface {
	Upload(ctx context.Context, input UploadInput) (*Media, error)
	Get(ctx context.Context, id uuid.UUID) (*Media, error)
	List(ctx context.Context, mimePrefix string) ([]*Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UploadInput carries a file destined for the blob store. AltText and
// Caption are optional accessibility metadata; UserID records who uploaded
// the asset when the host supplies it.
type UploadInput struct {
	FileName string
	MimeType string
	Data     []byte
	AltText  *string
	Caption  *string
	UserID   uuid.UUID
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

func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
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
	blobs  interfaces.BlobStore
	now    func() time.Time
	id     func() uuid.UUID
	logger interfaces.Logger
}

// NewService constructs the media service.
func NewService(repo Repository, blobs interfaces.BlobStore, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		blobs:  blobs,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upload stores the bytes in the blob store first, then records the asset.
// Objects are keyed media/<id><ext> so renames never collide.
func (s *service) Upload(ctx context.Context, input UploadInput) (*Media, error) {
	fileName := strings.TrimSpace(input.FileName)
	if fileName == "" {
		return nil, ErrFileNameRequired
	}
	if len(input.Data) == 0 {
		return nil, ErrEmptyUpload
	}

	id := s.id()
	storagePath := "media/" + id.String() + strings.ToLower(path.Ext(fileName))

	url, err := s.blobs.Upload(ctx, interfaces.BlobUpload{
		Path:        storagePath,
		ContentType: input.MimeType,
		Data:        input.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("media: upload blob: %w", err)
	}

	now := s.now()
	record := &Media{
		ID:        id,
		FileName:  fileName,
		Path:      storagePath,
		URL:       url,
		MimeType:  input.MimeType,
		Size:      int64(len(input.Data)),
		AltText:   input.AltText,
		Caption:   input.Caption,
		UserID:    input.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("media.upload", "media_id", id, "path", storagePath, "size", record.Size)
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Media, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, mimePrefix string) ([]*Media, error) {
	return s.repo.List(ctx, mimePrefix)
}

// Delete removes the record even when the blob delete fails. A dangling
// object is recoverable by a storage sweep; a dangling record is what users
// see in the library.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.blobs.Delete(ctx, record.Path); err != nil {
		s.logger.Warn("media.delete blob removal failed", "media_id", id, "path", record.Path, "error", err)
	}

	return s.repo.Delete(ctx, id)
}
