package media

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/goliatone/go-newsroom/internal/adapters/memblob"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
	"github.com/google/uuid"
)

func TestUploadStoresBlobThenRecord(t *testing.T) {
	store := memblob.New()
	svc := NewService(NewMemoryRepository(), store)

	record, err := svc.Upload(context.Background(), UploadInput{
		FileName: "Photo.PNG",
		MimeType: "image/png",
		Data:     []byte{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if record.Size != 3 {
		t.Fatalf("expected size 3, got %d", record.Size)
	}
	if record.Path != "media/"+record.ID.String()+".png" {
		t.Fatalf("unexpected storage path %q", record.Path)
	}
	if record.URL == "" {
		t.Fatal("expected blob URL on record")
	}
	if _, ok := store.Get(record.Path); !ok {
		t.Fatal("blob bytes missing from store")
	}
}

func TestUploadCarriesMetadata(t *testing.T) {
	svc := NewService(NewMemoryRepository(), memblob.New())

	alt := "Press briefing room"
	caption := "Before the morning briefing"
	userID := uuid.New()
	record, err := svc.Upload(context.Background(), UploadInput{
		FileName: "briefing.jpg",
		MimeType: "image/jpeg",
		Data:     []byte{1, 2},
		AltText:  &alt,
		Caption:  &caption,
		UserID:   userID,
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if record.AltText == nil || *record.AltText != alt {
		t.Fatalf("alt text not carried: %+v", record.AltText)
	}
	if record.Caption == nil || *record.Caption != caption {
		t.Fatalf("caption not carried: %+v", record.Caption)
	}
	if record.UserID != userID {
		t.Fatalf("user id not carried: %s", record.UserID)
	}
	if record.UpdatedAt != record.CreatedAt {
		t.Fatal("fresh upload should stamp updated_at alongside created_at")
	}
}

func TestUploadValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository(), memblob.New())

	if _, err := svc.Upload(context.Background(), UploadInput{MimeType: "image/png", Data: []byte{1}}); !errors.Is(err, ErrFileNameRequired) {
		t.Fatalf("expected ErrFileNameRequired, got %v", err)
	}
	if _, err := svc.Upload(context.Background(), UploadInput{FileName: "a.png"}); !errors.Is(err, ErrEmptyUpload) {
		t.Fatalf("expected ErrEmptyUpload, got %v", err)
	}
}

func TestListFiltersByMimePrefix(t *testing.T) {
	svc := NewService(NewMemoryRepository(), memblob.New())

	uploads := []UploadInput{
		{FileName: "a.png", MimeType: "image/png", Data: []byte{1}},
		{FileName: "b.jpg", MimeType: "image/jpeg", Data: []byte{1}},
		{FileName: "c.mp4", MimeType: "video/mp4", Data: []byte{1}},
	}
	for _, u := range uploads {
		if _, err := svc.Upload(context.Background(), u); err != nil {
			t.Fatalf("upload %s: %v", u.FileName, err)
		}
	}

	images, err := svc.List(context.Background(), "image/")
	if err != nil {
		t.Fatalf("list images: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(images))
	}

	all, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
}

func TestDeleteRemovesBlobAndRecord(t *testing.T) {
	store := memblob.New()
	svc := NewService(NewMemoryRepository(), store)

	record, err := svc.Upload(context.Background(), UploadInput{
		FileName: "a.png", MimeType: "image/png", Data: []byte{1},
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if err := svc.Delete(context.Background(), record.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if store.Len() != 0 {
		t.Fatal("blob should be removed")
	}
	if _, err := svc.Get(context.Background(), record.ID); err == nil {
		t.Fatal("record should be gone")
	}
}

type failingBlobStore struct {
	inner interfaces.BlobStore
}

func (f *failingBlobStore) Upload(ctx context.Context, upload interfaces.BlobUpload) (string, error) {
	return f.inner.Upload(ctx, upload)
}

func (f *failingBlobStore) Delete(context.Context, string) error {
	return fmt.Errorf("storage offline")
}

func TestDeleteTolerantOfBlobFailure(t *testing.T) {
	store := &failingBlobStore{inner: memblob.New()}
	svc := NewService(NewMemoryRepository(), store)

	record, err := svc.Upload(context.Background(), UploadInput{
		FileName: "a.png", MimeType: "image/png", Data: []byte{1},
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	// Blob delete failing must not block record removal.
	if err := svc.Delete(context.Background(), record.ID); err != nil {
		t.Fatalf("delete should succeed despite blob failure: %v", err)
	}
	if _, err := svc.Get(context.Background(), record.ID); err == nil {
		t.Fatal("record should be gone after tolerant delete")
	}
}

func TestDeleteMissingRecord(t *testing.T) {
	svc := NewService(NewMemoryRepository(), memblob.New())

	var nf *NotFoundError
	err := svc.Delete(context.Background(), uuid.New())
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
