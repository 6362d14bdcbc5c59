// Package memblob provides an in-memory BlobStore for tests and local
// development.
package memblob

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

// Store keeps uploaded objects in a map. Zero value is not usable; call New.
type Store struct {
	mu      sync.RWMutex
	objects map[string]object
	baseURL string
}

type object struct {
	contentType string
	data        []byte
}

// Option customises the store.
type Option func(*Store)

// WithBaseURL overrides the URL prefix returned for uploads.
func WithBaseURL(base string) Option {
	return func(s *Store) {
		if base != "" {
			s.baseURL = base
		}
	}
}

// New constructs an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		objects: make(map[string]object),
		baseURL: "memblob://",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Upload(_ context.Context, upload interfaces.BlobUpload) (string, error) {
	if upload.Path == "" {
		return "", fmt.Errorf("memblob: empty path")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[upload.Path] = object{
		contentType: upload.ContentType,
		data:        append([]byte(nil), upload.Data...),
	}
	return s.baseURL + upload.Path, nil
}

func (s *Store) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[path]; !ok {
		return fmt.Errorf("memblob: object %q not found", path)
	}
	delete(s.objects, path)
	return nil
}

// Get returns the stored bytes for a path, for test assertions.
func (s *Store) Get(path string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[path]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), obj.data...), true
}

// Len reports the number of stored objects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

var _ interfaces.BlobStore = (*Store)(nil)
