package interfaces

import "context"

// BlobUpload carries the bytes and metadata for a single object upload.
type BlobUpload struct {
	Path        string
	ContentType string
	Data        []byte
}

// BlobStore abstracts the object storage backing the media library. Upload
// returns the public URL of the stored object.
type BlobStore interface {
	Upload(ctx context.Context, upload BlobUpload) (string, error)
	Delete(ctx context.Context, path string) error
}
