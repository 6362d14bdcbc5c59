package media

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Media is a stored asset in the media library. URL points at the blob
// store object; Path is the storage key used for deletion.
type Media struct {
	bun.BaseModel `bun:"table:media,alias:m"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	FileName  string    `bun:"file_name,notnull" json:"file_name"`
	Path      string    `bun:"path,notnull" json:"path"`
	URL       string    `bun:"url,notnull" json:"url"`
	MimeType  string    `bun:"mime_type,notnull" json:"mime_type"`
	Size      int64     `bun:"size,notnull" json:"size"`
	AltText   *string   `bun:"alt_text" json:"alt_text,omitempty"`
	Caption   *string   `bun:"caption" json:"caption,omitempty"`
	UserID    uuid.UUID `bun:"user_id,type:uuid,nullzero" json:"user_id,omitempty"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// Clone returns a copy of the record with its own metadata pointers.
func (m Media) Clone() Media {
	out := m
	if m.AltText != nil {
		alt := *m.AltText
		out.AltText = &alt
	}
	if m.Caption != nil {
		caption := *m.Caption
		out.Caption = &caption
	}
	return out
}
