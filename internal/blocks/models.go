package blocks

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Record is the persisted row shape for one block. Nested block collections
// travel inside the JSON payload, mirroring the in-memory tree.
type Record struct {
	bun.BaseModel `bun:"table:article_blocks,alias:ab"`

	ID        uuid.UUID       `bun:",pk,type:uuid" json:"id"`
	ArticleID uuid.UUID       `bun:"article_id,notnull,type:uuid" json:"article_id"`
	Type      string          `bun:"type,notnull" json:"type"`
	Position  int             `bun:"position,notnull,default:0" json:"position"`
	Data      json.RawMessage `bun:"data,type:jsonb,notnull" json:"data"`
	CreatedAt time.Time       `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time       `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// ToRecord flattens a block into its row shape.
func ToRecord(block Block) (*Record, error) {
	raw, err := EncodeData(block.Data)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(block.ID)
	if err != nil {
		id = uuid.Nil
	}
	return &Record{
		ID:        id,
		ArticleID: block.ArticleID,
		Type:      string(block.Type),
		Position:  block.Order,
		Data:      raw,
		CreatedAt: block.CreatedAt,
		UpdatedAt: block.UpdatedAt,
	}, nil
}

// FromRecord rebuilds the typed block from its row shape.
func FromRecord(record *Record) (Block, error) {
	data, err := DecodeData(Type(record.Type), record.Data)
	if err != nil {
		return Block{}, err
	}
	return Block{
		ID:        record.ID.String(),
		ArticleID: record.ArticleID,
		Type:      Type(record.Type),
		Order:     record.Position,
		Data:      data,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}, nil
}
