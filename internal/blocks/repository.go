package blocks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goliatone/go-newsroom/internal/identity"
	"github.com/google/uuid"
)

// Repository persists article block lists. Save is replace-all: the previous
// rows for the article are dropped and the supplied list is written with
// position equal to slice index.
type Repository interface {
	ListForArticle(ctx context.Context, articleID uuid.UUID) ([]Block, error)
	ReplaceForArticle(ctx context.Context, articleID uuid.UUID, list []Block) ([]Block, error)
	DeleteForArticle(ctx context.Context, articleID uuid.UUID) error
}

// NotFoundError reports a missing resource by name and lookup key.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// AssignDurableIDs replaces temporary ids with deterministic durable UUIDs
// derived from the article and the block's path within the tree, recursing
// into container payloads. Blocks that already carry durable ids keep them.
func AssignDurableIDs(articleID uuid.UUID, list []Block) []Block {
	out := CloneList(list)
	for i := range out {
		assignDurableID(articleID, &out[i], i, "")
	}
	return out
}

func assignDurableID(articleID uuid.UUID, block *Block, position int, path string) {
	key := path + ":" + strconv.Itoa(position)
	block.ArticleID = articleID
	block.Order = position
	if block.ID == "" || IsTempID(block.ID) {
		block.ID = identity.BlockUUID(articleID, key).String()
	}

	switch data := block.Data.(type) {
	case ColumnsData:
		for c := range data.Columns {
			childPath := key + ":" + strconv.Itoa(c)
			for i := range data.Columns[c].Blocks {
				assignDurableID(articleID, &data.Columns[c].Blocks[i], i, childPath)
			}
		}
		block.Data = data
	case GroupData:
		for i := range data.Blocks {
			assignDurableID(articleID, &data.Blocks[i], i, key)
		}
		block.Data = data
	case RowData:
		for i := range data.Blocks {
			assignDurableID(articleID, &data.Blocks[i], i, key)
		}
		block.Data = data
	case StackData:
		for i := range data.Blocks {
			assignDurableID(articleID, &data.Blocks[i], i, key)
		}
		block.Data = data
	}
}
