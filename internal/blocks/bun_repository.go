package blocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepository persists block rows through bun. ReplaceForArticle runs the
// delete-then-insert pair inside one transaction so a failed save cannot
// leave the article with zero blocks server-side.
type BunRepository struct {
	db  *bun.DB
	now func() time.Time
}

// NewBunRepository creates a block repository backed by the given database.
func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{db: db, now: time.Now}
}

// WithClock overrides the timestamp source, used by tests.
func (r *BunRepository) WithClock(clock func() time.Time) *BunRepository {
	if clock != nil {
		r.now = clock
	}
	return r
}

func (r *BunRepository) ListForArticle(ctx context.Context, articleID uuid.UUID) ([]Block, error) {
	var records []*Record
	err := r.db.NewSelect().
		Model(&records).
		Where("?TableAlias.article_id = ?", articleID).
		Order("position ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("article_blocks repository error: %w", err)
	}

	list := make([]Block, 0, len(records))
	for _, record := range records {
		block, err := FromRecord(record)
		if err != nil {
			return nil, err
		}
		list = append(list, block)
	}
	return list, nil
}

func (r *BunRepository) ReplaceForArticle(ctx context.Context, articleID uuid.UUID, list []Block) ([]Block, error) {
	persisted := AssignDurableIDs(articleID, list)

	now := r.now()
	records := make([]*Record, 0, len(persisted))
	for i := range persisted {
		if persisted[i].CreatedAt.IsZero() {
			persisted[i].CreatedAt = now
		}
		persisted[i].UpdatedAt = now
		record, err := ToRecord(persisted[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*Record)(nil)).
			Where("article_id = ?", articleID).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete article blocks: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().
			Model(&records).
			Exec(ctx); err != nil {
			return fmt.Errorf("insert article blocks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("article_blocks repository error: %w", err)
	}

	return persisted, nil
}

func (r *BunRepository) DeleteForArticle(ctx context.Context, articleID uuid.UUID) error {
	if _, err := r.db.NewDelete().
		Model((*Record)(nil)).
		Where("article_id = ?", articleID).
		Exec(ctx); err != nil {
		return fmt.Errorf("article_blocks repository error: %w", err)
	}
	return nil
}
