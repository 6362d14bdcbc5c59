// Package editor hosts the article editing session: one article, its block
// list, and the undo/redo history, mutated exclusively through the document
// command set.
package editor

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-newsroom/internal/articles"
	"github.com/goliatone/go-newsroom/internal/blocks"
	"github.com/goliatone/go-newsroom/internal/document"
	"github.com/goliatone/go-newsroom/internal/domain"
	"github.com/goliatone/go-newsroom/internal/history"
	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/internal/taxonomy"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

var ErrNoArticleLoaded = errors.New("editor: no article loaded")

// Hooks lets hosts observe session transitions. All callbacks are optional
// and run synchronously on the mutating goroutine.
type Hooks struct {
	OnChange func(snapshot history.Snapshot)
	OnSave   func(article *articles.Article)
	OnLoad   func(article *articles.Article)
}

// SessionConfig carries the collaborators a Session edits through.
type SessionConfig struct {
	Articles articles.Service
	Blocks   blocks.Repository
	Taxonomy taxonomy.Service
	Engine   *document.Engine
	Hooks    Hooks
	Logger   interfaces.Logger
}

// Session is a single-article editing session. Mutations run through the
// document engine, push undo history, and stay in memory until Save writes
// the whole state back through the persistence layer.
type Session struct {
	mu sync.Mutex

	articles articles.Service
	blocks   blocks.Repository
	taxonomy taxonomy.Service
	engine   *document.Engine
	hooks    Hooks
	logger   interfaces.Logger

	article *articles.Article
	content []blocks.Block
	history *history.History
	saving  bool
}

// NewSession constructs a session; call Load before mutating.
func NewSession(cfg SessionConfig) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	engine := cfg.Engine
	if engine == nil {
		engine = document.NewEngine(blocks.NewRegistry())
	}
	return &Session{
		articles: cfg.Articles,
		blocks:   cfg.Blocks,
		taxonomy: cfg.Taxonomy,
		engine:   engine,
		hooks:    cfg.Hooks,
		logger:   logger,
	}
}

// Load fetches the article and its blocks and resets history around them.
// Any in-progress edits from a previously loaded article are discarded.
func (s *Session) Load(ctx context.Context, slugOrID string) error {
	article, err := s.articles.Get(ctx, slugOrID)
	if err != nil {
		return err
	}
	content, err := s.blocks.ListForArticle(ctx, article.ID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.article = article
	s.content = content
	s.history = history.New(history.Snapshot{Article: *article, Blocks: content})
	s.saving = false
	s.mu.Unlock()

	s.logger.Debug("editor.load", "article_id", article.ID, "blocks", len(content))
	if s.hooks.OnLoad != nil {
		s.hooks.OnLoad(article)
	}
	return nil
}

// Article returns a copy of the loaded article, or nil.
func (s *Session) Article() *articles.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.article == nil {
		return nil
	}
	clone := s.article.Clone()
	return &clone
}

// Blocks returns a deep copy of the working block list.
func (s *Session) Blocks() []blocks.Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	return blocks.CloneList(s.content)
}

// Saving reports whether a Save call is in flight, for host UI affordances.
// It does not gate anything; overlapping saves proceed independently.
func (s *Session) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// CanUndo reports whether an undo step is available.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history != nil && s.history.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history != nil && s.history.CanRedo()
}

// Undo steps the session back one snapshot. Without history it is a no-op.
func (s *Session) Undo() bool {
	s.mu.Lock()
	if s.history == nil {
		s.mu.Unlock()
		return false
	}
	snapshot, ok := s.history.Undo()
	if ok {
		s.restoreLocked(snapshot)
	}
	s.mu.Unlock()

	if ok {
		s.notifyChange(snapshot)
	}
	return ok
}

// Redo steps the session forward one snapshot.
func (s *Session) Redo() bool {
	s.mu.Lock()
	if s.history == nil {
		s.mu.Unlock()
		return false
	}
	snapshot, ok := s.history.Redo()
	if ok {
		s.restoreLocked(snapshot)
	}
	s.mu.Unlock()

	if ok {
		s.notifyChange(snapshot)
	}
	return ok
}

func (s *Session) restoreLocked(snapshot history.Snapshot) {
	article := snapshot.Article.Clone()
	s.article = &article
	s.content = blocks.CloneList(snapshot.Blocks)
}

func (s *Session) notifyChange(snapshot history.Snapshot) {
	if s.hooks.OnChange != nil {
		s.hooks.OnChange(snapshot)
	}
}

// mutate applies fn to the working list, records a history snapshot when the
// result differs, and fires OnChange. Engine-level no-ops leave history
// untouched so undo depth reflects real edits.
func (s *Session) mutate(fn func(list []blocks.Block) ([]blocks.Block, error)) error {
	s.mu.Lock()
	if s.article == nil {
		s.mu.Unlock()
		return ErrNoArticleLoaded
	}

	next, err := fn(s.content)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if reflect.DeepEqual(next, s.content) {
		s.mu.Unlock()
		return nil
	}

	snapshot := history.Snapshot{Article: *s.article, Blocks: next}
	s.history.Save(snapshot)
	s.content = next
	s.mu.Unlock()

	s.notifyChange(snapshot)
	return nil
}

func (s *Session) AddBlock(_ context.Context, t blocks.Type, afterIndex *int) error {
	return s.mutate(func(list []blocks.Block) ([]blocks.Block, error) {
		return s.engine.Add(list, t, afterIndex), nil
	})
}

func (s *Session) InsertBlock(_ context.Context, block blocks.Block, atIndex *int) error {
	return s.mutate(func(list []blocks.Block) ([]blocks.Block, error) {
		return s.engine.Insert(list, block, atIndex), nil
	})
}

func (s *Session) UpdateBlock(_ context.Context, index int, data blocks.BlockData) error {
	return s.mutate(func(list []blocks.Block) ([]blocks.Block, error) {
		return s.engine.Update(list, index, data), nil
	})
}

func (s *Session) RemoveBlock(_ context.Context, index int) error {
	return s.mutate(func(list []blocks.Block) ([]blocks.Block, error) {
		return s.engine.Remove(list, index), nil
	})
}

func (s *Session) ReorderBlocks(_ context.Context, from, to int) error {
	return s.mutate(func(list []blocks.Block) ([]blocks.Block, error) {
		return s.engine.Reorder(list, from, to), nil
	})
}

func (s *Session) ReorderInColumn(_ context.Context, columnID string, from, to int) error {
	return s.mutate(func(list []blocks.Block) ([]blocks.Block, error) {
		return s.engine.ReorderInColumn(list, columnID, from, to), nil
	})
}

func (s *Session) DuplicateBlock(_ context.Context, index int) error {
	return s.mutate(func(list []blocks.Block) ([]blocks.Block, error) {
		return s.engine.Duplicate(list, index), nil
	})
}

func (s *Session) GroupBlocks(_ context.Context, indices []int) error {
	return s.mutate(func(list []blocks.Block) ([]blocks.Block, error) {
		return s.engine.Group(list, indices)
	})
}

func (s *Session) UngroupBlock(_ context.Context, index int) error {
	return s.mutate(func(list []blocks.Block) ([]blocks.Block, error) {
		return s.engine.Ungroup(list, index), nil
	})
}

func (s *Session) TransformToColumns(_ context.Context, indices []int, layout []float64) error {
	return s.mutate(func(list []blocks.Block) ([]blocks.Block, error) {
		return s.engine.TransformToColumns(list, indices, layout), nil
	})
}

func (s *Session) ReplaceBlocks(_ context.Context, list []blocks.Block) error {
	return s.mutate(func(_ []blocks.Block) ([]blocks.Block, error) {
		return s.engine.ReplaceAll(nil, list), nil
	})
}

// UpdateMeta edits article metadata inside the session, recorded as one undo
// step. Slug and publish rules still apply at save time.
func (s *Session) UpdateMeta(mutateFn func(article *articles.Article)) error {
	s.mu.Lock()
	if s.article == nil {
		s.mu.Unlock()
		return ErrNoArticleLoaded
	}

	updated := s.article.Clone()
	mutateFn(&updated)
	if reflect.DeepEqual(updated, *s.article) {
		s.mu.Unlock()
		return nil
	}

	snapshot := history.Snapshot{Article: updated, Blocks: s.content}
	s.history.Save(snapshot)
	s.article = &updated
	s.mu.Unlock()

	s.notifyChange(snapshot)
	return nil
}

// SaveOptions controls a session save.
type SaveOptions struct {
	Publish    bool
	Categories []string
	Tags       []string
}

// Save writes the article, replaces its block rows wholesale, and syncs
// taxonomy links. Overlapping saves are not sequenced or collapsed; each one
// snapshots the working state at entry and races at the persistence layer.
// The Saving flag only exists so host UIs can show progress.
func (s *Session) Save(ctx context.Context, opts SaveOptions) (*articles.Article, error) {
	s.mu.Lock()
	if s.article == nil {
		s.mu.Unlock()
		return nil, ErrNoArticleLoaded
	}
	s.saving = true
	working := s.article.Clone()
	content := blocks.CloneList(s.content)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	status := working.Status
	if opts.Publish {
		status = domain.StatusPublished
	}

	saved, err := s.articles.Upsert(ctx, articles.UpsertInput{
		ID:            &working.ID,
		Title:         working.Title,
		Slug:          working.Slug,
		Description:   working.Description,
		Status:        status,
		FeaturedImage: working.FeaturedImage,
		AuthorID:      working.AuthorID,
		Keywords:      working.Keywords,
	})
	if err != nil {
		return nil, err
	}

	persisted, err := s.blocks.ReplaceForArticle(ctx, saved.ID, content)
	if err != nil {
		return nil, err
	}

	if s.taxonomy != nil {
		if opts.Categories != nil {
			if _, err := s.taxonomy.SetArticleCategories(ctx, saved.ID, opts.Categories); err != nil {
				return nil, err
			}
		}
		if opts.Tags != nil {
			if _, err := s.taxonomy.SetArticleTags(ctx, saved.ID, opts.Tags); err != nil {
				return nil, err
			}
		}
	}

	s.mu.Lock()
	clone := saved.Clone()
	s.article = &clone
	s.content = persisted
	s.mu.Unlock()

	s.logger.Info("editor.save",
		"article_id", saved.ID,
		"status", string(saved.Status),
		"blocks", len(persisted),
	)
	if s.hooks.OnSave != nil {
		s.hooks.OnSave(saved)
	}
	return saved, nil
}

// NewArticle starts a session on a fresh unsaved draft.
func (s *Session) NewArticle(title string, authorID uuid.UUID) {
	article := articles.Article{
		ID:       uuid.New(),
		Title:    title,
		Status:   domain.StatusDraft,
		AuthorID: authorID,
	}

	s.mu.Lock()
	s.article = &article
	s.content = nil
	s.history = history.New(history.Snapshot{Article: article})
	s.saving = false
	s.mu.Unlock()

	if s.hooks.OnLoad != nil {
		clone := article.Clone()
		s.hooks.OnLoad(&clone)
	}
}
