package history

import (
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-newsroom/internal/articles"
	"github.com/goliatone/go-newsroom/internal/blocks"
)

func snapshotWith(title string, blockIDs ...string) Snapshot {
	list := make([]blocks.Block, len(blockIDs))
	for i, id := range blockIDs {
		list[i] = blocks.Block{ID: id, Type: blocks.TypeParagraph, Order: i, Data: blocks.ParagraphData{Content: id}}
	}
	return Snapshot{
		Article: articles.Article{ID: uuid.New(), Title: title},
		Blocks:  list,
	}
}

func TestUndoRedoFlow(t *testing.T) {
	h := New(snapshotWith("v0"))
	h.Save(snapshotWith("v1", "a"))
	h.Save(snapshotWith("v2", "a", "b"))

	if past, future := h.Depth(); past != 2 || future != 0 {
		t.Fatalf("expected depth 2/0, got %d/%d", past, future)
	}

	restored, ok := h.Undo()
	if !ok || restored.Article.Title != "v1" {
		t.Fatalf("expected undo to v1, got %q ok=%v", restored.Article.Title, ok)
	}
	restored, ok = h.Undo()
	if !ok || restored.Article.Title != "v0" {
		t.Fatalf("expected undo to v0, got %q ok=%v", restored.Article.Title, ok)
	}
	if _, ok := h.Undo(); ok {
		t.Fatal("undo past the initial snapshot should report false")
	}

	restored, ok = h.Redo()
	if !ok || restored.Article.Title != "v1" {
		t.Fatalf("expected redo to v1, got %q ok=%v", restored.Article.Title, ok)
	}
	restored, ok = h.Redo()
	if !ok || restored.Article.Title != "v2" {
		t.Fatalf("expected redo to v2, got %q ok=%v", restored.Article.Title, ok)
	}
	if _, ok := h.Redo(); ok {
		t.Fatal("redo past the newest snapshot should report false")
	}
}

func TestSaveTruncatesRedoHistory(t *testing.T) {
	h := New(snapshotWith("v0"))
	h.Save(snapshotWith("v1", "a"))
	h.Save(snapshotWith("v2", "a", "b"))

	if _, ok := h.Undo(); !ok {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	h.Save(snapshotWith("v3", "c"))
	if h.CanRedo() {
		t.Fatal("a fresh save must drop the redo branch")
	}
	if h.Present().Article.Title != "v3" {
		t.Fatalf("present should be v3, got %q", h.Present().Article.Title)
	}
}

func TestResetClearsBothStacks(t *testing.T) {
	h := New(snapshotWith("v0"))
	h.Save(snapshotWith("v1", "a"))
	h.Undo()

	h.Reset(snapshotWith("fresh"))
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("reset should clear both stacks")
	}
	if h.Present().Article.Title != "fresh" {
		t.Fatalf("present should be the reset snapshot, got %q", h.Present().Article.Title)
	}
}

func TestSnapshotsNeverAliasCallerState(t *testing.T) {
	snapshot := snapshotWith("v0", "a")
	h := New(snapshot)

	// Mutating the snapshot handed to New must not leak into history.
	snapshot.Blocks[0].Data = blocks.ParagraphData{Content: "mutated"}
	if h.Present().Blocks[0].Data.(blocks.ParagraphData).Content != "a" {
		t.Fatal("history aliased the seed snapshot")
	}

	// Mutating a returned present must not leak back in.
	present := h.Present()
	present.Blocks[0].Data = blocks.ParagraphData{Content: "changed"}
	if h.Present().Blocks[0].Data.(blocks.ParagraphData).Content != "a" {
		t.Fatal("history aliased a returned snapshot")
	}
}
