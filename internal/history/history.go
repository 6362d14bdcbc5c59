package history

import (
	"github.com/goliatone/go-newsroom/internal/articles"
	"github.com/goliatone/go-newsroom/internal/blocks"
)

// Snapshot is the immutable unit of undo/redo: the article metadata paired
// with the full block list at one point in time.
type Snapshot struct {
	Article articles.Article
	Blocks  []blocks.Block
}

// Clone deep-copies the snapshot so stacks never alias live editor state.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Article: s.Article.Clone(),
		Blocks:  blocks.CloneList(s.Blocks),
	}
}

// History is the three-stack undo model: past snapshots (most-recent-last),
// the present, and future snapshots undone-from (most-recent-first).
type History struct {
	past    []Snapshot
	present Snapshot
	future  []Snapshot
}

// New seeds a history with the initial present snapshot.
func New(present Snapshot) *History {
	return &History{present: present.Clone()}
}

// Save pushes the current present onto past, installs next as present, and
// truncates redo history. Call with the post-mutation state; the pre-mutation
// state is what becomes undoable.
func (h *History) Save(next Snapshot) {
	h.past = append(h.past, h.present)
	h.present = next.Clone()
	h.future = nil
}

// Undo steps back one snapshot. Returns the restored present and false when
// there is nothing to undo.
func (h *History) Undo() (Snapshot, bool) {
	if len(h.past) == 0 {
		return h.present.Clone(), false
	}
	restored := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]Snapshot{h.present}, h.future...)
	h.present = restored
	return h.present.Clone(), true
}

// Redo steps forward one snapshot. Returns the restored present and false
// when there is nothing to redo.
func (h *History) Redo() (Snapshot, bool) {
	if len(h.future) == 0 {
		return h.present.Clone(), false
	}
	restored := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, h.present)
	h.present = restored
	return h.present.Clone(), true
}

// Reset clears both stacks and installs a new present. Used when loading a
// different article, never as part of normal editing.
func (h *History) Reset(next Snapshot) {
	h.past = nil
	h.future = nil
	h.present = next.Clone()
}

// Present returns a copy of the current snapshot.
func (h *History) Present() Snapshot {
	return h.present.Clone()
}

// CanUndo reports whether the past stack is non-empty.
func (h *History) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo reports whether the future stack is non-empty.
func (h *History) CanRedo() bool {
	return len(h.future) > 0
}

// Depth returns the past and future stack sizes.
func (h *History) Depth() (past, future int) {
	return len(h.past), len(h.future)
}
