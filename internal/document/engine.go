package document

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/goliatone/go-newsroom/internal/blocks"
)

// ErrGroupTooSmall rejects grouping fewer than two blocks. This is a
// user-visible validation rejection, not a silent no-op.
var ErrGroupTooSmall = errors.New("document: grouping requires at least two blocks")

// MaxColumns caps sibling columns inside one columns block.
const MaxColumns = 6

// Engine holds the pure document transformations. Every operation returns a
// new list; callers never observe in-place mutation. Index-based operations
// treat out-of-range indexes as no-ops because the indexes arrive from UI
// events that can race with concurrent state updates.
type Engine struct {
	registry *blocks.Registry
	now      func() time.Time
	tempID   func() string
}

// Option customises engine construction.
type Option func(*Engine)

// WithClock overrides the timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.now = clock
		}
	}
}

// WithTempIDGenerator overrides temporary id minting, used by tests for
// deterministic ids.
func WithTempIDGenerator(generator func() string) Option {
	return func(e *Engine) {
		if generator != nil {
			e.tempID = generator
		}
	}
}

// NewEngine constructs a mutation engine over the given block registry.
func NewEngine(registry *blocks.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		now:      time.Now,
		tempID:   blocks.NewTempID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reindex renumbers order fields to a dense 0..N-1 sequence.
func (e *Engine) Reindex(list []blocks.Block) []blocks.Block {
	out := blocks.CloneList(list)
	for i := range out {
		out[i].Order = i
	}
	return out
}

// Add appends a block of the given type with its registry default payload.
// When afterIndex is set the block is spliced in right after that position.
func (e *Engine) Add(list []blocks.Block, t blocks.Type, afterIndex *int) []blocks.Block {
	now := e.now()
	block := blocks.Block{
		ID:        e.tempID(),
		Type:      t,
		Data:      e.registry.DefaultData(t),
		CreatedAt: now,
		UpdatedAt: now,
	}

	out := blocks.CloneList(list)
	if afterIndex == nil {
		block.Order = len(out)
		out = append(out, block)
		return e.Reindex(out)
	}

	at := *afterIndex + 1
	if at < 0 {
		at = 0
	}
	if at > len(out) {
		at = len(out)
	}
	out = append(out, blocks.Block{})
	copy(out[at+1:], out[at:])
	out[at] = block
	return e.Reindex(out)
}

// Insert splices a pre-built block in at the given position, bypassing the
// registry defaults Add applies. The payload arrives fully formed, typically
// from a drag gesture carrying the block it moved. A missing id gets a fresh
// temp id; atIndex nil appends, out-of-range clamps.
func (e *Engine) Insert(list []blocks.Block, block blocks.Block, atIndex *int) []blocks.Block {
	incoming := block.Clone()
	if incoming.ID == "" {
		incoming.ID = e.tempID()
	}
	now := e.now()
	if incoming.CreatedAt.IsZero() {
		incoming.CreatedAt = now
	}
	incoming.UpdatedAt = now

	out := blocks.CloneList(list)
	at := len(out)
	if atIndex != nil {
		at = *atIndex
		if at < 0 {
			at = 0
		}
		if at > len(out) {
			at = len(out)
		}
	}
	out = append(out, blocks.Block{})
	copy(out[at+1:], out[at:])
	out[at] = incoming
	return e.Reindex(out)
}

// Update replaces the payload at index. The engine does not validate the new
// payload against the block's type; the editing widget owns shape
// correctness.
func (e *Engine) Update(list []blocks.Block, index int, data blocks.BlockData) []blocks.Block {
	if index < 0 || index >= len(list) {
		return blocks.CloneList(list)
	}
	out := blocks.CloneList(list)
	if data != nil {
		out[index].Data = data.Clone()
	} else {
		out[index].Data = nil
	}
	out[index].UpdatedAt = e.now()
	return out
}

// Remove deletes the block at index and reindexes.
func (e *Engine) Remove(list []blocks.Block, index int) []blocks.Block {
	if index < 0 || index >= len(list) {
		return blocks.CloneList(list)
	}
	out := blocks.CloneList(list)
	out = append(out[:index], out[index+1:]...)
	return e.Reindex(out)
}

// Reorder moves the block at from to position to. Equal or out-of-range
// indexes leave the list unchanged.
func (e *Engine) Reorder(list []blocks.Block, from, to int) []blocks.Block {
	if from == to || from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return blocks.CloneList(list)
	}
	out := blocks.CloneList(list)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out, blocks.Block{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return e.Reindex(out)
}

// Duplicate deep-copies the block at index, including nested block arrays in
// container payloads, and inserts the copy right after the original.
func (e *Engine) Duplicate(list []blocks.Block, index int) []blocks.Block {
	if index < 0 || index >= len(list) {
		return blocks.CloneList(list)
	}
	out := blocks.CloneList(list)
	copyBlock := out[index].Clone()
	copyBlock.ID = e.tempID()
	copyBlock.Data = e.refreshContainerIDs(copyBlock.Data)
	now := e.now()
	copyBlock.CreatedAt = now
	copyBlock.UpdatedAt = now

	out = append(out, blocks.Block{})
	copy(out[index+2:], out[index+1:])
	out[index+1] = copyBlock
	return e.Reindex(out)
}

// Group collapses the blocks at the given indices into one group block placed
// at the smallest selected index, preserving original relative order.
func (e *Engine) Group(list []blocks.Block, indices []int) ([]blocks.Block, error) {
	selected := dedupeInRange(indices, len(list))
	if len(selected) < 2 {
		return blocks.CloneList(list), ErrGroupTooSmall
	}
	sort.Ints(selected)

	out := blocks.CloneList(list)
	members := make([]blocks.Block, 0, len(selected))
	for _, i := range selected {
		members = append(members, out[i].Clone())
	}
	for i := range members {
		members[i].Order = i
	}

	now := e.now()
	group := blocks.Block{
		ID:        e.tempID(),
		Type:      blocks.TypeGroup,
		Order:     selected[0],
		Data:      blocks.GroupData{Blocks: members},
		CreatedAt: now,
		UpdatedAt: now,
	}

	remaining := make([]blocks.Block, 0, len(out)-len(selected)+1)
	sel := make(map[int]bool, len(selected))
	for _, i := range selected {
		sel[i] = true
	}
	inserted := false
	for i, block := range out {
		if sel[i] {
			if !inserted {
				remaining = append(remaining, group)
				inserted = true
			}
			continue
		}
		remaining = append(remaining, block)
	}
	return e.Reindex(remaining), nil
}

// Ungroup expands a container block back into its children at the container's
// position.
func (e *Engine) Ungroup(list []blocks.Block, index int) []blocks.Block {
	if index < 0 || index >= len(list) {
		return blocks.CloneList(list)
	}
	out := blocks.CloneList(list)

	var children []blocks.Block
	switch data := out[index].Data.(type) {
	case blocks.GroupData:
		children = data.Blocks
	case blocks.RowData:
		children = data.Blocks
	case blocks.StackData:
		children = data.Blocks
	default:
		return out
	}

	expanded := make([]blocks.Block, 0, len(out)-1+len(children))
	expanded = append(expanded, out[:index]...)
	expanded = append(expanded, blocks.CloneList(children)...)
	expanded = append(expanded, out[index+1:]...)
	return e.Reindex(expanded)
}

// TransformToColumns redistributes the selected blocks into column buckets
// described by layout, a list of width ratios that need not pre-sum to 100.
// Blocks go one-per-column when the selection fits, otherwise round-robin by
// ceil(n/columns) per column in index order. The selection is replaced by one
// columns block at the smallest selected index.
func (e *Engine) TransformToColumns(list []blocks.Block, indices []int, layout []float64) []blocks.Block {
	selected := dedupeInRange(indices, len(list))
	if len(selected) == 0 || len(layout) == 0 || len(layout) > MaxColumns {
		return blocks.CloneList(list)
	}
	sort.Ints(selected)

	widths := NormalizeLayout(layout)
	if widths == nil {
		return blocks.CloneList(list)
	}

	out := blocks.CloneList(list)
	members := make([]blocks.Block, 0, len(selected))
	for _, i := range selected {
		members = append(members, out[i].Clone())
	}

	columns := make([]blocks.Column, len(widths))
	for i, width := range widths {
		columns[i] = blocks.Column{
			ID:        e.tempID(),
			Width:     width,
			WidthUnit: "%",
			Blocks:    []blocks.Block{},
		}
	}

	perColumn := int(math.Ceil(float64(len(members)) / float64(len(columns))))
	if len(members) <= len(columns) {
		perColumn = 1
	}
	for i, member := range members {
		target := i / perColumn
		if target >= len(columns) {
			target = len(columns) - 1
		}
		member.Order = len(columns[target].Blocks)
		columns[target].Blocks = append(columns[target].Blocks, member)
	}

	now := e.now()
	columnsBlock := blocks.Block{
		ID:        e.tempID(),
		Type:      blocks.TypeColumns,
		Order:     selected[0],
		Data:      blocks.ColumnsData{Columns: columns},
		CreatedAt: now,
		UpdatedAt: now,
	}

	remaining := make([]blocks.Block, 0, len(out)-len(selected)+1)
	sel := make(map[int]bool, len(selected))
	for _, i := range selected {
		sel[i] = true
	}
	inserted := false
	for i, block := range out {
		if sel[i] {
			if !inserted {
				remaining = append(remaining, columnsBlock)
				inserted = true
			}
			continue
		}
		remaining = append(remaining, block)
	}
	return e.Reindex(remaining)
}

// ReorderInColumn moves a block within one column of a columns block, leaving
// sibling columns and the rest of the document untouched.
func (e *Engine) ReorderInColumn(list []blocks.Block, columnID string, from, to int) []blocks.Block {
	out := blocks.CloneList(list)
	for i := range out {
		data, ok := out[i].Data.(blocks.ColumnsData)
		if !ok {
			continue
		}
		for c := range data.Columns {
			if data.Columns[c].ID != columnID {
				continue
			}
			data.Columns[c].Blocks = e.Reorder(data.Columns[c].Blocks, from, to)
			out[i].Data = data
			out[i].UpdatedAt = e.now()
			return out
		}
	}
	return out
}

// ReplaceAll swaps in a full replacement list, reindexed. This is the escape
// hatch for structural edits expressed as a whole-list payload.
func (e *Engine) ReplaceAll(_ []blocks.Block, replacement []blocks.Block) []blocks.Block {
	return e.Reindex(replacement)
}

// NormalizeLayout converts width ratios into integer percentages that honor
// the relative proportions: each entry is divided by the sum and scaled to
// 100, rounded to the nearest integer.
func NormalizeLayout(layout []float64) []int {
	var sum float64
	for _, entry := range layout {
		if entry < 0 {
			return nil
		}
		sum += entry
	}
	if sum <= 0 {
		return nil
	}
	widths := make([]int, len(layout))
	for i, entry := range layout {
		widths[i] = int(math.Round(entry / sum * 100))
	}
	return widths
}

func dedupeInRange(indices []int, length int) []int {
	seen := make(map[int]bool, len(indices))
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= length || seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	return out
}

func (e *Engine) refreshContainerIDs(data blocks.BlockData) blocks.BlockData {
	switch payload := data.(type) {
	case blocks.ColumnsData:
		for c := range payload.Columns {
			payload.Columns[c].ID = e.tempID()
			for i := range payload.Columns[c].Blocks {
				payload.Columns[c].Blocks[i].ID = e.tempID()
				payload.Columns[c].Blocks[i].Data = e.refreshContainerIDs(payload.Columns[c].Blocks[i].Data)
			}
		}
		return payload
	case blocks.GroupData:
		for i := range payload.Blocks {
			payload.Blocks[i].ID = e.tempID()
			payload.Blocks[i].Data = e.refreshContainerIDs(payload.Blocks[i].Data)
		}
		return payload
	case blocks.RowData:
		for i := range payload.Blocks {
			payload.Blocks[i].ID = e.tempID()
			payload.Blocks[i].Data = e.refreshContainerIDs(payload.Blocks[i].Data)
		}
		return payload
	case blocks.StackData:
		for i := range payload.Blocks {
			payload.Blocks[i].ID = e.tempID()
			payload.Blocks[i].Data = e.refreshContainerIDs(payload.Blocks[i].Data)
		}
		return payload
	default:
		return data
	}
}
