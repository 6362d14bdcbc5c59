package document

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/goliatone/go-newsroom/internal/blocks"
)

func newTestEngine() *Engine {
	counter := 0
	return NewEngine(
		blocks.NewRegistry(),
		WithClock(func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }),
		WithTempIDGenerator(func() string {
			counter++
			return fmt.Sprintf("temp-%d", counter)
		}),
	)
}

func paragraphs(n int) []blocks.Block {
	list := make([]blocks.Block, n)
	for i := range list {
		list[i] = blocks.Block{
			ID:    fmt.Sprintf("p%d", i),
			Type:  blocks.TypeParagraph,
			Order: i,
			Data:  blocks.ParagraphData{Content: fmt.Sprintf("paragraph %d", i)},
		}
	}
	return list
}

func ids(list []blocks.Block) []string {
	out := make([]string, len(list))
	for i, block := range list {
		out[i] = block.ID
	}
	return out
}

func assertDenseOrder(t *testing.T, list []blocks.Block) {
	t.Helper()
	for i, block := range list {
		if block.Order != i {
			t.Fatalf("order not dense at %d: got %d", i, block.Order)
		}
	}
}

func TestAddAppendsWithDefaults(t *testing.T) {
	engine := newTestEngine()

	out := engine.Add(paragraphs(2), blocks.TypeQuote, nil)
	if len(out) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(out))
	}
	added := out[2]
	if added.Type != blocks.TypeQuote {
		t.Fatalf("expected quote, got %s", added.Type)
	}
	if !blocks.IsTempID(added.ID) {
		t.Fatalf("new block should carry a temp id, got %s", added.ID)
	}
	if _, ok := added.Data.(blocks.QuoteData); !ok {
		t.Fatalf("expected registry default payload, got %T", added.Data)
	}
	assertDenseOrder(t, out)
}

func TestAddAfterIndexSplicesInPlace(t *testing.T) {
	engine := newTestEngine()
	after := 0

	out := engine.Add(paragraphs(3), blocks.TypeDivider, &after)
	if out[1].Type != blocks.TypeDivider {
		t.Fatalf("expected divider at index 1, got %s", out[1].Type)
	}
	if !reflect.DeepEqual(ids(out), []string{"p0", "temp-1", "p1", "p2"}) {
		t.Fatalf("unexpected order %v", ids(out))
	}
	assertDenseOrder(t, out)
}

func TestAddClampsAfterIndex(t *testing.T) {
	engine := newTestEngine()

	tooFar := 99
	out := engine.Add(paragraphs(2), blocks.TypeDivider, &tooFar)
	if out[2].Type != blocks.TypeDivider {
		t.Fatalf("out-of-range afterIndex should append, got %v", ids(out))
	}

	negative := -5
	out = engine.Add(paragraphs(2), blocks.TypeDivider, &negative)
	if out[0].Type != blocks.TypeDivider {
		t.Fatalf("negative afterIndex should prepend, got %v", ids(out))
	}
}

func TestInsertPlacesPrebuiltBlock(t *testing.T) {
	engine := newTestEngine()
	at := 1

	payload := blocks.Block{
		ID:   "carried",
		Type: blocks.TypeQuote,
		Data: blocks.QuoteData{Content: "already built", Attribution: "elsewhere"},
	}
	out := engine.Insert(paragraphs(3), payload, &at)
	if !reflect.DeepEqual(ids(out), []string{"p0", "carried", "p1", "p2"}) {
		t.Fatalf("unexpected order %v", ids(out))
	}
	data, ok := out[1].Data.(blocks.QuoteData)
	if !ok || data.Content != "already built" || data.Attribution != "elsewhere" {
		t.Fatalf("insert must keep the payload as built, got %+v", out[1].Data)
	}
	assertDenseOrder(t, out)
}

func TestInsertNilIndexAppends(t *testing.T) {
	engine := newTestEngine()

	out := engine.Insert(paragraphs(2), blocks.Block{Type: blocks.TypeDivider}, nil)
	if out[2].Type != blocks.TypeDivider {
		t.Fatalf("nil index should append, got %v", ids(out))
	}
	if !blocks.IsTempID(out[2].ID) {
		t.Fatalf("blank id should be minted as temp, got %s", out[2].ID)
	}
}

func TestInsertClampsIndex(t *testing.T) {
	engine := newTestEngine()

	tooFar := 99
	out := engine.Insert(paragraphs(2), blocks.Block{ID: "x", Type: blocks.TypeDivider}, &tooFar)
	if out[2].ID != "x" {
		t.Fatalf("out-of-range index should append, got %v", ids(out))
	}

	negative := -5
	out = engine.Insert(paragraphs(2), blocks.Block{ID: "y", Type: blocks.TypeDivider}, &negative)
	if out[0].ID != "y" {
		t.Fatalf("negative index should prepend, got %v", ids(out))
	}
}

func TestInsertLeavesInputUntouched(t *testing.T) {
	engine := newTestEngine()
	list := paragraphs(2)
	at := 0

	_ = engine.Insert(list, blocks.Block{Type: blocks.TypeDivider}, &at)
	if len(list) != 2 || list[0].ID != "p0" || list[0].Order != 0 {
		t.Fatalf("input list mutated: %v", ids(list))
	}
}

func TestUpdateReplacesPayload(t *testing.T) {
	engine := newTestEngine()
	list := paragraphs(2)

	out := engine.Update(list, 1, blocks.ParagraphData{Content: "rewritten"})
	para, ok := out[1].Data.(blocks.ParagraphData)
	if !ok || para.Content != "rewritten" {
		t.Fatalf("payload not replaced: %+v", out[1].Data)
	}
	// Original input stays untouched.
	if list[1].Data.(blocks.ParagraphData).Content != "paragraph 1" {
		t.Fatal("input list mutated in place")
	}
}

func TestUpdateOutOfRangeIsNoOp(t *testing.T) {
	engine := newTestEngine()
	list := paragraphs(2)

	out := engine.Update(list, 7, blocks.ParagraphData{Content: "ghost"})
	if !reflect.DeepEqual(out, list) {
		t.Fatal("out-of-range update should leave list unchanged")
	}
}

func TestRemoveReindexes(t *testing.T) {
	engine := newTestEngine()

	out := engine.Remove(paragraphs(3), 1)
	if !reflect.DeepEqual(ids(out), []string{"p0", "p2"}) {
		t.Fatalf("unexpected remaining blocks %v", ids(out))
	}
	assertDenseOrder(t, out)

	same := engine.Remove(paragraphs(3), -1)
	if len(same) != 3 {
		t.Fatal("negative index should be a no-op")
	}
}

func TestReorderMovesBlock(t *testing.T) {
	engine := newTestEngine()

	out := engine.Reorder(paragraphs(4), 3, 0)
	if !reflect.DeepEqual(ids(out), []string{"p3", "p0", "p1", "p2"}) {
		t.Fatalf("unexpected order %v", ids(out))
	}
	assertDenseOrder(t, out)

	out = engine.Reorder(paragraphs(4), 0, 2)
	if !reflect.DeepEqual(ids(out), []string{"p1", "p2", "p0", "p3"}) {
		t.Fatalf("unexpected order %v", ids(out))
	}
}

func TestReorderOutOfRangeIsNoOp(t *testing.T) {
	engine := newTestEngine()
	list := paragraphs(3)

	for _, pair := range [][2]int{{1, 1}, {-1, 2}, {0, 9}, {9, 0}} {
		out := engine.Reorder(list, pair[0], pair[1])
		if !reflect.DeepEqual(ids(out), ids(list)) {
			t.Fatalf("reorder(%d,%d) should be a no-op, got %v", pair[0], pair[1], ids(out))
		}
	}
}

func TestDuplicateDeepCopiesNestedBlocks(t *testing.T) {
	engine := newTestEngine()
	list := []blocks.Block{
		{ID: "g1", Type: blocks.TypeGroup, Order: 0, Data: blocks.GroupData{Blocks: []blocks.Block{
			{ID: "child1", Type: blocks.TypeParagraph, Data: blocks.ParagraphData{Content: "inner"}},
		}}},
	}

	out := engine.Duplicate(list, 0)
	if len(out) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(out))
	}
	copyBlock := out[1]
	if copyBlock.ID == "g1" || !blocks.IsTempID(copyBlock.ID) {
		t.Fatalf("duplicate should mint a fresh temp id, got %s", copyBlock.ID)
	}

	group, ok := copyBlock.Data.(blocks.GroupData)
	if !ok {
		t.Fatalf("expected GroupData, got %T", copyBlock.Data)
	}
	if group.Blocks[0].ID == "child1" {
		t.Fatal("nested block ids must be refreshed on duplicate")
	}

	// Editing the copy's nested payload must not leak into the original.
	group.Blocks[0].Data = blocks.ParagraphData{Content: "changed"}
	original := out[0].Data.(blocks.GroupData)
	if original.Blocks[0].Data.(blocks.ParagraphData).Content != "inner" {
		t.Fatal("duplicate shares nested state with the original")
	}
}

func TestGroupCollapsesSelection(t *testing.T) {
	engine := newTestEngine()

	out, err := engine.Group(paragraphs(4), []int{2, 0})
	if err != nil {
		t.Fatalf("group: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 top-level blocks, got %d", len(out))
	}
	if out[0].Type != blocks.TypeGroup {
		t.Fatalf("group should land at the smallest selected index, got %s at 0", out[0].Type)
	}

	group := out[0].Data.(blocks.GroupData)
	if !reflect.DeepEqual(ids(group.Blocks), []string{"p0", "p2"}) {
		t.Fatalf("members out of order: %v", ids(group.Blocks))
	}
	assertDenseOrder(t, group.Blocks)
	assertDenseOrder(t, out)
}

func TestGroupRejectsSmallSelection(t *testing.T) {
	engine := newTestEngine()

	if _, err := engine.Group(paragraphs(3), []int{1}); !errors.Is(err, ErrGroupTooSmall) {
		t.Fatalf("expected ErrGroupTooSmall, got %v", err)
	}
	// Out-of-range indexes are dropped before counting the selection.
	if _, err := engine.Group(paragraphs(3), []int{1, 9, -2}); !errors.Is(err, ErrGroupTooSmall) {
		t.Fatalf("expected ErrGroupTooSmall, got %v", err)
	}
}

func TestUngroupExpandsChildren(t *testing.T) {
	engine := newTestEngine()
	grouped, err := engine.Group(paragraphs(4), []int{1, 2})
	if err != nil {
		t.Fatalf("group: %v", err)
	}

	out := engine.Ungroup(grouped, 1)
	if !reflect.DeepEqual(ids(out), []string{"p0", "p1", "p2", "p3"}) {
		t.Fatalf("ungroup should restore flat order, got %v", ids(out))
	}
	assertDenseOrder(t, out)
}

func TestUngroupNonContainerIsNoOp(t *testing.T) {
	engine := newTestEngine()
	list := paragraphs(2)

	out := engine.Ungroup(list, 0)
	if !reflect.DeepEqual(ids(out), ids(list)) {
		t.Fatal("ungrouping a paragraph should change nothing")
	}
}

func TestTransformToColumnsOnePerColumn(t *testing.T) {
	engine := newTestEngine()

	out := engine.TransformToColumns(paragraphs(3), []int{0, 1}, []float64{1, 1})
	if len(out) != 2 {
		t.Fatalf("expected columns block plus remainder, got %d", len(out))
	}
	if out[0].Type != blocks.TypeColumns {
		t.Fatalf("expected columns block first, got %s", out[0].Type)
	}

	data := out[0].Data.(blocks.ColumnsData)
	if len(data.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(data.Columns))
	}
	for i, column := range data.Columns {
		if column.Width != 50 {
			t.Fatalf("column %d width %d, want 50", i, column.Width)
		}
		if len(column.Blocks) != 1 {
			t.Fatalf("column %d should hold 1 block, got %d", i, len(column.Blocks))
		}
	}
	if data.Columns[0].Blocks[0].ID != "p0" || data.Columns[1].Blocks[0].ID != "p1" {
		t.Fatal("selection order not preserved across columns")
	}
}

func TestTransformToColumnsRoundRobin(t *testing.T) {
	engine := newTestEngine()

	out := engine.TransformToColumns(paragraphs(5), []int{0, 1, 2, 3, 4}, []float64{1, 1})
	data := out[0].Data.(blocks.ColumnsData)
	if len(data.Columns[0].Blocks) != 3 || len(data.Columns[1].Blocks) != 2 {
		t.Fatalf("expected 3/2 split, got %d/%d", len(data.Columns[0].Blocks), len(data.Columns[1].Blocks))
	}
	assertDenseOrder(t, data.Columns[0].Blocks)
	assertDenseOrder(t, data.Columns[1].Blocks)
}

func TestTransformToColumnsRejectsBadLayout(t *testing.T) {
	engine := newTestEngine()
	list := paragraphs(3)

	cases := [][]float64{
		{},
		{1, 1, 1, 1, 1, 1, 1},
		{1, -1},
		{0, 0},
	}
	for _, layout := range cases {
		out := engine.TransformToColumns(list, []int{0, 1}, layout)
		if !reflect.DeepEqual(ids(out), ids(list)) {
			t.Fatalf("layout %v should be rejected", layout)
		}
	}
}

func TestNormalizeLayout(t *testing.T) {
	cases := []struct {
		layout []float64
		want   []int
	}{
		{[]float64{1, 1}, []int{50, 50}},
		{[]float64{2, 1}, []int{67, 33}},
		{[]float64{1, 1, 1}, []int{33, 33, 33}},
		{[]float64{50, 50}, []int{50, 50}},
	}
	for _, tc := range cases {
		got := NormalizeLayout(tc.layout)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("NormalizeLayout(%v) = %v, want %v", tc.layout, got, tc.want)
		}
	}
	if NormalizeLayout([]float64{0, 0}) != nil {
		t.Fatal("zero-sum layout should normalize to nil")
	}
	if NormalizeLayout([]float64{1, -2}) != nil {
		t.Fatal("negative ratios should normalize to nil")
	}
}

func TestReorderInColumnScopesToOneColumn(t *testing.T) {
	engine := newTestEngine()
	out := engine.TransformToColumns(paragraphs(5), []int{0, 1, 2, 3, 4}, []float64{1, 1})
	data := out[0].Data.(blocks.ColumnsData)
	first := data.Columns[0]
	secondBefore := ids(data.Columns[1].Blocks)

	moved := engine.ReorderInColumn(out, first.ID, 0, 2)
	movedData := moved[0].Data.(blocks.ColumnsData)
	if !reflect.DeepEqual(ids(movedData.Columns[0].Blocks), []string{"p1", "p2", "p0"}) {
		t.Fatalf("unexpected column order %v", ids(movedData.Columns[0].Blocks))
	}
	if !reflect.DeepEqual(ids(movedData.Columns[1].Blocks), secondBefore) {
		t.Fatal("sibling column must stay untouched")
	}

	same := engine.ReorderInColumn(out, "missing-column", 0, 1)
	sameData := same[0].Data.(blocks.ColumnsData)
	if !reflect.DeepEqual(ids(sameData.Columns[0].Blocks), ids(first.Blocks)) {
		t.Fatal("unknown column id should be a no-op")
	}
}

func TestReplaceAllReindexes(t *testing.T) {
	engine := newTestEngine()
	replacement := paragraphs(3)
	replacement[0].Order = 9
	replacement[2].Order = -4

	out := engine.ReplaceAll(paragraphs(1), replacement)
	if len(out) != 3 {
		t.Fatalf("expected replacement length 3, got %d", len(out))
	}
	assertDenseOrder(t, out)
}

func TestOperationsNeverMutateInput(t *testing.T) {
	engine := newTestEngine()
	list := paragraphs(3)
	snapshot := blocks.CloneList(list)

	engine.Add(list, blocks.TypeQuote, nil)
	engine.Remove(list, 0)
	engine.Reorder(list, 0, 2)
	engine.Duplicate(list, 1)
	if _, err := engine.Group(list, []int{0, 1}); err != nil {
		t.Fatalf("group: %v", err)
	}
	engine.TransformToColumns(list, []int{0, 1}, []float64{1, 1})

	if !reflect.DeepEqual(list, snapshot) {
		t.Fatal("input list was mutated by an engine operation")
	}
}
