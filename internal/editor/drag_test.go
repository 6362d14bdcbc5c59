package editor

import (
	"testing"

	"github.com/goliatone/go-newsroom/internal/blocks"
	documentcmd "github.com/goliatone/go-newsroom/internal/commands/document"
)

func TestNormalizeDragRootReorder(t *testing.T) {
	msg, ok := NormalizeDrag(DragResult{
		DraggableID: "block-1",
		Source:      DragLocation{DroppableID: RootDroppableID, Index: 0},
		Destination: &DragLocation{DroppableID: RootDroppableID, Index: 2},
	})
	if !ok {
		t.Fatal("expected a command")
	}
	cmd, ok := msg.(documentcmd.ReorderBlocksCommand)
	if !ok {
		t.Fatalf("expected ReorderBlocksCommand, got %T", msg)
	}
	if cmd.From != 0 || cmd.To != 2 {
		t.Fatalf("unexpected indexes %+v", cmd)
	}
}

func TestNormalizeDragColumnReorder(t *testing.T) {
	msg, ok := NormalizeDrag(DragResult{
		Source:      DragLocation{DroppableID: "column-abc123", Index: 1},
		Destination: &DragLocation{DroppableID: "column-abc123", Index: 0},
	})
	if !ok {
		t.Fatal("expected a command")
	}
	cmd, ok := msg.(documentcmd.ReorderInColumnCommand)
	if !ok {
		t.Fatalf("expected ReorderInColumnCommand, got %T", msg)
	}
	if cmd.ColumnID != "abc123" || cmd.From != 1 || cmd.To != 0 {
		t.Fatalf("unexpected command %+v", cmd)
	}
}

func TestNormalizeDragColumnIDOverride(t *testing.T) {
	msg, ok := NormalizeDrag(DragResult{
		Source:      DragLocation{DroppableID: RootDroppableID, Index: 2},
		Destination: &DragLocation{DroppableID: RootDroppableID, Index: 0},
		ColumnID:    "col-9",
	})
	if !ok {
		t.Fatal("expected a command")
	}
	cmd, ok := msg.(documentcmd.ReorderInColumnCommand)
	if !ok {
		t.Fatalf("expected ReorderInColumnCommand, got %T", msg)
	}
	if cmd.ColumnID != "col-9" || cmd.From != 2 || cmd.To != 0 {
		t.Fatalf("unexpected command %+v", cmd)
	}
}

func TestNormalizeDragPayloadInsert(t *testing.T) {
	payload := blocks.Block{
		ID:   "temp-payload",
		Type: blocks.TypeQuote,
		Data: blocks.QuoteData{Content: "carried as-is"},
	}
	msg, ok := NormalizeDrag(DragResult{
		Destination: &DragLocation{DroppableID: RootDroppableID, Index: 1},
		Payload:     &payload,
	})
	if !ok {
		t.Fatal("expected a command")
	}
	cmd, ok := msg.(documentcmd.InsertBlockCommand)
	if !ok {
		t.Fatalf("expected InsertBlockCommand, got %T", msg)
	}
	if cmd.AtIndex == nil || *cmd.AtIndex != 1 {
		t.Fatalf("expected insert at 1, got %+v", cmd.AtIndex)
	}
	if cmd.Block.ID != "temp-payload" || cmd.Block.Type != blocks.TypeQuote {
		t.Fatalf("payload must travel untouched, got %+v", cmd.Block)
	}
	if data := cmd.Block.Data.(blocks.QuoteData); data.Content != "carried as-is" {
		t.Fatalf("payload data lost: %+v", data)
	}
}

func TestNormalizeDragPayloadWithoutDestinationDropped(t *testing.T) {
	payload := blocks.Block{Type: blocks.TypeQuote}
	if _, ok := NormalizeDrag(DragResult{Payload: &payload}); ok {
		t.Fatal("payload drop outside any droppable must be discarded")
	}
}

func TestNormalizeDragReplacementList(t *testing.T) {
	replacement := []blocks.Block{
		{ID: "a", Type: blocks.TypeHeading, Order: 5},
		{ID: "b", Type: blocks.TypeParagraph, Order: 9},
	}
	msg, ok := NormalizeDrag(DragResult{Replacement: replacement})
	if !ok {
		t.Fatal("expected a command")
	}
	cmd, ok := msg.(documentcmd.ReplaceBlocksCommand)
	if !ok {
		t.Fatalf("expected ReplaceBlocksCommand, got %T", msg)
	}
	if len(cmd.Blocks) != 2 || cmd.Blocks[0].ID != "a" || cmd.Blocks[1].ID != "b" {
		t.Fatalf("replacement list mangled: %+v", cmd.Blocks)
	}

	// The command must carry its own copy of the list.
	replacement[0].ID = "mutated"
	if cmd.Blocks[0].ID != "a" {
		t.Fatal("replacement must be cloned into the command")
	}
}

func TestApplyDragPayloadInsertBypassesDefaults(t *testing.T) {
	f := loadedFixture(t)
	s := f.session
	mustAdd(t, s, blocks.TypeParagraph)
	mustAdd(t, s, blocks.TypeParagraph)

	payload := blocks.Block{
		Type: blocks.TypeQuote,
		Data: blocks.QuoteData{Content: "dropped in", Attribution: "source"},
	}
	applied, err := s.ApplyDrag(DragResult{
		Destination: &DragLocation{DroppableID: RootDroppableID, Index: 1},
		Payload:     &payload,
	})
	if err != nil {
		t.Fatalf("apply drag: %v", err)
	}
	if !applied {
		t.Fatal("payload drop should apply")
	}

	list := s.Blocks()
	if len(list) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(list))
	}
	if list[1].Type != blocks.TypeQuote {
		t.Fatalf("payload should land at index 1, got %s", list[1].Type)
	}
	data := list[1].Data.(blocks.QuoteData)
	if data.Content != "dropped in" || data.Attribution != "source" {
		t.Fatalf("payload must keep its built data, got %+v", data)
	}
	for i, block := range list {
		if block.Order != i {
			t.Fatalf("block %d has order %d, want dense sequence", i, block.Order)
		}
	}
}

func TestApplyDragReplacementReindexes(t *testing.T) {
	f := loadedFixture(t)
	s := f.session
	mustAdd(t, s, blocks.TypeParagraph)

	applied, err := s.ApplyDrag(DragResult{
		Replacement: []blocks.Block{
			{ID: "x", Type: blocks.TypeHeading, Order: 7},
			{ID: "y", Type: blocks.TypeParagraph, Order: 3},
		},
	})
	if err != nil {
		t.Fatalf("apply drag: %v", err)
	}
	if !applied {
		t.Fatal("replacement drop should apply")
	}

	list := s.Blocks()
	if len(list) != 2 {
		t.Fatalf("expected 2 blocks after replacement, got %d", len(list))
	}
	if list[0].Order != 0 || list[1].Order != 1 {
		t.Fatalf("replacement must be reindexed, got %d/%d", list[0].Order, list[1].Order)
	}
	if list[0].ID != "x" || list[1].ID != "y" {
		t.Fatalf("replacement order must follow the list, got %+v", list)
	}
}

func TestNormalizeDragNilDestinationDropped(t *testing.T) {
	if _, ok := NormalizeDrag(DragResult{
		Source: DragLocation{DroppableID: RootDroppableID, Index: 0},
	}); ok {
		t.Fatal("nil destination must be dropped silently")
	}
}

func TestNormalizeDragSamePositionDropped(t *testing.T) {
	if _, ok := NormalizeDrag(DragResult{
		Source:      DragLocation{DroppableID: RootDroppableID, Index: 1},
		Destination: &DragLocation{DroppableID: RootDroppableID, Index: 1},
	}); ok {
		t.Fatal("same-position drop must be discarded")
	}
}

func TestNormalizeDragCrossDroppableDropped(t *testing.T) {
	if _, ok := NormalizeDrag(DragResult{
		Source:      DragLocation{DroppableID: RootDroppableID, Index: 0},
		Destination: &DragLocation{DroppableID: "column-x", Index: 0},
	}); ok {
		t.Fatal("cross-droppable drag must be discarded")
	}
}

func TestNormalizeDragUnknownDroppableDropped(t *testing.T) {
	if _, ok := NormalizeDrag(DragResult{
		Source:      DragLocation{DroppableID: "sidebar", Index: 0},
		Destination: &DragLocation{DroppableID: "sidebar", Index: 1},
	}); ok {
		t.Fatal("unknown droppable must be discarded")
	}
}
