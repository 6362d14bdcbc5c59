package editor

import (
	"context"
	"strings"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-newsroom/internal/blocks"
	documentcmd "github.com/goliatone/go-newsroom/internal/commands/document"
)

// RootDroppableID is the droppable id of the top-level block list.
const RootDroppableID = "article-blocks"

// columnDroppablePrefix namespaces column droppables as column-<columnID>.
const columnDroppablePrefix = "column-"

// DragLocation is one endpoint of a drag gesture.
type DragLocation struct {
	DroppableID string `json:"droppableId"`
	Index       int    `json:"index"`
}

// DragResult is the raw outcome of a drag-and-drop gesture as emitted by the
// front-end drag layer. Three shapes arrive: a plain source/destination move,
// a Payload carrying a fully built block dropped into the document, or a
// Replacement list that swaps the whole document in one gesture. ColumnID,
// when set, scopes a move to that column regardless of droppable ids.
type DragResult struct {
	DraggableID string         `json:"draggableId"`
	Source      DragLocation   `json:"source"`
	Destination *DragLocation  `json:"destination"`
	Payload     *blocks.Block  `json:"payload,omitempty"`
	Replacement []blocks.Block `json:"replacement,omitempty"`
	ColumnID    string         `json:"columnId,omitempty"`
}

// NormalizeDrag maps a drag gesture onto the document command set. A
// Replacement list wins over everything else and becomes a replace-all. A
// Payload needs a destination and becomes an insert at that index, keeping
// the block exactly as built. Plain moves become reorders, column-scoped when
// ColumnID or a column droppable says so. A drop outside any droppable (nil
// destination) and a drop back onto the source position are both silently
// discarded, as are cross-droppable moves.
func NormalizeDrag(result DragResult) (command.Message, bool) {
	if len(result.Replacement) > 0 {
		return documentcmd.ReplaceBlocksCommand{
			Blocks: blocks.CloneList(result.Replacement),
		}, true
	}

	if result.Destination == nil {
		return nil, false
	}
	dest := *result.Destination

	if result.Payload != nil {
		at := dest.Index
		return documentcmd.InsertBlockCommand{
			Block:   result.Payload.Clone(),
			AtIndex: &at,
		}, true
	}

	source := result.Source
	if source.DroppableID != dest.DroppableID {
		return nil, false
	}
	if source.Index == dest.Index {
		return nil, false
	}

	if result.ColumnID != "" {
		return documentcmd.ReorderInColumnCommand{
			ColumnID: result.ColumnID,
			From:     source.Index,
			To:       dest.Index,
		}, true
	}

	if source.DroppableID == RootDroppableID {
		return documentcmd.ReorderBlocksCommand{
			From: source.Index,
			To:   dest.Index,
		}, true
	}

	if columnID, ok := strings.CutPrefix(source.DroppableID, columnDroppablePrefix); ok && columnID != "" {
		return documentcmd.ReorderInColumnCommand{
			ColumnID: columnID,
			From:     source.Index,
			To:       dest.Index,
		}, true
	}

	return nil, false
}

// ApplyDrag normalizes the gesture and applies it to the session. Discarded
// gestures return false with no error.
func (s *Session) ApplyDrag(result DragResult) (bool, error) {
	msg, ok := NormalizeDrag(result)
	if !ok {
		return false, nil
	}

	ctx := context.Background()
	switch cmd := msg.(type) {
	case documentcmd.ReorderBlocksCommand:
		return true, s.ReorderBlocks(ctx, cmd.From, cmd.To)
	case documentcmd.ReorderInColumnCommand:
		return true, s.ReorderInColumn(ctx, cmd.ColumnID, cmd.From, cmd.To)
	case documentcmd.InsertBlockCommand:
		return true, s.InsertBlock(ctx, cmd.Block, cmd.AtIndex)
	case documentcmd.ReplaceBlocksCommand:
		return true, s.ReplaceBlocks(ctx, cmd.Blocks)
	default:
		return false, nil
	}
}
