// Package documentcmd defines the closed command set for article document
// mutation. Every structural edit the editor can perform is one of these
// messages; there is no payload shape-sniffing anywhere in the pipeline.
package documentcmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-newsroom/internal/blocks"
)

const (
	addBlockMessageType         = "newsroom.document.add_block"
	insertBlockMessageType      = "newsroom.document.insert_block"
	updateBlockMessageType      = "newsroom.document.update_block"
	removeBlockMessageType      = "newsroom.document.remove_block"
	reorderBlocksMessageType    = "newsroom.document.reorder_blocks"
	reorderInColumnMessageType  = "newsroom.document.reorder_in_column"
	duplicateBlockMessageType   = "newsroom.document.duplicate_block"
	groupBlocksMessageType      = "newsroom.document.group_blocks"
	ungroupBlockMessageType     = "newsroom.document.ungroup_block"
	transformColumnsMessageType = "newsroom.document.transform_to_columns"
	replaceBlocksMessageType    = "newsroom.document.replace_blocks"
)

// AddBlockCommand inserts a new block with its registry default payload.
// AfterIndex nil appends at the end.
type AddBlockCommand struct {
	BlockType  blocks.Type `json:"block_type"`
	AfterIndex *int        `json:"after_index,omitempty"`
}

func (AddBlockCommand) Type() string { return addBlockMessageType }

func (m AddBlockCommand) Validate() error {
	errs := validation.Errors{}
	if m.BlockType == "" {
		errs["block_type"] = validation.NewError("newsroom.document.add.block_type_required", "block_type is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// InsertBlockCommand splices a fully formed block in at AtIndex, skipping
// the registry defaults AddBlockCommand applies. AtIndex nil appends.
type InsertBlockCommand struct {
	Block   blocks.Block `json:"block"`
	AtIndex *int         `json:"at_index,omitempty"`
}

func (InsertBlockCommand) Type() string { return insertBlockMessageType }

func (m InsertBlockCommand) Validate() error {
	if m.Block.Type == "" {
		return validation.Errors{
			"block": validation.NewError("newsroom.document.insert.block_type_required", "block type is required"),
		}
	}
	return nil
}

// UpdateBlockCommand replaces the payload of the block at Index.
type UpdateBlockCommand struct {
	Index int              `json:"index"`
	Data  blocks.BlockData `json:"data"`
}

func (UpdateBlockCommand) Type() string { return updateBlockMessageType }

func (m UpdateBlockCommand) Validate() error {
	errs := validation.Errors{}
	if m.Index < 0 {
		errs["index"] = validation.NewError("newsroom.document.update.index_invalid", "index must not be negative")
	}
	if m.Data == nil {
		errs["data"] = validation.NewError("newsroom.document.update.data_required", "data is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RemoveBlockCommand deletes the block at Index.
type RemoveBlockCommand struct {
	Index int `json:"index"`
}

func (RemoveBlockCommand) Type() string { return removeBlockMessageType }

func (m RemoveBlockCommand) Validate() error {
	if m.Index < 0 {
		return validation.Errors{
			"index": validation.NewError("newsroom.document.remove.index_invalid", "index must not be negative"),
		}
	}
	return nil
}

// ReorderBlocksCommand moves a top-level block from one position to another.
type ReorderBlocksCommand struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (ReorderBlocksCommand) Type() string { return reorderBlocksMessageType }

func (m ReorderBlocksCommand) Validate() error {
	errs := validation.Errors{}
	if m.From < 0 {
		errs["from"] = validation.NewError("newsroom.document.reorder.from_invalid", "from must not be negative")
	}
	if m.To < 0 {
		errs["to"] = validation.NewError("newsroom.document.reorder.to_invalid", "to must not be negative")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReorderInColumnCommand moves a block within one column of a columns block.
type ReorderInColumnCommand struct {
	ColumnID string `json:"column_id"`
	From     int    `json:"from"`
	To       int    `json:"to"`
}

func (ReorderInColumnCommand) Type() string { return reorderInColumnMessageType }

func (m ReorderInColumnCommand) Validate() error {
	errs := validation.Errors{}
	if m.ColumnID == "" {
		errs["column_id"] = validation.NewError("newsroom.document.reorder_column.column_required", "column_id is required")
	}
	if m.From < 0 {
		errs["from"] = validation.NewError("newsroom.document.reorder_column.from_invalid", "from must not be negative")
	}
	if m.To < 0 {
		errs["to"] = validation.NewError("newsroom.document.reorder_column.to_invalid", "to must not be negative")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DuplicateBlockCommand deep-copies the block at Index.
type DuplicateBlockCommand struct {
	Index int `json:"index"`
}

func (DuplicateBlockCommand) Type() string { return duplicateBlockMessageType }

func (m DuplicateBlockCommand) Validate() error {
	if m.Index < 0 {
		return validation.Errors{
			"index": validation.NewError("newsroom.document.duplicate.index_invalid", "index must not be negative"),
		}
	}
	return nil
}

// GroupBlocksCommand collapses the blocks at Indices into one group block.
type GroupBlocksCommand struct {
	Indices []int `json:"indices"`
}

func (GroupBlocksCommand) Type() string { return groupBlocksMessageType }

func (m GroupBlocksCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Indices) < 2 {
		errs["indices"] = validation.NewError("newsroom.document.group.indices_required", "grouping requires at least two indices")
	}
	for _, i := range m.Indices {
		if i < 0 {
			errs["indices"] = validation.NewError("newsroom.document.group.index_invalid", "indices must not be negative")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UngroupBlockCommand expands a container block back into its children.
type UngroupBlockCommand struct {
	Index int `json:"index"`
}

func (UngroupBlockCommand) Type() string { return ungroupBlockMessageType }

func (m UngroupBlockCommand) Validate() error {
	if m.Index < 0 {
		return validation.Errors{
			"index": validation.NewError("newsroom.document.ungroup.index_invalid", "index must not be negative"),
		}
	}
	return nil
}

// TransformToColumnsCommand redistributes the selected blocks into columns.
type TransformToColumnsCommand struct {
	Indices []int     `json:"indices"`
	Layout  []float64 `json:"layout"`
}

func (TransformToColumnsCommand) Type() string { return transformColumnsMessageType }

func (m TransformToColumnsCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Indices) == 0 {
		errs["indices"] = validation.NewError("newsroom.document.columns.indices_required", "at least one index is required")
	}
	if len(m.Layout) == 0 {
		errs["layout"] = validation.NewError("newsroom.document.columns.layout_required", "layout is required")
	}
	if len(m.Layout) > 6 {
		errs["layout"] = validation.NewError("newsroom.document.columns.layout_too_wide", "layout supports at most six columns")
	}
	for _, entry := range m.Layout {
		if entry < 0 {
			errs["layout"] = validation.NewError("newsroom.document.columns.layout_invalid", "layout ratios must not be negative")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReplaceBlocksCommand swaps in a full replacement list. Escape hatch for
// structural edits expressed as a whole-list payload.
type ReplaceBlocksCommand struct {
	Blocks []blocks.Block `json:"blocks"`
}

func (ReplaceBlocksCommand) Type() string { return replaceBlocksMessageType }

func (m ReplaceBlocksCommand) Validate() error { return nil }
