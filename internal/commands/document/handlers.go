package documentcmd

import (
	"context"

	"github.com/goliatone/go-newsroom/internal/blocks"
	"github.com/goliatone/go-newsroom/internal/commands"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

// Mutator is the surface the command handlers drive. The editor session
// implements it; handlers stay ignorant of history and persistence.
type Mutator interface {
	AddBlock(ctx context.Context, t blocks.Type, afterIndex *int) error
	InsertBlock(ctx context.Context, block blocks.Block, atIndex *int) error
	UpdateBlock(ctx context.Context, index int, data blocks.BlockData) error
	RemoveBlock(ctx context.Context, index int) error
	ReorderBlocks(ctx context.Context, from, to int) error
	ReorderInColumn(ctx context.Context, columnID string, from, to int) error
	DuplicateBlock(ctx context.Context, index int) error
	GroupBlocks(ctx context.Context, indices []int) error
	UngroupBlock(ctx context.Context, index int) error
	TransformToColumns(ctx context.Context, indices []int, layout []float64) error
	ReplaceBlocks(ctx context.Context, list []blocks.Block) error
}

// Handlers bundles one wired handler per command in the set.
type Handlers struct {
	AddBlock           *commands.Handler[AddBlockCommand]
	InsertBlock        *commands.Handler[InsertBlockCommand]
	UpdateBlock        *commands.Handler[UpdateBlockCommand]
	RemoveBlock        *commands.Handler[RemoveBlockCommand]
	ReorderBlocks      *commands.Handler[ReorderBlocksCommand]
	ReorderInColumn    *commands.Handler[ReorderInColumnCommand]
	DuplicateBlock     *commands.Handler[DuplicateBlockCommand]
	GroupBlocks        *commands.Handler[GroupBlocksCommand]
	UngroupBlock       *commands.Handler[UngroupBlockCommand]
	TransformToColumns *commands.Handler[TransformToColumnsCommand]
	ReplaceBlocks      *commands.Handler[ReplaceBlocksCommand]
}

// NewHandlers wires every document command to the given mutator.
func NewHandlers(mutator Mutator, logger interfaces.Logger) *Handlers {
	return &Handlers{
		AddBlock: commands.NewHandler(
			func(ctx context.Context, msg AddBlockCommand) error {
				return mutator.AddBlock(ctx, msg.BlockType, msg.AfterIndex)
			},
			commands.WithLogger[AddBlockCommand](logger),
			commands.WithOperation[AddBlockCommand]("document.add_block"),
		),
		InsertBlock: commands.NewHandler(
			func(ctx context.Context, msg InsertBlockCommand) error {
				return mutator.InsertBlock(ctx, msg.Block, msg.AtIndex)
			},
			commands.WithLogger[InsertBlockCommand](logger),
			commands.WithOperation[InsertBlockCommand]("document.insert_block"),
		),
		UpdateBlock: commands.NewHandler(
			func(ctx context.Context, msg UpdateBlockCommand) error {
				return mutator.UpdateBlock(ctx, msg.Index, msg.Data)
			},
			commands.WithLogger[UpdateBlockCommand](logger),
			commands.WithOperation[UpdateBlockCommand]("document.update_block"),
		),
		RemoveBlock: commands.NewHandler(
			func(ctx context.Context, msg RemoveBlockCommand) error {
				return mutator.RemoveBlock(ctx, msg.Index)
			},
			commands.WithLogger[RemoveBlockCommand](logger),
			commands.WithOperation[RemoveBlockCommand]("document.remove_block"),
		),
		ReorderBlocks: commands.NewHandler(
			func(ctx context.Context, msg ReorderBlocksCommand) error {
				return mutator.ReorderBlocks(ctx, msg.From, msg.To)
			},
			commands.WithLogger[ReorderBlocksCommand](logger),
			commands.WithOperation[ReorderBlocksCommand]("document.reorder_blocks"),
		),
		ReorderInColumn: commands.NewHandler(
			func(ctx context.Context, msg ReorderInColumnCommand) error {
				return mutator.ReorderInColumn(ctx, msg.ColumnID, msg.From, msg.To)
			},
			commands.WithLogger[ReorderInColumnCommand](logger),
			commands.WithOperation[ReorderInColumnCommand]("document.reorder_in_column"),
		),
		DuplicateBlock: commands.NewHandler(
			func(ctx context.Context, msg DuplicateBlockCommand) error {
				return mutator.DuplicateBlock(ctx, msg.Index)
			},
			commands.WithLogger[DuplicateBlockCommand](logger),
			commands.WithOperation[DuplicateBlockCommand]("document.duplicate_block"),
		),
		GroupBlocks: commands.NewHandler(
			func(ctx context.Context, msg GroupBlocksCommand) error {
				return mutator.GroupBlocks(ctx, msg.Indices)
			},
			commands.WithLogger[GroupBlocksCommand](logger),
			commands.WithOperation[GroupBlocksCommand]("document.group_blocks"),
		),
		UngroupBlock: commands.NewHandler(
			func(ctx context.Context, msg UngroupBlockCommand) error {
				return mutator.UngroupBlock(ctx, msg.Index)
			},
			commands.WithLogger[UngroupBlockCommand](logger),
			commands.WithOperation[UngroupBlockCommand]("document.ungroup_block"),
		),
		TransformToColumns: commands.NewHandler(
			func(ctx context.Context, msg TransformToColumnsCommand) error {
				return mutator.TransformToColumns(ctx, msg.Indices, msg.Layout)
			},
			commands.WithLogger[TransformToColumnsCommand](logger),
			commands.WithOperation[TransformToColumnsCommand]("document.transform_to_columns"),
		),
		ReplaceBlocks: commands.NewHandler(
			func(ctx context.Context, msg ReplaceBlocksCommand) error {
				return mutator.ReplaceBlocks(ctx, msg.Blocks)
			},
			commands.WithLogger[ReplaceBlocksCommand](logger),
			commands.WithOperation[ReplaceBlocksCommand]("document.replace_blocks"),
		),
	}
}
