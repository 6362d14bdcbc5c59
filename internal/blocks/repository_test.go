package blocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestAssignDurableIDsIsDeterministic(t *testing.T) {
	articleID := uuid.New()
	list := []Block{
		{ID: "temp-a", Type: TypeHeading, Data: HeadingData{Content: "Top"}},
		{ID: "temp-b", Type: TypeGroup, Data: GroupData{Blocks: []Block{
			{ID: "temp-c", Type: TypeParagraph, Data: ParagraphData{Content: "nested"}},
		}}},
	}

	first := AssignDurableIDs(articleID, list)
	second := AssignDurableIDs(articleID, list)

	for i := range first {
		if IsTempID(first[i].ID) {
			t.Fatalf("block %d kept temp id %s", i, first[i].ID)
		}
		if first[i].ID != second[i].ID {
			t.Fatalf("block %d id not deterministic: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}

	group, ok := first[1].Data.(GroupData)
	if !ok {
		t.Fatalf("expected GroupData, got %T", first[1].Data)
	}
	if IsTempID(group.Blocks[0].ID) {
		t.Fatalf("nested block kept temp id %s", group.Blocks[0].ID)
	}
}

func TestAssignDurableIDsKeepsExistingIDs(t *testing.T) {
	articleID := uuid.New()
	durable := uuid.New().String()
	list := []Block{{ID: durable, Type: TypeParagraph, Data: ParagraphData{}}}

	out := AssignDurableIDs(articleID, list)
	if out[0].ID != durable {
		t.Fatalf("durable id replaced: %s", out[0].ID)
	}
	if out[0].ArticleID != articleID {
		t.Fatalf("article id not stamped: %s", out[0].ArticleID)
	}
}

func TestMemoryRepositoryReplaceAll(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	articleID := uuid.New()

	saved, err := repo.ReplaceForArticle(ctx, articleID, []Block{
		{ID: "temp-1", Type: TypeHeading, Data: HeadingData{Content: "One"}},
		{ID: "temp-2", Type: TypeParagraph, Data: ParagraphData{Content: "Two"}},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("expected 2 saved blocks, got %d", len(saved))
	}

	// A shorter replacement supersedes the previous rows wholesale.
	if _, err := repo.ReplaceForArticle(ctx, articleID, saved[:1]); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	listed, err := repo.ListForArticle(ctx, articleID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 block after shrink, got %d", len(listed))
	}

	// Returned slices never alias the store.
	listed[0].Data = ParagraphData{Content: "mutated"}
	again, err := repo.ListForArticle(ctx, articleID)
	if err != nil {
		t.Fatalf("list again: %v", err)
	}
	if heading, ok := again[0].Data.(HeadingData); !ok || heading.Content != "One" {
		t.Fatalf("store aliased caller slice: %+v", again[0].Data)
	}

	if err := repo.DeleteForArticle(ctx, articleID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	empty, err := repo.ListForArticle(ctx, articleID)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no blocks after delete, got %d", len(empty))
	}
}
