// Command import loads markdown documents into the newsroom database. Each
// file becomes an article with its body converted into content blocks.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	newsroom "github.com/goliatone/go-newsroom"
)

func main() {
	if err := runImport(os.Args[1:]); err != nil {
		log.Fatalf("markdown import: %v", err)
	}
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("markdown-import", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	dsn := fs.String("dsn", "newsroom.db", "SQLite DSN to import into")
	author := fs.String("author", "", "Author ID recorded on imported articles")
	migrate := fs.Bool("migrate", true, "Apply schema migrations before importing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	authorID := uuid.Nil
	if *author != "" {
		parsed, err := uuid.Parse(*author)
		if err != nil {
			return fmt.Errorf("parse author: %w", err)
		}
		authorID = parsed
	}
	if authorID == uuid.Nil {
		authorID = uuid.New()
	}

	cfg := newsroom.DefaultConfig()
	cfg.Storage.Driver = "sqlite"
	cfg.Storage.DSN = *dsn

	module, err := newsroom.New(cfg)
	if err != nil {
		return fmt.Errorf("build module: %w", err)
	}
	defer module.DB().Close()

	ctx := context.Background()
	if *migrate {
		if err := newsroom.RunMigrations(ctx, module.DB()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	matches, err := filepath.Glob(filepath.Join(*contentDir, *pattern))
	if err != nil {
		return fmt.Errorf("discover documents: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no documents matched %s under %s", *pattern, *contentDir)
	}

	for _, path := range matches {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		result, err := module.Importer().Import(ctx, source, authorID)
		if err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}
		fmt.Printf("%s -> %s (%d blocks)\n", path, result.Article.Slug, len(result.Blocks))
	}
	return nil
}
