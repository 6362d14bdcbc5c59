// Command example exercises the newsroom module end to end: it builds a
// sqlite-backed module, imports a markdown document, edits it through a
// session, and serves the admin API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/google/uuid"

	newsroom "github.com/goliatone/go-newsroom"
)

const sampleDocument = `---
title: Welcome to the Newsroom
status: draft
tags:
  - announcements
---

# Welcome

This article was imported from Markdown.

- Block based editing
- Undo and redo
- Replace-all persistence
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("example: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("example", flag.ExitOnError)
	addr := fs.String("addr", "", "Address to serve the admin API on (empty to skip)")
	dsn := fs.String("dsn", "file:example?mode=memory&cache=shared", "SQLite DSN")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := newsroom.DefaultConfig()
	cfg.Storage.Driver = "sqlite"
	cfg.Storage.DSN = *dsn
	cfg.Logging.Format = "console"

	module, err := newsroom.New(cfg)
	if err != nil {
		return fmt.Errorf("build module: %w", err)
	}
	defer module.DB().Close()

	ctx := context.Background()
	if err := newsroom.RunMigrations(ctx, module.DB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	authorID := uuid.New()
	result, err := module.Importer().Import(ctx, []byte(sampleDocument), authorID)
	if err != nil {
		return fmt.Errorf("import markdown: %w", err)
	}
	fmt.Printf("imported %q as %s with %d blocks\n", result.Article.Title, result.Article.Slug, len(result.Blocks))

	session := module.NewSession(newsroom.SessionHooks{})
	if err := session.Load(ctx, result.Article.Slug); err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if err := session.AddBlock(ctx, "quote", nil); err != nil {
		return fmt.Errorf("add quote: %w", err)
	}
	session.Undo()
	if _, err := session.Save(ctx, newsroom.SaveOptions{Publish: true}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	html, err := module.Renderer().RenderToString(session.Blocks())
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fmt.Printf("rendered %d bytes of HTML\n", len(html))

	if *addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	if err := module.RegisterRoutes(mux); err != nil {
		return fmt.Errorf("register routes: %w", err)
	}
	fmt.Printf("serving admin API on %s\n", *addr)
	return http.ListenAndServe(*addr, mux)
}
