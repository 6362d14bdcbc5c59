package newsroom

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/uptrace/bun"
)

//go:embed data/sql/migrations/*.sql
var migrationsFS embed.FS

// GetMigrationsFS returns the embedded migration files so hosts can run them
// through their own migration tooling.
func GetMigrationsFS() embed.FS {
	return migrationsFS
}

// RunMigrations applies the embedded schema migrations in lexical order.
// Statements use IF NOT EXISTS guards so re-running is safe.
func RunMigrations(ctx context.Context, db *bun.DB) error {
	if db == nil {
		return fmt.Errorf("newsroom: migrations require a database")
	}

	entries, err := fs.Glob(migrationsFS, "data/sql/migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("newsroom: list migrations: %w", err)
	}
	sort.Strings(entries)

	for _, name := range entries {
		raw, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("newsroom: read migration %s: %w", name, err)
		}
		for _, stmt := range splitStatements(string(raw)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("newsroom: apply migration %s: %w", name, err)
			}
		}
	}
	return nil
}

func splitStatements(script string) []string {
	parts := strings.Split(script, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
