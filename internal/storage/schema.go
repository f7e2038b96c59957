package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// One row per successful completion, for auditing XP awarded.
		`CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			completed_at DATETIME NOT NULL,
			xp_awarded INTEGER NOT NULL,
			level_after INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_completions_completed_at ON completions(completed_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
