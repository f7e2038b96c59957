package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type CompletionRepo struct {
	db *sql.DB
}

func NewCompletionRepo(db *sql.DB) *CompletionRepo {
	return &CompletionRepo{db: db}
}

func (r *CompletionRepo) Insert(ctx context.Context, c Completion) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO completions (task_id, title, completed_at, xp_awarded, level_after)
		VALUES (?, ?, ?, ?, ?)
	`, c.TaskID, c.Title, c.CompletedAt, c.XPAwarded, c.LevelAfter)
	if err != nil {
		return 0, fmt.Errorf("completion insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("completion last insert id: %w", err)
	}
	return id, nil
}

// ListRecent returns the most recent completions, newest first.
func (r *CompletionRepo) ListRecent(ctx context.Context, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, task_id, title, completed_at, xp_awarded, level_after
		FROM completions
		ORDER BY completed_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("completion list: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		if err := rows.Scan(&c.ID, &c.TaskID, &c.Title, &c.CompletedAt, &c.XPAwarded, &c.LevelAfter); err != nil {
			return nil, fmt.Errorf("completion scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion rows: %w", err)
	}
	return out, nil
}

func (r *CompletionRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM completions`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("completion count: %w", err)
	}
	return n, nil
}
