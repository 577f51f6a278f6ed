package repo

import (
	"context"

	"animagen/internal/domain"
	"animagen/internal/infra"
)

// HistoryRepositoryPG persists completed generations using PostgreSQL. The
// pipeline itself is stateless; this is an optional audit surface wired only
// when a database is configured.
type HistoryRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewHistoryRepository constructs a history repository instance.
func NewHistoryRepository(sql infra.SQLExecutor) *HistoryRepositoryPG {
	return &HistoryRepositoryPG{sql: sql}
}

// Insert records one completed generation.
func (r *HistoryRepositoryPG) Insert(ctx context.Context, entry domain.HistoryEntry) error {
	_, err := r.sql.Exec(ctx, `
INSERT INTO generations (id, idea, title, description, video_key, created_at)
VALUES ($1, $2, $3, $4, $5, now());
`, entry.ID, entry.Idea, entry.Title, entry.Description, entry.VideoKey)
	return err
}

// ListRecent returns the most recent generations, newest first.
func (r *HistoryRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.sql.Query(ctx, `
SELECT id, idea, title, description, video_key, created_at
FROM generations
ORDER BY created_at DESC
LIMIT $1;
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		if err := rows.Scan(&entry.ID, &entry.Idea, &entry.Title, &entry.Description, &entry.VideoKey, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
