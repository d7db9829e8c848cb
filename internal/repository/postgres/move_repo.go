package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/showai/connect4-engine/internal/domain"
)

type MoveLogRepo struct {
	DB *sql.DB
}

func NewMoveLogRepo(db *sql.DB) *MoveLogRepo {
	return &MoveLogRepo{DB: db}
}

// SaveMove appends one request to the move log. Replayed request IDs are ignored.
func (r *MoveLogRepo) SaveMove(ctx context.Context, rec domain.MoveRecord) error {
	query := `
	INSERT INTO move_log (request_id, board_rows, board_cols, pieces, chosen_col, cached, duration_ms, client, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (request_id) DO NOTHING;
	`

	var col sql.NullInt64
	if rec.Column != nil {
		col = sql.NullInt64{Int64: int64(*rec.Column), Valid: true}
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.DB.ExecContext(ctx, query, rec.RequestID, rec.Rows, rec.Cols, rec.Pieces, col, rec.Cached, rec.DurationMs, rec.Client, createdAt)
	if err != nil {
		return fmt.Errorf("failed to insert move log: %w", err)
	}
	return nil
}

// GetStats aggregates the whole move log.
func (r *MoveLogRepo) GetStats(ctx context.Context) (*domain.MoveStats, error) {
	query := `
	SELECT COUNT(*),
	       COUNT(*) FILTER (WHERE chosen_col IS NULL),
	       COUNT(*) FILTER (WHERE cached),
	       COALESCE(AVG(duration_ms), 0)
	FROM move_log;
	`

	stats := &domain.MoveStats{ColumnCounts: make(map[int]int)}
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&stats.TotalRequests,
		&stats.NoMoveCount,
		&stats.CachedCount,
		&stats.AvgDurationMs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate move log: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, `
	SELECT chosen_col, COUNT(*)
	FROM move_log
	WHERE chosen_col IS NOT NULL
	GROUP BY chosen_col
	ORDER BY chosen_col;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query column histogram: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var col, count int
		if err := rows.Scan(&col, &count); err != nil {
			return nil, fmt.Errorf("failed to scan column histogram row: %w", err)
		}
		stats.ColumnCounts[col] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read column histogram: %w", err)
	}

	return stats, nil
}

// DeleteOlderThan removes log rows older than the given number of days.
func (r *MoveLogRepo) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	query := `DELETE FROM move_log WHERE created_at < NOW() - make_interval(days => $1);`

	result, err := r.DB.ExecContext(ctx, query, days)
	if err != nil {
		return 0, fmt.Errorf("failed to prune move log: %w", err)
	}
	return result.RowsAffected()
}
