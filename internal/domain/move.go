package domain

import "time"

// MoveRecord is the audit entry written for every answered move request.
// It describes the request, not the game, and cannot be used to resume one.
type MoveRecord struct {
	RequestID  string    `json:"request_id"`
	Rows       int       `json:"rows"`
	Cols       int       `json:"cols"`
	Pieces     int       `json:"pieces"`
	Column     *int      `json:"column"`
	Cached     bool      `json:"cached"`
	DurationMs int64     `json:"duration_ms"`
	Client     string    `json:"client"`
	CreatedAt  time.Time `json:"created_at"`
}

// MoveStats aggregates the move log.
type MoveStats struct {
	TotalRequests int         `json:"totalRequests"`
	NoMoveCount   int         `json:"noMoveCount"`
	CachedCount   int         `json:"cachedCount"`
	AvgDurationMs float64     `json:"avgDurationMs"`
	ColumnCounts  map[int]int `json:"columnCounts"`
}
