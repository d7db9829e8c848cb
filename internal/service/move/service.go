package move

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/showai/connect4-engine/internal/domain"
	"github.com/showai/connect4-engine/internal/service/worker"
	"github.com/showai/connect4-engine/pkg/uid"
)

const ErrStatsUnavailable domain.Error = "move statistics unavailable"

// Computer runs one search and returns its single result.
type Computer interface {
	Compute(ctx context.Context, req worker.Request) (worker.Result, error)
}

type MoveCache interface {
	GetMove(ctx context.Context, key string) (int, bool, error)
	SetMove(ctx context.Context, key string, col int, ttl time.Duration) error
}

type MoveRecorder interface {
	SaveMove(ctx context.Context, rec domain.MoveRecord) error
	GetStats(ctx context.Context) (*domain.MoveStats, error)
}

type EventPublisher interface {
	PublishMove(ctx context.Context, rec domain.MoveRecord) error
}

// MoveRequest is what callers send: a full board snapshot.
type MoveRequest struct {
	Board []int `json:"board"`
	Rows  int   `json:"rows"`
	Cols  int   `json:"cols"`

	RequestID string `json:"-"`
	Client    string `json:"-"`
}

// MoveResponse carries the chosen column. A nil Column means no column is
// playable and the caller should treat the game as drawn.
type MoveResponse struct {
	RequestID  string `json:"requestId"`
	Column     *int   `json:"column"`
	Winner     string `json:"winner,omitempty"`
	Cached     bool   `json:"cached"`
	DurationMs int64  `json:"durationMs"`
}

// Service is the entry point for move requests (facade). Cache, Recorder
// and Publisher are optional.
type Service struct {
	Pool      Computer
	Cache     MoveCache
	Recorder  MoveRecorder
	Publisher EventPublisher

	Depth    int
	CacheTTL time.Duration
	Timeout  time.Duration

	pending sync.WaitGroup
}

func NewService(pool Computer, depth int, timeout time.Duration) *Service {
	return &Service{
		Pool:     pool,
		Depth:    depth,
		CacheTTL: time.Hour,
		Timeout:  timeout,
	}
}

// ComputeMove validates the snapshot, then answers from the cache or the
// worker pool.
func (s *Service) ComputeMove(ctx context.Context, req MoveRequest) (*MoveResponse, error) {
	start := time.Now()

	if req.Rows == 0 {
		req.Rows = domain.DefaultRows
	}
	if req.Cols == 0 {
		req.Cols = domain.DefaultCols
	}
	if req.RequestID == "" {
		req.RequestID = uid.NewRequestID()
	}

	cells, err := domain.ParseCells(req.Board)
	if err != nil {
		return nil, err
	}
	board, err := domain.NewBoardFromCells(cells, req.Rows, req.Cols)
	if err != nil {
		return nil, err
	}

	resp := &MoveResponse{RequestID: req.RequestID}
	if w := domain.Winner(board); w != domain.Empty {
		resp.Winner = w.String()
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	key := s.cacheKey(board)
	col, found := s.lookup(ctx, key)
	if found {
		resp.Cached = true
	} else {
		res, err := s.Pool.Compute(ctx, worker.Request{
			ID:    req.RequestID,
			Cells: cells,
			Rows:  req.Rows,
			Cols:  req.Cols,
		})
		if err != nil {
			return nil, fmt.Errorf("compute move %s: %w", req.RequestID, err)
		}
		col = domain.NoMove
		if res.HasMove {
			col = res.Column
		}
		s.store(ctx, key, col)
	}

	if col != domain.NoMove {
		c := col
		resp.Column = &c
	}
	resp.DurationMs = time.Since(start).Milliseconds()

	s.afterMove(domain.MoveRecord{
		RequestID:  req.RequestID,
		Rows:       req.Rows,
		Cols:       req.Cols,
		Pieces:     board.Rows*board.Cols - board.Count(domain.Empty),
		Column:     resp.Column,
		Cached:     resp.Cached,
		DurationMs: resp.DurationMs,
		Client:     req.Client,
		CreatedAt:  time.Now(),
	})

	return resp, nil
}

// Stats reads the aggregated move log.
func (s *Service) Stats(ctx context.Context) (*domain.MoveStats, error) {
	if s.Recorder == nil {
		return nil, ErrStatsUnavailable
	}
	return s.Recorder.GetStats(ctx)
}

// Wait blocks until pending log and event writes have finished.
func (s *Service) Wait() {
	s.pending.Wait()
}

func (s *Service) lookup(ctx context.Context, key string) (int, bool) {
	if s.Cache == nil {
		return 0, false
	}
	col, found, err := s.Cache.GetMove(ctx, key)
	if err != nil {
		log.Printf("[ENGINE] Cache lookup failed: %v", err)
		return 0, false
	}
	return col, found
}

func (s *Service) store(ctx context.Context, key string, col int) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.SetMove(ctx, key, col, s.CacheTTL); err != nil {
		log.Printf("[ENGINE] Cache store failed: %v", err)
	}
}

// afterMove writes the log entry and analytics event in the background.
// Failures are logged and never reach the caller.
func (s *Service) afterMove(rec domain.MoveRecord) {
	if s.Recorder == nil && s.Publisher == nil {
		return
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if s.Recorder != nil {
			if err := s.Recorder.SaveMove(ctx, rec); err != nil {
				log.Printf("[DB] Failed to record move %s: %v", rec.RequestID, err)
			}
		}
		if s.Publisher != nil {
			if err := s.Publisher.PublishMove(ctx, rec); err != nil {
				log.Printf("[KAFKA] Failed to publish move %s: %v", rec.RequestID, err)
			}
		}
	}()
}

// cacheKey identifies a board snapshot at the configured depth.
func (s *Service) cacheKey(b *domain.Board) string {
	var sb strings.Builder
	sb.WriteString("d")
	sb.WriteString(strconv.Itoa(s.Depth))
	sb.WriteString(":")
	sb.WriteString(strconv.Itoa(b.Rows))
	sb.WriteString("x")
	sb.WriteString(strconv.Itoa(b.Cols))
	sb.WriteString(":")
	for _, c := range b.Cells() {
		sb.WriteByte(byte('0' + c))
	}
	return sb.String()
}
