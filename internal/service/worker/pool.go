package worker

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/showai/connect4-engine/internal/domain"
)

const (
	ErrPoolStopped domain.Error = "worker pool stopped"
	ErrQueueFull   domain.Error = "worker queue is full"
)

// SolveFunc computes a move for one board snapshot.
type SolveFunc func(cells []domain.Cell, rows, cols int) (col int, ok bool, err error)

// Request is a single board snapshot handed to the pool.
type Request struct {
	ID    string
	Cells []domain.Cell
	Rows  int
	Cols  int
}

// Result is the one and only reply to a Request.
type Result struct {
	ID       string
	Column   int
	HasMove  bool
	Err      error
	Duration time.Duration
}

type job struct {
	req    Request
	result chan Result
}

// Pool runs searches on a fixed set of goroutines. Jobs never share a
// board; each one builds its own from the submitted snapshot.
type Pool struct {
	size  int
	jobs  chan job
	solve SolveFunc

	mu      sync.RWMutex
	started bool
	stopped bool
	wg      sync.WaitGroup
}

func NewPool(size, queueSize int, solve SolveFunc) *Pool {
	if size <= 0 {
		size = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		size:  size,
		jobs:  make(chan job, queueSize),
		solve: solve,
	}
}

// Start launches the worker goroutines. Calling it twice is a no-op.
func (p *Pool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.stopped {
		return
	}
	p.started = true

	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.run(i)
	}
	log.Printf("[WORKER] Started %d workers (queue size %d)", p.size, cap(p.jobs))
}

// Stop refuses new jobs, lets queued ones finish and waits for the workers.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	log.Println("[WORKER] All workers stopped")
}

// Submit enqueues req and returns the channel its result will arrive on.
// The channel is buffered so an abandoned result never blocks a worker.
func (p *Pool) Submit(ctx context.Context, req Request) (<-chan Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cells := make([]domain.Cell, len(req.Cells))
	copy(cells, req.Cells)
	req.Cells = cells

	j := job{req: req, result: make(chan Result, 1)}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return nil, ErrPoolStopped
	}

	select {
	case p.jobs <- j:
		return j.result, nil
	default:
		return nil, ErrQueueFull
	}
}

// Compute submits req and waits for its result or for ctx to end. A search
// that has already started keeps running after ctx ends.
func (p *Pool) Compute(ctx context.Context, req Request) (Result, error) {
	ch, err := p.Submit(ctx, req)
	if err != nil {
		return Result{ID: req.ID}, err
	}

	select {
	case res := <-ch:
		return res, res.Err
	case <-ctx.Done():
		return Result{ID: req.ID}, ctx.Err()
	}
}

func (p *Pool) run(id int) {
	defer p.wg.Done()
	for j := range p.jobs {
		j.result <- p.execute(id, j.req)
	}
}

func (p *Pool) execute(workerID int, req Request) (res Result) {
	start := time.Now()
	res.ID = req.ID

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[WORKER] Worker %d recovered from panic on request %s: %v", workerID, req.ID, r)
			res.Column = domain.NoMove
			res.HasMove = false
			res.Err = fmt.Errorf("search failed: %v", r)
		}
		res.Duration = time.Since(start)
	}()

	col, ok, err := p.solve(req.Cells, req.Rows, req.Cols)
	res.Column = col
	res.HasMove = ok
	res.Err = err
	return res
}
