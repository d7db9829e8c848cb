package cleanup

import (
	"context"
	"log"
	"sync"
	"time"
)

// MoveLogPruner deletes move log rows older than a number of days.
type MoveLogPruner interface {
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type Worker struct {
	Pruner        MoveLogPruner
	RetentionDays int
	Interval      time.Duration

	stop chan struct{}
	once sync.Once
}

func NewWorker(pruner MoveLogPruner, retentionDays int) *Worker {
	return &Worker{
		Pruner:        pruner,
		RetentionDays: retentionDays,
		Interval:      1 * time.Hour,
		stop:          make(chan struct{}),
	}
}

// Start runs one cleanup immediately, then one per Interval until Stop.
func (w *Worker) Start() {
	go func() {
		w.runCleanup()

		ticker := time.NewTicker(w.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.runCleanup()
			case <-w.stop:
				return
			}
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

func (w *Worker) Stop() {
	w.once.Do(func() { close(w.stop) })
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() {
	if w.RetentionDays <= 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deletedCount, err := w.Pruner.DeleteOlderThan(ctx, w.RetentionDays)
	if err != nil {
		log.Printf("[CLEANUP] Error pruning move log: %v", err)
		return
	}
	if deletedCount > 0 {
		log.Printf("[CLEANUP] Removed %d move log rows older than %d days", deletedCount, w.RetentionDays)
	}
}
