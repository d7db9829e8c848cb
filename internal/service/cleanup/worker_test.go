package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakePruner struct {
	mu    sync.Mutex
	days  []int
	err   error
	calls chan struct{}
}

func (p *fakePruner) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	p.mu.Lock()
	p.days = append(p.days, days)
	p.mu.Unlock()
	if p.calls != nil {
		p.calls <- struct{}{}
	}
	return 3, p.err
}

func TestRunCleanupUsesRetention(t *testing.T) {
	p := &fakePruner{}
	w := NewWorker(p, 14)
	w.runCleanup()

	if len(p.days) != 1 || p.days[0] != 14 {
		t.Fatalf("expected one prune with 14 days, got %v", p.days)
	}
}

func TestRunCleanupSkipsWhenRetentionDisabled(t *testing.T) {
	p := &fakePruner{}
	w := NewWorker(p, 0)
	w.runCleanup()

	if len(p.days) != 0 {
		t.Fatalf("expected no prune, got %v", p.days)
	}
}

func TestRunCleanupSurvivesErrors(t *testing.T) {
	p := &fakePruner{err: errors.New("db down")}
	w := NewWorker(p, 7)
	w.runCleanup()
	w.runCleanup()

	if len(p.days) != 2 {
		t.Fatalf("expected both runs to reach the pruner, got %d", len(p.days))
	}
}

func TestStartRunsPeriodically(t *testing.T) {
	p := &fakePruner{calls: make(chan struct{}, 8)}
	w := NewWorker(p, 30)
	w.Interval = 10 * time.Millisecond
	w.Start()
	defer w.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-p.calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("cleanup run %d did not happen", i)
		}
	}
}
