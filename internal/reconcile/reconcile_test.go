package reconcile

import (
	"context"
	"sync"
	"testing"
	"time"

	"dooo/internal/model"
)

func TestClassifyNewForeign(t *testing.T) {
	t0 := time.Now()
	prev := []model.Todo{{ID: "1", CreatedBy: "Bob", CreatedAt: t0}}
	next := []model.Todo{
		{ID: "1", CreatedBy: "Bob", CreatedAt: t0},
		{ID: "2", CreatedBy: "Bob", CreatedAt: t0.Add(time.Minute)},
	}

	changes := Classify(prev, next, "Alice")
	if len(changes) != 1 {
		t.Fatalf("expected exactly one change, got %v", changes)
	}
	if changes[0].Kind != NewForeign || changes[0].Todo.ID != "2" {
		t.Fatalf("expected new-foreign for id 2, got %+v", changes[0])
	}
}

func TestClassifyIgnoresOwnCreations(t *testing.T) {
	next := []model.Todo{{ID: "1", CreatedBy: "Alice", CreatedAt: time.Now()}}
	if changes := Classify(nil, next, "Alice"); len(changes) != 0 {
		t.Fatalf("own creations must not notify, got %v", changes)
	}
}

func TestClassifyBumpThreshold(t *testing.T) {
	t0 := time.Now()
	prev := []model.Todo{{ID: "1", CreatedBy: "Bob", CreatedAt: t0}}

	// Within a second: treated as unchanged, so a rapid double bump cannot
	// raise two notifications.
	within := []model.Todo{{ID: "1", CreatedBy: "Bob", CreatedAt: t0.Add(900 * time.Millisecond)}}
	if changes := Classify(prev, within, "Alice"); len(changes) != 0 {
		t.Fatalf("sub-threshold timestamp drift must not notify, got %v", changes)
	}

	beyond := []model.Todo{{ID: "1", CreatedBy: "Bob", CreatedAt: t0.Add(5 * time.Second)}}
	changes := Classify(prev, beyond, "Alice")
	if len(changes) != 1 || changes[0].Kind != Bumped {
		t.Fatalf("expected one bump, got %v", changes)
	}

	// Bumps are detected in either direction of the drift.
	back := []model.Todo{{ID: "1", CreatedBy: "Bob", CreatedAt: t0.Add(-5 * time.Second)}}
	if changes := Classify(prev, back, "Alice"); len(changes) != 1 {
		t.Fatalf("expected bump on negative drift, got %v", changes)
	}
}

func TestPollerPrimesWithoutNotifying(t *testing.T) {
	notified := make(chan []Change, 1)
	fetched := make(chan struct{}, 2)

	snap := []model.Todo{{ID: "1", CreatedBy: "Bob", CreatedAt: time.Now()}}
	p := New(Config{
		CurrentUser: "Alice",
		Fetch: func(ctx context.Context) ([]model.Todo, error) {
			fetched <- struct{}{}
			return snap, nil
		},
		Notify: func(changes []Change) { notified <- changes },
	})

	p.Tick(context.Background())
	<-fetched
	waitIdle(t, p)

	select {
	case changes := <-notified:
		t.Fatalf("first fetch must prime silently, got %v", changes)
	default:
	}

	// Second tick sees a foreign addition.
	snap = append(snap, model.Todo{ID: "2", CreatedBy: "Bob", CreatedAt: time.Now()})
	p.Tick(context.Background())
	<-fetched

	select {
	case changes := <-notified:
		if len(changes) != 1 || changes[0].Todo.ID != "2" {
			t.Fatalf("expected one new-foreign change, got %v", changes)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a notification batch")
	}
}

func TestPollerSkipsWhenNotVisible(t *testing.T) {
	var calls int
	p := New(Config{
		Visible: func() bool { return false },
		Fetch: func(ctx context.Context) ([]model.Todo, error) {
			calls++
			return nil, nil
		},
	})

	p.Tick(context.Background())
	waitIdle(t, p)
	if calls != 0 {
		t.Fatalf("hidden poller must not fetch, got %d calls", calls)
	}
}

func TestPollerSingleInFlight(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	release := make(chan struct{})

	p := New(Config{
		Fetch: func(ctx context.Context) ([]model.Todo, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			<-release
			return nil, nil
		},
	})

	p.Tick(context.Background())
	// Wait for the fetch goroutine to start, then tick again while it hangs.
	deadline := time.Now().Add(time.Second)
	for {
		mu.Lock()
		n := calls
		mu.Unlock()
		if n == 1 || time.Now().After(deadline) {
			break
		}
		time.Sleep(time.Millisecond)
	}
	p.Tick(context.Background())
	p.Tick(context.Background())
	close(release)
	waitIdle(t, p)

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Fatalf("overlapping ticks must be skipped, got %d fetches", calls)
	}
}

func TestPollerKeepsSnapshotOnError(t *testing.T) {
	good := []model.Todo{{ID: "1", CreatedBy: "Bob", CreatedAt: time.Now()}}
	fail := false

	p := New(Config{
		CurrentUser: "Alice",
		Fetch: func(ctx context.Context) ([]model.Todo, error) {
			if fail {
				return nil, context.DeadlineExceeded
			}
			return good, nil
		},
	})

	p.Tick(context.Background())
	waitIdle(t, p)
	fail = true
	p.Tick(context.Background())
	waitIdle(t, p)

	if snap := p.Snapshot(); len(snap) != 1 || snap[0].ID != "1" {
		t.Fatalf("failed poll must leave the prior snapshot in place, got %v", snap)
	}
}

// waitIdle spins until the poller's fetch goroutine has finished.
func waitIdle(t *testing.T, p *Poller) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		p.mu.Lock()
		idle := !p.inFlight
		p.mu.Unlock()
		if idle {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("poller did not go idle")
}
