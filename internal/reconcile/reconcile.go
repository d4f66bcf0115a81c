// Package reconcile implements the polling loop that diffs successive todo
// snapshots and raises one notification batch per tick.
package reconcile

import (
	"context"
	"sync"
	"time"

	"dooo/internal/logger"
	"dooo/internal/model"
)

// BumpThreshold is how far created_at must move between snapshots before an
// item counts as re-prioritized. It also dedups rapid double bumps within a
// second of each other.
const BumpThreshold = time.Second

type ChangeKind int

const (
	// NewForeign: the id was absent from the previous snapshot and the todo
	// was created by someone else.
	NewForeign ChangeKind = iota
	// Bumped: the id existed before but its created_at moved by more than
	// BumpThreshold.
	Bumped
)

type Change struct {
	Kind ChangeKind
	Todo model.Todo
}

// Classify diffs the new snapshot against the previous one. Ordering between
// changes within one batch is not guaranteed.
func Classify(prev, next []model.Todo, currentUser string) []Change {
	old := make(map[string]model.Todo, len(prev))
	for _, t := range prev {
		old[t.ID] = t
	}

	var changes []Change
	for _, t := range next {
		before, seen := old[t.ID]
		if !seen {
			if t.CreatedBy != currentUser {
				changes = append(changes, Change{Kind: NewForeign, Todo: t})
			}
			continue
		}
		d := t.CreatedAt.Sub(before.CreatedAt)
		if d < 0 {
			d = -d
		}
		if d > BumpThreshold {
			changes = append(changes, Change{Kind: Bumped, Todo: t})
		}
	}
	return changes
}

type Config struct {
	Interval    time.Duration
	CurrentUser string

	Fetch       func(ctx context.Context) ([]model.Todo, error)
	FetchRoster func(ctx context.Context) ([]model.User, error)

	// Visible mirrors the tab-visibility guard; nil means always visible.
	Visible func() bool

	Notify   func(changes []Change)
	OnRoster func(users []model.User)
}

// Poller re-fetches the todo snapshot on a fixed cadence. A boolean in-flight
// guard keeps at most one fetch outstanding; ticks that land while a fetch is
// running or while not visible are skipped entirely. The first successful
// fetch primes the snapshot without notifying.
type Poller struct {
	cfg Config

	mu       sync.Mutex
	inFlight bool
	primed   bool
	prev     []model.Todo
}

func New(cfg Config) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	return &Poller{cfg: cfg}
}

// Snapshot returns the last applied todo snapshot.
func (p *Poller) Snapshot() []model.Todo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.prev
}

// Run polls until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Tick(ctx)
		}
	}
}

// Tick runs one reconciliation cycle unless suppressed by the visibility or
// in-flight guard. The fetch itself runs on a separate goroutine so a slow
// response never blocks the ticker; its result is applied unconditionally
// even if stale.
func (p *Poller) Tick(ctx context.Context) {
	if p.cfg.Visible != nil && !p.cfg.Visible() {
		return
	}

	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return
	}
	p.inFlight = true
	p.mu.Unlock()

	go p.poll(ctx)
}

func (p *Poller) poll(ctx context.Context) {
	defer func() {
		p.mu.Lock()
		p.inFlight = false
		p.mu.Unlock()
	}()

	next, err := p.cfg.Fetch(ctx)
	if err != nil {
		// Read-path failures leave the prior snapshot in place.
		logger.Warn("reconcile.fetch failed", "err", err)
		return
	}

	p.mu.Lock()
	prev, primed := p.prev, p.primed
	p.prev = next
	p.primed = true
	p.mu.Unlock()

	if primed {
		if changes := Classify(prev, next, p.cfg.CurrentUser); len(changes) > 0 && p.cfg.Notify != nil {
			p.cfg.Notify(changes)
		}
	}

	if p.cfg.FetchRoster != nil {
		users, err := p.cfg.FetchRoster(ctx)
		if err != nil {
			logger.Warn("reconcile.roster fetch failed", "err", err)
			return
		}
		if p.cfg.OnRoster != nil {
			p.cfg.OnRoster(users)
		}
	}
}
