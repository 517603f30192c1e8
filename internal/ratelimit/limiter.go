package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Result reports the outcome of a single limiter check.
type Result struct {
	Allowed   bool
	Remaining int
}

type record struct {
	count     int
	resetTime time.Time
}

// Limiter is a fixed-window counter keyed by caller-namespaced identifiers
// (e.g. "login:"+ip). State lives only for the process lifetime; each
// instance of a horizontally-scaled deployment counts independently.
type Limiter struct {
	mu      sync.Mutex
	records map[string]*record
	now     func() time.Time
}

// New builds an empty limiter.
func New() *Limiter {
	return &Limiter{
		records: make(map[string]*record),
		now:     time.Now,
	}
}

// NewWithClock builds a limiter with an injected clock for tests.
func NewWithClock(now func() time.Time) *Limiter {
	l := New()
	if now != nil {
		l.now = now
	}
	return l
}

// Check counts one attempt for the identifier. A fresh or expired window
// starts at count 1; once count reaches limit, further attempts within the
// window are denied without incrementing.
func (l *Limiter) Check(identifier string, limit int, window time.Duration) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	rec, ok := l.records[identifier]
	if !ok || now.After(rec.resetTime) {
		l.records[identifier] = &record{count: 1, resetTime: now.Add(window)}
		return Result{Allowed: true, Remaining: limit - 1}
	}

	if rec.count >= limit {
		return Result{Allowed: false, Remaining: 0}
	}

	rec.count++
	return Result{Allowed: true, Remaining: limit - rec.count}
}

// Sweep drops expired records. Called periodically so identifiers that
// never return do not accumulate forever.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for id, rec := range l.records {
		if now.After(rec.resetTime) {
			delete(l.records, id)
		}
	}
}

// Run sweeps on the given interval until the context is cancelled.
func (l *Limiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.Sweep()
		case <-ctx.Done():
			return
		}
	}
}
