package ratelimit

import (
	"testing"
	"time"
)

func TestCheckDeniesOverLimit(t *testing.T) {
	t.Parallel()

	l := New()

	for i := 0; i < 3; i++ {
		res := l.Check("login:10.0.0.1", 3, time.Minute)
		if !res.Allowed {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
		if res.Remaining != 3-(i+1) {
			t.Fatalf("attempt %d: expected remaining %d, got %d", i+1, 3-(i+1), res.Remaining)
		}
	}

	res := l.Check("login:10.0.0.1", 3, time.Minute)
	if res.Allowed {
		t.Fatal("fourth attempt within window should be denied")
	}
	if res.Remaining != 0 {
		t.Fatalf("denied attempt should report remaining 0, got %d", res.Remaining)
	}
}

func TestCheckResetsAfterWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	l := NewWithClock(func() time.Time { return now })

	for i := 0; i < 2; i++ {
		l.Check("create:admin-1", 2, time.Minute)
	}
	if res := l.Check("create:admin-1", 2, time.Minute); res.Allowed {
		t.Fatal("expected denial at limit")
	}

	now = now.Add(time.Minute + time.Second)

	res := l.Check("create:admin-1", 2, time.Minute)
	if !res.Allowed {
		t.Fatal("expected fresh window after expiry")
	}
	if res.Remaining != 1 {
		t.Fatalf("fresh window should report remaining 1, got %d", res.Remaining)
	}
}

func TestCheckKeysAreIndependent(t *testing.T) {
	t.Parallel()

	l := New()
	l.Check("login:a", 1, time.Minute)

	if res := l.Check("login:a", 1, time.Minute); res.Allowed {
		t.Fatal("key a should be exhausted")
	}
	if res := l.Check("login:b", 1, time.Minute); !res.Allowed {
		t.Fatal("key b should be unaffected by key a")
	}
}

func TestSweepDropsExpiredRecords(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	l := NewWithClock(func() time.Time { return now })

	l.Check("stale", 5, time.Minute)
	l.Check("fresh", 5, time.Hour)

	now = now.Add(2 * time.Minute)
	l.Sweep()

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.records["stale"]; ok {
		t.Fatal("expired record should be swept")
	}
	if _, ok := l.records["fresh"]; !ok {
		t.Fatal("live record should survive the sweep")
	}
}
