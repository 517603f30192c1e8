// Package slug derives URL-safe identifiers from article titles. Two
// schemes exist on purpose: Unique probes the store for clean,
// deterministic URLs on the human-authored write path; Timestamped serves
// the anonymous ingestion channel, where collision probing against the
// store is not worth a round-trip per message.
package slug

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// maxProbes bounds the collision loop; past it a random suffix is
	// appended instead so a title storm cannot spin forever.
	maxProbes = 1000

	timestampedBaseLen = 50
)

var (
	strippedRe  = regexp.MustCompile(`[^\w\s-]`)
	collapsedRe = regexp.MustCompile(`[\s_-]+`)
)

// Make lower-cases the title, strips everything that is not a word
// character, whitespace or hyphen, collapses separator runs into single
// hyphens and trims leading/trailing hyphens.
func Make(title string) string {
	s := strings.ToLower(title)
	s = strippedRe.ReplaceAllString(s, "")
	s = collapsedRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ExistsFunc is a predicate backed by the article store's unique slug index.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Unique resolves a free slug by probing base, base-1, base-2, ... The
// returned slug is guaranteed unused at the time of the last probe.
func Unique(ctx context.Context, title string, exists ExistsFunc) (string, error) {
	base := Make(title)
	if base == "" {
		base = "article"
	}

	candidate := base
	for n := 1; n <= maxProbes; n++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("probe slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}

	// Pathological collision count; fall back to a random suffix.
	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8]), nil
}

// Timestamped appends a millisecond timestamp to a truncated base. The
// uniqueness guarantee is probabilistic, resting on time granularity
// rather than a store lookup.
func Timestamped(title string, now time.Time) string {
	base := Make(title)
	if len(base) > timestampedBaseLen {
		base = strings.Trim(base[:timestampedBaseLen], "-")
	}
	if base == "" {
		base = "article"
	}
	return fmt.Sprintf("%s-%d", base, now.UnixMilli())
}
