package sentiment

import (
	"testing"

	"CryptoPulse/internal/domain"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want domain.Sentiment
	}{
		{"bullish text", "Bitcoin is mooning, bullish breakout incoming!", domain.SentimentPositive},
		{"bearish text", "Market crash, everyone panic sell", domain.SentimentNegative},
		{"no keywords", "Market announcement for Tuesday", domain.SentimentNeutral},
		{"empty", "", domain.SentimentNeutral},
		{"tie", "pump and dump", domain.SentimentNeutral},
		{"case insensitive", "MASSIVE RALLY", domain.SentimentPositive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.text); got != tc.want {
				t.Fatalf("Classify(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}

func TestClassifyMatchesSubstrings(t *testing.T) {
	t.Parallel()

	// Matching is by substring, not word: "update" contains "up". This is
	// pinned behavior, not an accident.
	if got := Classify("weekly update"); got != domain.SentimentPositive {
		t.Fatalf("substring matching changed: got %s", got)
	}
}
