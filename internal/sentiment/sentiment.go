// Package sentiment tags free text with a coarse market mood. The
// classifier is an unweighted bag-of-keywords heuristic; matching is by
// substring, without word boundaries, so "up" also counts inside unrelated
// words. That behavior is kept deliberately for compatibility with the
// articles already published under it.
package sentiment

import (
	"strings"

	"CryptoPulse/internal/domain"
)

var positiveTerms = []string{
	"bullish", "moon", "pump", "surge", "rally", "gain", "up", "rise",
	"breakout", "positive", "good", "great", "huge", "massive",
}

var negativeTerms = []string{
	"bearish", "dump", "crash", "fall", "drop", "decline", "down",
	"negative", "bad", "fear", "panic", "sell",
}

// Classify maps text to positive, negative or neutral by comparing
// keyword occurrence counts. It never fails; any internal fault degrades
// to neutral.
func Classify(text string) (result domain.Sentiment) {
	result = domain.SentimentNeutral
	defer func() {
		if recover() != nil {
			result = domain.SentimentNeutral
		}
	}()

	lowered := strings.ToLower(text)

	positive := 0
	for _, term := range positiveTerms {
		positive += strings.Count(lowered, term)
	}

	negative := 0
	for _, term := range negativeTerms {
		negative += strings.Count(lowered, term)
	}

	switch {
	case positive > negative:
		result = domain.SentimentPositive
	case negative > positive:
		result = domain.SentimentNegative
	}
	return result
}
