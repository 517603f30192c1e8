// Package sanitize strips unsafe markup from free-text fields and enforces
// shape rules on user input. Clean is a best-effort denylist, not a
// parser-based sanitizer; obfuscated payloads can bypass it.
package sanitize

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"CryptoPulse/internal/domain"
)

var (
	scriptBlockRe  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	jsURIRe        = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRe = regexp.MustCompile(`(?i)\bon\w+\s*=`)
	emailRe        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.\S+$`)
	upperRe        = regexp.MustCompile(`[A-Z]`)
	lowerRe        = regexp.MustCompile(`[a-z]`)
	digitRe        = regexp.MustCompile(`[0-9]`)
)

// Clean removes <script> blocks, javascript: URI prefixes and inline
// on<word>= event handlers, then trims surrounding whitespace.
func Clean(text string) string {
	text = scriptBlockRe.ReplaceAllString(text, "")
	text = jsURIRe.ReplaceAllString(text, "")
	text = eventHandlerRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// ValidEmail rejects obviously malformed addresses only.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// CheckPassword enforces length and character-class rules. Checks run in a
// fixed order and only the first failure is reported.
func CheckPassword(s string) error {
	if utf8.RuneCountInString(s) < 8 {
		return domain.Validation("password must be at least 8 characters")
	}
	if !upperRe.MatchString(s) {
		return domain.Validation("password needs an uppercase letter")
	}
	if !lowerRe.MatchString(s) {
		return domain.Validation("password needs a lowercase letter")
	}
	if !digitRe.MatchString(s) {
		return domain.Validation("password needs a digit")
	}
	return nil
}

// CheckArticle enforces minimum lengths on trimmed title, content and
// category, in that order; the first failing rule wins.
func CheckArticle(title, content, category string) error {
	if utf8.RuneCountInString(strings.TrimSpace(title)) < 3 {
		return domain.Validation("title must be at least 3 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(content)) < 10 {
		return domain.Validation("content must be at least 10 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(category)) < 2 {
		return domain.Validation("category is required")
	}
	return nil
}
