package utils

import (
	"html"
	"net/mail"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// StrictPolicy removes every tag from user supplied text.
var StrictPolicy = bluemonday.StrictPolicy()

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const maxCleanRounds = 8

// CleanText strips markup and surrounding whitespace. Entities are turned back
// into plain characters since the API speaks JSON, and the result is sanitized
// again until unescaping can no longer produce a tag.
func CleanText(s string) string {
	for range maxCleanRounds {
		next := html.UnescapeString(StrictPolicy.Sanitize(s))
		if next == s {
			return strings.TrimSpace(s)
		}
		s = next
	}
	// still decoding after every round: keep the escaped form
	return strings.TrimSpace(StrictPolicy.Sanitize(s))
}

// CleanList applies CleanText to every entry and drops the empty ones.
func CleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if c := CleanText(item); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// NormalizeEmail lowercases and trims an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidEmail(email string) bool {
	if !emailPattern.MatchString(email) {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}
