// Package highscore keeps the leaderboard of finished runs.
//
// Stores return errors like any other Go API; Board wraps a Store for the
// game, logging failures and carrying on so a broken disk never ends a run.
package highscore

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// MaxEntries is the number of scores a store keeps
	MaxEntries = 50
	// MaxLabelLength is the longest label kept, in characters
	MaxLabelLength = 20
	// DefaultLabel replaces empty labels
	DefaultLabel = "Player"
)

// Entry is one leaderboard line
type Entry struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Store persists finished runs
type Store interface {
	// Record adds a run. Call it at most once per finished session.
	Record(ctx context.Context, label string, score int) error

	// TopN returns up to n entries, highest score first.
	// The order of equal scores is unspecified.
	TopN(ctx context.Context, n int) ([]Entry, error)
}

// Sanitize makes a label safe for the line-based record format: record
// delimiters are removed, surrounding space trimmed, empty labels replaced
// and long labels truncated.
func Sanitize(label string) string {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ',', '\n', '\r':
			return -1
		}
		return r
	}, label)
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLabel
	}
	if utf8.RuneCountInString(s) > MaxLabelLength {
		s = strings.TrimSpace(string([]rune(s)[:MaxLabelLength]))
	}
	return s
}

// rank sorts entries by score, highest first, and caps the list
func rank(entries []Entry, limit int) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
