// Package model holds the window-independent state behind the game screens.
package model

import (
	"strings"
	"unicode"
)

// NameField is a single line text box for the driver's name
type NameField struct {
	runes []rune
	limit int
}

// NewNameField creates a field holding at most limit characters
func NewNameField(initial string, limit int) *NameField {
	f := &NameField{limit: limit}
	f.Insert([]rune(initial))
	return f
}

// Insert appends typed characters, dropping control characters, commas and
// anything past the limit
func (f *NameField) Insert(rs []rune) {
	for _, r := range rs {
		if len(f.runes) >= f.limit {
			return
		}
		if r == ',' || unicode.IsControl(r) {
			continue
		}
		f.runes = append(f.runes, r)
	}
}

// Backspace removes the last character
func (f *NameField) Backspace() {
	if len(f.runes) > 0 {
		f.runes = f.runes[:len(f.runes)-1]
	}
}

// Set replaces the contents
func (f *NameField) Set(s string) {
	f.runes = f.runes[:0]
	f.Insert([]rune(s))
}

// Value returns the trimmed contents
func (f *NameField) Value() string {
	return strings.TrimSpace(string(f.runes))
}

// Raw returns the contents as typed
func (f *NameField) Raw() string {
	return string(f.runes)
}

// Ready reports whether the field holds a usable name
func (f *NameField) Ready() bool {
	return f.Value() != ""
}
