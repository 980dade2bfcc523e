// Package text adapts a skip list to UTF-8 strings measured in runes, so
// positions count characters rather than bytes.
package text

import (
	"unicode/utf8"

	"github.com/samthor/skiplist/skip"
)

// Length reports the length of s in runes.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Split divides s at a rune offset, keeping both halves valid UTF-8.
func Split(s string, at int) (left, right string) {
	for i := range s {
		if at == 0 {
			return s[:i], s[i:]
		}
		at--
	}
	return s, ""
}

// Config returns a rune-measured list Config. Zero seed draws a random one.
func Config(seed uint32) skip.Config[string] {
	return skip.Config[string]{
		Length: Length,
		Split:  Split,
		Seed:   seed,
	}
}

// New builds a rune-measured string list. Zero seed draws a random one.
func New(seed uint32) skip.List[string] {
	return skip.New(Config(seed))
}
