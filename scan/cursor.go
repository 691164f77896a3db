// Package scan provides the position-tracking character cursor consumed by
// the vex parser.
//
// A Cursor is a small copyable value over an immutable input string. Saving
// a position is a plain struct copy and rewinding is assignment, so a
// grammar rule can probe the input and back out without any rollback
// machinery:
//
//	save := *c
//	if !tryParse(c) {
//		*c = save
//	}
//
// All operations are total: running off the end of the input is reported
// through return values, never through errors or panics.
package scan

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Cursor scans a string one rune at a time, tracking the current byte
// offset into the original input.
type Cursor struct {
	input string
	off   int
}

// New returns a cursor positioned at the start of input.
func New(input string) Cursor {
	return Cursor{input: input}
}

// Peek returns the next rune without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	if c.off >= len(c.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.off:])
	return r, true
}

// Next consumes and returns the next rune.
func (c *Cursor) Next() (rune, bool) {
	if c.off >= len(c.input) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.input[c.off:])
	c.off += size
	return r, true
}

// Token consumes the next rune if it equals r, reporting whether it did.
// The cursor does not move on a failed match.
func (c *Cursor) Token(r rune) bool {
	if c.off >= len(c.input) {
		return false
	}
	got, size := utf8.DecodeRuneInString(c.input[c.off:])
	if got != r {
		return false
	}
	c.off += size
	return true
}

// Tokens consumes the exact literal s if it prefixes the unconsumed input,
// reporting whether it did. The cursor does not move on a failed match.
func (c *Cursor) Tokens(s string) bool {
	if !strings.HasPrefix(c.input[c.off:], s) {
		return false
	}
	c.off += len(s)
	return true
}

// SkipWhile consumes runes for as long as pred holds, returning the number
// of runes skipped.
func (c *Cursor) SkipWhile(pred func(rune) bool) int {
	n := 0
	for {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			return n
		}
		c.Next()
		n++
	}
}

// CollectWhile returns a single-use sequence of the runes for which pred
// holds, consuming each rune as it is yielded. Runes the caller never
// iterates over are not consumed. pred is called in input order, so it may
// carry state between calls.
func (c *Cursor) CollectWhile(pred func(rune) bool) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			save := *c
			r, ok := c.Next()
			if !ok || !pred(r) {
				*c = save
				return
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Offset returns the byte offset of the next unconsumed rune.
func (c *Cursor) Offset() int {
	return c.off
}

// Slice returns the input between two previously recorded byte offsets.
func (c *Cursor) Slice(start, end int) string {
	return c.input[start:end]
}

// Remaining returns the unconsumed tail of the input.
func (c *Cursor) Remaining() string {
	return c.input[c.off:]
}
