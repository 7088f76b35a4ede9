package parse

import (
	"unicode/utf8"

	"github.com/robfig/emblem/ast"
)

const eof = -1

// cursor is a position in the input together with the quoting state and
// parenthesis depth at that position.  It is a value: advancing returns a
// new cursor and leaves the old one usable for lookahead.
type cursor struct {
	pos   ast.Pos
	quote quote
	depth int
}

// next returns the rune under the cursor and the cursor positioned after it.
// At the end of the input it returns eof and the same cursor.
//
// Parentheses only count towards the depth outside of quotes.
func (c cursor) next(input string) (rune, cursor) {
	if int(c.pos) >= len(input) {
		return eof, c
	}
	r, w := utf8.DecodeRuneInString(input[c.pos:])
	c.pos += ast.Pos(w)
	if c.quote == noQuote {
		switch r {
		case '(':
			c.depth++
		case ')':
			c.depth--
		}
	}
	c.quote = c.quote.after(r)
	return r, c
}

// peek returns the rune under the cursor without moving.
func (c cursor) peek(input string) rune {
	r, _ := c.next(input)
	return r
}

// skip returns the cursor advanced past any runes satisfying fn.
func (c cursor) skip(input string, fn func(rune) bool) cursor {
	for {
		r, n := c.next(input)
		if r == eof || !fn(r) {
			return c
		}
		c = n
	}
}

// inQuote reports whether the cursor is inside a quoted region.
func (c cursor) inQuote() bool {
	return c.quote != noQuote
}

// balanced reports whether every quote and parenthesis opened before the
// cursor has been closed.
func (c cursor) balanced() bool {
	return c.quote == noQuote && c.depth == 0
}
