// Package ast contains definitions for the in-memory representation of a
// parsed emblem mustache expression.
package ast

import "strings"

// Node represents any singular piece of a parsed expression.
type Node interface {
	String() string // String returns the emblem source representation of this node.
	Position() Pos  // byte position of start of node in full original input string
}

// Pos represents a byte position in the original input text from which this
// expression was parsed.  It is useful to construct helpful error messages.
type Pos int

// Position returns this position.  It is implemented as a method so that Nodes
// may embed a Pos and fulfill this part of the Node interface for free.
func (p Pos) Position() Pos {
	return p
}

// Modifier is the optional trailing marker of a bare mustache name.
type Modifier byte

const (
	NoModifier  Modifier = 0
	Bang        Modifier = '!' // e.g. foo!
	Conditional Modifier = '?' // e.g. foo?
)

// String returns the modifier character, or "" if there is none.
func (m Modifier) String() string {
	if m == NoModifier {
		return ""
	}
	return string(rune(m))
}

// MarshalText encodes the modifier as its single character.
func (m Modifier) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// MustacheNode is the result of parsing a single mustache expression, e.g.
//
//	link-to "dog.tag" dog
//	frank%span#my-id.class-name
//
// Attrs holds the attribute fragments in source order, with any shorthand
// derived attributes (tagName, elementId, class) first.  Each fragment is
// kept as written except for the whitespace around "=" in key=value pairs.
type MustacheNode struct {
	Pos      `json:"-"`
	Name     string   `json:"name"`
	Attrs    []string `json:"attrs"`
	Modifier Modifier `json:"modifier,omitempty"`
}

// HasModifier reports whether the expression ended in "!" or "?".
func (n *MustacheNode) HasModifier() bool {
	return n.Modifier != NoModifier
}

// String returns an expression that parses back to an equivalent node.
// Shorthand attributes are written out in their key="value" form.
func (n *MustacheNode) String() string {
	if len(n.Attrs) == 0 {
		return n.Name + n.Modifier.String()
	}
	return n.Name + " " + strings.Join(n.Attrs, " ")
}
