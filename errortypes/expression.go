package errortypes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidExpression is matched (via errors.Is) by every error returned for
// input that does not conform to the mustache expression grammar.
var ErrInvalidExpression = errors.New("invalid expression")

// InvalidExpression describes a grammar violation in a mustache expression.
type InvalidExpression struct {
	Name   string // name of the input (e.g. file name); may be empty
	Input  string // the full expression text
	Offset int    // byte offset of the offending character in Input
	Msg    string

	line, col int
}

var _ ErrFilePos = &InvalidExpression{}

// NewInvalidExpressionf returns an InvalidExpression for the given input,
// pointing at the byte offset.  The line and column are derived from the
// offset, starting at line 1.
func NewInvalidExpressionf(name, input string, offset int, format string, args ...interface{}) *InvalidExpression {
	if offset > len(input) {
		offset = len(input)
	}
	if offset < 0 {
		offset = 0
	}
	var e = &InvalidExpression{
		Name:   name,
		Input:  input,
		Offset: offset,
		Msg:    fmt.Sprintf(format, args...),
	}
	e.line = 1 + strings.Count(input[:offset], "\n")
	e.col = offset - strings.LastIndex(input[:offset], "\n")
	return e
}

// AtLine returns a copy of the error reported against the given file and
// line, for expressions that were extracted from a larger document.
func (e *InvalidExpression) AtLine(file string, line int) *InvalidExpression {
	var c = *e
	c.Name = file
	c.line = line + c.line - 1
	return &c
}

func (e *InvalidExpression) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("expression %d:%d: %s in %q", e.line, e.col, e.Msg, e.Input)
	}
	return fmt.Sprintf("expression %s:%d:%d: %s in %q", e.Name, e.line, e.col, e.Msg, e.Input)
}

// Is makes errors.Is(err, ErrInvalidExpression) succeed.
func (e *InvalidExpression) Is(target error) bool {
	return target == ErrInvalidExpression
}

func (e *InvalidExpression) File() string {
	return e.Name
}

func (e *InvalidExpression) Line() int {
	return e.line
}

func (e *InvalidExpression) Col() int {
	return e.col
}
