// Package parse converts a single emblem mustache expression, such as
//
//	link-to "dog.tag" dog
//	frank%span#my-id.class-name
//	foo!
//
// into its in-memory representation (ast.MustacheNode).
//
// The input is one already-isolated expression: the indentation-aware
// preprocessor has removed any block structure.  Attribute values are not
// interpreted; quoted strings and parenthesized sub-expressions are passed
// through as written.
package parse

import (
	"fmt"
	"runtime"

	"github.com/robfig/emblem/ast"
	"github.com/robfig/emblem/errortypes"
)

// tree is the parse state for a single expression.
type tree struct {
	name string            // name provided for the input
	text string            // the full input text
	lex  *lexer            // lexer provides the sequence of tokens
	pos  int               // index of the next token in lex.items
	node *ast.MustacheNode // result, built up as tokens are read
}

// Expression parses the input into a MustacheNode.  The name is only used for
// error messages; it does not need to be provided nor does it need to be a
// real filename.
//
// All failures are *errortypes.InvalidExpression, matching
// errortypes.ErrInvalidExpression.
func Expression(name, text string) (node *ast.MustacheNode, err error) {
	var t = &tree{
		name: name,
		text: text,
		lex:  lex(name, text),
	}
	defer t.recover(&err)
	t.mustache()
	return t.node, nil
}

// mustache:
//	name (modifier | shorthand* attr*)
func (t *tree) mustache() {
	var tok = t.expect(itemName, "expression")
	t.node = &ast.MustacheNode{
		Pos:   tok.pos,
		Name:  tok.val,
		Attrs: []string{},
	}

	if tok = t.next(); tok.typ == itemModifier {
		t.node.Modifier = ast.Modifier(tok.val[0])
		t.expect(itemEOF, "expression after modifier")
		return
	}

	for ; tok.typ.isShorthand(); tok = t.next() {
		t.node.Attrs = append(t.node.Attrs, t.shorthand(tok))
	}

	for ; tok.typ != itemEOF; tok = t.next() {
		t.node.Attrs = append(t.node.Attrs, t.attr(tok))
	}
}

// shorthand expands %tag, #id and .class.
func (t *tree) shorthand(tok item) string {
	var word = tok.val[1:]
	switch tok.typ {
	case itemTagName:
		return shorthandAttr("tagName", word)
	case itemElementID:
		return shorthandAttr("elementId", word)
	default:
		return shorthandAttr("class", word)
	}
}

// attr:
//	value | key "=" value
func (t *tree) attr(tok item) string {
	switch {
	case tok.typ.isValue():
		return tok.val
	case tok.typ == itemKey:
		var value = t.next()
		if !value.typ.isValue() {
			t.unexpected(value, fmt.Sprintf("value of %q", tok.val))
		}
		return tok.val + "=" + value.val
	}
	t.unexpected(tok, "attributes")
	return ""
}

// Helpers ----------

// next returns the next token.
func (t *tree) next() item {
	if t.pos >= len(t.lex.items) {
		return item{itemEOF, ast.Pos(len(t.text)), ""}
	}
	var tok = t.lex.items[t.pos]
	t.pos++
	return tok
}

// recover is the handler that turns panics into returns from the top level of Expression.
func (t *tree) recover(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	if _, ok := e.(runtime.Error); ok {
		panic(e)
	}
	t.lex = nil
	t.node = nil
	*errp = e.(error)
}

// expect consumes the next token and guarantees it has the required type.
func (t *tree) expect(expected itemType, context string) item {
	token := t.next()
	if token.typ != expected {
		t.unexpected(token, fmt.Sprintf("%v (expected %v)", context, expected))
	}
	return token
}

// unexpected complains about the token and terminates processing.
func (t *tree) unexpected(token item, context string) {
	if token.typ == itemError {
		t.errorf(token.pos, "%s", token.val)
	}
	t.errorf(token.pos, "unexpected %v in %s", token, context)
}

// errorf formats the error and terminates processing.
func (t *tree) errorf(pos ast.Pos, format string, args ...interface{}) {
	panic(errortypes.NewInvalidExpressionf(t.name, t.text, int(pos), format, args...))
}
