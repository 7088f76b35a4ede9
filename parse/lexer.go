package parse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/robfig/emblem/ast"
)

// Lexer design from text/template, run synchronously: an expression is a
// single short line, so the items are collected into a slice.

// Tokens ---------------------------------------------------------------------

// item represents a token returned from the scanner.
type item struct {
	typ itemType // The type of this item.
	pos ast.Pos  // The starting position, in bytes, of this item in the input string.
	val string   // The value of this item.
}

func (i item) String() string {
	switch {
	case i.typ == itemEOF:
		return "EOF"
	case i.typ == itemError:
		return i.val
	case len(i.val) > 10:
		return fmt.Sprintf("%.10q...", i.val)
	}
	return fmt.Sprintf("%q", i.val)
}

// itemType identifies the type of lexical items.
type itemType int

const (
	itemInvalid itemType = iota // not used
	itemEOF                     // EOF
	itemError                   // error occurred; value is text of error

	itemName     // mustache name, e.g. link-to, App.Funview
	itemModifier // ! or ? directly after the name

	// Shorthand; the value includes the sigil.
	itemTagName   // %span
	itemElementID // #my-id
	itemClass     // .class-name

	// Attributes
	itemKey     // key of a key=value pair; the value item follows
	itemString  // "quoted" or 'quoted', including the quotes
	itemSubExpr // (balanced sub-expression), including the parens
	itemValue   // bare value, e.g. dog, true, 1, defaultGroup.id
)

func (t itemType) isShorthand() bool {
	return itemTagName <= t && t <= itemClass
}

func (t itemType) isValue() bool {
	return itemString <= t && t <= itemValue
}

func (t itemType) String() string {
	var r, ok = map[itemType]string{
		itemEOF:       "<eof>",
		itemError:     "<error>",
		itemName:      "<name>",
		itemModifier:  "<modifier>",
		itemTagName:   "<%tag>",
		itemElementID: "<#id>",
		itemClass:     "<.class>",
		itemKey:       "<key>",
		itemString:    "<string>",
		itemSubExpr:   "<(subexpr)>",
		itemValue:     "<value>",
	}[t]
	if ok {
		return r
	}
	return fmt.Sprintf("item(%d)", t)
}

// Lexer ----------------------------------------------------------------------

// stateFn represents the state of the lexer as a function that returns the
// next state.
type stateFn func(*lexer) stateFn

// lexer holds the state of the lexical scanning.
type lexer struct {
	name     string  // the name of the input; used only during errors.
	input    string  // the string being scanned.
	cur      cursor  // current position, quote state and paren depth.
	prev     cursor  // cursor before the last call to next.
	start    ast.Pos // start position of this item.
	items    []item  // scanned items.
	attrs    bool    // an explicit attribute has been emitted.
	detached bool    // a space-separated .class group has been read.
}

// lex scans the whole input and returns the lexer holding the items.
func lex(name, input string) *lexer {
	l := &lexer{
		name:  name,
		input: input,
	}
	for state := stateFn(lexName); state != nil; {
		state = state(l)
	}
	return l
}

// next returns the next rune in the input.
func (l *lexer) next() rune {
	var r rune
	l.prev = l.cur
	r, l.cur = l.cur.next(l.input)
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *lexer) peek() rune {
	return l.cur.peek(l.input)
}

// peekAfter returns the rune following the next one, without consuming
// either.
func (l *lexer) peekAfter() rune {
	_, c := l.cur.next(l.input)
	return c.peek(l.input)
}

// emit records an item spanning the pending input.
func (l *lexer) emit(t itemType) {
	l.items = append(l.items, item{t, l.start, l.input[l.start:l.cur.pos]})
	l.start = l.cur.pos
}

// ignore skips over the pending input before this point.
func (l *lexer) ignore() {
	l.start = l.cur.pos
}

// acceptRun consumes a run of runes satisfying fn.
func (l *lexer) acceptRun(fn func(rune) bool) bool {
	var pos = l.cur.pos
	l.cur = l.cur.skip(l.input, fn)
	return l.cur.pos > pos
}

// skipSpace consumes and ignores any whitespace.
func (l *lexer) skipSpace() {
	l.acceptRun(isSpace)
	l.ignore()
}

// errorf records an error item at pos and terminates the scan by returning
// a nil state.
func (l *lexer) errorf(pos ast.Pos, format string, args ...interface{}) stateFn {
	l.items = append(l.items, item{itemError, pos, fmt.Sprintf(format, args...)})
	return nil
}

func (l *lexer) eof() stateFn {
	l.emit(itemEOF)
	return nil
}

// State functions ------------------------------------------------------------

// lexName scans the mustache name, which must begin with a letter.
func lexName(l *lexer) stateFn {
	l.skipSpace()
	switch r := l.peek(); {
	case r == eof:
		return l.errorf(l.cur.pos, "empty expression")
	case !isLetter(r):
		return l.errorf(l.cur.pos, "expression must begin with a letter, found %q", r)
	}
	l.acceptRun(isNameChar)
	l.emit(itemName)
	return lexAfterName
}

// lexAfterName handles the characters allowed directly after the name: a
// modifier, attached shorthand, or whitespace.
func lexAfterName(l *lexer) stateFn {
	switch r := l.peek(); {
	case r == eof:
		return l.eof()
	case r == '!', r == '?':
		l.next()
		if l.cur.skip(l.input, isSpace).peek(l.input) != eof {
			return l.errorf(l.prev.pos, "modifier %q must end the expression", r)
		}
		l.emit(itemModifier)
		l.skipSpace()
		return l.eof()
	case isShorthandSigil(r):
		return lexShorthand
	case isSpace(r):
		return lexSpace
	default:
		return l.errorf(l.cur.pos, "unexpected %q after name %q", r, l.lastItem().val)
	}
}

// lexShorthand scans one %tag, #id or .class suffix.  They chain without
// spaces in any order.
func lexShorthand(l *lexer) stateFn {
	var sigil = l.next()
	if !l.acceptRun(isWordChar) {
		return l.errorf(l.prev.pos, "expected a name after %q", sigil)
	}
	switch sigil {
	case '%':
		l.emit(itemTagName)
	case '#':
		l.emit(itemElementID)
	case '.':
		l.emit(itemClass)
	}

	switch r := l.peek(); {
	case r == eof:
		return l.eof()
	case isShorthandSigil(r):
		return lexShorthand
	case isSpace(r):
		return lexSpace
	case r == '!', r == '?':
		return l.errorf(l.cur.pos, "modifier %q must directly follow the name", r)
	default:
		return l.errorf(l.cur.pos, "unexpected %q after %q", r, l.lastItem().val)
	}
}

// lexSpace skips the whitespace between tokens.  A .class group may follow
// the name after a space, but only once and only before any attribute.
func lexSpace(l *lexer) stateFn {
	l.skipSpace()
	switch r := l.peek(); {
	case r == eof:
		return l.eof()
	case r == '.' && isLetter(l.peekAfter()) && !l.attrs && !l.detached:
		l.detached = true
		return lexShorthand
	}
	return lexAttr
}

// lexAttr scans one attribute.  Whitespace has been skipped and the input is
// not exhausted.
func lexAttr(l *lexer) stateFn {
	l.attrs = true
	switch r := l.peek(); {
	case isQuote(r):
		return lexQuoted
	case r == '(':
		return lexSubExpr
	case r == ')':
		return l.errorf(l.cur.pos, "unmatched )")
	case r == '=':
		return l.errorf(l.cur.pos, "missing attribute name before =")
	case r == '!', r == '?':
		return l.errorf(l.cur.pos, "modifier %q must directly follow the name", r)
	case r == '.' && isLetter(l.peekAfter()):
		return l.errorf(l.cur.pos, "class shorthand must directly follow the name")
	}

	l.acceptRun(isBareChar)
	var word = l.input[l.start:l.cur.pos]
	if l.cur.skip(l.input, isSpace).peek(l.input) == '=' {
		return lexKey
	}
	if word == "/" {
		return l.errorf(l.start, "unexpected standalone /")
	}
	l.emit(itemValue)
	return lexAfterAttr
}

// lexKey emits the key of a key=value pair and scans its value.  The
// whitespace around "=" is dropped.
func lexKey(l *lexer) stateFn {
	var key = l.input[l.start:l.cur.pos]
	if !isKey(key) {
		return l.errorf(l.start, "invalid attribute name %q", key)
	}
	l.emit(itemKey)
	l.skipSpace()
	l.next() // =
	l.skipSpace()

	switch r := l.peek(); {
	case isQuote(r):
		return lexQuoted
	case r == '(':
		return lexSubExpr
	case r == ')':
		return l.errorf(l.cur.pos, "unmatched )")
	}
	if !l.acceptRun(isValueChar) {
		return l.errorf(l.cur.pos, "missing value for %q", key)
	}
	l.emit(itemValue)
	return lexAfterAttr
}

// lexQuoted scans a quoted literal through its matching close quote, using
// the cursor's quote state.
func lexQuoted(l *lexer) stateFn {
	var q = l.next()
	for {
		if l.next() == eof {
			return l.errorf(l.start, "unterminated %s, missing %c", quote(q), q)
		}
		if !l.cur.inQuote() {
			break
		}
	}
	l.emit(itemString)
	return lexAfterAttr
}

// lexSubExpr scans a parenthesized sub-expression through its balancing
// close paren.  The contents are kept as written.
func lexSubExpr(l *lexer) stateFn {
	l.next() // (
	for {
		if l.next() == eof {
			if l.cur.inQuote() {
				return l.errorf(l.start, "unterminated %s in sub-expression", l.cur.quote)
			}
			return l.errorf(l.start, "unclosed (")
		}
		if l.cur.balanced() {
			break
		}
	}
	l.emit(itemSubExpr)
	return lexAfterAttr
}

// lexAfterAttr requires whitespace or the end of input after an attribute.
func lexAfterAttr(l *lexer) stateFn {
	switch r := l.peek(); {
	case r == eof:
		return l.eof()
	case isSpace(r):
		return lexSpace
	case r == ')':
		return l.errorf(l.cur.pos, "unmatched )")
	case r == '!', r == '?':
		return l.errorf(l.cur.pos, "modifier %q must directly follow the name", r)
	default:
		return l.errorf(l.cur.pos, "unexpected %q after attribute %q", r, l.input[l.lastItem().pos:l.cur.pos])
	}
}

func (l *lexer) lastItem() item {
	return l.items[len(l.items)-1]
}

// Helpers --------------------------------------------------------------------

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' ||
		'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isNameChar reports whether r may appear in a mustache name after the
// first letter, e.g. App.Funview or navigation/button-list.
func isNameChar(r rune) bool {
	return isLetter(r) || isDigit(r) || strings.ContainsRune("-/.", r)
}

// isWordChar reports whether r may appear in a shorthand word.
func isWordChar(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '-' || r == '_'
}

// isValueChar reports whether r may appear in the bare value of a key=value
// pair.
func isValueChar(r rune) bool {
	return isWordChar(r) || r == '.'
}

// isBareChar reports whether r may appear in a bare positional value.
func isBareChar(r rune) bool {
	return r != eof && !isSpace(r) && !isQuote(r) && !strings.ContainsRune("()=!?", r)
}

// isKey reports whether s is usable as the key of a key=value pair.
func isKey(s string) bool {
	for i, r := range s {
		switch {
		case isLetter(r), r == '_':
		case i > 0 && (isDigit(r) || strings.ContainsRune("-.:", r)):
		default:
			return false
		}
	}
	return s != ""
}

func isShorthandSigil(r rune) bool {
	return r == '%' || r == '#' || r == '.'
}

// isSpace reports whether r is a space character, as defined by Unicode.
func isSpace(r rune) bool {
	return r != eof && unicode.IsSpace(r)
}
