package parse

// quote is the quoting state of the scanner.  There are no escape sequences:
// a backslash is ordinary content, and so is a quote character of the other
// kind, which is what allows placeholder="'100%" and placeholder='"100%'.
type quote rune

const (
	noQuote     quote = 0
	singleQuote quote = '\''
	doubleQuote quote = '"'
)

func isQuote(r rune) bool {
	return r == rune(singleQuote) || r == rune(doubleQuote)
}

// after returns the quoting state after reading r.
func (q quote) after(r rune) quote {
	if !isQuote(r) {
		return q
	}
	switch q {
	case noQuote:
		return quote(r)
	case quote(r):
		return noQuote
	}
	return q
}

func (q quote) String() string {
	switch q {
	case singleQuote:
		return "single quote"
	case doubleQuote:
		return "double quote"
	}
	return "no quote"
}

// shorthandAttr expands a shorthand suffix into the attribute it stands for,
// e.g. %span => tagName="span".  Shorthand words never contain quotes.
func shorthandAttr(key, value string) string {
	return key + `="` + value + `"`
}
