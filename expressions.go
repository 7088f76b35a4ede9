package emblem

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/robfig/emblem/ast"
	"github.com/robfig/emblem/errortypes"
	"github.com/robfig/emblem/parse"
)

// Expression is a parsed mustache expression along with where it came from.
type Expression struct {
	File string `json:"file,omitempty"`
	Line int    `json:"line,omitempty"`
	*ast.MustacheNode
}

// ParseExpression parses a single mustache expression, e.g.
//
//	link-to "dog.tag" dog
//
// Failures match errortypes.ErrInvalidExpression.
func ParseExpression(text string) (*ast.MustacheNode, error) {
	return parse.Expression("", text)
}

// ParseExpressions parses the given input, expecting one expression per line.
//
// Furthermore:
//   - Empty lines and lines beginning with '//' are ignored.
//   - Errors report the name and the line within the input, including read
//     errors such as a line longer than bufio.MaxScanTokenSize.
func ParseExpressions(name string, input io.Reader) ([]Expression, error) {
	var exprs []Expression
	var scanner = bufio.NewScanner(input)
	var lineno = 0
	for scanner.Scan() {
		lineno++
		var line = strings.TrimRight(scanner.Text(), "\r")
		var trimmed = strings.TrimSpace(line)
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, "//") {
			continue
		}
		var node, err = parse.Expression(name, line)
		if err != nil {
			var invalid *errortypes.InvalidExpression
			if errors.As(err, &invalid) {
				return nil, invalid.AtLine(name, lineno)
			}
			return nil, err
		}
		exprs = append(exprs, Expression{name, lineno, node})
	}
	if err := scanner.Err(); err != nil {
		return nil, errortypes.NewErrFilePosf(name, lineno+1, 1, "read %s:%d: %w", name, lineno+1, err)
	}
	return exprs, nil
}
