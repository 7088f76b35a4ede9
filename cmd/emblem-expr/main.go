// emblem-expr parses Emblem mustache expressions and prints the result.
//
// Expressions are given as arguments, or read one per line from files:
//
//	emblem-expr 'link-to "dog.tag" dog'
//	emblem-expr --format=repr -f views/links.exprs
//	emblem-expr --watch -f views/links.exprs
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
