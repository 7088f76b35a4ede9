/*
Package emblem parses the mustache expressions of Emblem, the
indentation-sensitive template language that compiles to Handlebars.

A mustache expression is the part of an Emblem line that names a helper or
component and passes it attributes:

  link-to "dog.tag" dog
  frank%span#my-id.class-name
  echofun fun=(equal "ECHO hello" (echo (hello))) win="yes"
  foo!

Parsing one yields the name, the attributes in source order, and the
optional trailing modifier:

  node, err := emblem.ParseExpression(`frank%span .big foo = bar`)
  // node.Name  == "frank"
  // node.Attrs == []string{`tagName="span"`, `class="big"`, "foo=bar"}

Shorthand (%tag, #id, .class) is expanded into tagName, elementId and class
attributes.  Quoted strings and parenthesized sub-expressions are kept as
written; the only normalization is dropping whitespace around "=".

Invalid expressions return an *errortypes.InvalidExpression, which matches
errortypes.ErrInvalidExpression and reports the offending position.

Expression files

For tooling and tests, a Bundle parses files holding one expression per line:

  exprs, err := emblem.NewBundle().
      WatchFiles(mode == "dev").   // re-parse on changes (in dev)
      AddExpressionDir("views").   // load *.exprs in all sub-directories
      Compile()

Advanced Usage

The emblem package provides a friendly interface to its sub-packages.  Callers
that only need the parser may use emblem/parse directly.
*/
package emblem
