package parse

import (
	"testing"
)

type lexTest struct {
	name  string
	input string
	items []item
}

var tEOF = item{itemEOF, 0, ""}

func tName(val string) item { return item{itemName, 0, val} }
func tError(val string) item { return item{itemError, 0, val} }

var lexTests = []lexTest{
	{"name", "frank", []item{tName("frank"), tEOF}},
	{"namespaced name", "App.Funview", []item{tName("App.Funview"), tEOF}},
	{"name with slash", "navigation/button-list", []item{tName("navigation/button-list"), tEOF}},
	{"leading space", "  frank", []item{tName("frank"), tEOF}},
	{"bang", "foo!", []item{tName("foo"), {itemModifier, 0, "!"}, tEOF}},
	{"conditional", "foo?", []item{tName("foo"), {itemModifier, 0, "?"}, tEOF}},
	{"bang then space", "foo! \t", []item{tName("foo"), {itemModifier, 0, "!"}, tEOF}},
	{"form feed separates attrs", "frank a\fb", []item{
		tName("frank"),
		{itemValue, 0, "a"},
		{itemValue, 0, "b"},
		tEOF,
	}},

	{"shorthand", "frank%span#my-id.class-name", []item{
		tName("frank"),
		{itemTagName, 0, "%span"},
		{itemElementID, 0, "#my-id"},
		{itemClass, 0, ".class-name"},
		tEOF,
	}},
	{"detached classes", "frank .class-name1.class-name2", []item{
		tName("frank"),
		{itemClass, 0, ".class-name1"},
		{itemClass, 0, ".class-name2"},
		tEOF,
	}},
	{"detached class after shorthand", "frank#id .big bar", []item{
		tName("frank"),
		{itemElementID, 0, "#id"},
		{itemClass, 0, ".big"},
		{itemValue, 0, "bar"},
		tEOF,
	}},

	{"key value", "frank foo=bar", []item{
		tName("frank"),
		{itemKey, 0, "foo"},
		{itemValue, 0, "bar"},
		tEOF,
	}},
	{"key value with spaces", "frank foo = bar  boo =far ", []item{
		tName("frank"),
		{itemKey, 0, "foo"},
		{itemValue, 0, "bar"},
		{itemKey, 0, "boo"},
		{itemValue, 0, "far"},
		tEOF,
	}},
	{"positional", `link-to "dog.tag" dog`, []item{
		tName("link-to"),
		{itemString, 0, `"dog.tag"`},
		{itemValue, 0, "dog"},
		tEOF,
	}},
	{"quote of the other kind", `input placeholder="'100% /^%&*()x12#"`, []item{
		tName("input"),
		{itemKey, 0, "placeholder"},
		{itemString, 0, `"'100% /^%&*()x12#"`},
		tEOF,
	}},
	{"empty string", `input placeholder=''`, []item{
		tName("input"),
		{itemKey, 0, "placeholder"},
		{itemString, 0, `''`},
		tEOF,
	}},
	{"backslash is content", `input value="a\" b`, []item{
		tName("input"),
		{itemKey, 0, "value"},
		{itemString, 0, `"a\"`},
		{itemValue, 0, "b"},
		tEOF,
	}},
	{"sub-expression", "frank (query-params groupId=defaultGroup.id (more-qp x=foo))", []item{
		tName("frank"),
		{itemSubExpr, 0, "(query-params groupId=defaultGroup.id (more-qp x=foo))"},
		tEOF,
	}},
	{"sub-expression value", `echofun fun=(equal "ECHO )" (echo (hello)))`, []item{
		tName("echofun"),
		{itemKey, 0, "fun"},
		{itemSubExpr, 0, `(equal "ECHO )" (echo (hello)))`},
		tEOF,
	}},
	{"dotted and relative paths", "each ../items .5 this.name", []item{
		tName("each"),
		{itemValue, 0, "../items"},
		{itemValue, 0, ".5"},
		{itemValue, 0, "this.name"},
		tEOF,
	}},

	{"empty", "", []item{tError("empty expression")}},
	{"leading dot", ".frank", []item{tError("expression must begin with a letter, found '.'")}},
	{"leading dash", "-frank", []item{tError("expression must begin with a letter, found '-'")}},
	{"leading digit", "9frank", []item{tError("expression must begin with a letter, found '9'")}},
	{"standalone slash", "navigation/button-list / omg", []item{
		tName("navigation/button-list"),
		tError("unexpected standalone /"),
	}},
	{"unclosed paren", "frank (query-params abc=def", []item{
		tName("frank"),
		tError("unclosed ("),
	}},
	{"unterminated quote in paren", `frank (echo "abc)`, []item{
		tName("frank"),
		tError("unterminated double quote in sub-expression"),
	}},
	{"unmatched paren", "frank foo)", []item{
		tName("frank"),
		{itemValue, 0, "foo"},
		tError("unmatched )"),
	}},
	{"unterminated quote", `frank 'abc`, []item{
		tName("frank"),
		tError("unterminated single quote, missing '"),
	}},
	{"modifier with attrs", "foo! bar", []item{
		tName("foo"),
		tError("modifier '!' must end the expression"),
	}},
	{"modifier after attr", "foo bar?", []item{
		tName("foo"),
		{itemValue, 0, "bar"},
		tError("modifier '?' must directly follow the name"),
	}},
	{"modifier after shorthand", "foo%span!", []item{
		tName("foo"),
		{itemTagName, 0, "%span"},
		tError("modifier '!' must directly follow the name"),
	}},
	{"empty shorthand", "frank#", []item{
		tName("frank"),
		tError("expected a name after '#'"),
	}},
	{"class after attribute", "frank foo .bar", []item{
		tName("frank"),
		{itemValue, 0, "foo"},
		tError("class shorthand must directly follow the name"),
	}},
	{"second detached class group", "frank .a .b", []item{
		tName("frank"),
		{itemClass, 0, ".a"},
		tError("class shorthand must directly follow the name"),
	}},
	{"missing value", "frank foo=", []item{
		tName("frank"),
		{itemKey, 0, "foo"},
		tError(`missing value for "foo"`),
	}},
	{"missing key", "frank =bar", []item{
		tName("frank"),
		tError("missing attribute name before ="),
	}},
	{"invalid key", "frank 1=bar", []item{
		tName("frank"),
		tError(`invalid attribute name "1"`),
	}},
	{"unseparated attributes", `frank "a"b`, []item{
		tName("frank"),
		{itemString, 0, `"a"`},
		tError(`unexpected 'b' after attribute "\"a\""`),
	}},
	{"junk after name", `frank"a"`, []item{
		tName("frank"),
		tError(`unexpected '"' after name "frank"`),
	}},
}

func collect(t *lexTest) []item {
	return lex(t.name, t.input).items
}

func equal(i1, i2 []item, checkPos bool) bool {
	if len(i1) != len(i2) {
		return false
	}
	for k := range i1 {
		if i1[k].typ != i2[k].typ {
			return false
		}
		if i1[k].val != i2[k].val {
			return false
		}
		if checkPos && i1[k].pos != i2[k].pos {
			return false
		}
	}
	return true
}

func TestLex(t *testing.T) {
	for _, test := range lexTests {
		items := collect(&test)
		if !equal(items, test.items, false) {
			t.Errorf("%s: got\n\t%+v\nexpected\n\t%v", test.name, items, test.items)
		}
	}
}

func TestLexPositions(t *testing.T) {
	var test = lexTest{"positions", `frank  foo = "bar" (x)`, []item{
		{itemName, 0, "frank"},
		{itemKey, 7, "foo"},
		{itemString, 13, `"bar"`},
		{itemSubExpr, 19, "(x)"},
		{itemEOF, 22, ""},
	}}
	items := collect(&test)
	if !equal(items, test.items, true) {
		t.Errorf("%s: got\n\t%+v\nexpected\n\t%v", test.name, items, test.items)
	}
}

func TestLexErrorPositions(t *testing.T) {
	var tests = []struct {
		input string
		pos   int
	}{
		{"9frank", 0},
		{"  -frank", 2},
		{"navigation/button-list / omg", 23},
		{"frank (abc", 6},
		{"frank foo)", 9},
		{"foo!x", 3},
		{`frank foo="abc`, 10},
	}
	for _, test := range tests {
		items := lex("", test.input).items
		last := items[len(items)-1]
		if last.typ != itemError {
			t.Errorf("%q: expected an error, got %v", test.input, items)
			continue
		}
		if int(last.pos) != test.pos {
			t.Errorf("%q: expected error at %d, got %d (%v)", test.input, test.pos, last.pos, last)
		}
	}
}
