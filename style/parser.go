package style

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	styleLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "Number", Pattern: `[-+]?(?:\d*\.\d+|\d+)(?:px|pt|%)?`},
		{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9-]*`},
		{Name: "Symbol", Pattern: `[:;]`},
	})

	sheetParser = participle.MustBuild[Sheet](
		participle.Lexer(styleLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// Sheet is a list of CSS-like declarations:
//
//	text-align: center; line-height: 150%; overflow: hidden scroll
type Sheet struct {
	Declarations []*Declaration `parser:"( @@ ( ';' @@ )* ';'? )?"`
}

// Declaration is one "property: value..." pair.
type Declaration struct {
	Pos      lexer.Position `parser:""`
	Property string         `parser:"@Ident ':'"`
	Values   []*Value       `parser:"@@+"`
}

// Value is a number with an optional unit, or a keyword.
type Value struct {
	Number  *string `parser:"  @Number"`
	Keyword *string `parser:"| @Ident"`
}

// String returns the value as written.
func (v *Value) String() string {
	switch {
	case v == nil:
		return ""
	case v.Number != nil:
		return *v.Number
	case v.Keyword != nil:
		return *v.Keyword
	default:
		return ""
	}
}

// Parse parses declarations from an io.Reader.
func Parse(r io.Reader) (*Sheet, error) {
	return sheetParser.Parse("", r)
}

// ParseString parses declarations from a string.
func ParseString(input string) (*Sheet, error) {
	return sheetParser.ParseString("", input)
}
