// Package psparse builds the flat value sequence the interpreter
// consumes out of the token stream internal/pslex produces. The
// grammar itself is trivial — a value is a literal token or a nested
// procedure — because pslex has already done all the hard
// classification work.
package psparse

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/go-ps-lang/ps/internal/pslex"
)

// program is the top-level AST: a flat sequence of values.
type program struct {
	Items []*node `@@*`
}

// node is one value occurrence: a literal token, or a nested `{...}`
// procedure.
type node struct {
	Integer *string    `  @Integer`
	Real    *string    `| @Real`
	String  *string    `| @String`
	Literal *string    `| @LiteralName`
	Exec    *string    `| @ExecName`
	Proc    *procedure `| @@`
}

// procedure is a `{` ... `}` delimited nested value sequence.
type procedure struct {
	Items []*node `"{" @@* "}"`
}

var parser = participle.MustBuild[program](
	participle.Lexer(pslex.Definition),
)

// parseProgram parses src into its AST. A participle or pslex failure
// is returned as is; convertError (errors.go) turns it into a
// psval.Error with Kind == SyntaxError.
func parseProgram(filename, src string) (*program, error) {
	return parser.ParseString(filename, src)
}

// tokenPosition is the position-reporting method set participle errors
// share. errors.go recovers a participle error's position through
// participle.Error, which includes this method; nothing in the package
// refers to tokenPosition itself.
type tokenPosition interface {
	Position() lexer.Position
}
