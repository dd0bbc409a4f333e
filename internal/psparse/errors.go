package psparse

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/go-ps-lang/ps/internal/pslex"
	"github.com/go-ps-lang/ps/internal/psval"
)

// convertError turns whatever participle hands back — either our own
// *pslex.Error (unterminated string, unbalanced `)`, empty literal
// name) or participle's own grammar-mismatch error (most commonly an
// unmatched `}`) — into a single syntaxerror carrying a source
// position.
func convertError(err error) *psval.Error {
	var lexErr *pslex.Error
	if errors.As(err, &lexErr) {
		return psval.ErrSyntax(toPosition(lexErr.Pos), lexErr.Msg)
	}
	var perr participle.Error
	if errors.As(err, &perr) {
		return psval.ErrSyntax(toPosition(perr.Position()), perr.Message())
	}
	return psval.ErrSyntax(psval.Position{}, err.Error())
}

func toPosition(p lexer.Position) psval.Position {
	return psval.Position{Filename: p.Filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
}
