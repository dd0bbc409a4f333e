package psval

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind enumerates the interpreter's error taxonomy. Names are
// conceptual: they are never surfaced as PostScript error dictionaries
// (there is no save/restore or `errordict` mechanism here), only as
// the Kind field of *Error for callers that need to branch on the
// failure category.
type Kind int

const (
	StackUnderflow Kind = iota
	DictStackUnderflow
	TypeCheck
	RangeCheck
	Undefined
	UndefinedResult
	DictFull
	SyntaxError
)

func (k Kind) String() string {
	switch k {
	case StackUnderflow:
		return "stackunderflow"
	case DictStackUnderflow:
		return "dictstackunderflow"
	case TypeCheck:
		return "typecheck"
	case RangeCheck:
		return "rangecheck"
	case Undefined:
		return "undefined"
	case UndefinedResult:
		return "undefinedresult"
	case DictFull:
		return "dictfull"
	case SyntaxError:
		return "syntaxerror"
	default:
		return "unknownerror"
	}
}

// Position locates a syntaxerror in source text. It mirrors
// participle/v2/lexer.Position's fields so internal/psparse can convert
// one into the other without psval depending on participle.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Error is the error type every operator and the parser return. It
// wraps a github.com/pkg/errors cause so that "%+v" prints a stack
// trace from the point of failure.
type Error struct {
	Kind Kind
	Op   string
	Pos  Position // zero value unless Kind == SyntaxError
	err  error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return e.Op + ": " + e.err.Error()
	}
	return e.err.Error()
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As and the
// "%+v" stack-trace formatting of github.com/pkg/errors keep working
// through *Error.
func (e *Error) Unwrap() error { return e.err }

// Format satisfies fmt.Formatter so that fmt.Fprintf(w, "%+v", err)
// on a *psval.Error prints the wrapped stack trace, matching
// github.com/pkg/errors' own convention.
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %+v", e.Kind, e.err)
		return
	}
	fmt.Fprint(s, e.Error())
}

func newError(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, err: errors.Errorf(format, args...)}
}

// ErrStackUnderflow reports that op needed more operands than the
// stack held.
func ErrStackUnderflow(op string) *Error {
	return newError(StackUnderflow, op, "stack underflow")
}

// ErrDictStackUnderflow reports an `end` at the system-dictionary
// floor.
func ErrDictStackUnderflow(op string) *Error {
	return newError(DictStackUnderflow, op, "dictionary stack underflow")
}

// ErrTypeCheck reports that op received a value of the wrong variant.
func ErrTypeCheck(op, want, got string) *Error {
	return newError(TypeCheck, op, "expected %s, got %s", want, got)
}

// ErrRangeCheck reports an out-of-range numeric or index argument.
func ErrRangeCheck(op, reason string) *Error {
	return newError(RangeCheck, op, "%s", reason)
}

// ErrUndefined reports an executable name with no binding anywhere on
// the dictionary stack.
func ErrUndefined(name string) *Error {
	return newError(Undefined, name, "undefined")
}

// ErrUndefinedResult reports integer division or modulo by zero.
func ErrUndefinedResult(op string) *Error {
	return newError(UndefinedResult, op, "undefined result")
}

// ErrDictFull reports `def` of a new key into a dictionary at
// capacity.
func ErrDictFull(op string) *Error {
	return newError(DictFull, op, "dictionary full")
}

// ErrSyntax reports a parser failure at pos.
func ErrSyntax(pos Position, reason string) *Error {
	e := newError(SyntaxError, "", "%s", reason)
	e.Pos = pos
	return e
}
