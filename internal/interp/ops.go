package interp

import "github.com/go-ps-lang/ps/internal/psval"

// opFunc is one operator's implementation, closing over the
// Interpreter it operates on.
type opFunc func(i *Interpreter) *psval.Error

// operators is the system dictionary's data: every built-in name maps
// to the Go function that implements it. New builds the system
// dictionary straight off this table's keys, so adding an operator
// here is the only step needed to make it resolvable and to list it in
// the system dictionary.
var operators = map[string]opFunc{
	// stack manipulation
	"exch":  opExch,
	"pop":   opPop,
	"dup":   opDup,
	"copy":  opCopy,
	"clear": opClear,
	"count": opCount,
	"index": opIndex,

	// arithmetic
	"add":     opAdd,
	"sub":     opSub,
	"mul":     opMul,
	"div":     opDiv,
	"idiv":    opIdiv,
	"mod":     opMod,
	"abs":     opAbs,
	"neg":     opNeg,
	"ceiling": opCeiling,
	"floor":   opFloor,
	"round":   opRound,
	"sqrt":    opSqrt,

	// comparison and boolean logic
	"eq":  opEq,
	"ne":  opNe,
	"lt":  opLt,
	"le":  opLe,
	"gt":  opGt,
	"ge":  opGe,
	"and": opAnd,
	"or":  opOr,
	"not": opNot,

	// dictionaries
	"dict":      opDict,
	"length":    opLength,
	"maxlength": opMaxlength,
	"begin":     opBegin,
	"end":       opEnd,
	"def":       opDef,
	"known":     opKnown,

	// strings
	"get":         opGet,
	"getinterval": opGetinterval,
	"putinterval": opPutinterval,

	// control flow
	"if":          opIf,
	"ifelse":      opIfelse,
	"for":         opFor,
	"repeat":      opRepeat,
	"forall":      opForall,
	"stopped":     opStopped,
	"quit":        opQuit,
	"mark":        opMark,
	"counttomark": opCounttomark,
	"cleartomark": opCleartomark,

	// output
	"print": opPrint,
	"=":     opEquals,
	"==":    opEqualsEquals,
}
