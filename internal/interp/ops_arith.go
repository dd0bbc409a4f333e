package interp

import "github.com/go-ps-lang/ps/internal/psval"

// binaryNumeric pops b then a (so the source reads "a b op", matching
// PostScript's postfix convention), applies fn, and pushes the result.
func binaryNumeric(i *Interpreter, op string, fn func(op string, a, b psval.Value) (psval.Value, *psval.Error)) *psval.Error {
	b, err := i.Operands.PopNumber(op)
	if err != nil {
		return err
	}
	a, err := i.Operands.PopNumber(op)
	if err != nil {
		return err
	}
	result, rerr := fn(op, a, b)
	if rerr != nil {
		return rerr
	}
	i.Operands.Push(result)
	return nil
}

func unaryNumeric(i *Interpreter, op string, fn func(op string, a psval.Value) (psval.Value, *psval.Error)) *psval.Error {
	a, err := i.Operands.PopNumber(op)
	if err != nil {
		return err
	}
	result, rerr := fn(op, a)
	if rerr != nil {
		return rerr
	}
	i.Operands.Push(result)
	return nil
}

func opAdd(i *Interpreter) *psval.Error  { return binaryNumeric(i, "add", psval.Add) }
func opSub(i *Interpreter) *psval.Error  { return binaryNumeric(i, "sub", psval.Sub) }
func opMul(i *Interpreter) *psval.Error  { return binaryNumeric(i, "mul", psval.Mul) }
func opDiv(i *Interpreter) *psval.Error  { return binaryNumeric(i, "div", psval.Div) }
func opIdiv(i *Interpreter) *psval.Error { return binaryNumeric(i, "idiv", psval.Idiv) }
func opMod(i *Interpreter) *psval.Error  { return binaryNumeric(i, "mod", psval.Mod) }

func opAbs(i *Interpreter) *psval.Error     { return unaryNumeric(i, "abs", psval.Abs) }
func opNeg(i *Interpreter) *psval.Error     { return unaryNumeric(i, "neg", psval.Neg) }
func opCeiling(i *Interpreter) *psval.Error { return unaryNumeric(i, "ceiling", psval.Ceiling) }
func opFloor(i *Interpreter) *psval.Error   { return unaryNumeric(i, "floor", psval.Floor) }
func opRound(i *Interpreter) *psval.Error   { return unaryNumeric(i, "round", psval.Round) }
func opSqrt(i *Interpreter) *psval.Error    { return unaryNumeric(i, "sqrt", psval.Sqrt) }
