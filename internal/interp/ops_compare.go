package interp

import "github.com/go-ps-lang/ps/internal/psval"

func opEq(i *Interpreter) *psval.Error {
	b, err := i.Operands.Pop("eq")
	if err != nil {
		return err
	}
	a, err := i.Operands.Pop("eq")
	if err != nil {
		return err
	}
	i.Operands.Push(psval.Boolean(psval.Equal(a, b)))
	return nil
}

func opNe(i *Interpreter) *psval.Error {
	b, err := i.Operands.Pop("ne")
	if err != nil {
		return err
	}
	a, err := i.Operands.Pop("ne")
	if err != nil {
		return err
	}
	i.Operands.Push(psval.Boolean(!psval.Equal(a, b)))
	return nil
}

func compareOp(i *Interpreter, op string, ok func(cmp int) bool) *psval.Error {
	b, err := i.Operands.Pop(op)
	if err != nil {
		return err
	}
	a, err := i.Operands.Pop(op)
	if err != nil {
		return err
	}
	cmp, cerr := psval.Compare(op, a, b)
	if cerr != nil {
		return cerr
	}
	i.Operands.Push(psval.Boolean(ok(cmp)))
	return nil
}

func opLt(i *Interpreter) *psval.Error { return compareOp(i, "lt", func(c int) bool { return c < 0 }) }
func opLe(i *Interpreter) *psval.Error { return compareOp(i, "le", func(c int) bool { return c <= 0 }) }
func opGt(i *Interpreter) *psval.Error { return compareOp(i, "gt", func(c int) bool { return c > 0 }) }
func opGe(i *Interpreter) *psval.Error { return compareOp(i, "ge", func(c int) bool { return c >= 0 }) }

// logicOp implements `and`/`or`: logical when both operands are
// Boolean, bitwise when both are Integer, typecheck on any other
// combination (including a Boolean/Integer mix).
func logicOp(i *Interpreter, op string, boolFn func(a, b bool) bool, intFn func(a, b int64) int64) *psval.Error {
	b, err := i.Operands.Pop(op)
	if err != nil {
		return err
	}
	a, err := i.Operands.Pop(op)
	if err != nil {
		return err
	}
	if ab, ok := a.(psval.Boolean); ok {
		bb, ok := b.(psval.Boolean)
		if !ok {
			return psval.ErrTypeCheck(op, "booleantype", b.Type())
		}
		i.Operands.Push(psval.Boolean(boolFn(bool(ab), bool(bb))))
		return nil
	}
	if ai, ok := a.(psval.Integer); ok {
		bi, ok := b.(psval.Integer)
		if !ok {
			return psval.ErrTypeCheck(op, "integertype", b.Type())
		}
		i.Operands.Push(psval.Integer(intFn(int64(ai), int64(bi))))
		return nil
	}
	return psval.ErrTypeCheck(op, "booleantype or integertype", a.Type())
}

func opAnd(i *Interpreter) *psval.Error {
	return logicOp(i, "and", func(a, b bool) bool { return a && b }, func(a, b int64) int64 { return a & b })
}

func opOr(i *Interpreter) *psval.Error {
	return logicOp(i, "or", func(a, b bool) bool { return a || b }, func(a, b int64) int64 { return a | b })
}

// opNot is logical for Boolean, bitwise complement for Integer.
func opNot(i *Interpreter) *psval.Error {
	v, err := i.Operands.Pop("not")
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case psval.Boolean:
		i.Operands.Push(psval.Boolean(!bool(x)))
		return nil
	case psval.Integer:
		i.Operands.Push(^x)
		return nil
	}
	return psval.ErrTypeCheck("not", "booleantype or integertype", v.Type())
}
