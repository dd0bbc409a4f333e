package interp

import "github.com/go-ps-lang/ps/internal/psval"

func opExch(i *Interpreter) *psval.Error {
	b, err := i.Operands.Pop("exch")
	if err != nil {
		return err
	}
	a, err := i.Operands.Pop("exch")
	if err != nil {
		return err
	}
	i.Operands.Push(b)
	i.Operands.Push(a)
	return nil
}

func opPop(i *Interpreter) *psval.Error {
	_, err := i.Operands.Pop("pop")
	return err
}

func opDup(i *Interpreter) *psval.Error {
	v, err := i.Operands.Peek(0)
	if err != nil {
		return psval.ErrStackUnderflow("dup")
	}
	i.Operands.Push(v)
	return nil
}

// opCopy implements the n-integer form only: "n copy" duplicates the
// top n operands as a group, preserving their order. Negative n is a
// rangecheck; the dict-copy and array-copy overloads of real
// PostScript's `copy` are out of scope here (no array type, and dict
// copying is covered separately by begin/end aliasing).
func opCopy(i *Interpreter) *psval.Error {
	n, err := i.Operands.PopInteger("copy")
	if err != nil {
		return err
	}
	if n < 0 {
		return psval.ErrRangeCheck("copy", "negative count")
	}
	items, err := i.Operands.PopN("copy", int(n))
	if err != nil {
		return err
	}
	for _, v := range items {
		i.Operands.Push(v)
	}
	for _, v := range items {
		i.Operands.Push(v)
	}
	return nil
}

func opClear(i *Interpreter) *psval.Error {
	i.Operands.Clear()
	return nil
}

func opCount(i *Interpreter) *psval.Error {
	i.Operands.Push(psval.Integer(i.Operands.Depth()))
	return nil
}

// opIndex implements "n index": push a copy of the operand n deep
// (0 index duplicates the top, same as dup).
func opIndex(i *Interpreter) *psval.Error {
	n, err := i.Operands.PopInteger("index")
	if err != nil {
		return err
	}
	if n < 0 {
		return psval.ErrRangeCheck("index", "negative index")
	}
	v, perr := i.Operands.Peek(int(n))
	if perr != nil {
		return psval.ErrStackUnderflow("index")
	}
	i.Operands.Push(v)
	return nil
}
