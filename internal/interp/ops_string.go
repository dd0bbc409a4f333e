package interp

import "github.com/go-ps-lang/ps/internal/psval"

// opGet implements "string index get".
func opGet(i *Interpreter) *psval.Error {
	index, err := i.Operands.PopInteger("get")
	if err != nil {
		return err
	}
	s, err := i.Operands.PopString("get")
	if err != nil {
		return err
	}
	b, ok := s.Get(int(index))
	if !ok {
		return psval.ErrRangeCheck("get", "index out of bounds")
	}
	i.Operands.Push(psval.Integer(b))
	return nil
}

// opGetinterval implements "string index count getinterval", returning
// a shared-view string over [index, index+count).
func opGetinterval(i *Interpreter) *psval.Error {
	count, err := i.Operands.PopInteger("getinterval")
	if err != nil {
		return err
	}
	index, err := i.Operands.PopInteger("getinterval")
	if err != nil {
		return err
	}
	s, err := i.Operands.PopString("getinterval")
	if err != nil {
		return err
	}
	view, ok := s.View(int(index), int(count))
	if !ok {
		return psval.ErrRangeCheck("getinterval", "interval out of bounds")
	}
	i.Operands.Push(view)
	return nil
}

// opPutinterval implements "targetstring index sourcestring
// putinterval". Unlike most operators it does not consume its receiver:
// only index and sourcestring are popped, and targetstring is mutated
// through a peek rather than a pop, left on the stack for the caller
// (two handles produced by an earlier `dup` both observe the mutation
// and can each be consumed independently afterward).
func opPutinterval(i *Interpreter) *psval.Error {
	src, err := i.Operands.PopString("putinterval")
	if err != nil {
		return err
	}
	index, err := i.Operands.PopInteger("putinterval")
	if err != nil {
		return err
	}
	dst, err := i.Operands.Peek(0)
	if err != nil {
		return psval.ErrStackUnderflow("putinterval")
	}
	dstStr, ok := dst.(*psval.Str)
	if !ok {
		return psval.ErrTypeCheck("putinterval", "stringtype", dst.Type())
	}
	if !dstStr.PutInterval(int(index), src) {
		return psval.ErrRangeCheck("putinterval", "source does not fit")
	}
	return nil
}
