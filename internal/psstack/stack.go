// Package psstack implements the operand stack: an unbounded LIFO of
// psval.Value plus typed pop helpers that translate a Go type
// assertion failure into a typecheck error and an empty stack into a
// stackunderflow error, the shape every operator needs.
package psstack

import "github.com/go-ps-lang/ps/internal/psval"

// OperandStack is the interpreter's main data stack.
type OperandStack struct {
	items []psval.Value
}

// New returns an empty operand stack.
func New() *OperandStack { return &OperandStack{} }

// Push pushes v.
func (s *OperandStack) Push(v psval.Value) { s.items = append(s.items, v) }

// Depth reports the current stack depth.
func (s *OperandStack) Depth() int { return len(s.items) }

// Clear empties the stack.
func (s *OperandStack) Clear() { s.items = s.items[:0] }

// Peek returns the value at depth k from the top (0 = top) without
// removing it.
func (s *OperandStack) Peek(k int) (psval.Value, *psval.Error) {
	idx := len(s.items) - 1 - k
	if idx < 0 {
		return nil, psval.ErrStackUnderflow("peek")
	}
	return s.items[idx], nil
}

// Pop removes and returns the top value.
func (s *OperandStack) Pop(op string) (psval.Value, *psval.Error) {
	if len(s.items) == 0 {
		return nil, psval.ErrStackUnderflow(op)
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

// PopN removes and returns the top n values in bottom-to-top order
// (so the item that was deepest of the n comes first), used by `copy`.
func (s *OperandStack) PopN(op string, n int) ([]psval.Value, *psval.Error) {
	if len(s.items) < n {
		return nil, psval.ErrStackUnderflow(op)
	}
	out := make([]psval.Value, n)
	copy(out, s.items[len(s.items)-n:])
	s.items = s.items[:len(s.items)-n]
	return out, nil
}

// PopInteger pops a value and requires it to be an Integer.
func (s *OperandStack) PopInteger(op string) (psval.Integer, *psval.Error) {
	v, err := s.Pop(op)
	if err != nil {
		return 0, err
	}
	i, ok := v.(psval.Integer)
	if !ok {
		return 0, psval.ErrTypeCheck(op, "integertype", v.Type())
	}
	return i, nil
}

// PopNumber pops a value and requires it to be numeric (Integer or
// Real).
func (s *OperandStack) PopNumber(op string) (psval.Value, *psval.Error) {
	v, err := s.Pop(op)
	if err != nil {
		return nil, err
	}
	switch v.(type) {
	case psval.Integer, psval.Real:
		return v, nil
	}
	return nil, psval.ErrTypeCheck(op, "number", v.Type())
}

// PopString pops a value and requires it to be a string handle.
func (s *OperandStack) PopString(op string) (*psval.Str, *psval.Error) {
	v, err := s.Pop(op)
	if err != nil {
		return nil, err
	}
	str, ok := v.(*psval.Str)
	if !ok {
		return nil, psval.ErrTypeCheck(op, "stringtype", v.Type())
	}
	return str, nil
}

// PopProc pops a value and requires it to be a procedure handle.
func (s *OperandStack) PopProc(op string) (*psval.Proc, *psval.Error) {
	v, err := s.Pop(op)
	if err != nil {
		return nil, err
	}
	p, ok := v.(*psval.Proc)
	if !ok {
		return nil, psval.ErrTypeCheck(op, "proctype", v.Type())
	}
	return p, nil
}

// PopDict pops a value and requires it to be a dictionary handle.
func (s *OperandStack) PopDict(op string) (*psval.Dict, *psval.Error) {
	v, err := s.Pop(op)
	if err != nil {
		return nil, err
	}
	d, ok := v.(*psval.Dict)
	if !ok {
		return nil, psval.ErrTypeCheck(op, "dicttype", v.Type())
	}
	return d, nil
}

// PopBoolean pops a value and requires it to be a Boolean.
func (s *OperandStack) PopBoolean(op string) (psval.Boolean, *psval.Error) {
	v, err := s.Pop(op)
	if err != nil {
		return false, err
	}
	b, ok := v.(psval.Boolean)
	if !ok {
		return false, psval.ErrTypeCheck(op, "booleantype", v.Type())
	}
	return b, nil
}

// PopName pops a value and requires it to be a Name (either literal
// or executable form is accepted).
func (s *OperandStack) PopName(op string) (psval.Name, *psval.Error) {
	v, err := s.Pop(op)
	if err != nil {
		return psval.Name{}, err
	}
	n, ok := v.(psval.Name)
	if !ok {
		return psval.Name{}, psval.ErrTypeCheck(op, "nametype", v.Type())
	}
	return n, nil
}
