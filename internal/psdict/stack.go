// Package psdict implements the dictionary stack: name resolution,
// begin/end, and the permanent system-dictionary floor. The
// dictionaries themselves (psval.Dict) live in internal/psval because
// they must implement psval.Value; this package only owns the stack
// discipline on top of them.
package psdict

import "github.com/go-ps-lang/ps/internal/psval"

// Stack is the dictionary stack. It is never empty: index 0 is the
// permanent system dictionary seeded by the interpreter at
// construction and can never be popped.
type Stack struct {
	dicts []*psval.Dict
}

// NewStack builds a dictionary stack whose sole initial member is sys,
// the system dictionary.
func NewStack(sys *psval.Dict) *Stack {
	return &Stack{dicts: []*psval.Dict{sys}}
}

// Push installs d as the new top of the dictionary stack (the `begin`
// operator).
func (s *Stack) Push(d *psval.Dict) { s.dicts = append(s.dicts, d) }

// Pop removes the top dictionary (the `end` operator). It fails
// dictstackunderflow if that would remove the permanent system
// dictionary.
func (s *Stack) Pop() *psval.Error {
	if len(s.dicts) <= 1 {
		return psval.ErrDictStackUnderflow("end")
	}
	s.dicts = s.dicts[:len(s.dicts)-1]
	return nil
}

// Top returns the current top dictionary, the target of `def`.
func (s *Stack) Top() *psval.Dict { return s.dicts[len(s.dicts)-1] }

// Depth reports how many dictionaries are currently on the stack
// (always >= 1).
func (s *Stack) Depth() int { return len(s.dicts) }

// Resolve walks the stack top to bottom looking for name, returning
// the first dictionary that binds it along with the bound value. It
// fails `undefined` when no dictionary on the stack binds name. This
// single path serves both executable-name dispatch and any operator
// that reads a named value.
func (s *Stack) Resolve(name string) (psval.Value, *psval.Dict, *psval.Error) {
	for i := len(s.dicts) - 1; i >= 0; i-- {
		if v, ok := s.dicts[i].Lookup(name); ok {
			return v, s.dicts[i], nil
		}
	}
	return nil, nil, psval.ErrUndefined(name)
}

// Snapshot captures the current handle sequence for lexical-scope
// capture at procedure construction. It is a shallow copy: the
// *psval.Dict pointers are shared, only the slice backing them is
// duplicated, so later mutations to those dictionaries (via `def`)
// remain visible through the snapshot.
func (s *Stack) Snapshot() psval.DictStackSnapshot {
	cp := make(psval.DictStackSnapshot, len(s.dicts))
	copy(cp, s.dicts)
	return cp
}

// Restore replaces the stack's contents wholesale, used to install a
// captured snapshot for the duration of a lexically-scoped call and to
// restore the caller's stack afterward.
func (s *Stack) Restore(snap psval.DictStackSnapshot) {
	s.dicts = make([]*psval.Dict, len(snap))
	copy(s.dicts, snap)
}
