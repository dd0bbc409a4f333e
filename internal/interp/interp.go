// Package interp implements the evaluation engine: stepping values
// against the operand and dictionary stacks, operator dispatch through
// a single data-driven table, and the dynamic/lexical scoping
// strategies.
package interp

import (
	"io"
	"os"

	"github.com/go-ps-lang/ps/internal/psdict"
	"github.com/go-ps-lang/ps/internal/psparse"
	"github.com/go-ps-lang/ps/internal/psstack"
	"github.com/go-ps-lang/ps/internal/psval"
)

// Mode selects the name-resolution discipline a procedure's free
// names are looked up under.
type Mode int

const (
	Dynamic Mode = iota
	Lexical
)

// systemDictCapacity is generous headroom above the operator count
// (the operator table plus true/false). def targets the top of the
// dictionary stack, which is the system dictionary until a `begin`
// has run, so top-level definitions also count against this capacity.
const systemDictCapacity = 256

// Interpreter is the evaluation engine. One Interpreter corresponds to
// one running program; the REPL front end keeps a single Interpreter
// alive across lines so the operand and dictionary stacks persist
// between inputs.
type Interpreter struct {
	Operands *psstack.OperandStack
	Dicts    *psdict.Stack
	Scoping  Mode
	Output   io.Writer

	quitRequested bool
}

// New builds an Interpreter with the system dictionary populated from
// the operator table. If out is nil, output defaults to os.Stdout.
func New(mode Mode, out io.Writer) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	sys := psval.NewDict(systemDictCapacity)
	for name := range operators {
		// Define cannot fail here: systemDictCapacity comfortably
		// exceeds len(operators)+2.
		_ = sys.Define(name, psval.Operator{Name: name})
	}
	_ = sys.Define("true", psval.Boolean(true))
	_ = sys.Define("false", psval.Boolean(false))

	return &Interpreter{
		Operands: psstack.New(),
		Dicts:    psdict.NewStack(sys),
		Scoping:  mode,
		Output:   out,
	}
}

// Quit reports whether the `quit` operator has run. Once true, callers
// (Run, the REPL loop) must stop feeding the interpreter further
// input.
func (i *Interpreter) Quit() bool { return i.quitRequested }

// Run parses src and evaluates the resulting value sequence against
// this Interpreter's stacks. filename is used only to annotate
// syntaxerror positions.
func (i *Interpreter) Run(filename, src string) *psval.Error {
	values, err := psparse.Parse(filename, src)
	if err != nil {
		return err
	}
	return i.RunValues(values)
}

// RunLine is the REPL variant: same evaluation, but named separately
// so call sites document that the caller is feeding one line at a time
// into a long-lived Interpreter rather than a whole file.
func (i *Interpreter) RunLine(src string) *psval.Error {
	return i.Run("", src)
}

// RunValues steps every value in seq in order, stopping at the first
// error or as soon as `quit` has been requested.
func (i *Interpreter) RunValues(seq []psval.Value) *psval.Error {
	for _, v := range seq {
		if err := i.Step(v); err != nil {
			return err
		}
		if i.quitRequested {
			return nil
		}
	}
	return nil
}

// Step evaluates a single value: literals push themselves, executable
// names resolve and either invoke a built-in or call a user procedure,
// and procedure literals push a (possibly scope-captured) handle.
func (i *Interpreter) Step(v psval.Value) *psval.Error {
	switch val := v.(type) {
	case psval.Name:
		if !val.Executable {
			i.Operands.Push(val)
			return nil
		}
		return i.execName(val.Text)
	case *psval.Proc:
		i.Operands.Push(i.captureIfLexical(val))
		return nil
	case psval.Operator:
		return i.invoke(val.Name)
	default:
		// Integer, Real, Boolean, *Str, *Dict, Mark: push as-is.
		i.Operands.Push(v)
		return nil
	}
}

// captureIfLexical implements procedure "construction": under lexical
// scoping, every time a `{...}` literal is stepped over (pushed), it
// is wrapped in a fresh *psval.Proc carrying a snapshot of the live
// dictionary stack, sharing the same (immutable) body. Under dynamic
// scoping the literal is pushed unchanged.
func (i *Interpreter) captureIfLexical(p *psval.Proc) *psval.Proc {
	if i.Scoping != Lexical {
		return p
	}
	return &psval.Proc{Body: p.Body, Env: i.Dicts.Snapshot()}
}

func (i *Interpreter) execName(name string) *psval.Error {
	v, _, err := i.Dicts.Resolve(name)
	if err != nil {
		return err
	}
	switch val := v.(type) {
	case psval.Operator:
		return i.invoke(val.Name)
	case *psval.Proc:
		return i.CallProc(val)
	default:
		i.Operands.Push(val)
		return nil
	}
}

func (i *Interpreter) invoke(name string) *psval.Error {
	fn, ok := operators[name]
	if !ok {
		return psval.ErrUndefined(name)
	}
	return fn(i)
}

// CallProc executes a procedure's body. If the procedure carries a
// lexical-scope snapshot, it is installed for the duration of the call
// and the caller's dictionary stack is restored on every exit path
// (normal completion, error, or `quit`).
func (i *Interpreter) CallProc(p *psval.Proc) *psval.Error {
	if p.Env != nil {
		saved := i.Dicts.Snapshot()
		i.Dicts.Restore(p.Env)
		defer i.Dicts.Restore(saved)
	}
	for _, item := range p.Body {
		if err := i.Step(item); err != nil {
			return err
		}
		if i.quitRequested {
			return nil
		}
	}
	return nil
}
