package interp

import "github.com/go-ps-lang/ps/internal/psval"

func opIf(i *Interpreter) *psval.Error {
	proc, err := i.Operands.PopProc("if")
	if err != nil {
		return err
	}
	cond, err := i.Operands.PopBoolean("if")
	if err != nil {
		return err
	}
	if cond {
		return i.CallProc(proc)
	}
	return nil
}

func opIfelse(i *Interpreter) *psval.Error {
	elseProc, err := i.Operands.PopProc("ifelse")
	if err != nil {
		return err
	}
	thenProc, err := i.Operands.PopProc("ifelse")
	if err != nil {
		return err
	}
	cond, err := i.Operands.PopBoolean("ifelse")
	if err != nil {
		return err
	}
	if cond {
		return i.CallProc(thenProc)
	}
	return i.CallProc(elseProc)
}

// opFor implements "initial increment limit proc for": the control
// value's variant promotes to Real if any of initial/increment/limit
// is Real, matching the numeric coercion rule.
func opFor(i *Interpreter) *psval.Error {
	proc, err := i.Operands.PopProc("for")
	if err != nil {
		return err
	}
	limit, err := i.Operands.PopNumber("for")
	if err != nil {
		return err
	}
	increment, err := i.Operands.PopNumber("for")
	if err != nil {
		return err
	}
	initial, err := i.Operands.PopNumber("for")
	if err != nil {
		return err
	}

	_, initReal := initial.(psval.Real)
	_, incReal := increment.(psval.Real)
	_, limReal := limit.(psval.Real)
	real := initReal || incReal || limReal

	incFloat := numberToFloat(increment)
	if incFloat == 0 {
		return psval.ErrRangeCheck("for", "zero increment")
	}
	control := numberToFloat(initial)
	limFloat := numberToFloat(limit)

	for {
		if incFloat > 0 && control > limFloat {
			break
		}
		if incFloat < 0 && control < limFloat {
			break
		}
		if real {
			i.Operands.Push(psval.Real(control))
		} else {
			i.Operands.Push(psval.Integer(control))
		}
		if cerr := i.CallProc(proc); cerr != nil {
			return cerr
		}
		if i.quitRequested {
			return nil
		}
		control += incFloat
	}
	return nil
}

func numberToFloat(v psval.Value) float64 {
	switch x := v.(type) {
	case psval.Integer:
		return float64(x)
	case psval.Real:
		return float64(x)
	}
	return 0
}

func opRepeat(i *Interpreter) *psval.Error {
	proc, err := i.Operands.PopProc("repeat")
	if err != nil {
		return err
	}
	n, err := i.Operands.PopInteger("repeat")
	if err != nil {
		return err
	}
	if n < 0 {
		return psval.ErrRangeCheck("repeat", "negative count")
	}
	for k := int64(0); k < int64(n); k++ {
		if cerr := i.CallProc(proc); cerr != nil {
			return cerr
		}
		if i.quitRequested {
			return nil
		}
	}
	return nil
}

// opForall iterates a string's bytes, pushing each as an Integer and
// running proc. Real PostScript's forall also iterates arrays; this
// subset has no array type, so forall is restricted to strings.
func opForall(i *Interpreter) *psval.Error {
	proc, err := i.Operands.PopProc("forall")
	if err != nil {
		return err
	}
	s, err := i.Operands.PopString("forall")
	if err != nil {
		return err
	}
	for _, b := range s.Bytes() {
		i.Operands.Push(psval.Integer(b))
		if cerr := i.CallProc(proc); cerr != nil {
			return cerr
		}
		if i.quitRequested {
			return nil
		}
	}
	return nil
}

// opStopped runs proc, converting any error it raises into a pushed
// Boolean(true) rather than propagating it. This is the one piece of
// error recovery the language offers; every other operator propagates.
func opStopped(i *Interpreter) *psval.Error {
	proc, err := i.Operands.PopProc("stopped")
	if err != nil {
		return err
	}
	if cerr := i.CallProc(proc); cerr != nil {
		i.Operands.Push(psval.Boolean(true))
		return nil
	}
	i.Operands.Push(psval.Boolean(false))
	return nil
}

func opQuit(i *Interpreter) *psval.Error {
	i.quitRequested = true
	return nil
}

func opMark(i *Interpreter) *psval.Error {
	i.Operands.Push(psval.Mark{})
	return nil
}

// opCounttomark counts the operands above the nearest Mark, leaving
// the stack (including the mark) untouched.
func opCounttomark(i *Interpreter) *psval.Error {
	depth, err := findMark(i, "counttomark")
	if err != nil {
		return err
	}
	i.Operands.Push(psval.Integer(depth))
	return nil
}

// opCleartomark discards the nearest Mark and everything above it.
func opCleartomark(i *Interpreter) *psval.Error {
	depth, err := findMark(i, "cleartomark")
	if err != nil {
		return err
	}
	for k := 0; k <= depth; k++ {
		if _, perr := i.Operands.Pop("cleartomark"); perr != nil {
			return perr
		}
	}
	return nil
}

// findMark scans down from the top of the operand stack for the
// nearest Mark, returning how many operands sit above it. There is no
// dedicated "unmatchedmark" kind in this subset's error taxonomy, so
// an absent mark is reported as stackunderflow: it means the operator
// ran out of stack before finding what it needed.
func findMark(i *Interpreter, op string) (int, *psval.Error) {
	for k := 0; ; k++ {
		v, err := i.Operands.Peek(k)
		if err != nil {
			return 0, psval.ErrStackUnderflow(op)
		}
		if _, ok := v.(psval.Mark); ok {
			return k, nil
		}
	}
}
