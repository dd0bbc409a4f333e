package psval

import "math"

func asFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case Integer:
		return float64(x), true
	case Real:
		return float64(x), true
	}
	return 0, false
}

func bothInt(a, b Value) (Integer, Integer, bool) {
	ai, aok := a.(Integer)
	bi, bok := b.(Integer)
	return ai, bi, aok && bok
}

// Add, Sub, Mul implement the numeric coercion rule: Integer op Integer
// stays Integer, any Real operand promotes the result to Real.
func Add(op string, a, b Value) (Value, *Error) { return arith2(op, a, b, func(x, y int64) int64 { return x + y }, func(x, y float64) float64 { return x + y }) }
func Sub(op string, a, b Value) (Value, *Error) { return arith2(op, a, b, func(x, y int64) int64 { return x - y }, func(x, y float64) float64 { return x - y }) }
func Mul(op string, a, b Value) (Value, *Error) { return arith2(op, a, b, func(x, y int64) int64 { return x * y }, func(x, y float64) float64 { return x * y }) }

func arith2(op string, a, b Value, iFn func(x, y int64) int64, fFn func(x, y float64) float64) (Value, *Error) {
	if ai, bi, ok := bothInt(a, b); ok {
		return Integer(iFn(int64(ai), int64(bi))), nil
	}
	af, aok := asFloat(a)
	if !aok {
		return nil, ErrTypeCheck(op, "number", a.Type())
	}
	bf, bok := asFloat(b)
	if !bok {
		return nil, ErrTypeCheck(op, "number", b.Type())
	}
	return Real(fFn(af, bf)), nil
}

// Div always yields Real, regardless of operand variants. Division by
// zero follows IEEE-754 and produces ±Inf rather than an error; only
// the integer operators (Idiv, Mod) treat a zero divisor as a failure.
func Div(op string, a, b Value) (Value, *Error) {
	af, aok := asFloat(a)
	if !aok {
		return nil, ErrTypeCheck(op, "number", a.Type())
	}
	bf, bok := asFloat(b)
	if !bok {
		return nil, ErrTypeCheck(op, "number", b.Type())
	}
	return Real(af / bf), nil
}

// Idiv requires both operands Integer and truncates toward zero.
func Idiv(op string, a, b Value) (Value, *Error) {
	ai, bi, ok := bothInt(a, b)
	if !ok {
		return nil, ErrTypeCheck(op, "integer", mismatchType(a, b))
	}
	if bi == 0 {
		return nil, ErrUndefinedResult(op)
	}
	return Integer(int64(ai) / int64(bi)), nil
}

// Mod requires both operands Integer; the result has the sign of the
// dividend, matching Go's % operator.
func Mod(op string, a, b Value) (Value, *Error) {
	ai, bi, ok := bothInt(a, b)
	if !ok {
		return nil, ErrTypeCheck(op, "integer", mismatchType(a, b))
	}
	if bi == 0 {
		return nil, ErrUndefinedResult(op)
	}
	return Integer(int64(ai) % int64(bi)), nil
}

func mismatchType(a, b Value) string {
	if _, ok := a.(Integer); !ok {
		return a.Type()
	}
	return b.Type()
}

// Abs and Neg preserve the input's numeric variant.
func Abs(op string, a Value) (Value, *Error) {
	switch x := a.(type) {
	case Integer:
		if x < 0 {
			return -x, nil
		}
		return x, nil
	case Real:
		return Real(math.Abs(float64(x))), nil
	}
	return nil, ErrTypeCheck(op, "number", a.Type())
}

func Neg(op string, a Value) (Value, *Error) {
	switch x := a.(type) {
	case Integer:
		return -x, nil
	case Real:
		return -x, nil
	}
	return nil, ErrTypeCheck(op, "number", a.Type())
}

// roundLike applies fn to Real inputs and leaves Integer inputs
// untouched (they're already their own integral value).
func roundLike(op string, a Value, fn func(float64) float64) (Value, *Error) {
	switch x := a.(type) {
	case Integer:
		return x, nil
	case Real:
		return Real(fn(float64(x))), nil
	}
	return nil, ErrTypeCheck(op, "number", a.Type())
}

func Ceiling(op string, a Value) (Value, *Error) { return roundLike(op, a, math.Ceil) }
func Floor(op string, a Value) (Value, *Error)   { return roundLike(op, a, math.Floor) }

// Round uses round-half-away-from-zero, matching Go's math.Round.
func Round(op string, a Value) (Value, *Error) { return roundLike(op, a, math.Round) }

// Sqrt always returns Real and rejects negative input.
func Sqrt(op string, a Value) (Value, *Error) {
	f, ok := asFloat(a)
	if !ok {
		return nil, ErrTypeCheck(op, "number", a.Type())
	}
	if f < 0 {
		return nil, ErrRangeCheck(op, "sqrt of negative number")
	}
	return Real(math.Sqrt(f)), nil
}

// Compare implements <, <=, >, >= for numeric pairs (cross Integer/Real)
// and for strings (lexicographic by unsigned byte). It returns -1, 0,
// or 1 the way bytes.Compare does.
func Compare(op string, a, b Value) (int, *Error) {
	if af, aok := asFloat(a); aok {
		bf, bok := asFloat(b)
		if !bok {
			return 0, ErrTypeCheck(op, "number", b.Type())
		}
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	as, aok := a.(*Str)
	bs, bok := b.(*Str)
	if aok && bok {
		ab, bb := as.Bytes(), bs.Bytes()
		n := len(ab)
		if len(bb) < n {
			n = len(bb)
		}
		for i := 0; i < n; i++ {
			if ab[i] != bb[i] {
				if ab[i] < bb[i] {
					return -1, nil
				}
				return 1, nil
			}
		}
		switch {
		case len(ab) < len(bb):
			return -1, nil
		case len(ab) > len(bb):
			return 1, nil
		default:
			return 0, nil
		}
	}
	return 0, ErrTypeCheck(op, "number or string", a.Type())
}
