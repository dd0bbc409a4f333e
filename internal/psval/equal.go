package psval

// Equal compares two values for `eq`/`ne`: numbers compare by numeric
// value across Integer/Real, names by text, strings by byte content,
// and procedures/dictionaries by handle identity (pointer equality).
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Integer:
		switch y := b.(type) {
		case Integer:
			return x == y
		case Real:
			return Real(x) == y
		}
		return false
	case Real:
		switch y := b.(type) {
		case Integer:
			return x == Real(y)
		case Real:
			return x == y
		}
		return false
	case Boolean:
		y, ok := b.(Boolean)
		return ok && x == y
	case Name:
		y, ok := b.(Name)
		return ok && x.Text == y.Text
	case *Str:
		y, ok := b.(*Str)
		if !ok || x.Len() != y.Len() {
			return false
		}
		xb, yb := x.Bytes(), y.Bytes()
		for i := range xb {
			if xb[i] != yb[i] {
				return false
			}
		}
		return true
	case *Proc:
		y, ok := b.(*Proc)
		return ok && x == y
	case *Dict:
		y, ok := b.(*Dict)
		return ok && x == y
	case Operator:
		y, ok := b.(Operator)
		return ok && x.Name == y.Name
	case Mark:
		_, ok := b.(Mark)
		return ok
	}
	return false
}
