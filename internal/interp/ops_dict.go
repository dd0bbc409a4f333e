package interp

import "github.com/go-ps-lang/ps/internal/psval"

func opDict(i *Interpreter) *psval.Error {
	n, err := i.Operands.PopInteger("dict")
	if err != nil {
		return err
	}
	if n < 0 {
		return psval.ErrRangeCheck("dict", "negative capacity")
	}
	i.Operands.Push(psval.NewDict(int(n)))
	return nil
}

// opLength reports a dictionary's pair count or a string's byte
// length.
func opLength(i *Interpreter) *psval.Error {
	v, err := i.Operands.Pop("length")
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case *psval.Dict:
		i.Operands.Push(psval.Integer(x.Length()))
		return nil
	case *psval.Str:
		i.Operands.Push(psval.Integer(x.Len()))
		return nil
	}
	return psval.ErrTypeCheck("length", "dicttype or stringtype", v.Type())
}

func opMaxlength(i *Interpreter) *psval.Error {
	d, err := i.Operands.PopDict("maxlength")
	if err != nil {
		return err
	}
	i.Operands.Push(psval.Integer(d.MaxLength()))
	return nil
}

func opBegin(i *Interpreter) *psval.Error {
	d, err := i.Operands.PopDict("begin")
	if err != nil {
		return err
	}
	i.Dicts.Push(d)
	return nil
}

func opEnd(i *Interpreter) *psval.Error {
	return i.Dicts.Pop()
}

func opDef(i *Interpreter) *psval.Error {
	v, err := i.Operands.Pop("def")
	if err != nil {
		return err
	}
	key, err := i.Operands.PopName("def")
	if err != nil {
		return err
	}
	return i.Dicts.Top().Define(key.Text, v)
}

// opKnown reports whether name is bound in dict, without walking the
// rest of the dictionary stack (a single-dictionary membership test,
// distinct from name resolution).
func opKnown(i *Interpreter) *psval.Error {
	name, err := i.Operands.PopName("known")
	if err != nil {
		return err
	}
	d, err := i.Operands.PopDict("known")
	if err != nil {
		return err
	}
	_, ok := d.Lookup(name.Text)
	i.Operands.Push(psval.Boolean(ok))
	return nil
}
