package interp

import (
	"fmt"

	"github.com/go-ps-lang/ps/internal/psval"
)

// opPrint writes a string's bytes to Output with no trailing newline.
func opPrint(i *Interpreter) *psval.Error {
	s, err := i.Operands.PopString("print")
	if err != nil {
		return err
	}
	fmt.Fprint(i.Output, string(s.Bytes()))
	return nil
}

// opEquals implements `=`: pop any value, write its plain
// representation followed by a newline.
func opEquals(i *Interpreter) *psval.Error {
	v, err := i.Operands.Pop("=")
	if err != nil {
		return err
	}
	fmt.Fprintln(i.Output, psval.FormatPlain(v))
	return nil
}

// opEqualsEquals implements `==`: pop any value, write its PostScript
// representation followed by a newline.
func opEqualsEquals(i *Interpreter) *psval.Error {
	v, err := i.Operands.Pop("==")
	if err != nil {
		return err
	}
	fmt.Fprintln(i.Output, psval.FormatPS(v))
	return nil
}
