package psparse

import (
	"github.com/go-ps-lang/ps/internal/pslex"
	"github.com/go-ps-lang/ps/internal/psval"
)

// Parse turns PostScript source text into a flat sequence of values,
// with nested `{...}` procedures collapsed into *psval.Proc handles.
// filename is used only for syntaxerror positions; pass "" for REPL
// input.
func Parse(filename, src string) ([]psval.Value, *psval.Error) {
	prog, err := parseProgram(filename, src)
	if err != nil {
		return nil, convertError(err)
	}
	return lowerNodes(prog.Items), nil
}

func lowerNodes(nodes []*node) []psval.Value {
	out := make([]psval.Value, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, lowerNode(n))
	}
	return out
}

func lowerNode(n *node) psval.Value {
	switch {
	case n.Integer != nil:
		return psval.Integer(pslex.ParseInteger(*n.Integer))
	case n.Real != nil:
		return psval.Real(pslex.ParseReal(*n.Real))
	case n.String != nil:
		return psval.NewString(*n.String)
	case n.Literal != nil:
		return psval.Name{Text: *n.Literal, Executable: false}
	case n.Exec != nil:
		return psval.Name{Text: *n.Exec, Executable: true}
	case n.Proc != nil:
		return &psval.Proc{Body: lowerNodes(n.Proc.Items)}
	}
	// unreachable: the grammar's alternation is exhaustive.
	return psval.Mark{}
}
