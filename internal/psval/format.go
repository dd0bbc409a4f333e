package psval

import (
	"strconv"
	"strings"
)

// FormatPlain renders v the way `=` does: strings without surrounding
// parentheses, names without a leading slash, reals with at least one
// fractional digit, procedures recursively as `{...}`.
func FormatPlain(v Value) string {
	switch x := v.(type) {
	case Integer:
		return strconv.FormatInt(int64(x), 10)
	case Real:
		return formatReal(float64(x))
	case Boolean:
		if x {
			return "true"
		}
		return "false"
	case Name:
		return x.Text
	case *Str:
		return string(x.Bytes())
	case *Proc:
		return formatProc(x, FormatPlain)
	case *Dict:
		return "--dicttype--"
	case Operator:
		return "--" + x.Name + "--"
	case Mark:
		return "--mark--"
	}
	return "--unknown--"
}

// FormatPS renders v the way `==` does: strings inside `(...)`,
// literal names with a leading slash, procedures recursively inside
// `{...}`. Output produced by FormatPS for numbers, booleans, strings
// and literal names re-parses and re-executes to an Equal value. A
// procedure re-parses to a new handle with the same rendering, which
// Equal does not treat as equal, since procedures compare by identity.
func FormatPS(v Value) string {
	switch x := v.(type) {
	case *Str:
		return "(" + escapeString(x.Bytes()) + ")"
	case Name:
		if !x.Executable {
			return "/" + x.Text
		}
		return x.Text
	case *Proc:
		return formatProc(x, FormatPS)
	default:
		return FormatPlain(v)
	}
}

func formatProc(p *Proc, item func(Value) string) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range p.Body {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(item(v))
	}
	sb.WriteByte('}')
	return sb.String()
}

// formatReal matches the "at least one fractional digit" rule: Go's
// shortest round-tripping representation, with a trailing ".0" forced
// on whenever the exponent-free shortest form has neither a decimal
// point nor an exponent (e.g. 4 -> "4.0"), following the convention
// the creachadair-postscript code generator's Real.WriteTo uses for
// the same reason (PostScript real literals need a decimal or
// exponent to scan back as real rather than integer).
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func escapeString(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		switch c {
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\\':
			sb.WriteString(`\\`)
		case '(':
			sb.WriteString(`\(`)
		case ')':
			sb.WriteString(`\)`)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
