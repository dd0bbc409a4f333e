package pslex

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []lexer.Token {
	t.Helper()
	lx, err := Definition.Lex("test.ps", strings.NewReader(src))
	require.NoError(t, err)
	var out []lexer.Token
	for {
		tok, err := lx.Next()
		require.NoError(t, err)
		if tok.EOF() {
			break
		}
		out = append(out, tok)
	}
	return out
}

func tokenTypes(t *testing.T, toks []lexer.Token) []string {
	t.Helper()
	syms := Definition.Symbols()
	names := make(map[lexer.TokenType]string, len(syms))
	for name, tt := range syms {
		names[tt] = name
	}
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = names[tok.Type]
	}
	return out
}

func TestLexIntegerAndReal(t *testing.T) {
	toks := lexAll(t, "42 -3 3.14 -0.5")
	require.Equal(t, []string{"Integer", "Integer", "Real", "Real"}, tokenTypes(t, toks))
}

func TestLexNamesDisambiguatedFromNumbers(t *testing.T) {
	toks := lexAll(t, "-foo +bar")
	require.Equal(t, []string{"ExecName", "ExecName"}, tokenTypes(t, toks))
	require.Equal(t, "-foo", toks[0].Value)
}

func TestLexLiteralName(t *testing.T) {
	toks := lexAll(t, "/abc")
	require.Equal(t, []string{"LiteralName"}, tokenTypes(t, toks))
	require.Equal(t, "abc", toks[0].Value)
}

func TestLexStringWithNesting(t *testing.T) {
	toks := lexAll(t, "(a (nested) b)")
	require.Equal(t, []string{"String"}, tokenTypes(t, toks))
	require.Equal(t, "a (nested) b", toks[0].Value)
}

func TestLexStringEscapes(t *testing.T) {
	toks := lexAll(t, `(a\nb\101c\)\\)`)
	require.Equal(t, "a\nbAc)\\", toks[0].Value)
}

func TestLexUnterminatedString(t *testing.T) {
	lx, err := Definition.Lex("t.ps", strings.NewReader("(abc"))
	require.NoError(t, err)
	_, lexErr := lx.Next()
	require.Error(t, lexErr)
}

func TestLexCommentsSkipped(t *testing.T) {
	toks := lexAll(t, "1 % a comment\n2")
	require.Equal(t, []string{"Integer", "Integer"}, tokenTypes(t, toks))
}

func TestLexBraces(t *testing.T) {
	toks := lexAll(t, "{ 1 add }")
	require.Equal(t, []string{"LBrace", "Integer", "ExecName", "RBrace"}, tokenTypes(t, toks))
}
