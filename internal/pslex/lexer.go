// Package pslex implements the PostScript-subset scanner as a
// participle/v2/lexer.Definition. Participle's grammar layer
// (internal/psparse) only needs to know how to nest tokens into
// procedures; everything else — whitespace and comment skipping,
// integer/real disambiguation by trial parse, string literals with
// nested-paren balancing and backslash/octal escapes, and the
// literal-name/executable-name split — is decided here, byte by byte,
// because none of it is expressible as the simple regex rules
// participle's lexer.MustSimple takes.
package pslex

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2/lexer"
)

// Token types. Integer and Real tokens carry their original source
// text in Token.Value; internal/psparse does the actual
// strconv.ParseInt/ParseFloat so the lexer stays focused on
// classification, not conversion.
const (
	Integer lexer.TokenType = iota + 1
	Real
	String
	LiteralName
	ExecName
	LBrace
	RBrace
)

// Definition is the participle/v2/lexer.Definition for the language.
var Definition = definition{}

type definition struct{}

func (definition) Symbols() map[string]lexer.TokenType {
	return map[string]lexer.TokenType{
		"EOF":         lexer.EOF,
		"Integer":     Integer,
		"Real":        Real,
		"String":      String,
		"LiteralName": LiteralName,
		"ExecName":    ExecName,
		"LBrace":      LBrace,
		"RBrace":      RBrace,
	}
}

func (definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &tokenizer{filename: filename, src: src, line: 1, column: 1}, nil
}

// Error reports a scanning failure (unterminated string, unbalanced
// closing paren, empty literal name) at a specific source position. internal/psparse converts it into a
// *psval.Error with Kind == SyntaxError.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Msg)
}

type tokenizer struct {
	filename string
	src      []byte
	pos      int
	line     int
	column   int
}

func (t *tokenizer) position() lexer.Position {
	return lexer.Position{Filename: t.filename, Offset: t.pos, Line: t.line, Column: t.column}
}

func (t *tokenizer) peek() (byte, bool) {
	if t.pos >= len(t.src) {
		return 0, false
	}
	return t.src[t.pos], true
}

func (t *tokenizer) advance() {
	if t.pos >= len(t.src) {
		return
	}
	if t.src[t.pos] == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
	t.pos++
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func isDelimiter(b byte) bool {
	if isWhitespace(b) {
		return true
	}
	switch b {
	case '(', ')', '{', '}', '/', '%':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isOctal(b byte) bool { return b >= '0' && b <= '7' }

// Next implements lexer.Lexer.
func (t *tokenizer) Next() (lexer.Token, error) {
	for {
		b, ok := t.peek()
		if !ok {
			return lexer.Token{Type: lexer.EOF, Pos: t.position()}, nil
		}
		if isWhitespace(b) {
			t.advance()
			continue
		}
		if b == '%' {
			for {
				b, ok := t.peek()
				if !ok || b == '\n' {
					break
				}
				t.advance()
			}
			continue
		}
		break
	}

	start := t.position()
	b, _ := t.peek()

	switch b {
	case '{':
		t.advance()
		return lexer.Token{Type: LBrace, Value: "{", Pos: start}, nil
	case '}':
		t.advance()
		return lexer.Token{Type: RBrace, Value: "}", Pos: start}, nil
	case '(':
		return t.lexString(start)
	case ')':
		return lexer.Token{}, &Error{Pos: start, Msg: "unbalanced )"}
	case '/':
		return t.lexLiteralName(start)
	}

	return t.lexWord(start)
}

func (t *tokenizer) lexString(start lexer.Position) (lexer.Token, error) {
	t.advance() // consume '('
	depth := 1
	var out []byte
	for {
		b, ok := t.peek()
		if !ok {
			return lexer.Token{}, &Error{Pos: start, Msg: "unterminated string literal"}
		}
		switch b {
		case '\\':
			t.advance()
			esc, ok := t.peek()
			if !ok {
				return lexer.Token{}, &Error{Pos: start, Msg: "unterminated string literal"}
			}
			switch {
			case esc == 'n':
				out = append(out, '\n')
				t.advance()
			case esc == 'r':
				out = append(out, '\r')
				t.advance()
			case esc == 't':
				out = append(out, '\t')
				t.advance()
			case esc == 'b':
				out = append(out, '\b')
				t.advance()
			case esc == 'f':
				out = append(out, '\f')
				t.advance()
			case esc == '\\':
				out = append(out, '\\')
				t.advance()
			case esc == '(':
				out = append(out, '(')
				t.advance()
			case esc == ')':
				out = append(out, ')')
				t.advance()
			case isOctal(esc):
				v := 0
				for n := 0; n < 3; n++ {
					c, ok := t.peek()
					if !ok || !isOctal(c) {
						break
					}
					v = v*8 + int(c-'0')
					t.advance()
				}
				out = append(out, byte(v%256))
			default:
				// "any other \x yields literal x"
				out = append(out, esc)
				t.advance()
			}
		case '(':
			depth++
			out = append(out, b)
			t.advance()
		case ')':
			depth--
			t.advance()
			if depth == 0 {
				return lexer.Token{Type: String, Value: string(out), Pos: start}, nil
			}
			out = append(out, b)
		default:
			out = append(out, b)
			t.advance()
		}
	}
}

func (t *tokenizer) lexLiteralName(start lexer.Position) (lexer.Token, error) {
	t.advance() // consume '/'
	word := t.scanWord()
	if word == "" {
		return lexer.Token{}, &Error{Pos: start, Msg: "empty literal name"}
	}
	return lexer.Token{Type: LiteralName, Value: word, Pos: start}, nil
}

func (t *tokenizer) scanWord() string {
	begin := t.pos
	for {
		b, ok := t.peek()
		if !ok || isDelimiter(b) {
			break
		}
		t.advance()
	}
	return string(t.src[begin:t.pos])
}

func (t *tokenizer) lexWord(start lexer.Position) (lexer.Token, error) {
	word := t.scanWord()
	if looksNumeric(word) {
		if isRealShape(word) {
			if isValidReal(word) {
				return lexer.Token{Type: Real, Value: word, Pos: start}, nil
			}
		} else if isValidInteger(word) {
			return lexer.Token{Type: Integer, Value: word, Pos: start}, nil
		}
	}
	return lexer.Token{Type: ExecName, Value: word, Pos: start}, nil
}

// looksNumeric reports whether word starts with a digit, or a sign
// followed by a digit — the shape that makes a token worth a trial
// numeric parse instead of treating it as a name outright.
func looksNumeric(word string) bool {
	if word == "" {
		return false
	}
	if isDigit(word[0]) {
		return true
	}
	if (word[0] == '+' || word[0] == '-') && len(word) > 1 && isDigit(word[1]) {
		return true
	}
	return false
}

func isRealShape(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] == '.' || word[i] == 'e' || word[i] == 'E' {
			return true
		}
	}
	return false
}
