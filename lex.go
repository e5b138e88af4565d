package notations

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is one whitespace-delimited element of an expression.
type Token struct {
	// Text is the token's text. Operator aliases like × are replaced with
	// their canonical symbols.
	Text string
	// Kind is the category of the token.
	Kind TokenKind
	// Col is the rune column of the first rune of the token, starting at 1.
	Col int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Col)
}

// TokenKind is a category of token.
type TokenKind int8

const (
	// TokenNone is the zero TokenKind. Tokenize never produces it.
	TokenNone TokenKind = iota
	// TokenOperand is a number or a symbolic name.
	TokenOperand
	// TokenOperator is a binary operator.
	TokenOperator
	// TokenOpen is an open bracket, e.g. (.
	TokenOpen
	// TokenClose is a close bracket, e.g. ).
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenOperand:
		return "Operand"
	case TokenOperator:
		return "Operator"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// OpenBrackets and CloseBrackets contain the runes which group expressions.
// The parser checks that a bracket in byte position k in OpenBrackets is
// matched with the bracket in byte position k in CloseBrackets.
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

// Tokenize splits an expression into tokens. Any run of whitespace separates
// tokens, and brackets and operators must be tokens of their own: "(A" is a
// *LexError, but "( A" is two tokens. A number with a sign, like "-3", is a
// single operand.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	col := 0
	start, startcol := -1, 0
	for i, r := range src {
		col++
		if !unicode.IsSpace(r) {
			if start < 0 {
				start, startcol = i, col
			}
			continue
		}
		if start >= 0 {
			tok, err := classify(src[start:i], startcol)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			start = -1
		}
	}
	if start >= 0 {
		tok, err := classify(src[start:], startcol)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// classify determines the kind of a single non-empty field of the input.
func classify(text string, col int) (Token, error) {
	tok := Token{Text: text, Col: col}
	if r, sz := utf8.DecodeRuneInString(text); sz == len(text) {
		switch {
		case strings.ContainsRune(OpenBrackets, r):
			tok.Kind = TokenOpen
			return tok, nil
		case strings.ContainsRune(CloseBrackets, r):
			tok.Kind = TokenClose
			return tok, nil
		}
	}
	if op := binop(text); op.op != nodeNone {
		tok.Text = op.sym
		tok.Kind = TokenOperator
		return tok, nil
	}
	if !isDecimal(text) && strings.ContainsAny(text, Operators+OpenBrackets+CloseBrackets) {
		return Token{}, &LexError{Text: text, Col: col}
	}
	tok.Kind = TokenOperand
	return tok, nil
}

// isDecimal reports whether s is a base 10 number with an optional sign and
// an optional decimal point.
func isDecimal(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	var dig, dot bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			dig = true
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return dig
}

// closeFor gets the closing bracket matching an opening bracket.
func closeFor(left string) string {
	r, sz := utf8.DecodeRuneInString(left)
	k := strings.IndexRune(OpenBrackets, r)
	if k < 0 || sz != len(left) {
		panic("notations: invalid bracket " + strconv.Quote(left))
	}
	return CloseBrackets[k : k+1]
}

// endcol is the column just past the last token.
func endcol(toks []Token) int {
	if len(toks) == 0 {
		return 1
	}
	last := toks[len(toks)-1]
	return last.Col + utf8.RuneCountInString(last.Text)
}

// LexError indicates a token that mixes brackets or operators with other
// text. It implements InputError and unwraps to ErrMalformedToken.
type LexError struct {
	// Text is the whole malformed token.
	Text string
	// Col is the column of the first rune of the token.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "malformed token "+strconv.Quote(err.Text)+" (brackets and operators must be separated by spaces)")
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	return ErrMalformedToken
}
