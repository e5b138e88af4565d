package notations

import (
	"errors"
	"strconv"
)

// Each error resulting from invalid input unwraps to one of these, so that
// callers can classify failures with errors.Is.
var (
	// ErrEmptyExpression means the input contains no tokens.
	ErrEmptyExpression = errors.New("empty expression")
	// ErrMalformedToken means a token mixes brackets or operators with other
	// characters.
	ErrMalformedToken = errors.New("malformed token")
	// ErrUnbalancedParens means brackets do not nest or close correctly.
	ErrUnbalancedParens = errors.New("unbalanced brackets")
	// ErrMalformedExpression means operators and operands do not fit together
	// in the declared notation.
	ErrMalformedExpression = errors.New("malformed expression")
)

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError and unwraps to ErrUnbalancedParens.
type BracketError struct {
	// Col is the position of the offending bracket.
	Col int
	// Left is the opening bracket.
	Left string
	// Right is the mismatched closing bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrUnbalancedParens
}

// SyntaxError is an error indicating operators and operands which do not form
// an expression in the notation being parsed, e.g. an operator with too few
// operands or leftover tokens. It implements InputError and unwraps to
// ErrMalformedExpression.
type SyntaxError struct {
	// Col is the position of the token where parsing failed, or one past the
	// end of the input if it ended early.
	Col int
	// Notation is the notation being parsed.
	Notation Notation
	// Msg describes the problem.
	Msg string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, "malformed "+err.Notation.String()+" expression: "+err.Msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

func (err *SyntaxError) Unwrap() error {
	return ErrMalformedExpression
}

// EmptyExpressionError is an error indicating an input with no tokens. It
// implements InputError and unwraps to ErrEmptyExpression.
type EmptyExpressionError struct {
	// Col is always 1.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Unwrap() error {
	return ErrEmptyExpression
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input or from evaluating an expression implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
	_ InputError = (*NonNumericError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*DomainError)(nil)
)
