package notations

import (
	"strconv"
	"strings"
)

// Notation is the placement of operators relative to their operands.
type Notation int8

const (
	// Infix places operators between operands: A + B.
	Infix Notation = iota + 1
	// Prefix places operators before operands: + A B.
	Prefix
	// Postfix places operators after operands: A B +.
	Postfix
)

func (n Notation) String() string {
	switch n {
	case Infix:
		return "infix"
	case Prefix:
		return "prefix"
	case Postfix:
		return "postfix"
	default:
		return "Notation(" + strconv.Itoa(int(n)) + ")"
	}
}

func (n Notation) valid() bool {
	return Infix <= n && n <= Postfix
}

// ParseNotation gets a notation by name, ignoring case. The numeric codes
// "1", "2", and "3" select infix, prefix, and postfix respectively.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "infix", "1":
		return Infix, nil
	case "prefix", "2":
		return Prefix, nil
	case "postfix", "rpn", "3":
		return Postfix, nil
	default:
		return 0, &NotationError{Name: s}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (n Notation) MarshalText() ([]byte, error) {
	if !n.valid() {
		return nil, &NotationError{Name: n.String()}
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseNotation.
func (n *Notation) UnmarshalText(text []byte) error {
	v, err := ParseNotation(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// NotationError is an error indicating an unknown notation.
type NotationError struct {
	// Name is the notation that was not understood.
	Name string
}

func (err *NotationError) Error() string {
	return "unknown notation " + strconv.Quote(err.Name)
}
