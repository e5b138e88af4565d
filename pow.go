package notations

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// pow sets z to x^y at z's precision. Integer exponents are computed by
// repeated squaring, so negative bases are allowed with them. Other exponents
// require a positive base. n is the operator node, for errors.
func pow(z, x, y *big.Float, n *node) error {
	if y.Sign() == 0 {
		z.SetInt64(1)
		return nil
	}
	if x.Sign() == 0 {
		if y.Sign() < 0 {
			return &DivisionByZeroError{Col: n.col, Op: n.text}
		}
		z.SetInt64(0)
		return nil
	}
	if y.IsInt() {
		if e, acc := y.Int64(); acc == big.Exact {
			powint(z, x, e)
			return nil
		}
		powhuge(z, x, y)
		return nil
	}
	if x.Sign() < 0 {
		return &DomainError{X: x, Func: n.text, Col: n.col}
	}
	if x.IsInf() || y.IsInf() {
		powinf(z, x, y)
		return nil
	}
	powfrac(z, x, y)
	return nil
}

// powfrac sets z to x^y where x is positive and finite and y is finite and not
// an integer. The integer part of y is handled like any integer exponent, so
// results outside float64 range overflow and underflow the way products do.
func powfrac(z, x, y *big.Float) {
	wp := z.Prec() + 32
	ti, _ := y.Int(nil)
	t := new(big.Float).SetInt(ti)
	f := new(big.Float).SetPrec(y.Prec()).Sub(y, t)
	a := new(big.Float).SetPrec(wp)
	if ti.IsInt64() {
		powint(a, x, ti.Int64())
	} else {
		powhuge(a, x, t)
	}
	z.Mul(a, fracpow(x, f, wp))
}

// fracpow returns x^f for positive finite x and -1 < f < 1, computed at
// precision prec. With x = m * 2^k, x^f = m^f * 2^(k*f), where the arguments to
// bigfloat.Pow stay small and the integer part of k*f goes to the exponent.
func fracpow(x, f *big.Float, prec uint) *big.Float {
	m := new(big.Float)
	k := x.MantExp(m)
	// bigfloat.Pow does not always write its result to its first argument.
	r := bigfloat.Pow(new(big.Float).SetPrec(prec), m, f)
	e := new(big.Float).SetPrec(f.Prec() + 64).SetInt64(int64(k))
	e.Mul(e, f)
	ei, _ := e.Int(nil)
	e.Sub(e, new(big.Float).SetInt(ei))
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	r = new(big.Float).SetPrec(prec).Mul(r, bigfloat.Pow(new(big.Float).SetPrec(prec), two, e))
	return r.SetMantExp(r, int(ei.Int64()))
}

// powint sets z to x^e by repeated squaring.
func powint(z, x *big.Float, e int64) {
	u := uint64(e)
	if e < 0 {
		u = uint64(-(e + 1)) + 1
	}
	b := new(big.Float).SetPrec(z.Prec()).Set(x)
	r := new(big.Float).SetPrec(z.Prec()).SetInt64(1)
	for u > 0 {
		if u&1 != 0 {
			r.Mul(r, b)
		}
		u >>= 1
		if u > 0 {
			b.Mul(b, b)
		}
	}
	if e < 0 {
		one := new(big.Float).SetPrec(z.Prec()).SetInt64(1)
		r.Quo(one, r)
	}
	z.Set(r)
}

// powhuge sets z to x^y where y is an integer too large for int64. Every
// finite base other than ±1 overflows or underflows.
func powhuge(z, x, y *big.Float) {
	i, _ := y.Int(nil)
	neg := x.Sign() < 0 && i.Bit(0) == 1
	a := new(big.Float).Abs(x)
	switch c := a.Cmp(big.NewFloat(1)); {
	case c == 0:
		z.SetInt64(1)
	case (c > 0) == (y.Sign() > 0):
		z.SetInf(false)
	default:
		z.SetInt64(0)
	}
	if neg {
		z.Neg(z)
	}
}

// powinf sets z to x^y where x is positive and at least one of x and y is
// infinite.
func powinf(z, x, y *big.Float) {
	if x.IsInf() {
		if y.Sign() > 0 {
			z.SetInf(false)
		} else {
			z.SetInt64(0)
		}
		return
	}
	// y is infinite, x is finite and positive.
	switch c := x.Cmp(big.NewFloat(1)); {
	case c == 0:
		z.SetInt64(1)
	case (c > 0) == (y.Sign() > 0):
		z.SetInf(false)
	default:
		z.SetInt64(0)
	}
}

// DomainError is an error returned when an operator is applied to operands
// outside its domain, e.g. a negative number to a fractional power. It
// implements InputError and unwraps to big.ErrNaN.
type DomainError struct {
	// X is the out-of-domain operand.
	X *big.Float
	// Func is the operator.
	Func string
	// Col is the position of the operator.
	Col int
}

func (err *DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return errpos(err.Col, r)
}

func (err *DomainError) Pos() int {
	return err.Col
}

func (err *DomainError) Unwrap() error {
	return big.ErrNaN{}
}
