package notations

import (
	"errors"
	"math/big"
	"strconv"
)

var (
	// ErrNonNumericOperand means an operand is neither a number nor a name
	// with a value in the evaluation context.
	ErrNonNumericOperand = errors.New("non-numeric operand")
	// ErrDivisionByZero means a division or remainder has a zero divisor, or
	// zero is raised to a negative power.
	ErrDivisionByZero = errors.New("division by zero")
)

// Context holds values for symbolic operands and the precision of
// calculations. Eval only reads its Context and keeps intermediate values on
// a stack of its own, so any number of goroutines may evaluate expressions
// with one Context. Set is the only method that modifies a Context, and it
// must not run concurrently with Eval.
type Context struct {
	names map[string]*big.Float
	prec  uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  *big.Float
	}
	varsopt map[string]*big.Float
	precopt uint
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}
func (precopt) ctxOption() {}

// SetVar sets the value of a symbolic operand in the context.
func SetVar(name string, val *big.Float) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of symbolic operands in the context.
func SetVars(vars map[string]*big.Float) ContextOption {
	return varsopt(vars)
}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: 64}
	return ctx.Clone(opts...)
}

// Set sets the value of a symbolic operand. Returns ctx for chaining. Set must
// not be called while ctx is being used to evaluate an expression.
func (ctx *Context) Set(name string, value *big.Float) *Context {
	if ctx.names == nil {
		ctx.names = make(map[string]*big.Float)
	}
	ctx.names[name] = new(big.Float).SetPrec(ctx.prec).Set(value)
	return ctx
}

// Lookup returns a copy of the value of a symbolic operand. If there is no
// such name in the context, then the result is nil.
func (ctx *Context) Lookup(name string) *big.Float {
	v := ctx.names[name]
	if v == nil {
		return nil
	}
	return new(big.Float).Copy(v)
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Clone returns a new context with the same values as ctx, modified by opts.
// The source context is unchanged. If opts change the precision, copied
// values are rounded to the new precision.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	prec := ctx.prec
	for _, opt := range opts {
		if p, ok := opt.(precopt); ok {
			prec = uint(p)
		}
	}
	n := Context{
		names: make(map[string]*big.Float, len(ctx.names)),
		prec:  prec,
	}
	// Values are never modified in place, so contexts of equal precision
	// share them.
	for name, val := range ctx.names {
		if prec != ctx.prec {
			val = new(big.Float).SetPrec(prec).Set(val)
		}
		n.names[name] = val
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil, precopt:
		case varopt:
			n.Set(opt.name, opt.val)
		case varsopt:
			for name, val := range opt {
				n.Set(name, val)
			}
		default:
			panic("notations: unknown option type")
		}
	}
	return &n
}

// evaluator holds the value stack for a single evaluation.
type evaluator struct {
	ctx   *Context
	stack []*big.Float
}

// push adds a new value to the stack at the context's precision.
func (ev *evaluator) push() *big.Float {
	v := new(big.Float).SetPrec(ev.ctx.prec)
	ev.stack = append(ev.stack, v)
	return v
}

// pop removes the top from the stack and returns it.
func (ev *evaluator) pop() *big.Float {
	r := ev.stack[len(ev.stack)-1]
	ev.stack = ev.stack[:len(ev.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ev *evaluator) top() *big.Float {
	return ev.stack[len(ev.stack)-1]
}

// Eval evaluates the expression. Symbolic operands take their values from ctx;
// if ctx is nil, a default context is used. If an operand has no value, the
// error is a *NonNumericError.
func (e *Expr) Eval(ctx *Context) (*big.Float, error) {
	if ctx == nil {
		ctx = NewContext()
	}
	ev := evaluator{ctx: ctx}
	if err := e.n.eval(&ev); err != nil {
		return nil, err
	}
	if len(ev.stack) != 1 {
		panic("notations: inconsistent stack: " + strconv.Itoa(len(ev.stack)) + " items (bad AST?)")
	}
	return ev.stack[0], nil
}

// eval pushes the node's value to the evaluator's stack.
func (n *node) eval(ev *evaluator) error {
	switch n.kind {
	case nodeNum:
		if _, ok := ev.push().SetString(n.text); !ok {
			panic("notations: invalid number: " + n.text)
		}
	case nodeName:
		v := ev.ctx.names[n.text]
		if v == nil {
			return &NonNumericError{Col: n.col, Operand: n.text}
		}
		ev.push().Set(v)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		if err := n.left.eval(ev); err != nil {
			return err
		}
		if err := n.right.eval(ev); err != nil {
			return err
		}
		r := ev.pop()
		l := ev.top()
		return n.apply(l, r)
	default:
		panic("notations: invalid AST node " + n.kind.String())
	}
	return nil
}

// apply sets l to the result of n's operator applied to l and r. Arithmetic
// that produces NaN, like inf-inf, gives a *DomainError.
func (n *node) apply(l, r *big.Float) (err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(big.ErrNaN); !ok {
			panic(p)
		}
		err = &DomainError{X: r, Func: n.text, Col: n.col}
	}()
	switch n.kind {
	case nodeAdd:
		l.Add(l, r)
	case nodeSub:
		l.Sub(l, r)
	case nodeMul:
		l.Mul(l, r)
	case nodeDiv:
		if r.Sign() == 0 {
			return &DivisionByZeroError{Col: n.col, Op: n.text}
		}
		l.Quo(l, r)
	case nodeMod:
		if r.Sign() == 0 {
			return &DivisionByZeroError{Col: n.col, Op: n.text}
		}
		if l.IsInf() {
			return &DomainError{X: l, Func: n.text, Col: n.col}
		}
		rem(l, l, r)
	case nodePow:
		return pow(l, l, r, n)
	default:
		panic("notations: not an operator: " + n.kind.String())
	}
	return nil
}

// rem sets z to the remainder of x/y truncated toward zero, which has the
// sign of x. x must be finite and y nonzero.
func rem(z, x, y *big.Float) {
	if y.IsInf() {
		z.Set(x)
		return
	}
	q := new(big.Float).SetPrec(z.Prec()).Quo(x, y)
	if !q.IsInt() {
		i, _ := q.Int(nil)
		q.SetInt(i)
	}
	q.Mul(q, y)
	z.Sub(x, q)
}

// NonNumericError is an error from evaluating an operand that is not a number
// and has no value in the evaluation context. It implements InputError and
// unwraps to ErrNonNumericOperand.
type NonNumericError struct {
	// Col is the position of the operand.
	Col int
	// Operand is the operand text.
	Operand string
}

func (err *NonNumericError) Error() string {
	return errpos(err.Col, "operand "+strconv.Quote(err.Operand)+" is not a number")
}

func (err *NonNumericError) Pos() int {
	return err.Col
}

func (err *NonNumericError) Unwrap() error {
	return ErrNonNumericOperand
}

// DivisionByZeroError is an error from dividing by zero. It implements
// InputError and unwraps to ErrDivisionByZero.
type DivisionByZeroError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator that divided by zero.
	Op string
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero in "+err.Op)
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

func (err *DivisionByZeroError) Unwrap() error {
	return ErrDivisionByZero
}
