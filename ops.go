package notations

// Operators contains the runes which are considered to be operators. × and ÷
// are aliases for * and /.
const Operators = "+-*/%^×÷"

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
	// sym is the canonical symbol.
	sym string
}

// yields reports whether an operator p already on the stack must be reduced
// before pushing the incoming operator in.
func (p operator) yields(in operator) bool {
	if p.prec != in.prec {
		return p.prec > in.prec
	}
	return !in.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd, "+"}
	case "-":
		return operator{1, false, nodeSub, "-"}
	case "*", "×":
		return operator{2, false, nodeMul, "*"}
	case "/", "÷":
		return operator{2, false, nodeDiv, "/"}
	case "%":
		return operator{2, false, nodeMod, "%"}
	case "^":
		return operator{3, true, nodePow, "^"}
	default:
		return operator{}
	}
}

// Precedence returns the precedence and associativity of a binary operator
// symbol. Higher precedences bind more tightly. ok is false if op is not an
// operator.
func Precedence(op string) (prec int, right, ok bool) {
	p := binop(op)
	if p.op == nodeNone {
		return 0, false, false
	}
	return int(p.prec), p.right, true
}
