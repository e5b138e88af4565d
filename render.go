package notations

import "strings"

// Infix renders the expression in infix notation with the fewest brackets
// that parse back to the same tree. Brackets are separate tokens, as in
// "( A + B ) * C".
func (e *Expr) Infix() string {
	var b strings.Builder
	e.n.infix(&b)
	return b.String()
}

// InfixGrouped renders the expression in infix notation with every operation
// bracketed, as in "( ( A + B ) * C )".
func (e *Expr) InfixGrouped() string {
	var b strings.Builder
	e.n.grouped(&b)
	return b.String()
}

// Prefix renders the expression in prefix notation.
func (e *Expr) Prefix() string {
	var b strings.Builder
	e.n.prefix(&b)
	return b.String()
}

// Postfix renders the expression in postfix notation.
func (e *Expr) Postfix() string {
	var b strings.Builder
	e.n.postfix(&b)
	return b.String()
}

// Render renders the expression in the given notation. Infix uses the fewest
// brackets. Panics if the notation is invalid.
func (e *Expr) Render(to Notation) string {
	switch to {
	case Infix:
		return e.Infix()
	case Prefix:
		return e.Prefix()
	case Postfix:
		return e.Postfix()
	default:
		panic("notations: cannot render " + to.String())
	}
}

func (n *node) infix(b *strings.Builder) {
	if !n.binary() {
		b.WriteString(n.text)
		return
	}
	op := binop(n.text)
	n.left.operand(b, op, false)
	b.WriteByte(' ')
	b.WriteString(n.text)
	b.WriteByte(' ')
	n.right.operand(b, op, true)
}

// operand writes n as an operand of parent, bracketing it if it would
// otherwise group differently.
func (n *node) operand(b *strings.Builder, parent operator, rhs bool) {
	if !n.binary() || !n.needsGroup(parent, rhs) {
		n.infix(b)
		return
	}
	b.WriteString("( ")
	n.infix(b)
	b.WriteString(" )")
}

func (n *node) needsGroup(parent operator, rhs bool) bool {
	op := binop(n.text)
	switch {
	case op.prec != parent.prec:
		return op.prec < parent.prec
	case rhs:
		// a - (b - c)
		return !parent.right
	default:
		// (a ^ b) ^ c
		return parent.right
	}
}

func (n *node) grouped(b *strings.Builder) {
	if !n.binary() {
		b.WriteString(n.text)
		return
	}
	b.WriteString("( ")
	n.left.grouped(b)
	b.WriteByte(' ')
	b.WriteString(n.text)
	b.WriteByte(' ')
	n.right.grouped(b)
	b.WriteString(" )")
}

func (n *node) prefix(b *strings.Builder) {
	word(b, n.text)
	if n.binary() {
		n.left.prefix(b)
		n.right.prefix(b)
	}
}

func (n *node) postfix(b *strings.Builder) {
	if n.binary() {
		n.left.postfix(b)
		n.right.postfix(b)
	}
	word(b, n.text)
}

// word writes a space-separated token.
func word(b *strings.Builder, s string) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(s)
}
