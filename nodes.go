package notations

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// text is the operand text for leaves and the canonical operator symbol
	// for binary nodes.
	text string
	// col is the column of the token that produced the node.
	col int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // push num
	nodeName // push lookup(text)

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodeMod // evaluate left, rem by right
	nodePow // evaluate left, exp by right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeName:
		return "Name"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodeMod:
		return "Mod"
	case nodePow:
		return "Pow"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// leaf creates a leaf node for an operand token.
func leaf(tok Token) *node {
	n := &node{kind: nodeName, text: tok.Text, col: tok.Col}
	if isDecimal(tok.Text) {
		n.kind = nodeNum
	}
	return n
}

// binary creates an operator node for an operator token.
func binary(tok Token, left, right *node) *node {
	op := binop(tok.Text)
	if op.op == nodeNone {
		panic("notations: not an operator: " + tok.String())
	}
	return &node{kind: op.op, text: op.sym, col: tok.Col, left: left, right: right}
}

func (n *node) binary() bool {
	return n.kind >= nodeAdd
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes the node with every term bracketed, alternating round and square
// brackets by depth.
func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, !square)
		}
		b.WriteByte('$')
	case nodeNum, nodeName:
		b.WriteString(n.text)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		n.left.fmt(b, !square)
		b.WriteByte(' ')
		b.WriteString(n.text)
		b.WriteByte(' ')
		n.right.fmt(b, !square)
	default:
		panic("notations: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// names adds the names of all symbolic operands under n to m.
func (n *node) names(m map[string]bool) {
	if n.kind == nodeName {
		m[n.text] = true
	}
	if n.left != nil {
		n.left.names(m)
	}
	if n.right != nil {
		n.right.names(m)
	}
}
