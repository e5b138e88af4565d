package notations

// Infix  = Term { op Term }
// Term   = operand | '(' Infix ')' | '[' Infix ']' | '{' Infix '}'
// Prefix = operand | op Prefix Prefix | '(' Prefix ')' | ...
// Postfix = operand | Postfix Postfix op

// Expr is a parsed expression. It can be rendered in any notation and
// evaluated with a context. An Expr is immutable and safe for concurrent use.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the list of symbolic operand names used in the expression.
	names []string
}

// Parse tokenizes and parses an expression written in the given notation.
func Parse(src string, from Notation) (*Expr, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks, from)
}

// ParseTokens parses a token sequence written in the given notation.
func ParseTokens(toks []Token, from Notation) (*Expr, error) {
	if !from.valid() {
		return nil, &NotationError{Name: from.String()}
	}
	if len(toks) == 0 {
		return nil, &EmptyExpressionError{Col: 1}
	}
	var (
		n   *node
		err error
	)
	switch from {
	case Infix:
		n, err = parseInfix(toks)
	case Prefix:
		n, err = parsePrefix(toks)
	case Postfix:
		n, err = parsePostfix(toks)
	}
	if err != nil {
		return nil, err
	}
	m := make(map[string]bool)
	n.names(m)
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(m)),
	}
	for k := range m {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex, nil
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// parseInfix parses infix tokens using an operator stack, on which open
// brackets act as barriers, and a stack of parsed terms.
func parseInfix(toks []Token) (*node, error) {
	var (
		ops   []Token
		terms []*node
		depth int
		// want is whether the next token must begin a term.
		want = true
	)
	reduce := func(op Token) error {
		if len(terms) < 2 {
			return &SyntaxError{Col: op.Col, Notation: Infix, Msg: "operator " + op.Text + " is missing an operand"}
		}
		l, r := terms[len(terms)-2], terms[len(terms)-1]
		terms = append(terms[:len(terms)-2], binary(op, l, r))
		return nil
	}
	for i, tok := range toks {
		switch tok.Kind {
		case TokenOperand:
			if !want {
				return nil, &SyntaxError{Col: tok.Col, Notation: Infix, Msg: "operand " + tok.Text + " follows another term without an operator"}
			}
			terms = append(terms, leaf(tok))
			want = false
		case TokenOperator:
			if want {
				return nil, &SyntaxError{Col: tok.Col, Notation: Infix, Msg: "operator " + tok.Text + " is missing its left operand"}
			}
			in := binop(tok.Text)
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind != TokenOperator || !binop(top.Text).yields(in) {
					break
				}
				ops = ops[:len(ops)-1]
				if err := reduce(top); err != nil {
					return nil, err
				}
			}
			ops = append(ops, tok)
			want = true
		case TokenOpen:
			if !want {
				return nil, &SyntaxError{Col: tok.Col, Notation: Infix, Msg: "bracket " + tok.Text + " follows another term without an operator"}
			}
			ops = append(ops, tok)
			depth++
		case TokenClose:
			if depth == 0 {
				return nil, &BracketError{Col: tok.Col, Right: tok.Text}
			}
			if want {
				if toks[i-1].Kind == TokenOpen {
					return nil, &SyntaxError{Col: tok.Col, Notation: Infix, Msg: "nothing between brackets"}
				}
				return nil, &SyntaxError{Col: tok.Col, Notation: Infix, Msg: "missing operand before " + tok.Text}
			}
			for {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == TokenOpen {
					if closeFor(top.Text) != tok.Text {
						return nil, &BracketError{Col: tok.Col, Left: top.Text, Right: tok.Text}
					}
					break
				}
				if err := reduce(top); err != nil {
					return nil, err
				}
			}
			depth--
		default:
			panic("notations: unknown token: " + tok.String())
		}
	}
	if depth > 0 {
		for k := len(ops) - 1; k >= 0; k-- {
			if ops[k].Kind == TokenOpen {
				return nil, &BracketError{Col: ops[k].Col, Left: ops[k].Text}
			}
		}
	}
	if want {
		last := toks[len(toks)-1]
		return nil, &SyntaxError{Col: endcol(toks), Notation: Infix, Msg: "expression ends with operator " + last.Text}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if err := reduce(top); err != nil {
			return nil, err
		}
	}
	if len(terms) != 1 {
		return nil, &SyntaxError{Col: endcol(toks), Notation: Infix, Msg: "terms left without operators"}
	}
	return terms[0], nil
}

// prefixParser is a recursive descent parser for prefix notation.
type prefixParser struct {
	toks  []Token
	k     int
	depth int
}

func parsePrefix(toks []Token) (*node, error) {
	p := prefixParser{toks: toks}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.k < len(toks) {
		tok := toks[p.k]
		if tok.Kind == TokenClose {
			return nil, &BracketError{Col: tok.Col, Right: tok.Text}
		}
		return nil, &SyntaxError{Col: tok.Col, Notation: Prefix, Msg: "unexpected " + tok.Text + " after complete expression"}
	}
	return n, nil
}

// expr parses one complete prefix subexpression.
func (p *prefixParser) expr() (*node, error) {
	if p.k >= len(p.toks) {
		return nil, &SyntaxError{Col: endcol(p.toks), Notation: Prefix, Msg: "expression ends before every operator has two operands"}
	}
	tok := p.toks[p.k]
	p.k++
	switch tok.Kind {
	case TokenOperand:
		return leaf(tok), nil
	case TokenOperator:
		l, err := p.expr()
		if err != nil {
			return nil, err
		}
		r, err := p.expr()
		if err != nil {
			return nil, err
		}
		return binary(tok, l, r), nil
	case TokenOpen:
		p.depth++
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.k >= len(p.toks) {
			return nil, &BracketError{Col: tok.Col, Left: tok.Text}
		}
		end := p.toks[p.k]
		p.k++
		switch {
		case end.Kind != TokenClose:
			return nil, &SyntaxError{Col: end.Col, Notation: Prefix, Msg: "expected " + closeFor(tok.Text) + " to end group, got " + end.Text}
		case end.Text != closeFor(tok.Text):
			return nil, &BracketError{Col: end.Col, Left: tok.Text, Right: end.Text}
		}
		p.depth--
		return n, nil
	case TokenClose:
		switch {
		case p.depth == 0:
			return nil, &BracketError{Col: tok.Col, Right: tok.Text}
		case p.toks[p.k-2].Kind == TokenOpen:
			return nil, &SyntaxError{Col: tok.Col, Notation: Prefix, Msg: "nothing between brackets"}
		default:
			return nil, &SyntaxError{Col: tok.Col, Notation: Prefix, Msg: "missing operand before " + tok.Text}
		}
	default:
		panic("notations: unknown token: " + tok.String())
	}
}

// parsePostfix parses postfix tokens with a stack of parsed terms.
func parsePostfix(toks []Token) (*node, error) {
	var terms []*node
	for _, tok := range toks {
		switch tok.Kind {
		case TokenOperand:
			terms = append(terms, leaf(tok))
		case TokenOperator:
			if len(terms) < 2 {
				return nil, &SyntaxError{Col: tok.Col, Notation: Postfix, Msg: "operator " + tok.Text + " does not have two operands"}
			}
			r := terms[len(terms)-1]
			l := terms[len(terms)-2]
			terms = append(terms[:len(terms)-2], binary(tok, l, r))
		case TokenOpen, TokenClose:
			return nil, &SyntaxError{Col: tok.Col, Notation: Postfix, Msg: "brackets are not allowed"}
		default:
			panic("notations: unknown token: " + tok.String())
		}
	}
	if len(terms) != 1 {
		return nil, &SyntaxError{Col: endcol(toks), Notation: Postfix, Msg: "operands left without operators"}
	}
	return terms[0], nil
}

// Vars returns the symbolic operand names used in the expression, sorted.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}
