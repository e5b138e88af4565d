package notations

import (
	"strconv"
	"testing"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		from    Notation
		infix   string
		grouped string
		prefix  string
		postfix string
	}{
		{"leaf", "A", Infix, "A", "A", "A", "A"},
		{"leaf-brackets", "( ( A ) )", Infix, "A", "A", "A", "A"},
		{"precedence", "3 + 4 * 2", Infix, "3 + 4 * 2", "( 3 + ( 4 * 2 ) )", "+ 3 * 4 2", "3 4 2 * +"},
		{"group", "( A + B ) * C", Infix, "( A + B ) * C", "( ( A + B ) * C )", "* + A B C", "A B + C *"},
		{"redundant", "( A * B ) + C", Infix, "A * B + C", "( ( A * B ) + C )", "+ * A B C", "A B * C +"},
		{"left-assoc", "( A - B ) - C", Infix, "A - B - C", "( ( A - B ) - C )", "- - A B C", "A B - C -"},
		{"right-group", "A - ( B - C )", Infix, "A - ( B - C )", "( A - ( B - C ) )", "- A - B C", "A B C - -"},
		{"right-group-same", "A + ( B + C )", Infix, "A + ( B + C )", "( A + ( B + C ) )", "+ A + B C", "A B C + +"},
		{"right-group-mixed", "A * ( B / C )", Infix, "A * ( B / C )", "( A * ( B / C ) )", "* A / B C", "A B C / *"},
		{"mod-chain", "A % B * C", Infix, "A % B * C", "( ( A % B ) * C )", "* % A B C", "A B % C *"},
		{"right-assoc", "2 ^ 3 ^ 2", Infix, "2 ^ 3 ^ 2", "( 2 ^ ( 3 ^ 2 ) )", "^ 2 ^ 3 2", "2 3 2 ^ ^"},
		{"left-pow", "( 2 ^ 3 ) ^ 2", Infix, "( 2 ^ 3 ) ^ 2", "( ( 2 ^ 3 ) ^ 2 )", "^ ^ 2 3 2", "2 3 ^ 2 ^"},
		{"pow-of-sum", "( A + B ) ^ ( C * D )", Infix, "( A + B ) ^ ( C * D )", "( ( A + B ) ^ ( C * D ) )", "^ + A B * C D", "A B + C D * ^"},
		{"pow-in-product", "A * B ^ C", Infix, "A * B ^ C", "( A * ( B ^ C ) )", "* A ^ B C", "A B C ^ *"},
		{"from-prefix", "- * A B / C D", Prefix, "A * B - C / D", "( ( A * B ) - ( C / D ) )", "- * A B / C D", "A B * C D / -"},
		{"from-postfix", "A B C + *", Postfix, "A * ( B + C )", "( A * ( B + C ) )", "* A + B C", "A B C + *"},
		{"aliases", "A × B ÷ C", Infix, "A * B / C", "( ( A * B ) / C )", "/ * A B C", "A B * C /"},
		{"brackets-normalized", "[ A + { B } ]", Infix, "A + B", "( A + B )", "+ A B", "A B +"},
		{"signed", "-1 - +2", Infix, "-1 - +2", "( -1 - +2 )", "- -1 +2", "-1 +2 -"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src, c.from)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.src, err)
			}
			if got := a.Infix(); got != c.infix {
				t.Errorf("infix: want %q, got %q", c.infix, got)
			}
			if got := a.InfixGrouped(); got != c.grouped {
				t.Errorf("grouped infix: want %q, got %q", c.grouped, got)
			}
			if got := a.Prefix(); got != c.prefix {
				t.Errorf("prefix: want %q, got %q", c.prefix, got)
			}
			if got := a.Postfix(); got != c.postfix {
				t.Errorf("postfix: want %q, got %q", c.postfix, got)
			}
			for _, n := range []Notation{Infix, Prefix, Postfix} {
				want := map[Notation]string{Infix: c.infix, Prefix: c.prefix, Postfix: c.postfix}[n]
				if got := a.Render(n); got != want {
					t.Errorf("Render(%v): want %q, got %q", n, want, got)
				}
			}
		})
	}
}

var allops = []string{"+", "-", "*", "/", "%", "^"}

// gentrees generates every tree with k operators, with every leaf named x.
func gentrees(k int) []*node {
	if k == 0 {
		return []*node{{kind: nodeName, text: "x"}}
	}
	var r []*node
	for lk := 0; lk < k; lk++ {
		for _, l := range gentrees(lk) {
			for _, rt := range gentrees(k - 1 - lk) {
				for _, op := range allops {
					r = append(r, binary(Token{Text: op, Kind: TokenOperator}, l, rt))
				}
			}
		}
	}
	return r
}

// label copies a tree, naming its leaves x0, x1, ... in order.
func label(n *node, i *int) *node {
	if !n.binary() {
		m := &node{kind: nodeName, text: "x" + strconv.Itoa(*i)}
		*i++
		return m
	}
	m := *n
	m.left = label(n.left, i)
	m.right = label(n.right, i)
	return &m
}

func TestRenderRoundTrip(t *testing.T) {
	for k := 0; k <= 3; k++ {
		for _, n := range gentrees(k) {
			var i int
			e := &Expr{n: label(n, &i)}
			forms := map[string]Notation{
				e.Infix():        Infix,
				e.InfixGrouped(): Infix,
				e.Prefix():       Prefix,
				e.Postfix():      Postfix,
			}
			for src, from := range forms {
				a, err := Parse(src, from)
				if err != nil {
					t.Errorf("%v rendered as %s %q, which failed to parse: %v", e, from, src, err)
					continue
				}
				if d, f := e.n.diff(a.n); d != nil || f != nil {
					t.Errorf("%v rendered as %s %q, which parses to %v", e, from, src, a)
				}
			}
		}
	}
}
