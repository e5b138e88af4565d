package notations_test

import (
	"testing"

	"github.com/zephyrtronium/notations"
)

func FuzzParse(f *testing.F) {
	f.Add("( A + B ) * C", uint8(1))
	f.Add("* + A B C", uint8(2))
	f.Add("A B + C *", uint8(3))
	f.Add("2 ^ 3 ^ 2", uint8(1))
	f.Add("[ x % { y - z } ]", uint8(1))
	f.Fuzz(func(t *testing.T, s string, from uint8) {
		n := notations.Notation(from%3 + 1)
		a, err := notations.Parse(s, n)
		if err != nil {
			return
		}
		// Every rendering of a parsed expression must parse back to an
		// expression that renders identically.
		want := a.Prefix()
		for _, to := range []notations.Notation{notations.Infix, notations.Prefix, notations.Postfix} {
			src := a.Render(to)
			b, err := notations.Parse(src, to)
			if err != nil {
				t.Fatalf("%s %q rendered as %s %q, which failed to parse: %v", n, s, to, src, err)
			}
			if got := b.Prefix(); got != want {
				t.Errorf("%s %q rendered as %s %q, which changed prefix %q to %q", n, s, to, src, want, got)
			}
		}
	})
}
