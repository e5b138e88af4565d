// Package notations converts arithmetic expressions between infix, prefix,
// and postfix notation and evaluates them with arbitrary precision.
//
// Tokens are separated by whitespace, including brackets: "( A + B ) * C" is
// an infix expression, "* + A B C" is the same expression in prefix notation,
// and "A B + C *" is it in postfix. Operands are either decimal literals or
// symbolic names. Names can be given values through a Context; otherwise an
// expression containing them still converts but does not evaluate.
//
// The operators are + and - (lowest), * / and % (higher), and ^ (highest,
// right-associative), so "2 ^ 3 ^ 2" is 2^(3^2).
package notations
