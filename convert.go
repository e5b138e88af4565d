package notations

import (
	"math"
	"math/big"
)

// Result holds an expression in all three notations along with its value.
type Result struct {
	Infix   string
	Prefix  string
	Postfix string
	// Answer is the value of the expression, or nil if evaluating it failed.
	Answer *big.Float
	// EvalErr is the reason evaluation failed, if it did.
	EvalErr error
}

// Convert parses an expression written in the given notation, renders it in
// all three notations, and evaluates it with a context created from opts.
// Tokenizing and parsing errors are returned as the error. Evaluation errors
// do not prevent conversion; they are reported in the result's EvalErr.
func Convert(src string, from Notation, opts ...ContextOption) (*Result, error) {
	e, err := Parse(src, from)
	if err != nil {
		return nil, err
	}
	return e.Result(NewContext(opts...)), nil
}

// Result renders the expression in all three notations and evaluates it with
// ctx. If ctx is nil, a default context is used.
func (e *Expr) Result(ctx *Context) *Result {
	r := Result{
		Infix:   e.Infix(),
		Prefix:  e.Prefix(),
		Postfix: e.Postfix(),
	}
	r.Answer, r.EvalErr = e.Eval(ctx)
	return &r
}

// Request is a notation-tagged expression, as received by a transport.
type Request struct {
	Expression string   `json:"expression" yaml:"expression"`
	Notation   Notation `json:"source_notation" yaml:"source_notation"`
}

// Response is the transport form of a conversion. Either Error is set, or the
// three notations are set along with Answer if evaluation succeeded.
type Response struct {
	Infix   string   `json:"infix,omitempty" yaml:"infix,omitempty"`
	Prefix  string   `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Postfix string   `json:"postfix,omitempty" yaml:"postfix,omitempty"`
	Answer  *float64 `json:"answer,omitempty" yaml:"answer,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Process converts and evaluates a request.
func Process(req Request, opts ...ContextOption) Response {
	r, err := Convert(req.Expression, req.Notation, opts...)
	if err != nil {
		return ErrorResponse(err)
	}
	return r.Response()
}

// Response gets the transport form of the result. Answers too large for a
// float64 are omitted.
func (r *Result) Response() Response {
	resp := Response{
		Infix:   r.Infix,
		Prefix:  r.Prefix,
		Postfix: r.Postfix,
	}
	if r.Answer != nil {
		if f, _ := r.Answer.Float64(); !math.IsInf(f, 0) {
			resp.Answer = &f
		}
	}
	return resp
}

// ErrorResponse gets the transport form of a failed conversion.
func ErrorResponse(err error) Response {
	return Response{Error: err.Error()}
}
