package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/notations"
)

// printer writes the outcome for each input expression.
type printer interface {
	result(src string, r *notations.Result) error
	fail(src string, err error) error
	close() error
}

func newPrinter(format string, w io.Writer, verb string) (printer, error) {
	switch format {
	case "text", "":
		return &textPrinter{w: w, verb: verb}, nil
	case "json":
		return jsonPrinter{json.NewEncoder(w)}, nil
	case "yaml":
		return yamlPrinter{yaml.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

type textPrinter struct {
	w    io.Writer
	verb string
	n    int
}

func (p *textPrinter) sep() {
	if p.n > 0 {
		fmt.Fprintln(p.w)
	}
	p.n++
}

func (p *textPrinter) result(src string, r *notations.Result) error {
	p.sep()
	answer := "none (" + fmt.Sprint(r.EvalErr) + ")"
	if r.Answer != nil {
		answer = fmt.Sprintf(p.verb, r.Answer)
	}
	_, err := fmt.Fprintf(p.w, "infix:   %s\nprefix:  %s\npostfix: %s\nanswer:  %s\n", r.Infix, r.Prefix, r.Postfix, answer)
	return err
}

func (p *textPrinter) fail(src string, err error) error {
	p.sep()
	_, werr := fmt.Fprintf(p.w, "%s\nerror:   %v\n", src, err)
	return werr
}

func (p *textPrinter) close() error { return nil }

type jsonPrinter struct {
	enc *json.Encoder
}

func (p jsonPrinter) result(src string, r *notations.Result) error {
	return p.enc.Encode(r.Response())
}

func (p jsonPrinter) fail(src string, err error) error {
	return p.enc.Encode(notations.ErrorResponse(err))
}

func (p jsonPrinter) close() error { return nil }

type yamlPrinter struct {
	enc *yaml.Encoder
}

func (p yamlPrinter) result(src string, r *notations.Result) error {
	return p.enc.Encode(r.Response())
}

func (p yamlPrinter) fail(src string, err error) error {
	return p.enc.Encode(notations.ErrorResponse(err))
}

func (p yamlPrinter) close() error {
	return p.enc.Close()
}
