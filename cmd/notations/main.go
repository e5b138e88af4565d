package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/zephyrtronium/notations"
)

func main() {
	os.Exit(run(osfs.New(""), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run runs the command with input files read from fs. The result is the exit
// status: 0 on success, 1 if any expression failed to parse, and 2 for
// invalid usage.
func run(fs billy.Filesystem, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	var (
		inname, verb, from, format string
		with                       [][2]string
		group, echo                bool
		prec                       int
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`operand definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flags := flag.NewFlagSet("notations", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&inname, "in", "", "input file with one expression per line (default stdin if no args given)")
	flags.StringVar(&from, "from", "infix", "notation of the input: infix, prefix, or postfix")
	flags.StringVar(&verb, "fmt", "%g", "answer formatting string for text output")
	flags.StringVar(&format, "o", "text", "output format: text, json, or yaml")
	flags.Func("given", "name=value operand definition, where value is an infix expression (any number of times)", addwith)
	flags.IntVar(&prec, "p", 64, "precision of calculations in bits")
	flags.BoolVar(&group, "group", false, "bracket every operation in infix output")
	flags.BoolVar(&echo, "echo", false, "print parse trees to stderr")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if prec <= 0 {
		logger.Printf("precision (%d) must be positive", prec)
		return 2
	}
	notation, err := notations.ParseNotation(from)
	if err != nil {
		logger.Print(err)
		return 2
	}
	out, err := newPrinter(format, stdout, verb)
	if err != nil {
		logger.Print(err)
		return 2
	}

	ctx := notations.NewContext(notations.Prec(uint(prec)))
	for _, d := range with {
		nm, vl := d[0], d[1]
		e, err := notations.Parse(vl, notations.Infix)
		if err != nil {
			logger.Printf("setting %s: %v", nm, err)
			return 2
		}
		r, err := e.Eval(ctx)
		if err != nil {
			logger.Printf("setting %s: %v", nm, err)
			return 2
		}
		ctx.Set(nm, r)
	}

	var srcs []string
	if inname != "" || flags.NArg() == 0 {
		lines, err := readLines(fs, inname, stdin)
		if err != nil {
			logger.Print(err)
			return 2
		}
		srcs = lines
	}
	srcs = append(srcs, flags.Args()...)

	status := 0
	for _, src := range srcs {
		e, err := notations.Parse(src, notation)
		if err != nil {
			status = 1
			if err := out.fail(src, err); err != nil {
				logger.Print(err)
				return 2
			}
			continue
		}
		if echo {
			logger.Printf("%s : %v", src, e)
		}
		r := e.Result(ctx)
		if group {
			r.Infix = e.InfixGrouped()
		}
		if err := out.result(src, r); err != nil {
			logger.Print(err)
			return 2
		}
	}
	if err := out.close(); err != nil {
		logger.Print(err)
		return 2
	}
	return status
}

// readLines reads the non-blank lines of a file, skipping lines starting with
// #. An empty name or - reads stdin instead.
func readLines(fs billy.Filesystem, name string, stdin io.Reader) ([]string, error) {
	var in io.Reader = stdin
	if name != "" && name != "-" {
		f, err := fs.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	var lines []string
	s := bufio.NewScanner(in)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return lines, nil
}
