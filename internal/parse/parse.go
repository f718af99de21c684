// Package parse turns the small free-text inputs accepted by algoscope into
// typed values: integer lists, graph edges, cost pairs and operation calls.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrEmptyInput is returned when the input holds no tokens.
	ErrEmptyInput = errors.New("parse: empty input")

	// ErrSyntax is wrapped by every SyntaxError.
	ErrSyntax = errors.New("parse: syntax error")
)

// SyntaxError describes a malformed token.
type SyntaxError struct {
	Kind   string
	Token  string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse %s: %q: %s", e.Kind, e.Token, e.Reason)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Edge is a directed or undirected connection with an integer capacity.
type Edge struct {
	From     string
	To       string
	Capacity int
}

// Op is one call of an operation script such as put(1,2).
type Op struct {
	Name string
	Args []int
}

func (o Op) String() string {
	args := make([]string, len(o.Args))
	for i, a := range o.Args {
		args[i] = strconv.Itoa(a)
	}
	return o.Name + "(" + strings.Join(args, ",") + ")"
}

// Ints parses a comma or whitespace separated list of integers.
func Ints(s string) ([]int, error) {
	tokens := splitList(s)
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &SyntaxError{Kind: "int", Token: tok, Reason: "not an integer"}
		}
		out = append(out, v)
	}
	return out, nil
}

// Edges parses "A-B, B-C" or, with capacities, "S-A:3, A-T:2".
// Edges without a capacity get capacity 1.
func Edges(s string) ([]Edge, error) {
	tokens := splitList(s)
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]Edge, 0, len(tokens))
	for _, tok := range tokens {
		e, err := edge(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func edge(tok string) (Edge, error) {
	body, capStr, hasCap := strings.Cut(tok, ":")
	from, to, ok := strings.Cut(body, "-")
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if !ok || from == "" || to == "" {
		return Edge{}, &SyntaxError{Kind: "edge", Token: tok, Reason: "expected u-v"}
	}
	e := Edge{From: from, To: to, Capacity: 1}
	if hasCap {
		c, err := strconv.Atoi(strings.TrimSpace(capStr))
		if err != nil {
			return Edge{}, &SyntaxError{Kind: "edge", Token: tok, Reason: "capacity is not an integer"}
		}
		e.Capacity = c
	}
	return e, nil
}

// Pairs parses "10:20, 30:200" into integer pairs.
func Pairs(s string) ([][2]int, error) {
	tokens := splitList(s)
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([][2]int, 0, len(tokens))
	for _, tok := range tokens {
		a, b, ok := strings.Cut(tok, ":")
		if !ok {
			return nil, &SyntaxError{Kind: "pair", Token: tok, Reason: "expected a:b"}
		}
		x, err1 := strconv.Atoi(strings.TrimSpace(a))
		y, err2 := strconv.Atoi(strings.TrimSpace(b))
		if err1 != nil || err2 != nil {
			return nil, &SyntaxError{Kind: "pair", Token: tok, Reason: "not an integer"}
		}
		out = append(out, [2]int{x, y})
	}
	return out, nil
}

// Ops parses an operation script such as "put(1,1) put(2,2); get(1)".
// Calls are separated by whitespace, semicolons or commas outside
// parentheses. Names are case-insensitive and returned lower-cased.
func Ops(s string) ([]Op, error) {
	var (
		out   []Op
		buf   strings.Builder
		depth int
	)
	flush := func() error {
		tok := strings.TrimSpace(buf.String())
		buf.Reset()
		if tok == "" {
			return nil
		}
		op, err := call(tok)
		if err != nil {
			return err
		}
		out = append(out, op)
		return nil
	}

	for _, r := range s {
		switch {
		case r == '(':
			depth++
			buf.WriteRune(r)
		case r == ')':
			depth--
			if depth < 0 {
				return nil, &SyntaxError{Kind: "op", Token: buf.String() + ")", Reason: "unbalanced parentheses"}
			}
			buf.WriteRune(r)
			if depth == 0 {
				if err := flush(); err != nil {
					return nil, err
				}
			}
		case depth == 0 && (r == ';' || r == ',' || unicode.IsSpace(r)):
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			buf.WriteRune(r)
		}
	}
	if depth != 0 {
		return nil, &SyntaxError{Kind: "op", Token: buf.String(), Reason: "unbalanced parentheses"}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmptyInput
	}
	return out, nil
}

func call(tok string) (Op, error) {
	open := strings.IndexByte(tok, '(')
	if open <= 0 || !strings.HasSuffix(tok, ")") {
		return Op{}, &SyntaxError{Kind: "op", Token: tok, Reason: "expected name(args)"}
	}
	name := strings.ToLower(strings.TrimSpace(tok[:open]))
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return Op{}, &SyntaxError{Kind: "op", Token: tok, Reason: "invalid operation name"}
		}
	}
	op := Op{Name: name}
	inner := strings.TrimSpace(tok[open+1 : len(tok)-1])
	if inner == "" {
		return op, nil
	}
	for _, a := range strings.Split(inner, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return Op{}, &SyntaxError{Kind: "op", Token: tok, Reason: "argument is not an integer"}
		}
		op.Args = append(op.Args, v)
	}
	return op, nil
}

// Arity checks that op has exactly n arguments.
func Arity(op Op, n int) error {
	if len(op.Args) != n {
		return &SyntaxError{Kind: "op", Token: op.String(), Reason: fmt.Sprintf("expected %d argument(s)", n)}
	}
	return nil
}

func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
