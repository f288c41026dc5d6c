// Package term implements the prefix term grammar used by the prover
// (nested op(..) applications over variable leaves) and its rendering as
// Lean infix notation.
package term

import (
	"fmt"
	"strings"
)

// Term is a binary tree over the single magma operator. A leaf carries the
// variable name in its source spelling; an interior node has both children
// set and an empty Var.
type Term struct {
	Var         string
	Left, Right *Term
}

func Leaf(name string) *Term {
	return &Term{Var: name}
}

func Op(left, right *Term) *Term {
	return &Term{Left: left, Right: right}
}

func (t *Term) IsLeaf() bool {
	return t.Left == nil
}

// Equation is a parsed expression: a bare term (RHS nil) or lhs = rhs.
type Equation struct {
	LHS *Term
	RHS *Term
}

// ParseError reports a malformed term with the byte offset of the failure
// and the unmet expectation.
type ParseError struct {
	Pos    int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Reason)
}

func isIdentStart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentStep(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9') || c == '_'
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

// ParseTerm parses one term starting at offset i and returns it together
// with the offset just past it. Grammar:
//
//	term := "op(" term "," term ")" | identifier
func ParseTerm(s string, i int) (*Term, int, error) {
	i = skipSpace(s, i)
	if i >= len(s) {
		return nil, i, &ParseError{Pos: i, Reason: "unexpected end while parsing term"}
	}

	if strings.HasPrefix(s[i:], "op(") {
		i += 3
		left, j, err := ParseTerm(s, i)
		if err != nil {
			return nil, j, err
		}
		j = skipSpace(s, j)
		if j >= len(s) || s[j] != ',' {
			return nil, j, &ParseError{Pos: j, Reason: "expected ',' in op(...)"}
		}
		right, k, err := ParseTerm(s, j+1)
		if err != nil {
			return nil, k, err
		}
		k = skipSpace(s, k)
		if k >= len(s) || s[k] != ')' {
			return nil, k, &ParseError{Pos: k, Reason: "expected ')' in op(...)"}
		}
		return Op(left, right), k + 1, nil
	}

	if !isIdentStart(s[i]) {
		return nil, i, &ParseError{Pos: i, Reason: "expected variable"}
	}
	j := i + 1
	for j < len(s) && isIdentStep(s[j]) {
		j++
	}
	return Leaf(s[i:j]), j, nil
}

// ParseSide parses a complete equation side. Trailing periods are stripped;
// anything else left over after the term is an error.
func ParseSide(side string) (*Term, error) {
	side = strings.TrimRight(strings.TrimSpace(side), ".")
	t, pos, err := ParseTerm(side, 0)
	if err != nil {
		return nil, err
	}
	pos = skipSpace(side, pos)
	if pos != len(side) {
		return nil, &ParseError{Pos: pos, Reason: fmt.Sprintf("extra characters after parsed term: %q", side[pos:])}
	}
	return t, nil
}

// wrapped reports whether s is enclosed by a single matching pair of
// parentheses covering the whole string.
func wrapped(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 && i < len(s)-1 {
			return false
		}
	}
	return depth == 0
}

// ParseEquation parses an expression with an optional single top-level '='
// found at parenthesis depth zero. Matching outer parentheses around the
// whole expression are unwrapped first.
func ParseEquation(expr string) (Equation, error) {
	expr = strings.TrimSpace(expr)
	if wrapped(expr) {
		expr = strings.TrimSpace(expr[1 : len(expr)-1])
	}

	depth := 0
	eqPos := -1
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '=':
			if depth == 0 {
				eqPos = i
			}
		}
		if eqPos >= 0 {
			break
		}
	}

	if eqPos < 0 {
		lhs, err := ParseSide(expr)
		if err != nil {
			return Equation{}, err
		}
		return Equation{LHS: lhs}, nil
	}

	lhs, err := ParseSide(expr[:eqPos])
	if err != nil {
		return Equation{}, err
	}
	rhs, err := ParseSide(expr[eqPos+1:])
	if err != nil {
		return Equation{}, err
	}
	return Equation{LHS: lhs, RHS: rhs}, nil
}
