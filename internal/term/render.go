package term

import (
	"strings"
	"unicode/utf8"
)

// OpSymbol is the Lean infix spelling of the magma operator.
const OpSymbol = "◇"

// MaxLineWidth is the layout budget shared by every emitter. Widths are
// measured in runes so the multi-byte operator counts as one column.
const MaxLineWidth = 80

// Render produces fully parenthesized infix notation: (left ◇ right) for
// interior nodes, the bare identifier for leaves.
func Render(t *Term) string {
	if t.IsLeaf() {
		return t.Var
	}
	return "(" + Render(t.Left) + " " + OpSymbol + " " + Render(t.Right) + ")"
}

// RenderPrefix produces the prover's prefix spelling: op(left,right) for
// interior nodes, the bare identifier for leaves.
func RenderPrefix(t *Term) string {
	if t.IsLeaf() {
		return t.Var
	}
	return "op(" + RenderPrefix(t.Left) + "," + RenderPrefix(t.Right) + ")"
}

// Width is the rendered column width of s.
func Width(s string) int {
	return utf8.RuneCountInString(s)
}

// WrapSide lays out one rendered equation side within max columns. The
// side's top-level operator chain is walked left to right; whenever the next
// fragment would overflow the budget the accumulated line is emitted and a
// new one started. Continuation lines carry indent. The greedy wrap points
// are a compatibility contract: downstream tooling diffs output bytes.
func WrapSide(side, indent string, max int) string {
	side = strings.TrimSpace(side)
	if Width(side) <= max {
		return side
	}

	parts := strings.Split(side, OpSymbol)
	current := strings.TrimSpace(parts[0])
	lines := []string{}

	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		candidate := current + " " + OpSymbol + " " + part
		if Width(candidate) > max {
			lines = append(lines, current)
			current = part
		} else {
			current = candidate
		}
	}
	lines = append(lines, current)

	return strings.Join(lines, "\n"+indent)
}
