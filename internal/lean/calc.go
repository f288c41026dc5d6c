// Package lean renders the translated proof as a Lean 4 source file. The
// layout rules (80-column budget, break points, indents) are byte-exact
// contracts checked by downstream tooling.
package lean

import (
	"fmt"
	"regexp"
	"strings"

	"example.com/leangen/internal/term"
	"example.com/leangen/internal/trace"
)

// justifyRe matches a proof justification line, "= { by <token> ... }".
var justifyRe = regexp.MustCompile(`^=\s*\{\s*by\s+(\S+).*?\}`)

// stepIndent indents tactic lines and broken right-hand sides inside a
// calc block; stepJoin separates consecutive calc steps.
const (
	stepIndent = "        "
	stepJoin   = "\n      "
)

// BuildCalcBlock assembles the equational step chain of one proof block.
// Each justification line pairs the immediately preceding raw line (lhs)
// with the immediately following one (rhs); both are variable-renamed and
// parsed. The step's dependency is the first token on the justification
// line, resolved to its canonical name.
func BuildCalcBlock(proof []string, renaming map[string]string, res *trace.Resolution, tactic string) (string, error) {
	steps := []string{}

	for i, raw := range proof {
		line := strings.TrimSpace(raw)
		if line == "" || strings.ToLower(line) == "proof:" {
			continue
		}
		if !justifyRe.MatchString(line) {
			continue
		}

		dep, err := stepDependency(line, res)
		if err != nil {
			return "", err
		}

		if i == 0 || i+1 >= len(proof) {
			return "", fmt.Errorf("justification line %q has no adjacent terms", line)
		}
		lhs, err := renamedTerm(proof[i-1], renaming)
		if err != nil {
			return "", err
		}
		rhs, err := renamedTerm(proof[i+1], renaming)
		if err != nil {
			return "", err
		}

		steps = append(steps, formatCalcStep(lhs, rhs, dep, tactic))
	}

	return strings.Join(steps, stepJoin), nil
}

func renamedTerm(raw string, renaming map[string]string) (string, error) {
	renamed := term.ApplyRenaming(raw, renaming)
	t, _, err := term.ParseTerm(renamed, 0)
	if err != nil {
		return "", err
	}
	return term.Render(t), nil
}

// stepDependency picks the step's justification: the first direct
// dependency token on the line, or failing that a free-text "lemma N"
// reference. Multiple tokens on one line are not combined.
func stepDependency(line string, res *trace.Resolution) (string, error) {
	if tok := trace.FirstToken(line); tok != "" {
		return res.ResolveToken(tok)
	}
	if num := trace.LemmaNumber(line); num != "" {
		return res.ResolveToken("Lemma_" + num)
	}
	return "", &trace.MissingDependencyError{Token: line, Context: "justification line"}
}

// formatCalcStep lays out one step. Within the budget both sides share a
// line; over it the '=' ends the first line and the right side starts the
// continuation.
func formatCalcStep(lhs, rhs, dep, tactic string) string {
	just := " := by\n" + stepIndent + tactic + " [" + dep + "]"
	if term.Width(lhs)+term.Width(rhs) <= term.MaxLineWidth {
		return lhs + " = " + rhs + just
	}
	return lhs + " =\n" + stepIndent + rhs + just
}
