// Package tptp renders equation-database records as TPTP problem files
// for the prover.
package tptp

import (
	"fmt"
	"sort"
	"strings"

	"example.com/leangen/internal/term"
)

// varMap assigns X0, X1, ... in order of first appearance. The map is
// shared across both sides of an equation, left side first.
type varMap struct {
	names map[string]string
	order []string
}

func newVarMap() *varMap {
	return &varMap{names: map[string]string{}}
}

func (vm *varMap) get(name string) string {
	if mapped, ok := vm.names[name]; ok {
		return mapped
	}
	mapped := fmt.Sprintf("X%d", len(vm.order))
	vm.names[name] = mapped
	vm.order = append(vm.order, mapped)
	return mapped
}

// render writes t in prover prefix syntax. TPTP problems pack the
// arguments with no space after the comma.
func (vm *varMap) render(t *term.Term) string {
	if t.IsLeaf() {
		return vm.get(t.Var)
	}
	return fmt.Sprintf("op(%s,%s)", vm.render(t.Left), vm.render(t.Right))
}

// RenderEquation converts eq to a parenthesized TPTP equality and
// reports the fresh variable names it introduced.
func RenderEquation(eq term.Equation) (string, []string, error) {
	if eq.RHS == nil {
		return "", nil, fmt.Errorf("equation has no right-hand side")
	}
	vm := newVarMap()
	lhs := vm.render(eq.LHS)
	rhs := vm.render(eq.RHS)
	return fmt.Sprintf("(%s = %s)", lhs, rhs), vm.order, nil
}

// Problem renders a complete two-formula problem file. Both formulas
// quantify over the union of the variables either side mentions.
func Problem(axiom, conjecture term.Equation) (string, error) {
	axStr, axVars, err := RenderEquation(axiom)
	if err != nil {
		return "", fmt.Errorf("axiom: %w", err)
	}
	conjStr, conjVars, err := RenderEquation(conjecture)
	if err != nil {
		return "", fmt.Errorf("conjecture: %w", err)
	}

	seen := map[string]bool{}
	var all []string
	for _, v := range append(axVars, conjVars...) {
		if !seen[v] {
			seen[v] = true
			all = append(all, v)
		}
	}
	sort.Strings(all)
	vars := strings.Join(all, ", ")

	return fmt.Sprintf("fof(a1, axiom,\n    ! [%s] :\n        %s\n).\n\nfof(conjecture0, conjecture,\n    ! [%s] :\n        %s\n).\n",
		vars, axStr, vars, conjStr), nil
}
