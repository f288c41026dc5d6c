package trace

import (
	"fmt"
	"sort"
	"strings"
)

// RetainedAxiom is an inline axiom that is referenced by the proof but not
// re-derived as a lemma; it survives into the output under a synthesized
// name.
type RetainedAxiom struct {
	Name string // synthesized axiomN
	Expr string
}

// Resolution holds the canonical naming decided by Resolve.
type Resolution struct {
	// NameMap maps original lemma names to canonical ones.
	NameMap map[string]string
	// AxiomNames maps original axiom tokens to synthesized names.
	AxiomNames map[string]string
	// Retained lists the surviving axioms in output order.
	Retained []RetainedAxiom
}

// Resolve renumbers lemmas and retained axioms and rewrites every
// dependency list to canonical names. Record names are rewritten in place;
// discovery order is preserved. A token that resolves to nothing is a hard
// error.
func Resolve(t *Transcript) (*Resolution, error) {
	res := &Resolution{
		NameMap:    map[string]string{},
		AxiomNames: map[string]string{},
	}

	// Axiom retention: used tokens, minus the hypothesis, minus anything
	// re-derived as a lemma, in sorted token order.
	used := make([]string, 0, len(t.UsedAxioms))
	for tok := range t.UsedAxioms {
		used = append(used, tok)
	}
	sort.Strings(used)
	counter := 1
	for _, tok := range used {
		if tok == "a1" {
			continue
		}
		if _, ok := t.lemmaIdx[tok]; ok {
			continue
		}
		expr, ok := t.InlineAxioms[tok]
		if !ok {
			return nil, &MissingDependencyError{Token: tok, Context: "axiom retention"}
		}
		name := fmt.Sprintf("axiom%d", counter)
		counter++
		res.AxiomNames[tok] = name
		res.Retained = append(res.Retained, RetainedAxiom{Name: name, Expr: expr})
	}

	// Lemma renumbering in first-discovery order; the conjecture record
	// keeps its original name.
	counter = 1
	for _, rec := range t.Lemmas {
		name := rec.OrigName
		if !strings.HasPrefix(name, "conjecture") {
			name = fmt.Sprintf("lemma_%d", counter)
			counter++
		}
		res.NameMap[rec.OrigName] = name
		rec.Name = name
	}

	// Dependency rewrite.
	for _, rec := range t.Lemmas {
		for i, dep := range rec.Deps {
			resolved, err := res.ResolveToken(dep)
			if err != nil {
				return nil, &MissingDependencyError{Token: dep, Context: rec.Name}
			}
			rec.Deps[i] = resolved
		}
	}

	return res, nil
}

// ResolveToken maps one dependency token to its canonical name.
func (res *Resolution) ResolveToken(tok string) (string, error) {
	if tok == "a1" || tok == HypothesisName {
		return HypothesisName, nil
	}
	if name, ok := res.NameMap[tok]; ok {
		return name, nil
	}
	if name, ok := res.AxiomNames[tok]; ok {
		return name, nil
	}
	return "", &MissingDependencyError{Token: tok}
}
