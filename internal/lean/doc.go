package lean

import (
	"strings"

	"example.com/leangen/internal/term"
	"example.com/leangen/internal/trace"
)

// preamble is a fixed configuration block, not derived from the input.
const preamble = `import Mathlib.Tactic.NthRewrite
import Duper
open Lean Grind

class Magma (α : Type _) where
  op : α → α → α

infix:65 " ◇ " => Magma.op
`

// bodyIndent indents a broken lemma or axiom body after the '='.
const bodyIndent = "      "

// Abbrev renders the equation schema abbreviation for a top-level fof
// record (hypothesis or conjecture).
func Abbrev(name, formula string) (string, error) {
	core := term.StripForall(formula)
	norm, vars := term.NormalizeVariables(core)
	eq, err := term.ParseEquation(norm)
	if err != nil {
		return "", err
	}
	body := equationBody(eq)
	return "abbrev Equation_" + name + " (G : Type _) [Magma G] :=\n" +
		"  ∀ " + strings.Join(vars, " ") + " : G, " + body + "\n", nil
}

// AxiomDecl renders one retained axiom declaration. A body over the budget
// breaks after the '='; a single side over the budget is wrapped along its
// operator chain.
func AxiomDecl(name, expr string) (string, error) {
	norm, vars := term.NormalizeVariables(expr)
	eq, err := term.ParseEquation(norm)
	if err != nil {
		return "", err
	}

	var body string
	lhs := term.Render(eq.LHS)
	if eq.RHS == nil {
		body = term.WrapSide(lhs, bodyIndent, term.MaxLineWidth)
	} else {
		rhs := term.Render(eq.RHS)
		if term.Width(lhs)+term.Width(rhs)+3 <= term.MaxLineWidth {
			body = lhs + " = " + rhs
		} else {
			body = term.WrapSide(lhs, bodyIndent, term.MaxLineWidth) + " =\n" +
				bodyIndent + term.WrapSide(rhs, bodyIndent, term.MaxLineWidth)
		}
	}

	return "axiom " + name + " (G : Type _) [Magma G] :\n" +
		"  ∀ " + strings.Join(vars, " ") + " : G, " + body + "\n", nil
}

func equationBody(eq term.Equation) string {
	lhs := term.Render(eq.LHS)
	if eq.RHS == nil {
		return lhs
	}
	return lhs + " = " + term.Render(eq.RHS)
}

// lemmaBody lays out "lhs = rhs", breaking at the '=' over the budget.
func lemmaBody(eq term.Equation) string {
	lhs := term.Render(eq.LHS)
	if eq.RHS == nil {
		return lhs
	}
	rhs := term.Render(eq.RHS)
	full := lhs + " = " + rhs
	if term.Width(full) <= term.MaxLineWidth {
		return full
	}
	return lhs + " =\n" + bodyIndent + rhs
}

// TheoremHeader names the hypothesis and target schemas.
func TheoremHeader(axName, conjName string) string {
	return "theorem Equation_" + axName + "_implies_Equation_" + conjName +
		" (G : Type _) [Magma G]\n" +
		"    (" + trace.HypothesisName + " : Equation_" + axName + " G) : " +
		"Equation_" + conjName + " G :="
}

// LemmaText renders one intermediate fact inside the theorem body: a have
// with a calc proof when the lemma has a proof block, the conjecture's own
// show/intros/calc body, or a bare tactic call over the dependency list.
func LemmaText(rec *trace.LemmaRecord, res *trace.Resolution, tactic string) (string, error) {
	core := term.StripForall(rec.Expr)
	renaming := term.Renaming(core)
	norm := term.ApplyRenaming(core, renaming)
	eq, err := term.ParseEquation(norm)
	if err != nil {
		return "", err
	}
	varList := strings.Join(term.SortedNames(renaming), " ")
	body := lemmaBody(eq)

	if strings.HasPrefix(rec.Name, "lemma_") && len(rec.Proof) > 0 {
		calc, err := BuildCalcBlock(rec.Proof, renaming, res, tactic)
		if err != nil {
			return "", err
		}
		return "     \n  have " + rec.Name + " (" + varList + " : G) :\n" +
			"  " + body + " := by\n    calc\n      " + calc + "\n  ", nil
	}

	if strings.HasPrefix(rec.Name, "conjecture") && len(rec.Proof) > 0 {
		calc, err := BuildCalcBlock(rec.Proof, renaming, res, tactic)
		if err != nil {
			return "", err
		}
		return "\n  show _ by\n    intros " + varList + "\n    calc\n      " + calc + "\n  ", nil
	}

	depsStr := "[*]"
	if len(rec.Deps) > 0 {
		depsStr = "[" + strings.Join(rec.Deps, ", ") + "]"
	}
	return "\n  have " + rec.Name + " (" + varList + " : G) :\n" +
		"  " + body + " := by\n    " + tactic + " " + depsStr + "\n  ", nil
}

// Document composes the output file: preamble, hypothesis schema, retained
// axioms, conjecture schema, theorem header, and the ordered proofs with
// the conjecture's own proof last. Pure assembly; all parsing has already
// happened.
func Document(t *trace.Transcript, res *trace.Resolution, tactic string) (string, error) {
	hyp, err := Abbrev(t.Hypothesis.Name, t.Hypothesis.Formula)
	if err != nil {
		return "", err
	}
	conj, err := Abbrev(t.Conjecture.Name, t.Conjecture.Formula)
	if err != nil {
		return "", err
	}

	axioms := ""
	for _, ax := range res.Retained {
		decl, err := AxiomDecl(ax.Name, ax.Expr)
		if err != nil {
			return "", err
		}
		axioms += decl
	}

	proofs := ""
	for _, rec := range t.Lemmas {
		text, err := LemmaText(rec, res, tactic)
		if err != nil {
			return "", err
		}
		proofs += text
	}

	return preamble + "\n" + hyp + "\n" + axioms + "\n" + conj + "\n" +
		TheoremHeader(t.Hypothesis.Name, t.Conjecture.Name) + proofs + "\n", nil
}
