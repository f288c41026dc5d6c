// Package trace segments a prover transcript into axiom, lemma and proof
// records, and resolves the textual dependency references between them.
package trace

import "fmt"

// HypothesisName is the fixed Lean-side name of the theorem hypothesis
// (source token "a1").
const HypothesisName = "op_law"

// FofRecord is a top-level TPTP declaration: the hypothesis (role axiom) or
// the goal (role conjecture).
type FofRecord struct {
	Name    string
	Formula string
}

// LemmaRecord is one intermediate fact discovered in the transcript. Name
// starts as the source spelling and is rewritten to the canonical lemma_k
// form by Resolve; OrigName keeps the source spelling.
type LemmaRecord struct {
	Name     string
	OrigName string
	Expr     string
	Deps     []string
	Proof    []string
}

// State is the segmenter position in the transcript.
type State int

const (
	// ScanningHeader: before the proof-section marker.
	ScanningHeader State = iota
	// InProofSection: past the marker, not inside a goal block.
	InProofSection
	// AccumulatingGoal: collecting the proof lines of the current goal.
	AccumulatingGoal
)

// Transcript is the mutable translation context threaded through
// segmentation and resolution. One Transcript per input; nothing is shared
// across runs.
type Transcript struct {
	Hypothesis *FofRecord
	Conjecture *FofRecord

	// InlineAxioms maps the source axiom token to its expression text.
	InlineAxioms map[string]string

	// Lemmas in first-discovery order.
	Lemmas   []*LemmaRecord
	lemmaIdx map[string]*LemmaRecord

	// UsedAxioms holds every parenthesized dependency token seen on a
	// proof line, for the axiom-retention pass.
	UsedAxioms map[string]bool

	state        State
	current      string
	currentLines []string
	fofBuffer    string
}

func NewTranscript() *Transcript {
	return &Transcript{
		InlineAxioms: map[string]string{},
		lemmaIdx:     map[string]*LemmaRecord{},
		UsedAxioms:   map[string]bool{},
	}
}

// State reports the segmenter state, for transition tests.
func (t *Transcript) State() State {
	return t.state
}

func (t *Transcript) Lemma(name string) *LemmaRecord {
	return t.lemmaIdx[name]
}

// upsertLemma registers a record under name, keeping discovery order on
// updates.
func (t *Transcript) upsertLemma(name, expr string, deps []string) *LemmaRecord {
	if rec, ok := t.lemmaIdx[name]; ok {
		rec.Expr = expr
		rec.Deps = deps
		return rec
	}
	rec := &LemmaRecord{Name: name, OrigName: name, Expr: expr, Deps: deps}
	t.Lemmas = append(t.Lemmas, rec)
	t.lemmaIdx[name] = rec
	return rec
}

// MissingRecordError reports a transcript without the mandatory hypothesis
// or conjecture declaration.
type MissingRecordError struct {
	Kind string
}

func (e *MissingRecordError) Error() string {
	return fmt.Sprintf("transcript has no %s declaration", e.Kind)
}

// MissingDependencyError reports a dependency token that resolves to no
// declared lemma, retained axiom, or the hypothesis.
type MissingDependencyError struct {
	Token   string
	Context string
}

func (e *MissingDependencyError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("unresolved dependency %q", e.Token)
	}
	return fmt.Sprintf("unresolved dependency %q in %s", e.Token, e.Context)
}
