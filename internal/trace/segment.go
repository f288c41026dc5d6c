package trace

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// proofMarker introduces the proof section of the transcript.
const proofMarker = "The conjecture is true! Here is a proof"

var (
	axiomRe = regexp.MustCompile(`^Axiom\s+\d+\s+\(([^)]+)\):\s*(.*)$`)
	goalRe  = regexp.MustCompile(`^(?:Goal|Lemma)\s+(\d+)(?:\s*\(([^)]+)\))?\s*:\s*(.*)$`)
	declRe  = regexp.MustCompile(`^%\s*(\S+):\s*(.*)$`)

	fofNameRe    = regexp.MustCompile(`fof\(([^,]+)`)
	fofFormulaRe = regexp.MustCompile(`(?s)fof\([^,]+,[^,]+,(.*)\)\s*\.`)
)

// Segment runs the line state machine over the whole transcript. A goal
// block still open at end of input was never terminated by RESULT and is
// dropped, matching the prover's output contract.
func Segment(r io.Reader) (*Transcript, error) {
	t := NewTranscript()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		t.Feed(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// Feed applies the transition rules to one input line, in order. Exported
// so the machine can be driven against literal line sequences in tests.
func (t *Transcript) Feed(line string) {
	stripped := strings.TrimSpace(line)

	// Inline axiom declarations are recorded in any state.
	if m := axiomRe.FindStringSubmatch(stripped); m != nil {
		t.InlineAxioms[m[1]] = strings.TrimRight(m[2], ".")
		return
	}

	if strings.HasPrefix(stripped, proofMarker) {
		if t.state == ScanningHeader {
			t.state = InProofSection
		}
		return
	}

	if strings.HasPrefix(stripped, "% single_lemma_") || strings.HasPrefix(stripped, "% history_lemma_") {
		t.feedDeclaration(stripped)
		return
	}

	if t.state != ScanningHeader {
		if m := goalRe.FindStringSubmatch(stripped); m != nil {
			t.finalize()
			name := m[2]
			if name == "" {
				name = "Lemma_" + m[1]
			}
			t.current = name
			t.currentLines = nil
			t.state = AccumulatingGoal

			// The hypothesis is not a lemma; everything else gets a
			// record unless one was already declared, in which case the
			// declared expression wins.
			if !strings.Contains(strings.ToLower(name), "a1") {
				if _, ok := t.lemmaIdx[name]; !ok {
					t.upsertLemma(name, strings.TrimSpace(m[3]), nil)
				}
			}
			return
		}

		if t.state == AccumulatingGoal {
			if stripped != "" &&
				!strings.HasPrefix(stripped, "Goal") &&
				!strings.HasPrefix(stripped, "Lemma") &&
				!strings.HasPrefix(stripped, "RESULT") {
				t.currentLines = append(t.currentLines, stripped)
				for _, m := range parenTokenRe.FindAllStringSubmatch(stripped, -1) {
					t.UsedAxioms[m[1]] = true
				}
			}

			if strings.HasPrefix(stripped, "RESULT") {
				t.finalize()
				t.current = ""
				t.state = InProofSection
			}
		}
	}

	// fof(...) records may span lines; buffer until the closing ")."
	if t.fofBuffer == "" {
		if strings.Contains(stripped, "fof(") {
			t.fofBuffer = stripped
			t.completeFof()
		}
		return
	}
	t.fofBuffer += " " + stripped
	t.completeFof()
}

// feedDeclaration parses "% single_lemma_N: expr | deps: d1->.., d2".
// Arrow annotations on dependency tokens are discarded.
func (t *Transcript) feedDeclaration(stripped string) {
	body, depsPart, _ := strings.Cut(stripped, "|")
	m := declRe.FindStringSubmatch(strings.TrimSpace(body))
	if m == nil {
		return
	}
	var deps []string
	if _, after, ok := strings.Cut(depsPart, "deps:"); ok {
		for _, d := range strings.Split(after, ",") {
			d, _, _ = strings.Cut(d, "->")
			d = strings.TrimSpace(d)
			if d == "a1" {
				d = HypothesisName
			}
			deps = append(deps, d)
		}
	}
	t.upsertLemma(m[1], strings.TrimSpace(m[2]), deps)
}

// finalize attaches the accumulated proof block to the current record and
// rederives its dependency list from the proof lines, replacing a declared
// one. The hypothesis block has no record and is discarded.
func (t *Transcript) finalize() {
	if t.current == "" || len(t.currentLines) == 0 {
		return
	}
	if rec, ok := t.lemmaIdx[t.current]; ok {
		rec.Proof = append([]string(nil), t.currentLines...)
		rec.Deps = DepsFromProof(t.currentLines)
	}
	t.currentLines = nil
}

func (t *Transcript) completeFof() {
	if !strings.HasSuffix(t.fofBuffer, ").") {
		return
	}
	buf := t.fofBuffer
	t.fofBuffer = ""

	nm := fofNameRe.FindStringSubmatch(buf)
	fm := fofFormulaRe.FindStringSubmatch(buf)
	if nm == nil || fm == nil {
		return
	}
	rec := &FofRecord{Name: strings.TrimSpace(nm[1]), Formula: strings.TrimSpace(fm[1])}
	switch {
	case strings.Contains(buf, "axiom"):
		t.Hypothesis = rec
	case strings.Contains(buf, "conjecture"):
		t.Conjecture = rec
	}
}

// Validate checks that the mandatory top-level records were declared.
func (t *Transcript) Validate() error {
	if t.Hypothesis == nil {
		return &MissingRecordError{Kind: "axiom"}
	}
	if t.Conjecture == nil {
		return &MissingRecordError{Kind: "conjecture"}
	}
	return nil
}
