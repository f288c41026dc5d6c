package trace

import (
	"regexp"
	"sort"
)

var (
	// parenTokenRe matches direct dependency references as they appear in
	// proof-line justifications, e.g. "(single_lemma_3)".
	parenTokenRe = regexp.MustCompile(`\((single_lemma_\d+|history_lemma_\d+|a1)\)`)

	// bareTokenRe matches the same tokens without the parentheses; the
	// first match on a justification line is the step's dependency.
	bareTokenRe = regexp.MustCompile(`single_lemma_\d+|history_lemma_\d+|a1`)

	// byLemmaRe matches free-text references to numbered proof goals.
	byLemmaRe = regexp.MustCompile(`(?i)by lemma (\d+)`)

	lemmaNumRe = regexp.MustCompile(`(?i)lemma\s+(\d+)`)
)

// DepsFromProof scans a proof block for dependency tokens and returns the
// deduplicated references in sorted order. The hypothesis token a1 is
// reported under its fixed name; "by lemma N" references become Lemma_N.
func DepsFromProof(lines []string) []string {
	set := map[string]bool{}
	for _, line := range lines {
		for _, m := range parenTokenRe.FindAllStringSubmatch(line, -1) {
			tok := m[1]
			if tok == "a1" {
				tok = HypothesisName
			}
			set[tok] = true
		}
		for _, m := range byLemmaRe.FindAllStringSubmatch(line, -1) {
			set["Lemma_"+m[1]] = true
		}
	}
	deps := make([]string, 0, len(set))
	for d := range set {
		deps = append(deps, d)
	}
	sort.Strings(deps)
	return deps
}

// FirstToken returns the first direct dependency token on a justification
// line, or "" when the line has none.
func FirstToken(line string) string {
	return bareTokenRe.FindString(line)
}

// LemmaNumber returns the N of a free-text "lemma N" reference, or "".
func LemmaNumber(line string) string {
	m := lemmaNumRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}
