// Package stats summarizes prover log directories. Each log line of
// interest reports a Vampire step count and, when minimization ran, a
// minimized count.
package stats

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var lineRe = regexp.MustCompile(`Vampire:\s+(\d+)\s+Minimized:\s+(N/A|\d+)`)

// DefaultThreshold selects the proofs worth a closer look.
const DefaultThreshold = 15

// Sample is one parsed log line. When minimization reported N/A the
// minimized count falls back to the Vampire count.
type Sample struct {
	Vampire   int
	Minimized int
}

// Summary aggregates a set of samples.
type Summary struct {
	Count        int
	AvgVampire   float64
	AvgMinimized float64
}

// Summarize averages the samples. An empty set summarizes to zeros.
func Summarize(samples []Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	var v, m int
	for _, s := range samples {
		v += s.Vampire
		m += s.Minimized
	}
	n := len(samples)
	return Summary{
		Count:        n,
		AvgVampire:   float64(v) / float64(n),
		AvgMinimized: float64(m) / float64(n),
	}
}

// ParseLine extracts a sample from one log line.
func ParseLine(line string) (Sample, bool) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Sample{}, false
	}
	vampire, _ := strconv.Atoi(m[1])
	minimized := vampire
	if m[2] != "N/A" {
		minimized, _ = strconv.Atoi(m[2])
	}
	return Sample{Vampire: vampire, Minimized: minimized}, true
}

func long(samples []Sample, threshold int) []Sample {
	var out []Sample
	for _, s := range samples {
		if s.Vampire >= threshold {
			out = append(out, s)
		}
	}
	return out
}

func parseLog(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var samples []Sample
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if s, ok := ParseLine(sc.Text()); ok {
			samples = append(samples, s)
		}
	}
	return samples, sc.Err()
}

func writeSection(w io.Writer, header string, samples []Sample, threshold int) {
	all := Summarize(samples)
	longOnly := Summarize(long(samples, threshold))

	fmt.Fprintf(w, "\n=== %s ===\n", header)
	fmt.Fprintf(w, "ALL:\n")
	fmt.Fprintf(w, "  Count: %d\n", all.Count)
	fmt.Fprintf(w, "  Avg Vampire:   %.2f\n", all.AvgVampire)
	fmt.Fprintf(w, "  Avg Minimized: %.2f\n", all.AvgMinimized)
	fmt.Fprintf(w, "VAMPIRE >= %d:\n", threshold)
	fmt.Fprintf(w, "  Count: %d\n", longOnly.Count)
	fmt.Fprintf(w, "  Avg Vampire:   %.2f\n", longOnly.AvgVampire)
	fmt.Fprintf(w, "  Avg Minimized: %.2f\n", longOnly.AvgMinimized)
}

// Report walks the .log files under logDir in name order and writes a
// per-file section plus an overall section to w. A threshold of zero
// falls back to DefaultThreshold.
func Report(logDir string, threshold int, w io.Writer) error {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".log") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var overall []Sample
	for _, name := range names {
		samples, err := parseLog(filepath.Join(logDir, name))
		if err != nil {
			return err
		}
		overall = append(overall, samples...)
		writeSection(w, name, samples, threshold)
	}

	writeSection(w, "OVERALL SUMMARY (ALL FILES)", overall, threshold)
	return nil
}
