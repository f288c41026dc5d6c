package tptp

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"example.com/leangen/internal/eqndb"
	"example.com/leangen/internal/term"
)

var (
	theoremRe    = regexp.MustCompile(`theorem\s+(Equation\d+)_implies_(Equation\d+)`)
	fileNumberRe = regexp.MustCompile(`(\d+)`)
)

// Result counts the outcome of one generation run.
type Result struct {
	Indexed int
	Found   int
	Written int
	Skipped int
}

// Generate scans proofsFile for implication theorems and writes one TPTP
// problem per theorem into outRoot/input<N>, where N is the first number
// in the proofs file name. Theorems whose equations are missing from the
// database are skipped, not fatal.
func Generate(proofsFile, equationsDir, outRoot string, log *slog.Logger) (Result, error) {
	var res Result

	idx, err := eqndb.BuildIndex(equationsDir)
	if err != nil {
		return res, fmt.Errorf("indexing equations: %w", err)
	}
	res.Indexed = len(idx)
	log.Info("indexed equations", "count", res.Indexed, "dir", equationsDir)

	data, err := os.ReadFile(proofsFile)
	if err != nil {
		return res, err
	}
	theorems := theoremRe.FindAllStringSubmatch(string(data), -1)
	res.Found = len(theorems)
	log.Info("found theorems", "count", res.Found, "file", proofsFile)

	stem := strings.TrimSuffix(filepath.Base(proofsFile), filepath.Ext(proofsFile))
	number := "0"
	if m := fileNumberRe.FindString(stem); m != "" {
		number = m
	}
	outDir := filepath.Join(outRoot, "input"+number)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return res, err
	}

	for _, th := range theorems {
		axName, conjName := th[1], th[2]
		name := axName + "_implies_" + conjName

		axiom, okA, err := lookup(idx, axName)
		if err != nil {
			return res, fmt.Errorf("%s: %w", name, err)
		}
		conjecture, okC, err := lookup(idx, conjName)
		if err != nil {
			return res, fmt.Errorf("%s: %w", name, err)
		}
		if !okA || !okC {
			log.Warn("skipping theorem, missing equation", "theorem", name)
			res.Skipped++
			continue
		}

		text, err := Problem(axiom, conjecture)
		if err != nil {
			return res, fmt.Errorf("%s: %w", name, err)
		}
		path := filepath.Join(outDir, name+".p")
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return res, err
		}
		res.Written++
	}
	return res, nil
}

func lookup(idx eqndb.Index, name string) (eq term.Equation, ok bool, err error) {
	n, convErr := strconv.Atoi(strings.TrimPrefix(name, "Equation"))
	if convErr != nil {
		return eq, false, convErr
	}
	return idx.Equation(n)
}
