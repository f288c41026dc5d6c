package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/leangen/internal/config"
)

const sampleTrace = `fof(a1, axiom,
    ! [X0, X1] :
        (op(X0, op(X1, X0)) = X0)
).

fof(conjecture0, conjecture,
    ! [X0, X1] :
        (op(X0, X1) = op(X1, X0))
).

Axiom 2 (a1): op(X, op(Y, X)) = X.
Axiom 5 (single_lemma_8): op(A, A) = A.

The conjecture is true! Here is a proof of it.

% single_lemma_3: op(A, B) = op(B, A) | deps: a1->rw

Goal 1 (single_lemma_3): op(A, B) = op(B, A)
proof:
op(A, B)
= { by axiom (a1) }
op(B, A)

Goal 2 (conjecture0): op(A, B) = op(B, A)
proof:
op(A, B)
= { by applying (single_lemma_3) }
op(B, A)
RESULT: proved
`

func TestTranslateRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "Equation1_implies_Equation2.txt")
	require.NoError(t, os.WriteFile(input, []byte(sampleTrace), 0o644))

	outDir := filepath.Join(dir, "out")
	cmd := &TranslateCmd{Input: input, Output: outDir}
	require.NoError(t, cmd.Run(config.Default()))

	data, err := os.ReadFile(filepath.Join(outDir, "Equation1_implies_Equation2.lean"))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "abbrev Equation_a1 (G : Type _) [Magma G] :=")
	assert.Contains(t, out, "theorem Equation_a1_implies_Equation_conjecture0")
	assert.Contains(t, out, "have lemma_1")
	assert.Contains(t, out, "duper [op_law]")
	assert.Contains(t, out, "calc")
}

func TestTranslateRun_InvalidTrace(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.txt")
	require.NoError(t, os.WriteFile(input, []byte("no usable content\n"), 0o644))

	cmd := &TranslateCmd{Input: input, Output: filepath.Join(dir, "out")}
	err := cmd.Run(config.Default())
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "out", "broken.lean"))
}

func TestGenerateRun(t *testing.T) {
	dir := t.TempDir()
	eqDir := filepath.Join(dir, "Equations")
	require.NoError(t, os.MkdirAll(eqDir, 0o755))
	eqns := "equation 1 := x = x ◇ (y ◇ x)\nequation 2 := x ◇ y = y ◇ x\n"
	require.NoError(t, os.WriteFile(filepath.Join(eqDir, "Eqns1.lean"), []byte(eqns), 0o644))

	proofs := filepath.Join(dir, "Proofs3.lean")
	body := "theorem Equation1_implies_Equation2 (G : Type*) [Magma G] : sorry := sorry\n"
	require.NoError(t, os.WriteFile(proofs, []byte(body), 0o644))

	outRoot := filepath.Join(dir, "benchmarks")
	cmd := &GenerateCmd{Proofs: proofs, Equations: eqDir, OutRoot: outRoot}
	require.NoError(t, cmd.Run(config.Default()))
	assert.FileExists(t, filepath.Join(outRoot, "input3", "Equation1_implies_Equation2.p"))
}
