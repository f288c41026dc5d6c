package tptp

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/leangen/internal/eqndb"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRenderEquation_AppearanceOrder(t *testing.T) {
	eq, err := eqndb.ParseEquation("y ◇ x = x ◇ y")
	require.NoError(t, err)
	rendered, vars, err := RenderEquation(eq)
	require.NoError(t, err)
	assert.Equal(t, "(op(X0,X1) = op(X1,X0))", rendered)
	assert.Equal(t, []string{"X0", "X1"}, vars)
}

func TestRenderEquation_SharedMapAcrossSides(t *testing.T) {
	eq, err := eqndb.ParseEquation("x = y ◇ z")
	require.NoError(t, err)
	rendered, vars, err := RenderEquation(eq)
	require.NoError(t, err)
	assert.Equal(t, "(X0 = op(X1,X2))", rendered)
	assert.Equal(t, []string{"X0", "X1", "X2"}, vars)
}

func TestRenderEquation_NoRHS(t *testing.T) {
	eq, err := eqndb.ParseEquation("x ◇ y")
	require.NoError(t, err)
	_, _, err = RenderEquation(eq)
	assert.Error(t, err)
}

func TestProblem_Golden(t *testing.T) {
	axiom, err := eqndb.ParseEquation("x = x ◇ (y ◇ x)")
	require.NoError(t, err)
	conjecture, err := eqndb.ParseEquation("x = x ◇ x")
	require.NoError(t, err)

	text, err := Problem(axiom, conjecture)
	require.NoError(t, err)

	want := "fof(a1, axiom,\n" +
		"    ! [X0, X1] :\n" +
		"        (X0 = op(X0,op(X1,X0)))\n" +
		").\n" +
		"\n" +
		"fof(conjecture0, conjecture,\n" +
		"    ! [X0, X1] :\n" +
		"        (X0 = op(X0,X0))\n" +
		").\n"
	assert.Equal(t, want, text)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	eqDir := filepath.Join(dir, "Equations")
	require.NoError(t, os.MkdirAll(eqDir, 0o755))
	eqns := "equation 1 := x = x\n" +
		"equation 4512 := x ◇ (y ◇ z) = (x ◇ y) ◇ z\n" +
		"equation 2 := x = y\n"
	require.NoError(t, os.WriteFile(filepath.Join(eqDir, "Eqns1.lean"), []byte(eqns), 0o644))

	proofs := "theorem Equation4512_implies_Equation2 (G : Type*) [Magma G] : sorry := sorry\n" +
		"theorem Equation4512_implies_Equation99 (G : Type*) [Magma G] : sorry := sorry\n"
	proofsFile := filepath.Join(dir, "Proofs11.lean")
	require.NoError(t, os.WriteFile(proofsFile, []byte(proofs), 0o644))

	outRoot := filepath.Join(dir, "benchmarks")
	res, err := Generate(proofsFile, eqDir, outRoot, discard())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Indexed)
	assert.Equal(t, 2, res.Found)
	assert.Equal(t, 1, res.Written)
	assert.Equal(t, 1, res.Skipped)

	out := filepath.Join(outRoot, "input11", "Equation4512_implies_Equation2.p")
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "(op(X0,op(X1,X2)) = op(op(X0,X1),X2))")
	assert.Contains(t, string(data), "! [X0, X1, X2] :\n        (X0 = X1)")
}
