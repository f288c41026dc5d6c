package eqndb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/leangen/internal/term"
)

func TestParseEquation_Simple(t *testing.T) {
	eq, err := ParseEquation("x = y ◇ x")
	require.NoError(t, err)
	assert.Equal(t, "x", term.RenderPrefix(eq.LHS))
	assert.Equal(t, "op(y, x)", term.RenderPrefix(eq.RHS))
}

func TestParseEquation_RightAssociative(t *testing.T) {
	eq, err := ParseEquation("x ◇ y ◇ z = x")
	require.NoError(t, err)
	assert.Equal(t, "op(x, op(y, z))", term.RenderPrefix(eq.LHS))
}

func TestParseEquation_Parens(t *testing.T) {
	eq, err := ParseEquation("(x ◇ y) ◇ z = x ◇ (y ◇ z)")
	require.NoError(t, err)
	assert.Equal(t, "op(op(x, y), z)", term.RenderPrefix(eq.LHS))
	assert.Equal(t, "op(x, op(y, z))", term.RenderPrefix(eq.RHS))
}

func TestParseEquation_NoRHS(t *testing.T) {
	eq, err := ParseEquation("x ◇ y")
	require.NoError(t, err)
	assert.Nil(t, eq.RHS)
}

func TestParseEquation_Invalid(t *testing.T) {
	_, err := ParseEquation("x ◇ = y")
	assert.Error(t, err)
}

func TestParseEquation_PrefixRoundTrip(t *testing.T) {
	eq, err := ParseEquation("x ◇ (y ◇ z) = (x ◇ y) ◇ z")
	require.NoError(t, err)
	for _, side := range []*term.Term{eq.LHS, eq.RHS} {
		reparsed, err := term.ParseSide(term.RenderPrefix(side))
		require.NoError(t, err)
		assert.Equal(t, term.Render(side), term.Render(reparsed))
	}
}

func TestIndexFile_MultiLineRecord(t *testing.T) {
	idx := Index{}
	indexFile(idx, []string{
		"equation 1 := x = x",
		"equation 2 := x ◇ y =",
		"  y ◇ x",
		"equation 3 := x = x ◇ x",
	})
	assert.Equal(t, "x = x", idx[1])
	assert.Equal(t, "x ◇ y = y ◇ x", idx[2])
	assert.Equal(t, "x = x ◇ x", idx[3])
}

func TestIndexFile_StopsAtEquationKeyword(t *testing.T) {
	idx := Index{}
	indexFile(idx, []string{
		"equation 7 := x = y",
		"equation family footnote",
		"  not part of any record",
	})
	assert.Equal(t, Index{7: "x = y"}, idx)
}

func TestBuildIndex(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("Eqns1.lean", "import Mathlib\n\nequation 1 := x = x\nequation 2 := x = y ◇ x\n")
	write("Eqns2.lean", "equation 40 := x ◇ y = y ◇ x\n")
	write("Other.lean", "equation 99 := x = x\n")

	idx, err := BuildIndex(dir)
	require.NoError(t, err)
	assert.Len(t, idx, 3)
	assert.Equal(t, "x = y ◇ x", idx[2])
	assert.Equal(t, "x ◇ y = y ◇ x", idx[40])

	eq, ok, err := idx.Equation(40)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "op(x, y)", term.RenderPrefix(eq.LHS))

	_, ok, err = idx.Equation(99)
	require.NoError(t, err)
	assert.False(t, ok)
}
