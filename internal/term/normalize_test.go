package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVariables_SortedAssignment(t *testing.T) {
	// Assignment follows sorted lowercase order, not first appearance.
	renamed, vars := NormalizeVariables("op(Z, op(A, M))")
	assert.Equal(t, "op(x2, op(x0, x1))", renamed)
	assert.Equal(t, []string{"x0", "x1", "x2"}, vars)
}

func TestNormalizeVariables_OpKeywordExcluded(t *testing.T) {
	_, vars := NormalizeVariables("op(X, Y)")
	assert.Equal(t, []string{"x0", "x1"}, vars)
}

func TestNormalizeVariables_CaseInsensitive(t *testing.T) {
	a, varsA := NormalizeVariables("op(X, op(y, x))")
	b, varsB := NormalizeVariables("op(x, op(Y, X))")
	assert.Equal(t, a, b)
	assert.Equal(t, varsA, varsB)
	assert.Equal(t, "op(x0, op(x1, x0))", a)
}

func TestNormalizeVariables_AppearanceOrderIrrelevant(t *testing.T) {
	// Permuting first-occurrence order of the same variable set yields the
	// identical canonical mapping.
	a, _ := NormalizeVariables("op(B, A) = op(A, B)")
	b, _ := NormalizeVariables("op(A, B) = op(B, A)")
	assert.Equal(t, "op(x1, x0) = op(x0, x1)", a)
	assert.Equal(t, "op(x0, x1) = op(x1, x0)", b)
}

func TestRenaming_LocalToExpression(t *testing.T) {
	r1 := Renaming("op(Q, R)")
	r2 := Renaming("op(R, S)")
	assert.Equal(t, "x0", r1["q"])
	assert.Equal(t, "x0", r2["r"])
	assert.Equal(t, "x1", r1["r"])
}

func TestApplyRenaming_UnknownIdentifierUntouched(t *testing.T) {
	out := ApplyRenaming("op(X, other)", map[string]string{"x": "x0"})
	assert.Equal(t, "op(x0, other)", out)
}

func TestVariables(t *testing.T) {
	assert.Equal(t, []string{"X", "Y"}, Variables("op(X, op(Y, X))"))
}

func TestStripForall(t *testing.T) {
	got := StripForall("! [X0, X1] : (op(X0,X1) = op(X1,X0))")
	assert.Equal(t, "(op(X0,X1) = op(X1,X0))", got)

	require.Equal(t, "op(A,B)", StripForall("  op(A,B)  "))
}
