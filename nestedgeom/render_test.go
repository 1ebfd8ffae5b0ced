package nestedgeom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tehhowch/pyne/nestedgeom"
)

// testRegistry resolves every name used in this file.
func testRegistry() nestedgeom.MapRegistry {
	return nestedgeom.MapRegistry{
		Surfaces:  map[string]int{"A": 10, "B": 20, "C": 30, "front": 11, "back": 12},
		Cells:     map[string]int{"A": 1, "C": 3, "D": 4, "shield": 7},
		Universes: map[string]int{"B": 2},
	}
}

// TestComment_Leaves checks the standalone comment text of every leaf
// kind, including the lattice connective on nested cells.
func TestComment_Leaves(t *testing.T) {
	cases := []struct {
		name string
		unit *nestedgeom.Unit
		want string
	}{
		{"Surface", nestedgeom.Surf("A"), " surf 'A'"},
		{"Cell", nestedgeom.Cell("A"), " cell 'A'"},
		{"NestedCellNoLattice", nestedgeom.UCell("D", nil), " cell 'D'"},
		{
			"NestedCellWithLattice",
			nestedgeom.UCell("D", nestedgeom.LinearIndex(4)),
			" cell 'D'-lat linear idx 4",
		},
		{"Universe", nestedgeom.Univ("B"), " univ 'B'"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.unit.Comment())
		})
	}
}

// TestComment_ChainParenthesization checks the boundary-only rule: the
// inner end of a multi-node chain opens " (", the outer end closes ")",
// and a standalone unit gets neither.
func TestComment_ChainParenthesization(t *testing.T) {
	assert.Equal(t, " cell 'A'", nestedgeom.Cell("A").Comment(),
		"standalone unit takes no parentheses")

	inner, err := nestedgeom.Surf("A").Of(nestedgeom.Univ("B"))
	require.NoError(t, err)
	assert.Equal(t, " ( surf 'A' in univ 'B')", inner.Comment())
}

// TestComment_ThreeLevelChain checks "A in B in C" shape with parentheses
// only at the two chain ends.
func TestComment_ThreeLevelChain(t *testing.T) {
	a := nestedgeom.Cell("A")
	b := nestedgeom.Univ("B")
	c := nestedgeom.Cell("C")
	_, err := a.Of(b)
	require.NoError(t, err)
	_, err = b.Of(c)
	require.NoError(t, err)

	assert.Equal(t, " ( cell 'A' in univ 'B' in cell 'C')", a.Comment())
}

// TestComment_Combinators checks the union/vector comment framing and the
// comma join between member texts.
func TestComment_Combinators(t *testing.T) {
	u := nestedgeom.NewUnion(nestedgeom.Surf("A"), nestedgeom.Surf("B"), nestedgeom.Surf("C"))
	assert.Equal(t, " union of ( surf 'A', surf 'B', surf 'C')", u.Comment())

	v := nestedgeom.NewVector(nestedgeom.Surf("A"), nestedgeom.Surf("B"), nestedgeom.Surf("C"))
	assert.Equal(t, " over ( surf 'A', surf 'B', surf 'C')", v.Comment(),
		"a vector of the same members must render 'over', not 'union of'")
}

// TestMCNP_ThreeLevelChain checks the round-trip scenario: cell A inside
// universe B inside cell C, with A=1, B=2, C=3.
func TestMCNP_ThreeLevelChain(t *testing.T) {
	a := nestedgeom.Cell("A")
	b := nestedgeom.Univ("B")
	c := nestedgeom.Cell("C")
	_, err := a.Of(b)
	require.NoError(t, err)
	_, err = b.Of(c)
	require.NoError(t, err)

	got, err := a.MCNP(testRegistry())
	require.NoError(t, err)
	assert.Equal(t, " ( 1 < U=2 < 3)", got)
}

// TestMCNP_Leaves checks the standalone wire text of every leaf kind.
func TestMCNP_Leaves(t *testing.T) {
	cases := []struct {
		name string
		unit *nestedgeom.Unit
		want string
	}{
		{"Surface", nestedgeom.Surf("A"), " 10"},
		{"Cell", nestedgeom.Cell("A"), " 1"},
		{"Universe", nestedgeom.Univ("B"), " U=2"},
		{
			"NestedCellAxisRange",
			nestedgeom.UCell("D", nestedgeom.AxisRange{X: [2]int{0, 1}, Z: [2]int{0, 2}}),
			" 4[0:1 0:0 0:2]",
		},
		{
			"NestedCellCoords",
			nestedgeom.UCell("D", nestedgeom.Coords([3]int{1, 2, 3}, [3]int{-1, 3, -2})),
			" 4[ 1 2 3, -1 3 -2]",
		},
	}
	reg := testRegistry()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.unit.MCNP(reg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestMCNP_UnionParenthesizes checks union wire text: one parenthesized
// run of member tokens, no separators beyond each token's leading space.
func TestMCNP_UnionParenthesizes(t *testing.T) {
	u := nestedgeom.NewUnion(nestedgeom.Surf("A"), nestedgeom.Surf("B"), nestedgeom.Surf("C"))
	got, err := u.MCNP(testRegistry())
	require.NoError(t, err)
	assert.Equal(t, " ( 10 20 30)", got)
}

// TestMCNP_VectorMultipleBins checks the multiple-bin expansion: a vector
// concatenates its members with no wrapping and no separator, so nesting
// vec(front, back) inside a cell yields two tally bindings in one run.
func TestMCNP_VectorMultipleBins(t *testing.T) {
	v := nestedgeom.NewVector(nestedgeom.Surf("front"), nestedgeom.Surf("back"))
	got, err := v.MCNP(testRegistry())
	require.NoError(t, err)
	assert.Equal(t, " 11 12", got, "standalone vector is a bare token run")

	inner, err := v.Of(nestedgeom.UCell("shield", nil))
	require.NoError(t, err)
	got, err = inner.MCNP(testRegistry())
	require.NoError(t, err)
	assert.Equal(t, " ( 11 12 < 7)", got)
}

// TestMCNP_NameNotFound checks that an unknown name aborts rendering with
// ErrNameNotFound and no partial output, wherever it sits in the chain.
func TestMCNP_NameNotFound(t *testing.T) {
	reg := testRegistry()

	got, err := nestedgeom.Surf("missing").MCNP(reg)
	assert.ErrorIs(t, err, nestedgeom.ErrNameNotFound)
	assert.Empty(t, got, "a failed rendering must not return a partial string")

	inner, err := nestedgeom.Cell("A").Of(nestedgeom.Univ("missing"))
	require.NoError(t, err)
	got, err = inner.MCNP(reg)
	assert.ErrorIs(t, err, nestedgeom.ErrNameNotFound,
		"a lookup failure in an outer level must propagate")
	assert.Empty(t, got)
}

// TestMCNP_NilRegistry checks rendering without a registry fails fast.
func TestMCNP_NilRegistry(t *testing.T) {
	_, err := nestedgeom.Cell("A").MCNP(nil)
	assert.ErrorIs(t, err, nestedgeom.ErrNilRegistry)
}

// TestRender_Idempotent checks that repeated rendering of an unmodified
// chain returns identical strings.
func TestRender_Idempotent(t *testing.T) {
	v := nestedgeom.NewVector(nestedgeom.Surf("front"), nestedgeom.Surf("back"))
	inner, err := v.Of(nestedgeom.UCell("shield", nestedgeom.LinearIndex(4)))
	require.NoError(t, err)

	first := inner.Comment()
	assert.Equal(t, first, inner.Comment(), "Comment must be idempotent")

	reg := testRegistry()
	w1, err := inner.MCNP(reg)
	require.NoError(t, err)
	w2, err := inner.MCNP(reg)
	require.NoError(t, err)
	assert.Equal(t, w1, w2, "MCNP must be idempotent")
}

// TestRender_FromMiddleOfChain checks rendering is valid from any node:
// starting at an interior node drops the inner levels and the open paren,
// matching the boundary-only rule.
func TestRender_FromMiddleOfChain(t *testing.T) {
	a := nestedgeom.Cell("A")
	b := nestedgeom.Univ("B")
	c := nestedgeom.Cell("C")
	_, err := a.Of(b)
	require.NoError(t, err)
	_, err = b.Of(c)
	require.NoError(t, err)

	assert.Equal(t, " univ 'B' in cell 'C')", b.Comment())
}
