package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gonum "gonum.org/v1/gonum/mat"
)

func TestLUInvertMatchesGonum(t *testing.T) {
	vals := []float64{
		1, 3, 5,
		2, 4, 7,
		1, 1, 0,
	}
	M := NewMatrix(append([]float64{}, vals...), 3, 3)
	luf := M.LU()
	inv := NewMatrix(make([]float64, 9), 3, 3)
	luf.Invert(inv)

	var goInv gonum.Dense
	require.NoError(t, goInv.Inverse(gonum.NewDense(3, 3, vals)))

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, goInv.At(i, j), inv.Vals[i*3+j], 1e-12,
				"inverse element (%d, %d)", i, j)
		}
	}

	assert.InDelta(t, gonum.Det(gonum.NewDense(3, 3, vals)),
		luf.Determinant(), 1e-12)
}

func TestSolveVector(t *testing.T) {
	table := []struct {
		vals []float64
		bs   []float64
	}{
		{[]float64{2, 0, 0, 0, 3, 0, 0, 0, 4}, []float64{2, 3, 4}},
		{[]float64{0, 1, 0, 1, 0, 0, 0, 0, 1}, []float64{5, 6, 7}},
		{[]float64{1, 3, 5, 2, 4, 7, 1, 1, 0}, []float64{1, -2, 3}},
	}

	for i, test := range table {
		M := NewMatrix(test.vals, 3, 3)
		xs := make([]float64, 3)
		M.LU().SolveVector(test.bs, xs)

		out := make([]float64, 3)
		M.MulVector(xs, out)
		for j := range out {
			assert.InDelta(t, test.bs[j], out[j], 1e-12, "%d) row %d", i+1, j)
		}
	}
}

func TestSolveVectorAliased(t *testing.T) {
	M := NewMatrix([]float64{4, 1, 0, 1, 4, 1, 0, 1, 4}, 3, 3)
	xs := []float64{5, 6, 5}
	M.LU().SolveVector(xs, xs)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, xs, 1e-12)
}

func TestColumns(t *testing.T) {
	M := Columns([3]float64{1, 2, 3}, [3]float64{4, 5, 6}, [3]float64{7, 8, 9})
	assert.Equal(t, []float64{1, 4, 7, 2, 5, 8, 3, 6, 9}, M.Vals)
}

func TestSingularDeterminant(t *testing.T) {
	M := NewMatrix([]float64{1, 2, 3, 2, 4, 6, 0, 0, 1}, 3, 3)
	assert.InDelta(t, 0, M.LU().Determinant(), 1e-12)
}
