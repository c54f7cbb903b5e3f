// Package mat contains a small dense LU solver. It is sized for the 3x3
// systems that show up in the colour key and is not meant to compete with a
// real linear algebra package.
package mat

import (
	"math"
)

type Matrix struct {
	Vals          []float64
	Width, Height int
}

type LUFactors struct {
	lu    Matrix
	pivot []int
	d     float64
}

// NewMatrix wraps vals, stored in row-major order, as a width x height matrix.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// Columns builds a square matrix whose columns are the given vectors.
func Columns(cols ...[3]float64) *Matrix {
	n := len(cols)
	if n != 3 {
		panic("Columns only supports 3x3 matrices.")
	}
	vals := make([]float64, n*n)
	for j, col := range cols {
		for i := 0; i < n; i++ {
			vals[i*n+j] = col[i]
		}
	}
	return NewMatrix(vals, n, n)
}

func NewLUFactors(n int) *LUFactors {
	luf := new(LUFactors)

	luf.lu.Vals, luf.lu.Width, luf.lu.Height = make([]float64, n*n), n, n
	luf.pivot = make([]int, n)
	luf.d = 1

	return luf
}

func (m *Matrix) LU() *LUFactors {
	if m.Width != m.Height {
		panic("m is non-square.")
	}

	lu := NewLUFactors(m.Width)
	m.LUFactorsAt(lu)
	return lu
}

// LUFactorsAt decomposes m into luf using partial pivoting with implicit
// row scaling. A singular m does not panic: its zero pivots are replaced by a
// tiny value, so Determinant reports something close to zero.
func (m *Matrix) LUFactorsAt(luf *LUFactors) {
	if luf.lu.Width != m.Width || luf.lu.Height != m.Height {
		panic("luf has different dimenstions than m.")
	}

	n := m.Width
	scale := make([]float64, n)
	lu := luf.lu.Vals
	luf.d = 1
	copy(lu, m.Vals)

	for i := 0; i < n; i++ {
		iOffset := i * n

		max := 0.0
		for j := 0; j < n; j++ {
			tmp := math.Abs(lu[iOffset+j])
			if tmp > max {
				max = tmp
			}
		}
		if max == 0 {
			scale[i] = 1
		} else {
			scale[i] = 1 / max
		}
	}

	for k := 0; k < n; k++ {
		max := 0.0
		maxi := k
		for i := k; i < n; i++ {
			tmp := scale[i] * math.Abs(lu[i*n+k])
			if tmp > max {
				max = tmp
				maxi = i
			}
		}

		if k != maxi {
			kOffset, maxiOffset := n*k, n*maxi
			for j := 0; j < n; j++ {
				idx1, idx2 := kOffset+j, maxiOffset+j
				lu[idx1], lu[idx2] = lu[idx2], lu[idx1]
			}
			luf.d = -luf.d
			scale[maxi] = scale[k]
		}
		luf.pivot[k] = maxi

		if lu[n*k+k] == 0 {
			lu[n*k+k] = 1e-40
		}

		kOffset := k * n
		for i := k + 1; i < n; i++ {
			iOffset := i * n
			lu[iOffset+k] /= lu[kOffset+k]
			tmp := lu[iOffset+k]
			for j := k + 1; j < n; j++ {
				lu[iOffset+j] -= tmp * lu[kOffset+j]
			}
		}
	}
}

// SolveVector solves M * xs = bs for xs.
//
// bs and xs may point to the same physical memory.
func (luf *LUFactors) SolveVector(bs, xs []float64) {
	n := luf.lu.Width
	if n != len(bs) {
		panic("len(b) != luf.Width")
	} else if n != len(xs) {
		panic("len(x) != luf.Width")
	}

	// A x = b -> (L U) x = b -> L (U x) = b -> L y = b
	copy(xs, bs)
	lu := luf.lu.Vals

	// Solve L * y = b for y.
	forwardSubst(n, luf.pivot, lu, xs)
	// Solve U * x = y for x.
	backSubst(n, lu, xs)
}

// Solves L * y = b for y in place, undoing the row swaps as it goes.
// y_i = b_i - sum_j=0^i-1 (alpha_ij y_j)
func forwardSubst(n int, pivot []int, lu, ys []float64) {
	for i := 0; i < n; i++ {
		piv := pivot[i]
		ys[i], ys[piv] = ys[piv], ys[i]
	}

	for i := 0; i < n; i++ {
		sum := ys[i]
		iOffset := i * n
		for j := 0; j < i; j++ {
			sum -= lu[iOffset+j] * ys[j]
		}
		ys[i] = sum
	}
}

// Solves U * x = y for x in place.
// x_i = (y_i - sum_j=i+1^N-1 (beta_ij x_j)) / beta_ii
func backSubst(n int, lu, xs []float64) {
	for i := n - 1; i >= 0; i-- {
		sum := xs[i]
		iOffset := n * i
		for j := i + 1; j < n; j++ {
			sum -= lu[iOffset+j] * xs[j]
		}
		xs[i] = sum / lu[iOffset+i]
	}
}

// Invert writes the inverse of the factored matrix to out.
func (luf *LUFactors) Invert(out *Matrix) {
	n := luf.lu.Width
	if out.Width != out.Height {
		panic("out matrix is non-square.")
	} else if n != out.Width {
		panic("out matrix different size than m matrix.")
	}

	col := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := range col {
			col[i] = 0
		}
		col[j] = 1
		luf.SolveVector(col, col)
		for i := 0; i < n; i++ {
			out.Vals[i*n+j] = col[i]
		}
	}
}

func (luf *LUFactors) Determinant() float64 {
	d := luf.d
	lu := luf.lu.Vals
	n := luf.lu.Width

	for i := 0; i < n; i++ {
		d *= lu[i*n+i]
	}
	return d
}

// MulVector computes out = m * xs. out must not alias xs.
func (m *Matrix) MulVector(xs, out []float64) {
	if len(xs) != m.Width {
		panic("len(xs) != m.Width")
	} else if len(out) != m.Height {
		panic("len(out) != m.Height")
	}

	for i := 0; i < m.Height; i++ {
		sum := 0.0
		iOffset := i * m.Width
		for j := 0; j < m.Width; j++ {
			sum += m.Vals[iOffset+j] * xs[j]
		}
		out[i] = sum
	}
}
