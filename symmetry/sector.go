package symmetry

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/ipfkey/geom"
	"github.com/phil-mansfield/ipfkey/mat"
)

const (
	// SectorEps is the slack allowed when testing sector membership, so
	// directions on a boundary are not lost to rounding.
	SectorEps = 1e-6

	// weightEps is the size below which a barycentric weight is treated as
	// exactly zero.
	weightEps = 1e-12

	minCornerDet = 1e-9
)

// Sector is a region of the unit sphere which holds one representative of
// every symmetry-equivalent set of directions. Membership is the
// intersection of the half-spaces n . v >= 0 over Normals.
//
// Corners are the red, green and blue corners of the colour key triangle,
// in that order. For groups whose sector has rotational seams the key
// triangle belongs to a supergroup and is smaller than the sector.
type Sector struct {
	Normals []geom.Vec
	Corners [3]geom.Vec

	inv *mat.Matrix
}

// NewSector normalizes the given normals and corners and precomputes the
// inverse of the corner matrix. It fails if the corners are coplanar.
func NewSector(normals []geom.Vec, corners [3]geom.Vec) (*Sector, error) {
	s := &Sector{Normals: make([]geom.Vec, len(normals))}
	for i := range normals {
		s.Normals[i] = normals[i].Unit()
	}
	for i := range corners {
		s.Corners[i] = corners[i].Unit()
	}

	m := mat.Columns(s.Corners[0], s.Corners[1], s.Corners[2])
	luf := m.LU()
	if det := luf.Determinant(); math.Abs(det) < minCornerDet {
		return nil, fmt.Errorf(
			"Sector corners %v are coplanar (determinant %g).", s.Corners, det,
		)
	}
	s.inv = mat.NewMatrix(make([]float64, 9), 3, 3)
	luf.Invert(s.inv)

	return s, nil
}

// Contains returns true if v satisfies every half-space constraint to within
// SectorEps.
func (s *Sector) Contains(v geom.Vec) bool {
	for _, n := range s.Normals {
		if n.Dot(v) < -SectorEps {
			return false
		}
	}
	return true
}

// Weights returns the barycentric weights of v with respect to Corners: the
// coefficients of v written as a combination of the corner vectors,
// clamped to be non-negative and rescaled to sum to one. Directions inside
// the key triangle lie in the cone of its corners, so clamping only absorbs
// rounding.
func (s *Sector) Weights(v geom.Vec) [3]float64 {
	var w [3]float64
	s.inv.MulVector(v[:], w[:])

	sum := 0.0
	for i := range w {
		if w[i] < weightEps {
			w[i] = 0
		}
		sum += w[i]
	}

	if sum == 0 {
		return [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}
