package geom

import (
	"errors"
	"fmt"
)

const (
	// singularEps is how close to the south pole a direction may come before
	// Project refuses it.
	singularEps = 1e-9
)

// ErrProjectionSingularity is returned by Project for directions at (or
// numerically at) the south pole, which the projection sends to infinity.
var ErrProjectionSingularity = errors.New("direction is antipodal to the projection pole")

// Project maps the unit direction d onto the equatorial plane by projecting
// from the south pole. The upper hemisphere lands in the unit disk, with the
// north pole at the origin.
func Project(d Vec) (x, y float64, err error) {
	denom := 1 + d[2]
	if denom <= singularEps {
		return 0, 0, fmt.Errorf("projecting %v: %w", d, ErrProjectionSingularity)
	}
	return d[0] / denom, d[1] / denom, nil
}

// Unproject is the inverse of Project.
func Unproject(x, y float64) Vec {
	r2 := x*x + y*y
	k := 1 / (1 + r2)
	return Vec{2 * x * k, 2 * y * k, (1 - r2) * k}
}
