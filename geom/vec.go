/*package geom contains the rotation algebra and projections used to place
crystal directions on an inverse pole figure.

Rotations are unit quaternions. Directions are unit vectors, and the
stereographic projection maps the upper hemisphere onto the unit disk.
*/
package geom

import (
	"math"
)

const (
	// UnitEps is the tolerance used when checking that a vector or
	// quaternion has unit length.
	UnitEps = 1e-9
)

// Vec is a three dimensional vector.
type Vec [3]float64

var (
	XAxis = Vec{1, 0, 0}
	YAxis = Vec{0, 1, 0}
	ZAxis = Vec{0, 0, 1}
)

func (v Vec) Add(u Vec) Vec {
	return Vec{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

func (v Vec) Sub(u Vec) Vec {
	return Vec{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

func (v Vec) Scale(k float64) Vec {
	return Vec{v[0] * k, v[1] * k, v[2] * k}
}

func (v Vec) Neg() Vec {
	return Vec{-v[0], -v[1], -v[2]}
}

func (v Vec) Dot(u Vec) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

func (v Vec) Cross(u Vec) Vec {
	return Vec{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v scaled to unit length. The zero vector is returned as-is.
func (v Vec) Unit() Vec {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// IsUnit reports whether v has unit length to within UnitEps.
func (v Vec) IsUnit() bool {
	return math.Abs(v.Norm()-1) <= UnitEps
}

// AlmostEq returns true if every component of v is within eps of u.
func (v Vec) AlmostEq(u Vec, eps float64) bool {
	for i := 0; i < 3; i++ {
		diff := v[i] - u[i]
		if diff > eps || diff < -eps {
			return false
		}
	}
	return true
}
