package geom

import (
	"math"

	"github.com/phil-mansfield/ipfkey/mat"
)

// Quat is a rotation quaternion, W + Xi + Yj + Zk. Every Quat handed out by
// this package has unit norm, and q and -q describe the same rotation.
type Quat struct {
	W, X, Y, Z float64
}

// Identity is the rotation which does nothing.
var Identity = Quat{W: 1}

// Compose returns the Hamilton product q1 * q2: the rotation which applies q2
// first and q1 second. The result is renormalized so that long chains of
// compositions do not drift off the unit sphere.
func Compose(q1, q2 Quat) Quat {
	q := Quat{
		W: q1.W*q2.W - q1.X*q2.X - q1.Y*q2.Y - q1.Z*q2.Z,
		X: q1.W*q2.X + q1.X*q2.W + q1.Y*q2.Z - q1.Z*q2.Y,
		Y: q1.W*q2.Y - q1.X*q2.Z + q1.Y*q2.W + q1.Z*q2.X,
		Z: q1.W*q2.Z + q1.X*q2.Y - q1.Y*q2.X + q1.Z*q2.W,
	}
	return q.Normalize()
}

// Inverse returns the conjugate of q, which is its inverse for unit q.
func (q Quat) Inverse() Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

func (q Quat) Neg() Quat {
	return Quat{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

func (q Quat) Dot(o Quat) float64 {
	return q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z
}

func (q Quat) Norm() float64 {
	return math.Sqrt(q.Dot(q))
}

func (q Quat) IsUnit() bool {
	return math.Abs(q.Norm()-1) <= UnitEps
}

// Normalize returns q scaled to unit norm.
func (q Quat) Normalize() Quat {
	n := q.Norm()
	if n == 1 || n == 0 {
		return q
	}
	return Quat{W: q.W / n, X: q.X / n, Y: q.Y / n, Z: q.Z / n}
}

// Canonical returns whichever of q and -q has a positive leading component,
// checking W, X, Y and Z in that order.
func (q Quat) Canonical() Quat {
	for _, c := range [4]float64{q.W, q.X, q.Y, q.Z} {
		if c > 0 {
			return q
		} else if c < 0 {
			return q.Neg()
		}
	}
	return q
}

// Equivalent returns true if q and o describe the same rotation to within
// eps, treating q and -q as equal.
func (q Quat) Equivalent(o Quat, eps float64) bool {
	return 1-math.Abs(q.Dot(o)) <= eps
}

// Apply rotates v by q using the expansion of the sandwich product q v q*:
// v + 2w (u x v) + 2 u x (u x v).
func (q Quat) Apply(v Vec) Vec {
	u := Vec{q.X, q.Y, q.Z}
	t := u.Cross(v)
	return v.Add(t.Scale(2 * q.W)).Add(u.Cross(t).Scale(2))
}

// AxisAngle returns the rotation by angle radians about axis. axis does not
// need to be normalized.
func AxisAngle(axis Vec, angle float64) Quat {
	a := axis.Unit()
	s, c := math.Sincos(angle / 2)
	return Quat{W: c, X: a[0] * s, Y: a[1] * s, Z: a[2] * s}
}

func elementalX(angle float64) Quat {
	s, c := math.Sincos(angle / 2)
	return Quat{W: c, X: s}
}

func elementalZ(angle float64) Quat {
	s, c := math.Sincos(angle / 2)
	return Quat{W: c, Z: s}
}

// FromEuler converts Bunge (ZXZ) Euler angles to the rotation which maps
// sample coordinates to crystal coordinates. The elemental rotations
// Z(phi1), X(Phi) and Z(phi2) are composed in that order, and since that
// composition carries crystal axes onto sample axes, its inverse is
// returned.
//
// If degrees is true the angles are read in degrees and reduced modulo 360.
func FromEuler(phi1, Phi, phi2 float64, degrees bool) Quat {
	if degrees {
		phi1 = wrapDegrees(phi1) * math.Pi / 180
		Phi = wrapDegrees(Phi) * math.Pi / 180
		phi2 = wrapDegrees(phi2) * math.Pi / 180
	}

	q := Compose(Compose(elementalZ(phi1), elementalX(Phi)), elementalZ(phi2))
	return q.Inverse()
}

func wrapDegrees(x float64) float64 {
	x = math.Mod(x, 360)
	if x < 0 {
		x += 360
	}
	return x
}

// RotationMatrix returns the 3x3 matrix M with M v = q.Apply(v).
func RotationMatrix(q Quat) *mat.Matrix {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return mat.NewMatrix([]float64{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	}, 3, 3)
}
