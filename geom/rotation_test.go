package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testEps = 1e-12

func randomQuat(gen *rand.Rand) Quat {
	q := Quat{gen.NormFloat64(), gen.NormFloat64(), gen.NormFloat64(), gen.NormFloat64()}
	return q.Normalize()
}

func randomUnit(gen *rand.Rand) Vec {
	return Vec{gen.NormFloat64(), gen.NormFloat64(), gen.NormFloat64()}.Unit()
}

func TestApply(t *testing.T) {
	table := []struct {
		axis       Vec
		angle      float64
		start, end Vec
	}{
		{ZAxis, 0, Vec{1, 2, 3}, Vec{1, 2, 3}},
		{ZAxis, math.Pi / 2, Vec{1, 0, 0}, Vec{0, 1, 0}},
		{XAxis, math.Pi / 2, Vec{0, 1, 0}, Vec{0, 0, 1}},
		{YAxis, math.Pi / 2, Vec{0, 0, 1}, Vec{1, 0, 0}},
		{Vec{1, 1, 1}, 2 * math.Pi / 3, Vec{1, 0, 0}, Vec{0, 1, 0}},
		{XAxis, math.Pi, Vec{0, 1, 1}, Vec{0, -1, -1}},
	}

	for i, test := range table {
		q := AxisAngle(test.axis, test.angle)
		v := q.Apply(test.start)
		if !v.AlmostEq(test.end, testEps) {
			t.Errorf(
				"%d) %v rotated by %.4g about %v -> %v instead of %v",
				i+1, test.start, test.angle, test.axis, v, test.end,
			)
		}
	}
}

func TestComposeOrder(t *testing.T) {
	gen := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		q1, q2 := randomQuat(gen), randomQuat(gen)
		v := randomUnit(gen)

		got := Compose(q1, q2).Apply(v)
		want := q1.Apply(q2.Apply(v))
		assert.True(t, got.AlmostEq(want, 1e-10), "%d) %v != %v", i, got, want)
	}
}

func TestComposeStaysUnit(t *testing.T) {
	gen := rand.New(rand.NewSource(4))
	q := Identity
	step := randomQuat(gen)
	for i := 0; i < 10000; i++ {
		q = Compose(q, step)
	}
	assert.InDelta(t, 1, q.Norm(), UnitEps)
}

func TestInverse(t *testing.T) {
	gen := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		q := randomQuat(gen)
		assert.True(t, Compose(q, q.Inverse()).Equivalent(Identity, 1e-12))

		v := randomUnit(gen)
		assert.True(t, q.Inverse().Apply(q.Apply(v)).AlmostEq(v, 1e-10))
	}
}

func TestDoubleCover(t *testing.T) {
	gen := rand.New(rand.NewSource(6))
	q := randomQuat(gen)
	v := randomUnit(gen)

	assert.True(t, q.Apply(v).AlmostEq(q.Neg().Apply(v), 1e-12))
	assert.True(t, q.Equivalent(q.Neg(), 1e-12))
	assert.Equal(t, q.Canonical(), q.Neg().Canonical())
}

func TestRotationMatrixMatchesApply(t *testing.T) {
	gen := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		q := randomQuat(gen)
		v := randomUnit(gen)

		out := make([]float64, 3)
		RotationMatrix(q).MulVector(v[:], out)
		assert.True(t, Vec{out[0], out[1], out[2]}.AlmostEq(q.Apply(v), 1e-12))
	}
}

func TestFromEuler(t *testing.T) {
	eps := 1e-12
	table := []struct {
		phi1, Phi, phi2 float64
		sample, crystal Vec
	}{
		{0, 0, 0, Vec{1, 2, 3}, Vec{1, 2, 3}},
		{90, 0, 0, Vec{1, 0, 0}, Vec{0, -1, 0}},
		{0, 0, 90, Vec{1, 0, 0}, Vec{0, -1, 0}},
		{0, 90, 0, Vec{0, 0, 1}, Vec{0, 1, 0}},
		{0, 90, 90, Vec{0, 0, 1}, Vec{1, 0, 0}},
		{450, 0, 0, Vec{1, 0, 0}, Vec{0, -1, 0}},
		{-270, 0, 0, Vec{1, 0, 0}, Vec{0, -1, 0}},
	}

	for i, test := range table {
		q := FromEuler(test.phi1, test.Phi, test.phi2, true)
		v := q.Apply(test.sample)
		if !v.AlmostEq(test.crystal, eps) {
			t.Errorf(
				"%d) FromEuler(%g %g %g) maps %v -> %v instead of %v",
				i+1, test.phi1, test.Phi, test.phi2, test.sample, v, test.crystal,
			)
		}
	}
}

func TestFromEulerIdentity(t *testing.T) {
	q := FromEuler(0, 0, 0, true)
	assert.Equal(t, 1.0, q.W)
	assert.Zero(t, q.X)
	assert.Zero(t, q.Y)
	assert.Zero(t, q.Z)
}

func TestFromEulerRadians(t *testing.T) {
	deg := FromEuler(30, 45, 60, true)
	rad := FromEuler(math.Pi/6, math.Pi/4, math.Pi/3, false)
	assert.True(t, deg.Equivalent(rad, 1e-12))
}
