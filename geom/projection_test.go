package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	table := []struct {
		d    Vec
		x, y float64
	}{
		{ZAxis, 0, 0},
		{XAxis, 1, 0},
		{YAxis, 0, 1},
		{Vec{1, 0, 1}.Unit(), math.Sqrt2 - 1, 0},
		{Vec{0, -1, 0}, 0, -1},
	}

	for i, test := range table {
		x, y, err := Project(test.d)
		require.NoError(t, err)
		assert.InDelta(t, test.x, x, testEps, "%d) x", i+1)
		assert.InDelta(t, test.y, y, testEps, "%d) y", i+1)
	}
}

func TestProjectSingularity(t *testing.T) {
	_, _, err := Project(Vec{0, 0, -1})
	assert.ErrorIs(t, err, ErrProjectionSingularity)

	_, _, err = Project(Vec{1e-6, 0, -1 + 5e-13}.Unit())
	assert.ErrorIs(t, err, ErrProjectionSingularity)
}

func TestUnprojectRoundTrip(t *testing.T) {
	gen := rand.New(rand.NewSource(8))
	for i := 0; i < 200; i++ {
		d := randomUnit(gen)
		if d[2] < -0.9 {
			continue
		}
		x, y, err := Project(d)
		require.NoError(t, err)

		back := Unproject(x, y)
		assert.True(t, back.IsUnit())
		assert.True(t, back.AlmostEq(d, 1e-10), "%d) %v -> %v", i, d, back)
	}
}

func TestProjectInjective(t *testing.T) {
	gen := rand.New(rand.NewSource(9))
	ds := make([]Vec, 300)
	for i := range ds {
		ds[i] = randomUnit(gen)
		ds[i][2] = math.Abs(ds[i][2])
	}

	for i := range ds {
		xi, yi, _ := Project(ds[i])
		for j := i + 1; j < len(ds); j++ {
			xj, yj, _ := Project(ds[j])
			if math.Abs(xi-xj) < 1e-12 && math.Abs(yi-yj) < 1e-12 {
				t.Errorf("%v and %v project to the same point", ds[i], ds[j])
			}
		}
	}
}
