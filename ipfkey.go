/*package ipfkey is the engine behind an inverse pole figure viewer.

Callers pick a Laue class, Euler angles or a number of random samples, and
get back plain data: colours from the IPF colour key and stereographic
coordinates of the reduced directions. Nothing here draws anything.
*/
package ipfkey

import (
	"fmt"
	"runtime"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/sync/errgroup"

	"github.com/phil-mansfield/ipfkey/geom"
	"github.com/phil-mansfield/ipfkey/ipf"
	"github.com/phil-mansfield/ipfkey/orientation"
	"github.com/phil-mansfield/ipfkey/symmetry"
)

const (
	// sampleChunk is the number of samples handed to a worker at a time.
	sampleChunk = 1 << 10
)

var (
	// SampleDirection is the sample axis coloured by the single-direction
	// functions.
	SampleDirection = geom.ZAxis
	// SampleAxes are the sample axes an IPF scatter is usually drawn for.
	SampleAxes = []geom.Vec{geom.XAxis, geom.YAxis, geom.ZAxis}
)

// Point is a coloured point on the stereographic disk.
type Point struct {
	Color colorful.Color
	X, Y  float64
}

// ListSymmetries returns the supported labels in display order.
func ListSymmetries() []symmetry.Label {
	return symmetry.List()
}

// ColorKeyLegend samples the colour key of l on a resolution x resolution
// grid over the stereographic disk.
func ColorKeyLegend(l symmetry.Label, resolution int) ([]ipf.LegendPoint, error) {
	k, err := ipf.NewKey(l)
	if err != nil {
		return nil, err
	}
	return k.Legend(resolution)
}

// OrientationColor returns the IPF colour of the sample z axis for the
// orientation with the given Bunge Euler angles, in degrees.
func OrientationColor(l symmetry.Label, phi1, Phi, phi2 float64) (colorful.Color, error) {
	p, err := orientationPoint(l, phi1, Phi, phi2, SampleDirection)
	return p.Color, err
}

// OrientationProjection returns where the sample z axis of the orientation
// lands on the inverse pole figure.
func OrientationProjection(l symmetry.Label, phi1, Phi, phi2 float64) (x, y float64, err error) {
	p, err := orientationPoint(l, phi1, Phi, phi2, SampleDirection)
	return p.X, p.Y, err
}

// OrientationPoints returns one inverse pole figure point per sample axis.
// With no axes, SampleAxes is used.
func OrientationPoints(
	l symmetry.Label, phi1, Phi, phi2 float64, axes ...geom.Vec,
) ([]Point, error) {
	if len(axes) == 0 {
		axes = SampleAxes
	}

	o, err := orientation.FromEuler(l, phi1, Phi, phi2)
	if err != nil {
		return nil, err
	}
	k, err := ipf.NewKey(l)
	if err != nil {
		return nil, err
	}

	out := make([]Point, len(axes))
	for i, axis := range axes {
		if out[i], err = point(k, o.Rotation(), axis); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func orientationPoint(
	l symmetry.Label, phi1, Phi, phi2 float64, axis geom.Vec,
) (Point, error) {
	pts, err := OrientationPoints(l, phi1, Phi, phi2, axis)
	if err != nil {
		return Point{}, err
	}
	return pts[0], nil
}

// point colours and projects the crystal direction parallel to the sample
// axis under the rotation q.
func point(k *ipf.Key, q geom.Quat, axis geom.Vec) (Point, error) {
	d, err := k.Reduce(q.Apply(axis))
	if err != nil {
		return Point{}, err
	}
	x, y, err := geom.Project(d)
	if err != nil {
		return Point{}, err
	}
	c, err := k.ColorOf(d)
	if err != nil {
		return Point{}, err
	}
	return Point{Color: c, X: x, Y: y}, nil
}

// SampleColors draws count random orientations from seed and returns the
// colour and projected position of each one's sample z axis. Work is split
// across GOMAXPROCS workers.
func SampleColors(l symmetry.Label, count int, seed int64) ([]Point, error) {
	return SampleColorsWorkers(l, count, seed, runtime.GOMAXPROCS(0))
}

// SampleColorsWorkers is SampleColors with an explicit worker count. The
// output does not depend on workers.
func SampleColorsWorkers(
	l symmetry.Label, count int, seed int64, workers int,
) ([]Point, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("Worker count must be positive, but is %d.", workers)
	}

	k, err := ipf.NewKey(l)
	if err != nil {
		return nil, err
	}
	sampler, err := orientation.Random(count, seed)
	if err != nil {
		return nil, err
	}

	// Rotations are drawn serially so the sequence only depends on seed.
	rots := sampler.All()
	out := make([]Point, len(rots))

	var eg errgroup.Group
	eg.SetLimit(workers)
	for start := 0; start < len(rots); start += sampleChunk {
		start, end := start, min(start+sampleChunk, len(rots))
		eg.Go(func() error {
			for i := start; i < end; i++ {
				p, err := point(k, rots[i], SampleDirection)
				if err != nil {
					return fmt.Errorf("sample %d: %w", i, err)
				}
				out[i] = p
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
