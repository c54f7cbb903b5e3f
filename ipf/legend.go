package ipf

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/phil-mansfield/ipfkey/geom"
)

// LegendPoint is one sample of the colour key legend.
type LegendPoint struct {
	Dir   geom.Vec
	X, Y  float64
	Color colorful.Color
}

// Legend samples the key on a resolution x resolution grid laid over the
// stereographic disk and keeps the points which fall inside the sector.
// Points are ordered by row (increasing Y), then by increasing X.
func (k *Key) Legend(resolution int) ([]LegendPoint, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf(
			"Legend resolution must be positive, but is %d.", resolution,
		)
	}

	s := k.group.Sector()
	step := 2 / float64(resolution)
	out := []LegendPoint{}

	for j := 0; j < resolution; j++ {
		y := -1 + (float64(j)+0.5)*step
		for i := 0; i < resolution; i++ {
			x := -1 + (float64(i)+0.5)*step
			if x*x+y*y > 1 {
				continue
			}

			d := geom.Unproject(x, y)
			if !s.Contains(d) {
				continue
			}

			c, err := k.ColorOf(d)
			if err != nil {
				return nil, err
			}
			out = append(out, LegendPoint{Dir: d, X: x, Y: y, Color: c})
		}
	}

	return out, nil
}
