/*package ipf maps crystal directions onto an inverse pole figure: it reduces
a direction into its group's fundamental sector and assigns it a colour.
*/
package ipf

import (
	"errors"
	"fmt"

	"github.com/phil-mansfield/ipfkey/geom"
	"github.com/phil-mansfield/ipfkey/symmetry"
)

// ErrNoFundamentalImage means no symmetry image of a direction fell inside
// its group's sector. That can only happen if the registry's operations or
// sector bounds are wrong.
var ErrNoFundamentalImage = errors.New("no symmetry image inside the fundamental sector")

// Image is the result of a reduction: the reduced direction and the
// operation which produced it.
type Image struct {
	Dir geom.Vec
	// Op indexes the group's operations.
	Op int
	// Inverted is true if the operation was followed by inversion.
	Inverted bool
}

// ReduceImage applies every operation of g to d, first as proper rotations
// and then combined with inversion, and returns the first image inside g's
// sector. Boundary directions are admitted by more than one operation, so
// ties always go to the lowest index.
func ReduceImage(d geom.Vec, g *symmetry.Group) (Image, error) {
	s := g.Sector()
	n := g.Order()

	for i := 0; i < n; i++ {
		v := g.Op(i).Apply(d)
		if s.Contains(v) {
			return Image{Dir: v, Op: i}, nil
		}
	}
	for i := 0; i < n; i++ {
		v := g.Op(i).Apply(d).Neg()
		if s.Contains(v) {
			return Image{Dir: v, Op: i, Inverted: true}, nil
		}
	}

	return Image{}, fmt.Errorf("reducing %v under %s: %w", d, g.Label, ErrNoFundamentalImage)
}

// Reduce returns the symmetry-equivalent of d inside g's fundamental sector.
func Reduce(d geom.Vec, g *symmetry.Group) (geom.Vec, error) {
	img, err := ReduceImage(d, g)
	if err != nil {
		return geom.Vec{}, err
	}
	return img.Dir, nil
}
