/*package orientation holds crystal orientations: rotations from the sample
frame to the crystal frame, tagged with the symmetry they are read under.
*/
package orientation

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/phil-mansfield/ipfkey/geom"
	"github.com/phil-mansfield/ipfkey/ipf"
	"github.com/phil-mansfield/ipfkey/symmetry"
)

// Orientation is an immutable rotation plus the Laue class it is
// interpreted under.
type Orientation struct {
	rot      geom.Quat
	symmetry symmetry.Label
}

// New tags the rotation q with the label l. q is normalized.
func New(q geom.Quat, l symmetry.Label) (Orientation, error) {
	if _, err := symmetry.Lookup(l); err != nil {
		return Orientation{}, err
	}
	return Orientation{rot: q.Normalize(), symmetry: l}, nil
}

// FromEuler builds an orientation from Bunge Euler angles given in degrees.
func FromEuler(l symmetry.Label, phi1, Phi, phi2 float64) (Orientation, error) {
	return New(geom.FromEuler(phi1, Phi, phi2, true), l)
}

func (o Orientation) Rotation() geom.Quat      { return o.rot }
func (o Orientation) Symmetry() symmetry.Label { return o.symmetry }

// WithSymmetry returns a copy of o read under the label l.
func (o Orientation) WithSymmetry(l symmetry.Label) (Orientation, error) {
	return New(o.rot, l)
}

// CrystalDirection returns the sample direction expressed in the crystal
// frame, without any symmetry reduction.
func (o Orientation) CrystalDirection(sample geom.Vec) geom.Vec {
	return o.rot.Apply(sample)
}

// IPFDirection returns the crystal direction parallel to the sample
// direction, reduced into the fundamental sector.
func (o Orientation) IPFDirection(sample geom.Vec) (geom.Vec, error) {
	k, err := ipf.NewKey(o.symmetry)
	if err != nil {
		return geom.Vec{}, err
	}
	return k.Reduce(o.CrystalDirection(sample))
}

// IPFColor returns the colour key's colour for the given sample direction.
func (o Orientation) IPFColor(sample geom.Vec) (colorful.Color, error) {
	k, err := ipf.NewKey(o.symmetry)
	if err != nil {
		return colorful.Color{}, err
	}
	return k.ColorOf(o.CrystalDirection(sample))
}
