package ipf

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/phil-mansfield/ipfkey/geom"
	"github.com/phil-mansfield/ipfkey/symmetry"
)

// CornerColors are the colours of the key triangle's corners, in the order
// of symmetry.Sector.Corners.
var CornerColors = [3]colorful.Color{
	{R: 1, G: 0, B: 0},
	{R: 0, G: 1, B: 0},
	{R: 0, G: 0, B: 1},
}

// Key colours directions by where they land in a group's fundamental
// sector.
//
// Colours are interpolated over a key triangle bounded only by mirror
// planes. Groups whose own sector is glued to itself by rotations (e.g. 4/m,
// where the two straight edges are images of each other) are coloured on
// the triangle of a mirror-bearing supergroup instead, so the key never
// jumps at a seam.
type Key struct {
	group, key *symmetry.Group
}

// NewKey returns the key for the given label.
func NewKey(l symmetry.Label) (*Key, error) {
	g, err := symmetry.Lookup(l)
	if err != nil {
		return nil, err
	}
	return &Key{group: g, key: symmetry.KeyGroup(g)}, nil
}

func (k *Key) Group() *symmetry.Group { return k.group }

// Reduce reduces d into the key's fundamental sector.
func (k *Key) Reduce(d geom.Vec) (geom.Vec, error) {
	return Reduce(d, k.group)
}

// Weights returns the barycentric weights of d with respect to the red,
// green and blue corners. They are non-negative and sum to one.
func (k *Key) Weights(d geom.Vec) ([3]float64, error) {
	v, err := Reduce(d, k.group)
	if err != nil {
		return [3]float64{}, err
	}
	if k.key != k.group {
		if v, err = Reduce(v, k.key); err != nil {
			return [3]float64{}, err
		}
	}
	return k.key.Sector().Weights(v), nil
}

// ColorOf returns the colour of the direction d.
func (k *Key) ColorOf(d geom.Vec) (colorful.Color, error) {
	w, err := k.Weights(d)
	if err != nil {
		return colorful.Color{}, err
	}
	return blend(w), nil
}

func blend(w [3]float64) colorful.Color {
	var c colorful.Color
	for i, corner := range CornerColors {
		c.R += w[i] * corner.R
		c.G += w[i] * corner.G
		c.B += w[i] * corner.B
	}
	return c.Clamped()
}

// ColorOf returns the colour of d under the group l.
func ColorOf(d geom.Vec, l symmetry.Label) (colorful.Color, error) {
	k, err := NewKey(l)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("colouring %v: %w", d, err)
	}
	return k.ColorOf(d)
}
