/*package symmetry enumerates the crystal point groups an inverse pole figure
can be drawn for.

Each supported label names a centrosymmetric Laue class. A Group stores only
the proper rotations of that class; inversion is handled by the code which
acts on directions, since it has no effect on orientations.
*/
package symmetry

import (
	"errors"
	"fmt"
	"strings"
)

// Label is the Schoenflies symbol of a supported Laue class.
type Label string

const (
	Ci  Label = "Ci"
	C2h Label = "C2h"
	D2h Label = "D2h"
	S6  Label = "S6"
	D3d Label = "D3d"
	C4h Label = "C4h"
	D4h Label = "D4h"
	C6h Label = "C6h"
	D6h Label = "D6h"
	Th  Label = "Th"
	Oh  Label = "Oh"
)

// ErrUnknownSymmetry is returned for labels outside of the eleven supported
// Laue classes.
var ErrUnknownSymmetry = errors.New("unknown symmetry")

var labels = []Label{Ci, C2h, D2h, S6, D3d, C4h, D4h, C6h, D6h, Th, Oh}

var descriptions = map[Label]string{
	Ci:  "Triclinic: the identity plus an inversion centre.",
	C2h: "Monoclinic: a 2-fold axis along z with a mirror plane perpendicular to it.",
	D2h: "Orthorhombic: three perpendicular 2-fold axes and three mirror planes.",
	S6:  "Trigonal: a 3-fold axis along z combined with inversion.",
	D3d: "Trigonal: a 3-fold axis, three perpendicular 2-fold axes and diagonal mirrors.",
	C4h: "Tetragonal: a 4-fold axis along z with a horizontal mirror plane.",
	D4h: "Tetragonal: a 4-fold axis, four perpendicular 2-fold axes and mirrors.",
	C6h: "Hexagonal: a 6-fold axis along z with a horizontal mirror plane.",
	D6h: "Hexagonal: a 6-fold axis, six perpendicular 2-fold axes and mirrors.",
	Th:  "Cubic: four 3-fold axes, three 2-fold axes and the three axial mirrors.",
	Oh:  "Cubic: the full symmetry of the cube, 48 operations in all.",
}

// List returns the supported labels, ordered from lowest to highest
// symmetry.
func List() []Label {
	out := make([]Label, len(labels))
	copy(out, labels)
	return out
}

// Valid reports whether l is one of the supported labels.
func (l Label) Valid() bool {
	_, ok := descriptions[l]
	return ok
}

// Description returns a one sentence summary of the class.
func (l Label) Description() string {
	return descriptions[l]
}

func (l Label) String() string {
	return string(l)
}

// Parse looks up a label, ignoring case and surrounding whitespace.
func Parse(s string) (Label, error) {
	trimmed := strings.TrimSpace(s)
	for _, l := range labels {
		if strings.EqualFold(string(l), trimmed) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w '%s'; expected one of %s", ErrUnknownSymmetry, s, joinLabels())
}

func joinLabels() string {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}
