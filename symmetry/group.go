package symmetry

import (
	"fmt"

	"github.com/phil-mansfield/ipfkey/geom"
)

const (
	// MaxOrder bounds the number of proper operations a closure may produce.
	// The largest point group, m-3m, has 48 operations in total.
	MaxOrder = 48

	// quatEps is the tolerance for deciding that two operations are the
	// same rotation.
	quatEps = 1e-9
)

// Group is the proper rotation part of a Laue class along with the sector of
// the sphere its inverse pole figure is drawn on. Groups are built once by
// the registry and never modified afterwards.
type Group struct {
	Label Label
	// Key is the label of the group whose sector the colour key is defined
	// on. It is either Label itself or a supergroup of it.
	Key Label

	ops    []geom.Quat
	sector *Sector
}

// NewGroup assembles a group from explicit operations and a sector, which
// is its own key group. The registry's groups should be preferred; this is
// for callers experimenting with other settings of the axes.
func NewGroup(l Label, ops []geom.Quat, sector *Sector) *Group {
	cp := make([]geom.Quat, len(ops))
	copy(cp, ops)
	return &Group{Label: l, Key: l, ops: cp, sector: sector}
}

// Order returns the number of proper rotations in g.
func (g *Group) Order() int { return len(g.ops) }

// LaueOrder returns the number of operations in g once inversion is
// included.
func (g *Group) LaueOrder() int { return 2 * len(g.ops) }

// Op returns the i-th operation. Op(0) is always the identity.
func (g *Group) Op(i int) geom.Quat { return g.ops[i] }

// Operations returns a copy of g's proper rotations in registry order.
func (g *Group) Operations() []geom.Quat {
	out := make([]geom.Quat, len(g.ops))
	copy(out, g.ops)
	return out
}

func (g *Group) Sector() *Sector { return g.sector }

// Contains returns true if q is equivalent to one of g's operations.
func (g *Group) Contains(q geom.Quat) bool {
	return g.indexOf(q) >= 0
}

func (g *Group) indexOf(q geom.Quat) int {
	return indexOf(g.ops, q)
}

func indexOf(ops []geom.Quat, q geom.Quat) int {
	for i := range ops {
		if ops[i].Equivalent(q, quatEps) {
			return i
		}
	}
	return -1
}

// Close generates the group spanned by gens. It starts from the identity
// and the generators and keeps adding every pairwise product until no new
// rotation appears. The result is in a fixed order for a fixed input, with
// the identity first.
func Close(gens ...geom.Quat) ([]geom.Quat, error) {
	ops := []geom.Quat{geom.Identity}
	add := func(q geom.Quat) bool {
		if indexOf(ops, q) >= 0 {
			return false
		}
		ops = append(ops, q.Canonical())
		return true
	}

	for _, g := range gens {
		add(g.Normalize())
	}

	for {
		added := false
		n := len(ops)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if add(geom.Compose(ops[i], ops[j])) {
					added = true
				}
			}
		}

		if len(ops) > MaxOrder {
			return nil, fmt.Errorf(
				"Closure produced %d operations, more than the limit of %d.",
				len(ops), MaxOrder,
			)
		}
		if !added {
			return ops, nil
		}
	}
}
