package symmetry

import (
	"fmt"
	"math"
	"sync"

	"github.com/phil-mansfield/ipfkey/geom"
)

type definition struct {
	gens    []geom.Quat
	order   int
	key     Label
	normals []geom.Vec
}

var (
	twoZ     = geom.AxisAngle(geom.ZAxis, math.Pi)
	threeZ   = geom.AxisAngle(geom.ZAxis, 2*math.Pi/3)
	fourZ    = geom.AxisAngle(geom.ZAxis, math.Pi/2)
	sixZ     = geom.AxisAngle(geom.ZAxis, math.Pi/3)
	twoX     = geom.AxisAngle(geom.XAxis, math.Pi)
	twoY     = geom.AxisAngle(geom.YAxis, math.Pi)
	three111 = geom.AxisAngle(geom.Vec{1, 1, 1}, 2*math.Pi/3)

	upper = geom.ZAxis
	front = geom.YAxis
)

// azimuthBound is the inward normal of the vertical plane at azimuth deg,
// for sectors which open counter-clockwise from the x axis.
func azimuthBound(deg float64) geom.Vec {
	s, c := math.Sincos(deg * math.Pi / 180)
	return geom.Vec{s, -c, 0}
}

var (
	definitions = map[Label]definition{
		Ci:  {nil, 1, D2h, []geom.Vec{upper}},
		C2h: {[]geom.Quat{twoZ}, 2, D2h, []geom.Vec{upper, front}},
		D2h: {[]geom.Quat{twoZ, twoX}, 4, D2h,
			[]geom.Vec{upper, front, geom.XAxis}},
		S6: {[]geom.Quat{threeZ}, 3, D6h,
			[]geom.Vec{upper, front, azimuthBound(120)}},
		D3d: {[]geom.Quat{threeZ, twoY}, 6, D6h,
			[]geom.Vec{upper, front, azimuthBound(60)}},
		C4h: {[]geom.Quat{fourZ}, 4, D4h,
			[]geom.Vec{upper, front, geom.XAxis}},
		D4h: {[]geom.Quat{fourZ, twoX}, 8, D4h,
			[]geom.Vec{upper, front, azimuthBound(45)}},
		C6h: {[]geom.Quat{sixZ}, 6, D6h,
			[]geom.Vec{upper, front, azimuthBound(60)}},
		D6h: {[]geom.Quat{sixZ, twoX}, 12, D6h,
			[]geom.Vec{upper, front, azimuthBound(30)}},
		Th: {[]geom.Quat{twoZ, twoX, three111}, 12, Oh,
			[]geom.Vec{front, {1, -1, 0}, {0, -1, 1}}},
		Oh: {[]geom.Quat{fourZ, three111}, 24, Oh,
			[]geom.Vec{front, {1, -1, 0}, {-1, 0, 1}}},
	}

	// Red, green and blue corners of the key triangles. Every key triangle
	// is bounded by mirror planes of its group.
	keyCorners = map[Label][3]geom.Vec{
		D2h: {{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		D4h: {{1, 0, 0}, {1, 1, 0}, {0, 0, 1}},
		D6h: {{1, 0, 0}, {math.Sqrt(3) / 2, 0.5, 0}, {0, 0, 1}},
		Oh:  {{1, 0, 1}, {1, 1, 1}, {0, 0, 1}},
	}
)

var (
	registryOnce sync.Once
	registry     map[Label]*Group
)

func buildRegistry() {
	registry = make(map[Label]*Group, len(labels))
	for _, l := range labels {
		g, err := buildGroup(l, definitions[l])
		if err != nil {
			panic(err.Error())
		}
		registry[l] = g
	}
}

func buildGroup(l Label, def definition) (*Group, error) {
	ops, err := Close(def.gens...)
	if err != nil {
		return nil, fmt.Errorf("Building %s: %s", l, err.Error())
	} else if len(ops) != def.order {
		return nil, fmt.Errorf(
			"Building %s: closure has %d operations, but the group has "+
				"order %d.", l, len(ops), def.order,
		)
	}

	corners, ok := keyCorners[def.key]
	if !ok {
		return nil, fmt.Errorf("Building %s: no key triangle for %s.", l, def.key)
	}
	sector, err := NewSector(def.normals, corners)
	if err != nil {
		return nil, fmt.Errorf("Building %s: %s", l, err.Error())
	}

	return &Group{Label: l, Key: def.key, ops: ops, sector: sector}, nil
}

// Lookup returns the group for l. Groups are built the first time any
// group is requested and shared afterwards, so the returned value must be
// treated as read-only.
func Lookup(l Label) (*Group, error) {
	registryOnce.Do(buildRegistry)

	g, ok := registry[l]
	if !ok {
		return nil, fmt.Errorf("%w '%s'; expected one of %s", ErrUnknownSymmetry, l, joinLabels())
	}
	return g, nil
}

// Operations returns the proper rotations of l, identity first.
func Operations(l Label) ([]geom.Quat, error) {
	g, err := Lookup(l)
	if err != nil {
		return nil, err
	}
	return g.Operations(), nil
}

// KeyGroup returns the group whose sector g's colour key is defined on.
func KeyGroup(g *Group) *Group {
	if g.Key == g.Label {
		return g
	}
	key, err := Lookup(g.Key)
	if err != nil {
		panic(err.Error())
	}
	return key
}
