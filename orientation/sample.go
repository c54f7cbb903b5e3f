package orientation

import (
	"fmt"
	"math/rand"

	"github.com/phil-mansfield/ipfkey/geom"
)

// Sampler is a finite, restartable sequence of rotations drawn uniformly
// from SO(3). Rotations are generated on demand from a seeded source, so two
// Samplers with the same seed and length produce identical sequences.
//
// A Sampler is not safe for concurrent use.
type Sampler struct {
	n, i int
	seed int64
	gen  *rand.Rand
}

// Random returns a Sampler which produces n rotations from the given seed.
func Random(n int, seed int64) (*Sampler, error) {
	if n < 0 {
		return nil, fmt.Errorf("Sample count must be non-negative, but is %d.", n)
	}
	s := &Sampler{n: n, seed: seed}
	s.Reset()
	return s, nil
}

// Len returns the total length of the sequence.
func (s *Sampler) Len() int { return s.n }

// Reset rewinds the sequence to its first element.
func (s *Sampler) Reset() {
	s.i = 0
	s.gen = rand.New(rand.NewSource(s.seed))
}

// Next returns the next rotation and true, or false once the sequence is
// exhausted.
//
// A normalized isotropic Gaussian in four dimensions is uniform on the unit
// 3-sphere, which is the Haar measure on rotations.
func (s *Sampler) Next() (geom.Quat, bool) {
	if s.i >= s.n {
		return geom.Quat{}, false
	}
	s.i++

	for {
		q := geom.Quat{
			W: s.gen.NormFloat64(), X: s.gen.NormFloat64(),
			Y: s.gen.NormFloat64(), Z: s.gen.NormFloat64(),
		}
		// Draws this close to the origin can't be normalized accurately.
		if q.Norm() > 1e-6 {
			return q.Normalize(), true
		}
	}
}

// All drains the rest of the sequence into a slice.
func (s *Sampler) All() []geom.Quat {
	out := make([]geom.Quat, 0, s.n-s.i)
	for q, ok := s.Next(); ok; q, ok = s.Next() {
		out = append(out, q)
	}
	return out
}
