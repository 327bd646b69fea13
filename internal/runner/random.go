package runner

import "math/rand"

// Rand is the source of randomness for obstacle and particle generation.
// *rand.Rand satisfies it; tests inject a SequenceRand.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded pseudo-random source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// SequenceRand replays a fixed list of values in [0, 1), cycling when exhausted.
type SequenceRand struct {
	values []float64
	next   int
}

// NewSequenceRand creates a deterministic source from the given values.
func NewSequenceRand(values ...float64) *SequenceRand {
	return &SequenceRand{values: values}
}

// Float64 returns the next value of the sequence, or 0 if it is empty.
func (s *SequenceRand) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// between maps the next random value onto [lo, hi).
func between(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
