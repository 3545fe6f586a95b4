package shared

import "math/rand"

// RandomSource is an abstraction over pseudo-random draws so that defect
// rolls and demand noise can be made deterministic in tests.
type RandomSource interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64

	// NormFloat64 returns a normally distributed value with mean 0 and
	// standard deviation 1.
	NormFloat64() float64

	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// SeededSource implements RandomSource using math/rand with a fixed seed
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a SeededSource from the given seed
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *SeededSource) Float64() float64 {
	return s.rng.Float64()
}

func (s *SeededSource) NormFloat64() float64 {
	return s.rng.NormFloat64()
}

func (s *SeededSource) IntN(n int) int {
	return s.rng.Intn(n)
}

// SequenceSource implements RandomSource by replaying scripted values.
// Uniform draws consume Uniform in order, normal draws consume Normal in
// order; both repeat their last value once exhausted (zero if empty).
type SequenceSource struct {
	Uniform []float64
	Normal  []float64
	Ints    []int

	uniformIdx int
	normalIdx  int
	intIdx     int
}

func (s *SequenceSource) Float64() float64 {
	return nextValue(s.Uniform, &s.uniformIdx)
}

func (s *SequenceSource) NormFloat64() float64 {
	return nextValue(s.Normal, &s.normalIdx)
}

func (s *SequenceSource) IntN(n int) int {
	v := nextValue(s.Ints, &s.intIdx)
	if n > 0 && v >= n {
		return n - 1
	}
	return v
}

func nextValue[T int | float64](values []T, idx *int) T {
	var zero T
	if len(values) == 0 {
		return zero
	}
	if *idx >= len(values) {
		return values[len(values)-1]
	}
	v := values[*idx]
	*idx++
	return v
}
