package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fahrwerk/bikesim/internal/domain/shared"
)

func TestSeededSource_IsDeterministic(t *testing.T) {
	// Arrange
	a := shared.NewSeededSource(42)
	b := shared.NewSeededSource(42)

	// Assert - identical seeds yield identical draw sequences
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.NormFloat64(), b.NormFloat64())
		assert.Equal(t, a.IntN(100), b.IntN(100))
	}
}

func TestSequenceSource_ReplaysScriptedValues(t *testing.T) {
	// Arrange
	source := &shared.SequenceSource{
		Uniform: []float64{0.1, 0.9},
		Normal:  []float64{-1.5},
	}

	// Act / Assert - uniform draws consume the script in order
	assert.InDelta(t, 0.1, source.Float64(), 1e-9)
	assert.InDelta(t, 0.9, source.Float64(), 1e-9)

	// Exhausted scripts repeat their last value
	assert.InDelta(t, 0.9, source.Float64(), 1e-9)
	assert.InDelta(t, -1.5, source.NormFloat64(), 1e-9)
	assert.InDelta(t, -1.5, source.NormFloat64(), 1e-9)
}

func TestSequenceSource_EmptyScriptYieldsZero(t *testing.T) {
	// Arrange
	source := &shared.SequenceSource{}

	// Assert
	assert.Zero(t, source.Float64())
	assert.Zero(t, source.IntN(10))
}

func TestSequenceSource_IntNClampsToRange(t *testing.T) {
	// Arrange
	source := &shared.SequenceSource{Ints: []int{7}}

	// Act / Assert - a scripted value beyond n-1 is clamped
	assert.Equal(t, 2, source.IntN(3))
}
