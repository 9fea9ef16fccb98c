package classify

import (
	"fmt"
	"math"
	"slices"
)

// Ladder maps a value to one of len(thresholds)+1 ordered labels.
type Ladder[L any] struct {
	thresholds []float64
	labels     []L
}

// NewLadder validates and copies thresholds and labels.
func NewLadder[L any](thresholds []float64, labels []L) (Ladder[L], error) {
	if len(labels) != len(thresholds)+1 {
		return Ladder[L]{}, fmt.Errorf("%w: %d thresholds need %d labels, got %d",
			ErrInvalidLadder, len(thresholds), len(thresholds)+1, len(labels))
	}
	for i, t := range thresholds {
		if math.IsNaN(t) {
			return Ladder[L]{}, fmt.Errorf("%w: threshold %d is NaN", ErrInvalidLadder, i)
		}
		if i > 0 && t <= thresholds[i-1] {
			return Ladder[L]{}, fmt.Errorf("%w: threshold %d (%v) does not exceed %v",
				ErrInvalidLadder, i, t, thresholds[i-1])
		}
	}
	return Ladder[L]{
		thresholds: slices.Clone(thresholds),
		labels:     slices.Clone(labels),
	}, nil
}

// MustLadder is NewLadder for package-level ladders; it panics on invalid input.
func MustLadder[L any](thresholds []float64, labels []L) Ladder[L] {
	l, err := NewLadder(thresholds, labels)
	if err != nil {
		panic(err)
	}
	return l
}

// Classify returns the label of the first threshold value is strictly below,
// scanning from the bottom, or the last label.
func (l Ladder[L]) Classify(value float64) L {
	for i, t := range l.thresholds {
		if value < t {
			return l.labels[i]
		}
	}
	return l.labels[len(l.labels)-1]
}

// Labels returns the labels from the lowest band up.
func (l Ladder[L]) Labels() []L {
	return slices.Clone(l.labels)
}
