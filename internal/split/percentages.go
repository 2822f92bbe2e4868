package split

import (
	"fmt"
	"math"

	"github.com/drakos74/mlkit/internal/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the allowed deviation of the percentages sum from 1.
const Tolerance = 1e-6

// Percentages defines the train, validation and test fractions of a split.
type Percentages []float64

// DefaultPercentages is the 80/10/10 split.
var DefaultPercentages = Percentages{0.80, 0.10, 0.10}

// Validate checks that there are exactly 3 non-negative fractions summing up to 1.
func (p Percentages) Validate() error {
	if len(p) != 3 {
		return fmt.Errorf("expected 3 percentages but got %d %v: %w", len(p), []float64(p), model.InvalidArgumentErr)
	}
	for i, f := range p {
		if math.IsNaN(f) || f < 0 {
			return fmt.Errorf("percentage for %s is %v: %w", model.Sets[i], f, model.InvalidArgumentErr)
		}
	}
	if sum := floats.Sum(p); !scalar.EqualWithinAbs(sum, 1.0, Tolerance) {
		return fmt.Errorf("percentages %v sum up to %v instead of 1: %w", []float64(p), sum, model.InvalidArgumentErr)
	}
	return nil
}

// Train is the training fraction.
func (p Percentages) Train() float64 {
	return p[0]
}

// Valid is the validation fraction.
func (p Percentages) Valid() float64 {
	return p[1]
}

// Test is the test fraction.
func (p Percentages) Test() float64 {
	return p[2]
}

// Counts returns the number of train, validation and test samples for a class of n samples.
// Validation and test are rounded down and the training set takes the remainder.
// Counts are capped at n, so a sum slightly above 1 never yields a negative count.
func (p Percentages) Counts(n int) (train, valid, test int) {
	if n <= 0 {
		return 0, 0, 0
	}
	valid = atMost(int(math.Floor(p.Valid()*float64(n))), n)
	test = atMost(int(math.Floor(p.Test()*float64(n))), n-valid)
	train = n - valid - test
	return train, valid, test
}

func atMost(i, limit int) int {
	if i > limit {
		return limit
	}
	return i
}
