// Package schedule implements learning rate schedules indexed by epoch.
//
// Every schedule is an immutable value: it can be queried for any non-negative epoch,
// in any order and from any goroutine.
package schedule

import (
	"fmt"
	"math"

	"github.com/drakos74/mlkit/internal/model"
)

// Schedule maps an epoch to a learning rate.
type Schedule interface {
	Rate(epoch int) (float64, error)
}

func checkEpoch(epoch int) error {
	if epoch < 0 {
		return fmt.Errorf("negative epoch %d: %w", epoch, model.InvalidArgumentErr)
	}
	return nil
}

// ExponentialDecay decays the rate by one order of magnitude every S epochs.
type ExponentialDecay struct {
	LR float64
	S  int
}

// NewExponentialDecay creates a new exponential decay schedule.
func NewExponentialDecay(lr float64, s int) (ExponentialDecay, error) {
	if s <= 0 {
		return ExponentialDecay{}, fmt.Errorf("decay span must be positive but was %d: %w", s, model.InvalidArgumentErr)
	}
	return ExponentialDecay{LR: lr, S: s}, nil
}

// DefaultExponentialDecay starts at 1e-4 and decays every 5 epochs.
func DefaultExponentialDecay() ExponentialDecay {
	return ExponentialDecay{LR: 1e-4, S: 5}
}

// Rate returns lr * 0.1 ^ (epoch / s).
func (e ExponentialDecay) Rate(epoch int) (float64, error) {
	if err := checkEpoch(epoch); err != nil {
		return 0, err
	}
	return e.LR * math.Pow(0.1, float64(epoch)/float64(e.S)), nil
}

// Warmup ramps the rate linearly from Start to Max for RampUp epochs,
// keeps it at Max for Sustain epochs and then decays it exponentially towards Min.
type Warmup struct {
	Start   float64
	Max     float64
	Min     float64
	RampUp  int
	Sustain int
	Decay   float64
}

// NewWarmup creates a new warmup schedule.
func NewWarmup(start, lrMax, lrMin float64, rampUp, sustain int, decay float64) (Warmup, error) {
	if rampUp < 0 || sustain < 0 {
		return Warmup{}, fmt.Errorf("ramp up %d and sustain %d epochs cannot be negative: %w", rampUp, sustain, model.InvalidArgumentErr)
	}
	if decay < 0 || decay > 1 {
		return Warmup{}, fmt.Errorf("decay factor %v is not within [0,1]: %w", decay, model.InvalidArgumentErr)
	}
	return Warmup{
		Start:   start,
		Max:     lrMax,
		Min:     lrMin,
		RampUp:  rampUp,
		Sustain: sustain,
		Decay:   decay,
	}, nil
}

// DefaultWarmup ramps up from 1e-4 to 1e-3 within 4 epochs, holds for 1 and decays by 0.8 towards 1e-5.
func DefaultWarmup() Warmup {
	return Warmup{
		Start:   1e-4,
		Max:     1e-3,
		Min:     1e-5,
		RampUp:  4,
		Sustain: 1,
		Decay:   0.8,
	}
}

func (w Warmup) Rate(epoch int) (float64, error) {
	if err := checkEpoch(epoch); err != nil {
		return 0, err
	}
	switch {
	case epoch < w.RampUp:
		return w.Start + (w.Max-w.Start)*float64(epoch)/float64(w.RampUp), nil
	case epoch < w.RampUp+w.Sustain:
		return w.Max, nil
	default:
		return w.Min + (w.Max-w.Min)*math.Pow(w.Decay, float64(epoch-w.RampUp-w.Sustain)), nil
	}
}

// Piecewise keeps the rate constant between boundaries.
// Values[i] applies to the epochs before Boundaries[i], the last value to all epochs after the last boundary.
type Piecewise struct {
	Boundaries []int
	Values     []float64
}

// NewPiecewise creates a new piecewise constant schedule.
func NewPiecewise(boundaries []int, values []float64) (Piecewise, error) {
	if len(values) != len(boundaries)+1 {
		return Piecewise{}, fmt.Errorf("expected %d values for %d boundaries but got %d: %w",
			len(boundaries)+1, len(boundaries), len(values), model.InvalidArgumentErr)
	}
	for i, b := range boundaries {
		if b < 0 || (i > 0 && b <= boundaries[i-1]) {
			return Piecewise{}, fmt.Errorf("boundaries %v must be non-negative and strictly increasing: %w",
				boundaries, model.InvalidArgumentErr)
		}
	}
	bb := make([]int, len(boundaries))
	copy(bb, boundaries)
	vv := make([]float64, len(values))
	copy(vv, values)
	return Piecewise{Boundaries: bb, Values: vv}, nil
}

// PiecewiseConstant is 0.01 until epoch 5, 0.005 until epoch 15 and 0.001 after that.
func PiecewiseConstant() Piecewise {
	return Piecewise{
		Boundaries: []int{5, 15},
		Values:     []float64{0.01, 0.005, 0.001},
	}
}

func (p Piecewise) Rate(epoch int) (float64, error) {
	if err := checkEpoch(epoch); err != nil {
		return 0, err
	}
	for i, b := range p.Boundaries {
		if epoch < b {
			return p.Values[i], nil
		}
	}
	return p.Values[len(p.Values)-1], nil
}

// Func adapts the schedule to a plain epoch to rate function.
// The returned function panics on a negative epoch.
func Func(s Schedule) func(epoch int) float64 {
	return func(epoch int) float64 {
		r, err := s.Rate(epoch)
		if err != nil {
			panic(fmt.Sprintf("could not compute learning rate: %s", err.Error()))
		}
		return r
	}
}

// Trace returns the rates of the first epochs.
func Trace(s Schedule, epochs int) ([]float64, error) {
	if epochs < 0 {
		return nil, fmt.Errorf("negative number of epochs %d: %w", epochs, model.InvalidArgumentErr)
	}
	rates := make([]float64, epochs)
	for e := 0; e < epochs; e++ {
		r, err := s.Rate(e)
		if err != nil {
			return nil, fmt.Errorf("could not trace epoch %d: %w", e, err)
		}
		rates[e] = r
	}
	return rates, nil
}
