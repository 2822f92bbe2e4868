package schedule

import (
	"fmt"

	"github.com/drakos74/mlkit/internal/metrics"
	"github.com/rs/zerolog/log"
)

// Optimizer is the part of a training loop that accepts a new learning rate.
type Optimizer interface {
	SetLearningRate(rate float64)
}

// OptimizerFunc adapts a function to the Optimizer interface.
type OptimizerFunc func(rate float64)

func (f OptimizerFunc) SetLearningRate(rate float64) {
	f(rate)
}

// Callback applies a schedule to an optimizer at the beginning of every epoch.
type Callback struct {
	name      string
	schedule  Schedule
	optimizer Optimizer
}

// NewCallback creates a new callback for the given schedule.
func NewCallback(name string, schedule Schedule, optimizer Optimizer) *Callback {
	return &Callback{
		name:      name,
		schedule:  schedule,
		optimizer: optimizer,
	}
}

// OnEpochBegin sets the rate of the epoch on the optimizer and returns it.
func (c *Callback) OnEpochBegin(epoch int) (float64, error) {
	rate, err := c.schedule.Rate(epoch)
	if err != nil {
		return 0, fmt.Errorf("could not apply schedule '%s': %w", c.name, err)
	}
	if c.optimizer != nil {
		c.optimizer.SetLearningRate(rate)
	}
	metrics.Observer.LearningRate(c.name, rate)
	log.Debug().
		Str("schedule", c.name).
		Int("epoch", epoch).
		Float64("rate", rate).
		Msg("learning rate")
	return rate, nil
}
