package schedule

import (
	"fmt"

	"github.com/drakos74/mlkit/internal/model"
)

const (
	ExponentialType = "exponential"
	WarmupType      = "warmup"
	PiecewiseType   = "piecewise"
)

// Config defines a schedule in a serializable form.
// Missing fields fall back to the defaults of the given type, explicit zeros are kept.
type Config struct {
	Type       string    `json:"type"`
	LR         *float64  `json:"lr,omitempty"`
	S          *int      `json:"s,omitempty"`
	Start      *float64  `json:"start,omitempty"`
	Max        *float64  `json:"max,omitempty"`
	Min        *float64  `json:"min,omitempty"`
	RampUp     *int      `json:"rampup,omitempty"`
	Sustain    *int      `json:"sustain,omitempty"`
	Decay      *float64  `json:"decay,omitempty"`
	Boundaries []int     `json:"boundaries,omitempty"`
	Values     []float64 `json:"values,omitempty"`
}

// New creates the schedule described by the config.
func New(cfg Config) (Schedule, error) {
	switch cfg.Type {
	case ExponentialType:
		d := DefaultExponentialDecay()
		return NewExponentialDecay(orFloat(cfg.LR, d.LR), orInt(cfg.S, d.S))
	case WarmupType:
		d := DefaultWarmup()
		return NewWarmup(
			orFloat(cfg.Start, d.Start),
			orFloat(cfg.Max, d.Max),
			orFloat(cfg.Min, d.Min),
			orInt(cfg.RampUp, d.RampUp),
			orInt(cfg.Sustain, d.Sustain),
			orFloat(cfg.Decay, d.Decay))
	case PiecewiseType:
		if len(cfg.Boundaries) == 0 && len(cfg.Values) == 0 {
			return PiecewiseConstant(), nil
		}
		return NewPiecewise(cfg.Boundaries, cfg.Values)
	}
	return nil, fmt.Errorf("unknown schedule type '%s': %w", cfg.Type, model.InvalidArgumentErr)
}

// MustNew creates the schedule described by the config and panics if the config is invalid.
func MustNew(cfg Config) Schedule {
	s, err := New(cfg)
	if err != nil {
		panic(fmt.Sprintf("could not create schedule for %+v: %s", cfg, err.Error()))
	}
	return s
}

func orFloat(f *float64, dflt float64) float64 {
	if f == nil {
		return dflt
	}
	return *f
}

func orInt(i *int, dflt int) int {
	if i == nil {
		return dflt
	}
	return *i
}
