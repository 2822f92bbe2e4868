package schedule

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/drakos74/mlkit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {

	type test struct {
		json     string
		schedule Schedule
		err      bool
	}

	tests := map[string]test{
		"exponential-default": {
			json:     `{"type":"exponential"}`,
			schedule: DefaultExponentialDecay(),
		},
		"exponential": {
			json:     `{"type":"exponential","lr":0.1,"s":20}`,
			schedule: ExponentialDecay{LR: 0.1, S: 20},
		},
		"warmup-default": {
			json:     `{"type":"warmup"}`,
			schedule: DefaultWarmup(),
		},
		"warmup-no-sustain": {
			json: `{"type":"warmup","max":0.01,"sustain":0}`,
			schedule: Warmup{
				Start:   1e-4,
				Max:     0.01,
				Min:     1e-5,
				RampUp:  4,
				Sustain: 0,
				Decay:   0.8,
			},
		},
		"warmup-from-zero": {
			json: `{"type":"warmup","start":0,"min":0}`,
			schedule: Warmup{
				Start:   0,
				Max:     1e-3,
				Min:     0,
				RampUp:  4,
				Sustain: 1,
				Decay:   0.8,
			},
		},
		"warmup-zero-decay": {
			json: `{"type":"warmup","decay":0,"rampup":0}`,
			schedule: Warmup{
				Start:   1e-4,
				Max:     1e-3,
				Min:     1e-5,
				RampUp:  0,
				Sustain: 1,
				Decay:   0,
			},
		},
		"exponential-zero-lr": {
			json:     `{"type":"exponential","lr":0}`,
			schedule: ExponentialDecay{LR: 0, S: 5},
		},
		"exponential-zero-span": {
			json: `{"type":"exponential","s":0}`,
			err:  true,
		},
		"piecewise-default": {
			json:     `{"type":"piecewise"}`,
			schedule: PiecewiseConstant(),
		},
		"piecewise": {
			json:     `{"type":"piecewise","boundaries":[10],"values":[0.1,0.01]}`,
			schedule: Piecewise{Boundaries: []int{10}, Values: []float64{0.1, 0.01}},
		},
		"piecewise-invalid": {
			json: `{"type":"piecewise","boundaries":[10]}`,
			err:  true,
		},
		"unknown": {
			json: `{"type":"cosine"}`,
			err:  true,
		},
		"warmup-invalid-decay": {
			json: `{"type":"warmup","decay":2}`,
			err:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var cfg Config
			require.NoError(t, json.Unmarshal([]byte(tt.json), &cfg))
			s, err := New(cfg)
			if tt.err {
				assert.True(t, errors.Is(err, model.InvalidArgumentErr))
				assert.Panics(t, func() {
					MustNew(cfg)
				})
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.schedule, s)
		})
	}
}

func TestNew_ExplicitZero(t *testing.T) {
	zero := 0.0
	s, err := New(Config{Type: WarmupType, Start: &zero, Min: &zero})
	require.NoError(t, err)

	rate, err := s.Rate(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rate)

	rate, err = s.Rate(1000)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, rate, 1e-12)
}
