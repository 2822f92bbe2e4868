package schedule

import (
	"errors"
	"testing"

	"github.com/drakos74/mlkit/internal/metrics"
	"github.com/drakos74/mlkit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type optimizer struct {
	rates []float64
}

func (o *optimizer) SetLearningRate(rate float64) {
	o.rates = append(o.rates, rate)
}

func TestCallback_OnEpochBegin(t *testing.T) {
	opt := &optimizer{}
	cb := NewCallback("callback-test", PiecewiseConstant(), opt)

	for epoch := 0; epoch < 20; epoch++ {
		rate, err := cb.OnEpochBegin(epoch)
		require.NoError(t, err)
		assert.Equal(t, opt.rates[epoch], rate)
	}
	assert.Equal(t, 20, len(opt.rates))
	assert.Equal(t, 0.01, opt.rates[0])
	assert.Equal(t, 0.005, opt.rates[10])
	assert.Equal(t, 0.001, opt.rates[19])

	last, ok := metrics.Observer.Rate("callback-test")
	assert.True(t, ok)
	assert.Equal(t, 0.001, last)

	_, err := cb.OnEpochBegin(-1)
	assert.True(t, errors.Is(err, model.InvalidArgumentErr))
	assert.Equal(t, 20, len(opt.rates))
}

func TestOptimizerFunc(t *testing.T) {
	var current float64
	cb := NewCallback("func-test", DefaultExponentialDecay(), OptimizerFunc(func(rate float64) {
		current = rate
	}))
	_, err := cb.OnEpochBegin(5)
	require.NoError(t, err)
	assert.InDelta(t, 1e-5, current, 1e-15)
}
