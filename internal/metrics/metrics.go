package metrics

import (
	"sync"

	"github.com/drakos74/mlkit/internal/model"
)

// Observer is the process wide metrics recorder.
var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
	rates:      make(map[string]float64),
}

// Metrics records the training helper metrics.
type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
	rates      map[string]float64
}

// LearningRate records the current rate of the given schedule.
func (m *Metrics) LearningRate(schedule string, rate float64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.rates[schedule] = rate
	m.prometheus.LearningRate.WithLabelValues(schedule).Set(rate)
}

// Rate returns the last recorded rate for the given schedule.
func (m *Metrics) Rate(schedule string) (float64, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	r, ok := m.rates[schedule]
	return r, ok
}

// Split adds the number of samples assigned to the given set.
func (m *Metrics) Split(set model.Set, n int) {
	m.prometheus.SplitSamples.WithLabelValues(string(set)).Add(float64(n))
}
