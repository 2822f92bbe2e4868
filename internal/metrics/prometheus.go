package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "mlkit"

type Prometheus struct {
	LearningRate *prometheus.GaugeVec
	SplitSamples *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		LearningRate: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "learning_rate",
				Help:      "current learning rate per schedule",
			}, []string{"schedule"}),
		SplitSamples: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "split_samples_total",
				Help:      "samples assigned to each set by the balanced split",
			}, []string{"set"}),
	}
}
