package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// DefaultPort is the default port for the metrics endpoint.
const DefaultPort = 6021

func init() {
	prometheus.MustRegister(Observer.prometheus.LearningRate)
	prometheus.MustRegister(Observer.prometheus.SplitSamples)
}

// Handler exposes the registered metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve exposes the metrics on the given port in the background.
func Serve(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
		if err != nil {
			log.Error().Err(err).Int("port", port).Msg("metrics server stopped")
		}
	}()
	log.Info().Int("port", port).Msg("serving metrics")
}
