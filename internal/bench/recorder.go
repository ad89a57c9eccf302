package bench

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statMean  = "mean"
	statStdev = "stdev"
)

// Recorder publishes benchmark timings as gauges on its own registry, so
// repeated runs in one process never collide with the default registry.
type Recorder struct {
	registry *prometheus.Registry
	duration *prometheus.GaugeVec
}

// NewRecorder creates a recorder with an empty registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	return &Recorder{
		registry: reg,
		duration: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "curvefit_bench_duration_ms",
			Help: "Wall time of fitting plus evaluation at every knot, in milliseconds",
		}, []string{"engine", "n", "stat"}),
	}
}

// Observe records every timing of res.
func (r *Recorder) Observe(res *Result) {
	n := strconv.Itoa(res.N)
	for engine, t := range res.Timings {
		r.duration.WithLabelValues(engine, n, statMean).Set(t.Mean)
		r.duration.WithLabelValues(engine, n, statStdev).Set(t.Stdev)
	}
}

// Gatherer exposes the registry for scraping or inspection.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the recorded gauges in the text exposition format,
// suitable for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
