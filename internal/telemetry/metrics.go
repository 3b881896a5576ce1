package telemetry

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/grovetools/codeclean/internal/lineio"
	"github.com/grovetools/codeclean/internal/transform"
)

// Recorder collects the counters of codeclean runs in its own registry.
type Recorder struct {
	reg *prometheus.Registry

	linesRead    *prometheus.CounterVec
	linesWritten *prometheus.CounterVec
	linesSkipped *prometheus.CounterVec
	parseErrors  *prometheus.CounterVec
	ioErrors     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with all codeclean metrics registered.
func NewRecorder() *Recorder {
	labels := []string{"transform"}
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		linesRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "codeclean",
			Name:      "lines_read_total",
			Help:      "Input lines read.",
		}, labels),
		linesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "codeclean",
			Name:      "lines_written_total",
			Help:      "Output lines written.",
		}, labels),
		linesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "codeclean",
			Name:      "lines_skipped_total",
			Help:      "Input lines dropped by the skip policy.",
		}, labels),
		parseErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "codeclean",
			Name:      "parse_errors_total",
			Help:      "Runs aborted by a line that could not be transformed.",
		}, labels),
		ioErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "codeclean",
			Name:      "io_errors_total",
			Help:      "Runs aborted by an I/O failure.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "codeclean",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, labels),
	}
	r.reg.MustRegister(r.linesRead, r.linesWritten, r.linesSkipped, r.parseErrors, r.ioErrors, r.duration)
	return r
}

// Observe records the outcome of one run.
func (r *Recorder) Observe(stats lineio.Stats, err error) {
	name := stats.Transform
	r.linesRead.WithLabelValues(name).Add(float64(stats.LinesRead))
	r.linesWritten.WithLabelValues(name).Add(float64(stats.LinesWritten))
	r.linesSkipped.WithLabelValues(name).Add(float64(stats.LinesSkipped))
	r.duration.WithLabelValues(name).Observe(stats.Duration.Seconds())

	var perr *transform.ParseError
	var ioErr *lineio.IOError
	switch {
	case errors.As(err, &perr):
		r.parseErrors.WithLabelValues(name).Inc()
	case errors.As(err, &ioErr):
		r.ioErrors.WithLabelValues(name).Inc()
	}
}

// Gatherer exposes the registry, e.g. for promhttp or tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile writes the metrics in the textfile collector format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
