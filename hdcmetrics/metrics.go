// File: metrics.go
// Role: Recorder, the constructed Prometheus collector set, and its
// ObserveGeneration/ObserveEvaluation/ObserveFitnessEvaluation methods.

package hdcmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds every collector this package exposes. A nil *Recorder is
// valid and every method on it is a no-op, so GA/evaluator callers can
// thread an optional *Recorder exactly like hdclog's injected logger or
// the trainer/evaluator WithLogger option.
type Recorder struct {
	gaGenerationsTotal   prometheus.Counter
	gaBestFitness        prometheus.Gauge
	gaBestAccuracy       prometheus.Gauge
	gaBestSimilarity     prometheus.Gauge
	gaFitnessEvalSeconds prometheus.Histogram

	evalRunsTotal        *prometheus.CounterVec
	evalOverallAccuracy  *prometheus.GaugeVec
	evalMeanInterClassSim *prometheus.GaugeVec
}

// NewRecorder builds and registers a Recorder's collectors against reg.
// Pass prometheus.NewRegistry() for an isolated registry (recommended for
// tests and for embedding alongside a caller's own metrics), or
// prometheus.DefaultRegisterer for a process-wide one.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		gaGenerationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "hdc_ga_generations_total",
			Help: "Total number of GA generations completed.",
		}),
		gaBestFitness: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hdc_ga_best_fitness",
			Help: "Scalar fitness (accuracy in ACCURACY mode, accuracy minus similarity otherwise) of the current generation's best individual.",
		}),
		gaBestAccuracy: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hdc_ga_best_accuracy",
			Help: "Held-out accuracy of the current generation's best individual.",
		}),
		gaBestSimilarity: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hdc_ga_best_similarity",
			Help: "Mean inter-class similarity of the current generation's best individual.",
		}),
		gaFitnessEvalSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "hdc_ga_fitness_evaluation_seconds",
			Help:    "Wall-clock duration of one population's fitness evaluation fan-out.",
			Buckets: prometheus.DefBuckets,
		}),
		evalRunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hdc_evaluation_runs_total",
			Help: "Total number of evaluation passes, by mode.",
		}, []string{"mode"}),
		evalOverallAccuracy: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hdc_evaluation_overall_accuracy",
			Help: "Overall accuracy of the most recent evaluation pass, by mode.",
		}, []string{"mode"}),
		evalMeanInterClassSim: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hdc_evaluation_mean_inter_class_similarity",
			Help: "Mean inter-class similarity of the most recent evaluation pass, by mode.",
		}, []string{"mode"}),
	}
}

// ObserveGeneration records one completed GA generation's best individual.
func (r *Recorder) ObserveGeneration(fitness, accuracy, similarity float64) {
	if r == nil {
		return
	}
	r.gaGenerationsTotal.Inc()
	r.gaBestFitness.Set(fitness)
	r.gaBestAccuracy.Set(accuracy)
	r.gaBestSimilarity.Set(similarity)
}

// ObserveFitnessEvaluation records the wall-clock duration of one
// population's fitness fan-out.
func (r *Recorder) ObserveFitnessEvaluation(d time.Duration) {
	if r == nil {
		return
	}
	r.gaFitnessEvalSeconds.Observe(d.Seconds())
}

// ObserveEvaluation records one evaluator pass's summary statistics.
func (r *Recorder) ObserveEvaluation(mode string, overallAccuracy, meanInterClassSimilarity float64) {
	if r == nil {
		return
	}
	r.evalRunsTotal.WithLabelValues(mode).Inc()
	r.evalOverallAccuracy.WithLabelValues(mode).Set(overallAccuracy)
	r.evalMeanInterClassSim.WithLabelValues(mode).Set(meanInterClassSimilarity)
}
