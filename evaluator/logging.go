// File: logging.go
// Role: an optional injected zerolog.Logger, threaded through
// EvaluateDirectNGram/EvaluateSlidingWindow/EvaluateGeneral via a variadic
// Option so existing call sites stay unaffected.

package evaluator

import (
	"github.com/rs/zerolog"

	"github.com/marianhorn/HDC-Assymetric-CiM/hdcmetrics"
)

// Option configures optional, non-semantic behavior (logging, metrics).
type Option func(*options)

type options struct {
	logger  *zerolog.Logger
	metrics *hdcmetrics.Recorder
}

// WithLogger attaches a logger that receives one debug-level event per
// Evaluate* call, reporting the evaluation mode, the number of scored
// windows or rows (Total), the overall accuracy and the mean inter-class
// similarity.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics attaches a Recorder that receives one ObserveEvaluation call
// per Evaluate* call.
func WithMetrics(metrics *hdcmetrics.Recorder) Option {
	return func(o *options) { o.metrics = metrics }
}

func resolveOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) logResult(mode string, res *Result) {
	if res == nil {
		return
	}
	if o.logger != nil {
		o.logger.Debug().
			Str("mode", mode).
			Int("total", res.Total).
			Float64("overall_accuracy", res.OverallAccuracy).
			Float64("mean_inter_class_similarity", res.MeanInterClassSimilarity).
			Msg("evaluation pass complete")
	}
	o.metrics.ObserveEvaluation(mode, res.OverallAccuracy, res.MeanInterClassSimilarity)
}
