// File: logging.go
// Role: an optional injected zerolog.Logger, threaded through Train/
// TrainRolling/TrainGeneral via a variadic Option so existing call sites
// stay unaffected.

package trainer

import "github.com/rs/zerolog"

// Option configures optional, non-semantic behavior (currently: logging).
type Option func(*options)

type options struct {
	logger *zerolog.Logger
}

// WithLogger attaches a logger that receives one debug-level event per
// Train/TrainRolling/TrainGeneral call, reporting the sample count and the
// AssocMem's configured class count K.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func resolveOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) logRun(phase string, samples int, mem interface{ K() int }) {
	if o.logger == nil {
		return
	}
	o.logger.Debug().Str("phase", phase).Int("samples", samples).Int("classes", mem.K()).Msg("training pass complete")
}
