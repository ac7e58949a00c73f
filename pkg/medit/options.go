package medit

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomedit/internal/logging"
)

// options holds resolved reader/writer settings.
type options struct {
	logger *log.Logger
	onSkip func(name string)
}

// Option configures a Read or Write call.
type Option func(*options)

// WithLogger routes warnings (skipped keywords, unrepresentable
// families) to the given logger instead of the package default.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSkipHandler registers a callback invoked with the name of every
// skipped keyword (reading) or unrepresentable family (writing), in
// addition to the warning log.
func WithSkipHandler(fn func(name string)) Option {
	return func(o *options) {
		o.onSkip = fn
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: logging.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// skip records one skipped keyword or family.
func (o *options) skip(name, reason string) {
	o.logger.Warn(reason, logging.FieldKeyword, name)
	if o.onSkip != nil {
		o.onSkip(name)
	}
}
