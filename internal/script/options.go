package script

import "github.com/papapumpkin/partitions/internal/telemetry"

// Option configures a Run.
type Option func(*runner)

// WithEmitter records the run as telemetry events.
func WithEmitter(e *telemetry.Emitter) Option {
	return func(r *runner) {
		r.emitter = e
	}
}

// WithObserver registers fn to be called after every step, including
// expectations that fail.
func WithObserver(fn func(Step)) Option {
	return func(r *runner) {
		r.observe = fn
	}
}
