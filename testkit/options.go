package testkit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type options[T any] struct {
	semantics  Semantics[T]
	registerer prometheus.Registerer
	logger     *zap.Logger
	clock      func() time.Time
}

type Option[T any] func(*options[T])

// WithSemantics replaces the default behavior semantics.
func WithSemantics[T any](s Semantics[T]) Option[T] {
	return func(o *options[T]) { o.semantics = s }
}

// WithRegisterer counts recorded effects and transitions in reg.
func WithRegisterer[T any](reg prometheus.Registerer) Option[T] {
	return func(o *options[T]) { o.registerer = reg }
}

// WithLogger logs through logger instead of the system logger.
func WithLogger[T any](logger *zap.Logger) Option[T] {
	return func(o *options[T]) { o.logger = logger }
}

// WithClock anchors the windows of scheduled sends to now instead of the wall clock.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(o *options[T]) { o.clock = now }
}
