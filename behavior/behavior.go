// Package behavior provides ready-made behaviors, the marker behaviors a
// transition may return, and the default pure functions that turn a raw
// transition result into the next behavior.
package behavior

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/behavior_testkit/actor"
)

var (
	// ErrIllegalBehavior is returned when a behavior is used where it has no meaning,
	// e.g. interpreting a message with Same or starting with Unhandled.
	ErrIllegalBehavior = errors.New("illegal behavior")

	// ErrBehaviorStopped is returned when a stopped behavior is asked to interpret input.
	ErrBehaviorStopped = errors.New("behavior is stopped")
)

// MessageHandler interprets a message and returns the next behavior.
type MessageHandler[T any] func(ctx actor.Context[T], msg T) (actor.Behavior[T], error)

// SignalHandler interprets a signal and returns the next behavior.
type SignalHandler[T any] func(ctx actor.Context[T], sig actor.Signal) (actor.Behavior[T], error)

type receive[T any] struct {
	onMessage MessageHandler[T]
	onSignal  SignalHandler[T]
}

func (r *receive[T]) Receive(ctx actor.Context[T], msg T) (actor.Behavior[T], error) {
	return r.onMessage(ctx, msg)
}

func (r *receive[T]) ReceiveSignal(ctx actor.Context[T], sig actor.Signal) (actor.Behavior[T], error) {
	if r.onSignal == nil {
		return Unhandled[T](), nil
	}
	return r.onSignal(ctx, sig)
}

// Receive builds a behavior from a message handler. Signals are left unhandled.
func Receive[T any](onMessage MessageHandler[T]) actor.Behavior[T] {
	return &receive[T]{onMessage: onMessage}
}

// ReceiveWithSignals builds a behavior handling both messages and signals.
func ReceiveWithSignals[T any](onMessage MessageHandler[T], onSignal SignalHandler[T]) actor.Behavior[T] {
	return &receive[T]{onMessage: onMessage, onSignal: onSignal}
}

// deferred is expanded by Start with the context it is started in.
type deferred[T any] struct {
	factory func(ctx actor.Context[T]) (actor.Behavior[T], error)
}

func (d *deferred[T]) Receive(actor.Context[T], T) (actor.Behavior[T], error) {
	return nil, fmt.Errorf("%w: setup behavior must be started before it receives messages", ErrIllegalBehavior)
}

func (d *deferred[T]) ReceiveSignal(actor.Context[T], actor.Signal) (actor.Behavior[T], error) {
	return nil, fmt.Errorf("%w: setup behavior must be started before it receives signals", ErrIllegalBehavior)
}

// Setup defers the construction of a behavior until it is started, giving
// the factory access to the context, e.g. to spawn children up front.
func Setup[T any](factory func(ctx actor.Context[T]) (actor.Behavior[T], error)) actor.Behavior[T] {
	return &deferred[T]{factory: factory}
}
