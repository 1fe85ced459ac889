package behavior

import (
	"fmt"

	"github.com/on-the-ground/behavior_testkit/actor"
)

// IsAlive reports whether b is anything but the terminal behavior.
func IsAlive[T any](b actor.Behavior[T]) bool {
	_, isStopped := b.(stopped[T])
	return !isStopped
}

// IsUnhandled reports whether b is the Unhandled marker.
func IsUnhandled[T any](b actor.Behavior[T]) bool {
	_, ok := b.(unhandled[T])
	return ok
}

// ValidateAsInitial rejects behaviors that only make sense relative to a
// previous behavior.
func ValidateAsInitial[T any](b actor.Behavior[T]) error {
	switch b.(type) {
	case nil:
		return fmt.Errorf("%w: nil is not a valid initial behavior", ErrIllegalBehavior)
	case same[T], unhandled[T]:
		return fmt.Errorf("%w: %T is not a valid initial behavior", ErrIllegalBehavior, b)
	}
	return nil
}

// Start expands Setup behaviors, repeatedly, until a concrete one remains.
func Start[T any](b actor.Behavior[T], ctx actor.Context[T]) (actor.Behavior[T], error) {
	for {
		if err := ValidateAsInitial(b); err != nil {
			return nil, err
		}
		d, ok := b.(*deferred[T])
		if !ok {
			return b, nil
		}
		next, err := d.factory(ctx)
		if err != nil {
			return nil, err
		}
		b = next
	}
}

// Canonicalize reconciles the raw result of a transition with the behavior
// that produced it: Same and Unhandled resolve to current, Setup behaviors
// are started, anything else replaces current.
func Canonicalize[T any](next, current actor.Behavior[T], ctx actor.Context[T]) (actor.Behavior[T], error) {
	switch next.(type) {
	case nil:
		return nil, fmt.Errorf("%w: transition returned a nil behavior", ErrIllegalBehavior)
	case same[T], unhandled[T]:
		return current, nil
	case *deferred[T]:
		return Start(next, ctx)
	}
	return next, nil
}

// Interpreter bundles the default transition functions. Its zero value is ready to use.
type Interpreter[T any] struct{}

func (Interpreter[T]) Start(initial actor.Behavior[T], ctx actor.Context[T]) (actor.Behavior[T], error) {
	return Start(initial, ctx)
}

func (Interpreter[T]) InterpretMessage(current actor.Behavior[T], ctx actor.Context[T], msg T) (actor.Behavior[T], error) {
	return current.Receive(ctx, msg)
}

func (Interpreter[T]) InterpretSignal(current actor.Behavior[T], ctx actor.Context[T], sig actor.Signal) (actor.Behavior[T], error) {
	return current.ReceiveSignal(ctx, sig)
}

func (Interpreter[T]) Canonicalize(next, current actor.Behavior[T], ctx actor.Context[T]) (actor.Behavior[T], error) {
	return Canonicalize(next, current, ctx)
}

func (Interpreter[T]) IsAlive(b actor.Behavior[T]) bool {
	return IsAlive(b)
}
