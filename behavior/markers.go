package behavior

import (
	"fmt"

	"github.com/on-the-ground/behavior_testkit/actor"
)

var (
	_ actor.Behavior[any] = same[any]{}
	_ actor.Behavior[any] = unhandled[any]{}
	_ actor.Behavior[any] = stopped[any]{}
	_ actor.Behavior[any] = empty[any]{}
	_ actor.Behavior[any] = ignore[any]{}
)

type same[T any] struct{}

func (same[T]) Receive(actor.Context[T], T) (actor.Behavior[T], error) {
	return nil, fmt.Errorf("%w: cannot interpret a message with Same", ErrIllegalBehavior)
}

func (same[T]) ReceiveSignal(actor.Context[T], actor.Signal) (actor.Behavior[T], error) {
	return nil, fmt.Errorf("%w: cannot interpret a signal with Same", ErrIllegalBehavior)
}

// Same keeps the current behavior.
func Same[T any]() actor.Behavior[T] { return same[T]{} }

type unhandled[T any] struct{}

func (unhandled[T]) Receive(actor.Context[T], T) (actor.Behavior[T], error) {
	return nil, fmt.Errorf("%w: cannot interpret a message with Unhandled", ErrIllegalBehavior)
}

func (unhandled[T]) ReceiveSignal(actor.Context[T], actor.Signal) (actor.Behavior[T], error) {
	return nil, fmt.Errorf("%w: cannot interpret a signal with Unhandled", ErrIllegalBehavior)
}

// Unhandled keeps the current behavior and reports the input as not handled.
func Unhandled[T any]() actor.Behavior[T] { return unhandled[T]{} }

type stopped[T any] struct{}

func (stopped[T]) Receive(actor.Context[T], T) (actor.Behavior[T], error) {
	return nil, fmt.Errorf("%w: cannot interpret a message", ErrBehaviorStopped)
}

func (stopped[T]) ReceiveSignal(actor.Context[T], actor.Signal) (actor.Behavior[T], error) {
	return nil, fmt.Errorf("%w: cannot interpret a signal", ErrBehaviorStopped)
}

// Stopped is the terminal behavior.
func Stopped[T any]() actor.Behavior[T] { return stopped[T]{} }

type empty[T any] struct{}

func (empty[T]) Receive(actor.Context[T], T) (actor.Behavior[T], error) {
	return Unhandled[T](), nil
}

func (empty[T]) ReceiveSignal(actor.Context[T], actor.Signal) (actor.Behavior[T], error) {
	return Unhandled[T](), nil
}

// Empty treats every input as unhandled.
func Empty[T any]() actor.Behavior[T] { return empty[T]{} }

type ignore[T any] struct{}

func (ignore[T]) Receive(actor.Context[T], T) (actor.Behavior[T], error) {
	return Same[T](), nil
}

func (ignore[T]) ReceiveSignal(actor.Context[T], actor.Signal) (actor.Behavior[T], error) {
	return Same[T](), nil
}

// Ignore swallows every input.
func Ignore[T any]() actor.Behavior[T] { return ignore[T]{} }
