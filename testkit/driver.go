package testkit

import (
	"go.uber.org/zap"

	"github.com/on-the-ground/behavior_testkit/actor"
	"github.com/on-the-ground/behavior_testkit/behavior"
)

const (
	triggerStart   = "start"
	triggerMessage = "message"
	triggerSignal  = "signal"

	outcomeAlive   = "alive"
	outcomeStopped = "stopped"
	outcomeFailed  = "failed"
)

// Semantics supplies how behaviors are started, applied to input and
// reconciled with their predecessor. The driver knows nothing else about
// what a behavior is.
type Semantics[T any] interface {
	Start(initial actor.Behavior[T], ctx actor.Context[T]) (actor.Behavior[T], error)
	InterpretMessage(current actor.Behavior[T], ctx actor.Context[T], msg T) (actor.Behavior[T], error)
	InterpretSignal(current actor.Behavior[T], ctx actor.Context[T], sig actor.Signal) (actor.Behavior[T], error)
	Canonicalize(next, current actor.Behavior[T], ctx actor.Context[T]) (actor.Behavior[T], error)
	IsAlive(b actor.Behavior[T]) bool
}

var _ Semantics[any] = behavior.Interpreter[any]{}

// Driver holds the current behavior and replaces it after every transition.
//
// Errors and panics of the behavior reach the caller unchanged. A failed
// transition leaves the current behavior as it was.
type Driver[T any] struct {
	semantics Semantics[T]
	ctx       actor.Context[T]
	current   actor.Behavior[T]
	metrics   *Metrics
}

// NewDriver starts initial in ctx. Whatever the start asks of ctx happens
// before NewDriver returns.
func NewDriver[T any](initial actor.Behavior[T], ctx actor.Context[T], semantics Semantics[T], metrics *Metrics) (*Driver[T], error) {
	d := &Driver[T]{
		semantics: semantics,
		ctx:       ctx,
		metrics:   metrics,
	}
	started, err := semantics.Start(initial, ctx)
	if err != nil {
		d.observe(triggerStart, outcomeFailed)
		return nil, err
	}
	d.current = started
	d.observe(triggerStart, d.outcome())
	return d, nil
}

// Run interprets msg with the current behavior.
func (d *Driver[T]) Run(msg T) error {
	next, err := d.semantics.InterpretMessage(d.current, d.ctx, msg)
	if err != nil {
		d.observe(triggerMessage, outcomeFailed)
		return err
	}
	return d.advance(triggerMessage, next)
}

// Signal interprets sig with the current behavior.
func (d *Driver[T]) Signal(sig actor.Signal) error {
	next, err := d.semantics.InterpretSignal(d.current, d.ctx, sig)
	if err != nil {
		d.observe(triggerSignal, outcomeFailed)
		return err
	}
	return d.advance(triggerSignal, next)
}

// CurrentBehavior returns the behavior produced by the last successful transition.
func (d *Driver[T]) CurrentBehavior() actor.Behavior[T] { return d.current }

// IsAlive reports whether the semantics consider the current behavior alive.
func (d *Driver[T]) IsAlive() bool { return d.semantics.IsAlive(d.current) }

func (d *Driver[T]) advance(trigger string, next actor.Behavior[T]) error {
	canonical, err := d.semantics.Canonicalize(next, d.current, d.ctx)
	if err != nil {
		d.observe(trigger, outcomeFailed)
		return err
	}
	d.current = canonical
	d.observe(trigger, d.outcome())
	return nil
}

func (d *Driver[T]) outcome() string {
	if d.IsAlive() {
		return outcomeAlive
	}
	return outcomeStopped
}

func (d *Driver[T]) observe(trigger, outcome string) {
	d.metrics.transition(trigger, outcome)
	d.ctx.Log().Debug("behavior transition",
		zap.String("trigger", trigger),
		zap.String("outcome", outcome),
	)
}
