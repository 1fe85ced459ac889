package testkit

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/behavior_testkit/actor"
	"github.com/on-the-ground/behavior_testkit/behavior"
	"github.com/on-the-ground/behavior_testkit/shared/fifo"
	"github.com/on-the-ground/behavior_testkit/testkit/effect"
	"github.com/on-the-ground/behavior_testkit/testkit/stub"
)

var ErrNoEffects = errors.New("no effects recorded")

var _ actor.Context[any] = (*EffectfulContext[any])(nil)

// EffectfulContext is a stub context that records an effect for every
// capability invoked on it, then lets the stub carry it out. It also drives
// the behavior under test.
//
// The stub's inspection methods, such as ChildInbox or IsWatching, are
// available unchanged. One test owns a kit; it is not safe for concurrent use.
type EffectfulContext[T any] struct {
	*stub.Context[T]

	effects *fifo.Queue[effect.Effect]
	driver  *Driver[T]
	metrics *Metrics
	kitID   uuid.UUID
	logger  *zap.Logger
}

// NewEffectfulContext creates a kit for an actor called name in system and
// starts initial in it. Effects requested while starting are recorded.
func NewEffectfulContext[T any](
	name string,
	initial actor.Behavior[T],
	mailboxCapacity int,
	system actor.System,
	opts ...Option[T],
) (*EffectfulContext[T], error) {
	o := options[T]{semantics: behavior.Interpreter[T]{}}
	for _, opt := range opts {
		opt(&o)
	}

	base, err := stub.New[T](name, mailboxCapacity, system)
	if err != nil {
		return nil, err
	}
	if o.clock != nil {
		base.SetClock(o.clock)
	}

	kit := &EffectfulContext[T]{
		Context: base,
		effects: fifo.New[effect.Effect](),
		kitID:   uuid.New(),
	}
	logger := base.Log()
	if o.logger != nil {
		logger = o.logger
	}
	kit.logger = logger.With(zap.String("kit_id", kit.kitID.String()))

	if o.registerer != nil {
		if kit.metrics, err = NewMetrics(o.registerer); err != nil {
			return nil, fmt.Errorf("failed to register kit metrics: %w", err)
		}
	}

	if kit.driver, err = NewDriver(initial, actor.Context[T](kit), o.semantics, kit.metrics); err != nil {
		return nil, err
	}
	return kit, nil
}

// KitID identifies this kit in log lines, under the kit_id field.
func (k *EffectfulContext[T]) KitID() string { return k.kitID.String() }

// Log returns the system logger annotated with the actor path and kit id.
func (k *EffectfulContext[T]) Log() *zap.Logger { return k.logger }

// Run interprets msg with the current behavior. Errors of the behavior are
// returned as is.
func (k *EffectfulContext[T]) Run(msg T) error {
	return k.driver.Run(msg)
}

// Signal interprets sig with the current behavior.
func (k *EffectfulContext[T]) Signal(sig actor.Signal) error {
	return k.driver.Signal(sig)
}

// CurrentBehavior returns the behavior that will interpret the next input.
func (k *EffectfulContext[T]) CurrentBehavior() actor.Behavior[T] { return k.driver.CurrentBehavior() }

// IsAlive reports whether the current behavior is not the stopped one.
func (k *EffectfulContext[T]) IsAlive() bool { return k.driver.IsAlive() }

// GetEffect removes the oldest recorded effect, or returns ErrNoEffects.
func (k *EffectfulContext[T]) GetEffect() (effect.Effect, error) {
	e, err := k.effects.Dequeue()
	if errors.Is(err, fifo.ErrEmptyQueue) {
		return nil, ErrNoEffects
	}
	return e, err
}

// GetAllEffects removes every recorded effect, oldest first.
func (k *EffectfulContext[T]) GetAllEffects() []effect.Effect {
	return k.effects.DrainAll()
}

// HasEffects reports whether any effect is queued, without removing it.
func (k *EffectfulContext[T]) HasEffects() bool {
	return k.effects.HasPending()
}

// Spawn is recorded before the stub checks the name, so a rejected spawn
// still leaves its effect.
func (k *EffectfulContext[T]) Spawn(b actor.AnyBehavior, name string, props actor.Props) (actor.Ref, error) {
	k.record(effect.Spawned{ChildName: name})
	return k.Context.Spawn(b, name, props)
}

func (k *EffectfulContext[T]) SpawnAnonymous(b actor.AnyBehavior, props actor.Props) actor.Ref {
	ref := k.Context.SpawnAnonymous(b, props)
	k.record(effect.Spawned{ChildName: ref.Path().Name()})
	return ref
}

func (k *EffectfulContext[T]) SpawnAdapter(transform func(any) T, namePrefix string) actor.Ref {
	ref := k.Context.SpawnAdapter(transform, namePrefix)
	k.record(effect.Spawned{ChildName: ref.Path().Name()})
	return ref
}

func (k *EffectfulContext[T]) Stop(child actor.Ref) bool {
	if child != nil {
		k.record(effect.Stopped{ChildName: child.Path().Name()})
	}
	return k.Context.Stop(child)
}

func (k *EffectfulContext[T]) Watch(other actor.Ref) {
	k.record(effect.Watched{Other: other})
	k.Context.Watch(other)
}

func (k *EffectfulContext[T]) Unwatch(other actor.Ref) {
	k.record(effect.Unwatched{Other: other})
	k.Context.Unwatch(other)
}

func (k *EffectfulContext[T]) SetReceiveTimeout(d time.Duration, msg T) {
	k.record(effect.ReceiveTimeoutSet{Duration: d, Message: msg})
	k.Context.SetReceiveTimeout(d, msg)
}

// CancelReceiveTimeout is recorded as a ReceiveTimeoutSet with the undefined
// duration and no message.
func (k *EffectfulContext[T]) CancelReceiveTimeout() {
	k.record(effect.ReceiveTimeoutCancelled())
	k.Context.CancelReceiveTimeout()
}

func (k *EffectfulContext[T]) Tell(target actor.Ref, msg any) {
	k.record(effect.Messaged{Other: target, Message: msg})
	k.Context.Tell(target, msg)
}

func (k *EffectfulContext[T]) Schedule(delay time.Duration, target actor.Ref, msg any) actor.Cancellable {
	k.record(effect.Scheduled{Delay: delay, Target: target, Message: msg})
	return k.Context.Schedule(delay, target, msg)
}

func (k *EffectfulContext[T]) record(e effect.Effect) {
	k.effects.Enqueue(e)
	k.metrics.effectRecorded(e.Kind())
	k.logger.Debug("effect recorded", zap.Stringer("effect", e))
}
