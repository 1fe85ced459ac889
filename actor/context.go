package actor

import (
	"time"

	"go.uber.org/zap"
)

// Behavior is the unit under test: it interprets one message or signal at a
// time and returns the behavior to use for the next one.
//
// Returned errors are failures of the behavior logic itself. Callers that
// drive a behavior must hand them back unchanged.
type Behavior[T any] interface {
	Receive(ctx Context[T], msg T) (Behavior[T], error)
	ReceiveSignal(ctx Context[T], sig Signal) (Behavior[T], error)
}

// AnyBehavior is a Behavior[U] for some message type U. Children are free to
// speak a different protocol than their parent.
type AnyBehavior = any

// System is the handle of the actor system a context belongs to.
type System interface {
	Name() string
	ID() string
	Logger() *zap.Logger
}

// Context is the capability surface available to a behavior while it
// interprets a message or signal.
type Context[T any] interface {
	Self() Ref
	Name() string
	System() System
	Log() *zap.Logger
	MailboxCapacity() int

	// Children lists the live children, ordered by name.
	Children() []Ref
	Child(name string) (Ref, bool)

	// Spawn creates a child under name. Names must be unique among live children.
	Spawn(behavior AnyBehavior, name string, props Props) (Ref, error)
	// SpawnAnonymous creates a child under a generated unique name.
	SpawnAnonymous(behavior AnyBehavior, props Props) Ref
	// SpawnAdapter creates a ref that forwards transform(msg) to this actor.
	// An empty namePrefix yields a fully generated name.
	SpawnAdapter(transform func(any) T, namePrefix string) Ref
	// Stop requests termination of a child; it reports whether child is a
	// child of this actor.
	Stop(child Ref) bool

	Watch(other Ref)
	Unwatch(other Ref)

	// SetReceiveTimeout arms a timeout delivering msg after d of inactivity.
	// A later call replaces an earlier one.
	SetReceiveTimeout(d time.Duration, msg T)
	CancelReceiveTimeout()

	Tell(target Ref, msg any)
	Schedule(delay time.Duration, target Ref, msg any) Cancellable
}
