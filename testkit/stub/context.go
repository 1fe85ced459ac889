package stub

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"

	"github.com/on-the-ground/behavior_testkit/actor"
	"github.com/on-the-ground/behavior_testkit/config"
)

var (
	ErrDuplicateChildName = errors.New("duplicate child name")
	ErrInvalidChildName   = errors.New("invalid child name")
)

var _ actor.Context[any] = (*Context[any])(nil)

type watchKey struct {
	path actor.Path
	uid  uint64
}

func keyOf(ref actor.Ref) watchKey {
	return watchKey{path: ref.Path(), uid: ref.UID()}
}

// Context is a synchronous actor.Context with synthetic results. It is meant
// for one test at a time and is not safe for concurrent use.
type Context[T any] struct {
	name            string
	self            Ref
	system          actor.System
	logger          *zap.Logger
	mailboxCapacity int

	selfInbox    *Inbox
	children     *registry
	incarnations map[string]uint64
	names        nameGenerator
	watching     map[watchKey]actor.Ref

	timeout        time.Duration
	timeoutMessage T

	now func() time.Time
}

// New creates the context of a top-level actor called name in system. The
// self inbox holds at most mailboxCapacity messages. A nil system is replaced
// by a default one that discards logs.
func New[T any](name string, mailboxCapacity int, system actor.System) (*Context[T], error) {
	if name == "" || strings.Contains(name, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChildName, name)
	}
	if system == nil {
		system = NewSystem(config.DefaultSystemName, nil)
	}
	children, err := newRegistry()
	if err != nil {
		return nil, err
	}

	self := NewRef(actor.RootPath(system.Name()).Child(name), 0)
	logger := system.Logger().With(zap.Stringer("actor", self.Path()))
	return &Context[T]{
		name:            name,
		self:            self,
		system:          system,
		logger:          logger,
		mailboxCapacity: mailboxCapacity,
		selfInbox:       newInbox(self, mailboxCapacity, logger),
		children:        children,
		incarnations:    make(map[string]uint64),
		watching:        make(map[watchKey]actor.Ref),
		timeout:         actor.UndefinedDuration,
		now:             time.Now,
	}, nil
}

func (c *Context[T]) Self() actor.Ref      { return c.self }
func (c *Context[T]) Name() string         { return c.name }
func (c *Context[T]) System() actor.System { return c.system }
func (c *Context[T]) Log() *zap.Logger     { return c.logger }
func (c *Context[T]) MailboxCapacity() int { return c.mailboxCapacity }
func (c *Context[T]) SelfInbox() *Inbox    { return c.selfInbox }

// IsWatching reports whether ref is watched.
func (c *Context[T]) IsWatching(ref actor.Ref) bool {
	if ref == nil {
		return false
	}
	_, ok := c.watching[keyOf(ref)]
	return ok
}

func (c *Context[T]) Children() []actor.Ref {
	rows, err := c.children.list()
	if err != nil {
		panic(fmt.Sprintf("child registry: %v", err))
	}
	refs := make([]actor.Ref, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, row.Ref)
	}
	return refs
}

func (c *Context[T]) Child(name string) (actor.Ref, bool) {
	row := c.row(name)
	if row == nil {
		return nil, false
	}
	return row.Ref, true
}

// ChildInbox returns the inbox of the live child, or adapter, called name.
func (c *Context[T]) ChildInbox(name string) (*Inbox, bool) {
	row := c.row(name)
	if row == nil {
		return nil, false
	}
	return row.Inbox, true
}

// ChildBehavior returns the behavior the live child called name was spawned
// with. Adapters have none.
func (c *Context[T]) ChildBehavior(name string) (actor.AnyBehavior, bool) {
	row := c.row(name)
	if row == nil || row.Behavior == nil {
		return nil, false
	}
	return row.Behavior, true
}

// ReceiveTimeout returns the armed timeout, or actor.UndefinedDuration and
// the zero message when none is armed.
func (c *Context[T]) ReceiveTimeout() (time.Duration, T) {
	return c.timeout, c.timeoutMessage
}

func (c *Context[T]) Spawn(behavior actor.AnyBehavior, name string, props actor.Props) (actor.Ref, error) {
	if name == "" || strings.HasPrefix(name, anonymousPrefix) || strings.Contains(name, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChildName, name)
	}
	row := c.newChild(name, behavior, props)
	inserted, err := c.children.insertIfAbsent(row)
	if err != nil {
		return nil, fmt.Errorf("failed to register child %q: %w", name, err)
	} else if !inserted {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateChildName, name)
	}
	c.incarnations[name]++
	c.logger.Debug("child spawned", zap.String("child", name))
	return row.Ref, nil
}

func (c *Context[T]) SpawnAnonymous(behavior actor.AnyBehavior, props actor.Props) actor.Ref {
	row := c.register(c.names.anonymous, func(name string) *child {
		return c.newChild(name, behavior, props)
	})
	c.logger.Debug("anonymous child spawned", zap.String("child", row.Name))
	return row.Ref
}

// SpawnAdapter panics with ErrInvalidChildName if namePrefix contains '/'.
func (c *Context[T]) SpawnAdapter(transform func(any) T, namePrefix string) actor.Ref {
	if strings.Contains(namePrefix, "/") {
		panic(fmt.Errorf("%w: adapter prefix %q", ErrInvalidChildName, namePrefix))
	}
	row := c.register(func() string { return c.names.adapter(namePrefix) }, func(name string) *child {
		row := c.newChild(name, nil, actor.EmptyProps())
		row.Ref = &AdapterRef{
			Ref:   row.Ref.(Ref),
			adapt: func(msg any) any { return transform(msg) },
		}
		row.Inbox.owner = row.Ref
		return row
	})
	c.logger.Debug("message adapter spawned", zap.String("adapter", row.Name))
	return row.Ref
}

// Stop forgets the child denoted by ref. It reports false for refs that are
// not live children of this context.
func (c *Context[T]) Stop(ref actor.Ref) bool {
	if ref == nil || ref.Path().Parent() != c.self.Path() {
		return false
	}
	removed, err := c.children.removeIf(ref.Path().Name(), func(row *child) bool {
		return SameRef(row.Ref, ref)
	})
	if err != nil {
		panic(fmt.Sprintf("child registry: %v", err))
	}
	if removed {
		c.logger.Debug("child stopped", zap.Stringer("child", ref.Path()))
	}
	return removed
}

func (c *Context[T]) Watch(other actor.Ref) {
	if other == nil {
		return
	}
	c.watching[keyOf(other)] = other
}

func (c *Context[T]) Unwatch(other actor.Ref) {
	if other == nil {
		return
	}
	delete(c.watching, keyOf(other))
}

func (c *Context[T]) SetReceiveTimeout(d time.Duration, msg T) {
	c.timeout, c.timeoutMessage = d, msg
}

func (c *Context[T]) CancelReceiveTimeout() {
	var zero T
	c.timeout, c.timeoutMessage = actor.UndefinedDuration, zero
}

// Tell delivers msg to the inbox of target when target is this actor or one
// of its live children. Adapters also deliver the transformed message to the
// self inbox. Messages to any other ref are dropped.
func (c *Context[T]) Tell(target actor.Ref, msg any) {
	if SameRef(target, c.self) {
		c.selfInbox.deliver(msg)
		return
	}
	row := c.liveChild(target)
	if row == nil {
		c.logger.Debug("message to unknown ref dropped", zap.Any("message", msg))
		return
	}
	row.Inbox.deliver(msg)
	if adapter, ok := row.Ref.(*AdapterRef); ok {
		c.selfInbox.deliver(adapter.Adapt(msg))
	}
}

func (c *Context[T]) Schedule(delay time.Duration, target actor.Ref, msg any) actor.Cancellable {
	now := c.now()
	return &Scheduled{
		Delay:   delay,
		Target:  target,
		Message: msg,
		window:  timespan.BetweenTimes(now, now.Add(delay)),
	}
}

// SetClock replaces the clock that anchors the windows of scheduled sends.
// The default is time.Now.
func (c *Context[T]) SetClock(now func() time.Time) {
	c.now = now
}

func (c *Context[T]) newChild(name string, behavior actor.AnyBehavior, props actor.Props) *child {
	ref := NewRef(c.self.Path().Child(name), c.incarnations[name])
	return &child{
		Name:     name,
		Ref:      ref,
		Behavior: behavior,
		Props:    props,
		Inbox:    newInbox(ref, props.MailboxCapacity, c.logger),
	}
}

// register inserts the child built for the first generated name that is free.
func (c *Context[T]) register(nextName func() string, build func(name string) *child) *child {
	for {
		row := build(nextName())
		inserted, err := c.children.insertIfAbsent(row)
		if err != nil {
			panic(fmt.Sprintf("child registry: %v", err))
		}
		if inserted {
			c.incarnations[row.Name]++
			return row
		}
	}
}

func (c *Context[T]) row(name string) *child {
	row, err := c.children.lookup(name)
	if err != nil {
		panic(fmt.Sprintf("child registry: %v", err))
	}
	return row
}

func (c *Context[T]) liveChild(ref actor.Ref) *child {
	if ref == nil || ref.Path().Parent() != c.self.Path() {
		return nil
	}
	row := c.row(ref.Path().Name())
	if row == nil || !SameRef(row.Ref, ref) {
		return nil
	}
	return row
}

// Scheduled is the handle of a scheduled send. No timer backs it, so there
// is nothing left to cancel.
type Scheduled struct {
	Delay   time.Duration
	Target  actor.Ref
	Message any
	window  timespan.TimeSpan
}

func (s *Scheduled) Cancel() bool      { return false }
func (s *Scheduled) IsCancelled() bool { return true }

// Window spans from the moment of scheduling, as read from the context's
// clock, to the moment the send was due.
func (s *Scheduled) Window() timespan.TimeSpan { return s.window }
