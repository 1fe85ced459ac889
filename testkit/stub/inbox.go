package stub

import (
	"errors"

	"go.uber.org/zap"

	"github.com/on-the-ground/behavior_testkit/actor"
	"github.com/on-the-ground/behavior_testkit/shared/fifo"
)

var ErrEmptyInbox = errors.New("inbox is empty")

// Inbox collects the messages told to a synthetic ref. Nothing consumes
// them except the test.
type Inbox struct {
	owner    actor.Ref
	capacity int
	messages *fifo.Queue[any]
	logger   *zap.Logger
}

// newInbox creates an inbox holding at most capacity messages; capacity
// zero or less means unbounded.
func newInbox(owner actor.Ref, capacity int, logger *zap.Logger) *Inbox {
	return &Inbox{
		owner:    owner,
		capacity: capacity,
		messages: fifo.New[any](),
		logger:   logger,
	}
}

func (i *Inbox) Ref() actor.Ref { return i.owner }

// Receive removes the oldest message.
func (i *Inbox) Receive() (any, error) {
	msg, err := i.messages.Dequeue()
	if errors.Is(err, fifo.ErrEmptyQueue) {
		return nil, ErrEmptyInbox
	}
	return msg, err
}

// ReceiveAll removes every message, oldest first.
func (i *Inbox) ReceiveAll() []any {
	return i.messages.DrainAll()
}

func (i *Inbox) HasMessages() bool { return i.messages.HasPending() }
func (i *Inbox) Len() int          { return i.messages.Len() }

func (i *Inbox) deliver(msg any) bool {
	if i.capacity > 0 && i.messages.Len() >= i.capacity {
		i.logger.Warn("mailbox full, message dropped",
			zap.Stringer("recipient", i.owner.Path()),
			zap.Int("capacity", i.capacity),
			zap.Any("message", msg),
		)
		return false
	}
	i.messages.Enqueue(msg)
	return true
}
