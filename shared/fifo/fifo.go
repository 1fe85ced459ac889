package fifo

import (
	"errors"
	"sync"

	list "github.com/bahlo/generic-list-go"
)

var ErrEmptyQueue = errors.New("queue is empty")

// Queue is an unbounded first-in first-out buffer. All methods may be called
// from several goroutines, although its owners use it from one at a time.
type Queue[T any] struct {
	mu   sync.Mutex
	data *list.List[T]
}

func New[T any]() *Queue[T] {
	return &Queue[T]{data: list.New[T]()}
}

func (q *Queue[T]) Enqueue(val T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.data.PushBack(val)
}

// Dequeue removes and returns the oldest element, or ErrEmptyQueue.
func (q *Queue[T]) Dequeue() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	front := q.data.Front()
	if front == nil {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.data.Remove(front), nil
}

// DrainAll removes every element, oldest first. The result is never nil.
func (q *Queue[T]) DrainAll() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	drained := make([]T, 0, q.data.Len())
	for e := q.data.Front(); e != nil; e = e.Next() {
		drained = append(drained, e.Value)
	}
	q.data.Init()
	return drained
}

func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.data.Len()
}

func (q *Queue[T]) HasPending() bool {
	return q.Len() > 0
}
