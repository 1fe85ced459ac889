package fifo_test

import (
	"sync"
	"testing"

	"github.com/on-the-ground/behavior_testkit/shared/fifo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_PreservesEnqueueOrder(t *testing.T) {
	q := fifo.New[int]()
	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}

	first, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 0, first)
	assert.Equal(t, []int{1, 2, 3, 4}, q.DrainAll())
}

func TestQueue_DequeueEmpty(t *testing.T) {
	q := fifo.New[string]()

	v, err := q.Dequeue()
	assert.ErrorIs(t, err, fifo.ErrEmptyQueue)
	assert.Equal(t, "", v)

	q.Enqueue("a")
	_, err = q.Dequeue()
	require.NoError(t, err)
	_, err = q.Dequeue()
	assert.ErrorIs(t, err, fifo.ErrEmptyQueue)
}

func TestQueue_DrainTwice(t *testing.T) {
	q := fifo.New[string]()
	q.Enqueue("a")
	q.Enqueue("b")

	assert.Equal(t, []string{"a", "b"}, q.DrainAll())

	second := q.DrainAll()
	assert.NotNil(t, second)
	assert.Empty(t, second)
}

func TestQueue_HasPendingDoesNotMutate(t *testing.T) {
	q := fifo.New[int]()
	assert.False(t, q.HasPending())

	q.Enqueue(7)
	assert.True(t, q.HasPending())
	assert.True(t, q.HasPending())
	assert.Equal(t, 1, q.Len())
}

func TestQueue_ConcurrentEnqueue(t *testing.T) {
	q := fifo.New[int]()
	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Enqueue(i*100 + j)
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, q.DrainAll(), 1000)
	assert.False(t, q.HasPending())
}
