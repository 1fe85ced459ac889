package stub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/behavior_testkit/testkit/stub"
)

func TestInbox_Receive(t *testing.T) {
	ctx := newContext(t, 10)
	inbox := ctx.SelfInbox()

	_, err := inbox.Receive()
	assert.ErrorIs(t, err, stub.ErrEmptyInbox)

	ctx.Tell(ctx.Self(), "a")
	ctx.Tell(ctx.Self(), "b")
	require.True(t, inbox.HasMessages())

	msg, err := inbox.Receive()
	require.NoError(t, err)
	assert.Equal(t, "a", msg)
	assert.Equal(t, 1, inbox.Len())

	assert.Equal(t, []any{"b"}, inbox.ReceiveAll())
	assert.Equal(t, []any{}, inbox.ReceiveAll())
}
