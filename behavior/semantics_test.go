package behavior_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/behavior_testkit/actor"
	"github.com/on-the-ground/behavior_testkit/behavior"
)

func echo() actor.Behavior[string] {
	return behavior.Receive(func(actor.Context[string], string) (actor.Behavior[string], error) {
		return behavior.Same[string](), nil
	})
}

func TestIsAlive(t *testing.T) {
	assert.True(t, behavior.IsAlive(echo()))
	assert.True(t, behavior.IsAlive(behavior.Empty[string]()))
	assert.False(t, behavior.IsAlive(behavior.Stopped[string]()))
}

func TestValidateAsInitial(t *testing.T) {
	assert.NoError(t, behavior.ValidateAsInitial(echo()))
	assert.NoError(t, behavior.ValidateAsInitial(behavior.Stopped[string]()))
	assert.ErrorIs(t, behavior.ValidateAsInitial[string](nil), behavior.ErrIllegalBehavior)
	assert.ErrorIs(t, behavior.ValidateAsInitial(behavior.Same[string]()), behavior.ErrIllegalBehavior)
	assert.ErrorIs(t, behavior.ValidateAsInitial(behavior.Unhandled[string]()), behavior.ErrIllegalBehavior)
}

func TestStart_ExpandsNestedSetup(t *testing.T) {
	target := echo()
	var calls int
	nested := behavior.Setup(func(actor.Context[string]) (actor.Behavior[string], error) {
		calls++
		return behavior.Setup(func(actor.Context[string]) (actor.Behavior[string], error) {
			calls++
			return target, nil
		}), nil
	})

	started, err := behavior.Start(nested, nil)
	require.NoError(t, err)
	assert.Same(t, target, started)
	assert.Equal(t, 2, calls)
}

func TestStart_SetupFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := behavior.Start(behavior.Setup(func(actor.Context[string]) (actor.Behavior[string], error) {
		return nil, boom
	}), nil)
	assert.Same(t, boom, err)

	_, err = behavior.Start(behavior.Setup(func(actor.Context[string]) (actor.Behavior[string], error) {
		return behavior.Same[string](), nil
	}), nil)
	assert.ErrorIs(t, err, behavior.ErrIllegalBehavior)
}

func TestCanonicalize(t *testing.T) {
	current := echo()
	next := echo()

	tests := []struct {
		name string
		next actor.Behavior[string]
		want actor.Behavior[string]
	}{
		{"same keeps current", behavior.Same[string](), current},
		{"unhandled keeps current", behavior.Unhandled[string](), current},
		{"new behavior replaces current", next, next},
		{"stopped replaces current", behavior.Stopped[string](), behavior.Stopped[string]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := behavior.Canonicalize(tt.next, current, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := behavior.Canonicalize(nil, current, nil)
	assert.ErrorIs(t, err, behavior.ErrIllegalBehavior)
}

func TestCanonicalize_StartsSetup(t *testing.T) {
	target := echo()
	got, err := behavior.Canonicalize(behavior.Setup(func(actor.Context[string]) (actor.Behavior[string], error) {
		return target, nil
	}), echo(), nil)
	require.NoError(t, err)
	assert.Same(t, target, got)
}

func TestIsUnhandled(t *testing.T) {
	assert.True(t, behavior.IsUnhandled(behavior.Unhandled[int]()))
	assert.False(t, behavior.IsUnhandled(behavior.Same[int]()))
}
