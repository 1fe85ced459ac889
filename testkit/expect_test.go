package testkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/behavior_testkit/actor"
	"github.com/on-the-ground/behavior_testkit/behavior"
	"github.com/on-the-ground/behavior_testkit/shared/helper"
	"github.com/on-the-ground/behavior_testkit/testkit"
	"github.com/on-the-ground/behavior_testkit/testkit/effect"
)

func TestExpectEffect(t *testing.T) {
	kit := newKit(t, spawnsAOnStart())

	spawned, err := testkit.ExpectEffect[effect.Spawned](kit)
	require.NoError(t, err)
	assert.Equal(t, "A", spawned.ChildName)

	_, err = testkit.ExpectEffect[effect.Spawned](kit)
	assert.ErrorIs(t, err, testkit.ErrNoEffects)
}

func TestExpectEffect_WrongVariant(t *testing.T) {
	kit := newKit(t, spawnsAOnStart())

	_, err := testkit.ExpectEffect[effect.Stopped](kit)
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)
	// the mismatching effect is consumed
	assert.False(t, kit.HasEffects())
}

func TestMustExpectEffect(t *testing.T) {
	kit := newKit(t, behavior.Receive(func(ctx actor.Context[string], msg string) (actor.Behavior[string], error) {
		ctx.Watch(ctx.Self())
		return behavior.Same[string](), nil
	}))

	assert.Panics(t, func() { testkit.MustExpectEffect[effect.Watched](kit) })

	require.NoError(t, kit.Run("watch"))
	watched := testkit.MustExpectEffect[effect.Watched](kit)
	assert.Equal(t, kit.Self(), watched.Other)
	assert.True(t, kit.IsWatching(kit.Self()))
}
