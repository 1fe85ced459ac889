package effect_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/behavior_testkit/actor"
	"github.com/on-the-ground/behavior_testkit/testkit/effect"
	"github.com/on-the-ground/behavior_testkit/testkit/stub"
)

func TestEffect_KindAndString(t *testing.T) {
	ref := stub.NewRef(actor.RootPath("sys").Child("a"), 0)

	tests := []struct {
		effect effect.Effect
		kind   effect.Kind
		str    string
	}{
		{effect.Spawned{ChildName: "a"}, effect.KindSpawned, "Spawned(a)"},
		{effect.Stopped{ChildName: "a"}, effect.KindStopped, "Stopped(a)"},
		{effect.Watched{Other: ref}, effect.KindWatched, "Watched(testkit://sys/user/a)"},
		{effect.Unwatched{Other: nil}, effect.KindUnwatched, "Unwatched(<nil>)"},
		{effect.ReceiveTimeoutSet{Duration: time.Second, Message: "x"}, effect.KindReceiveTimeoutSet, "ReceiveTimeoutSet(1s, x)"},
		{effect.ReceiveTimeoutCancelled(), effect.KindReceiveTimeoutSet, "ReceiveTimeoutSet(undefined, <nil>)"},
		{effect.Messaged{Other: ref, Message: 1}, effect.KindMessaged, "Messaged(testkit://sys/user/a, 1)"},
		{effect.Scheduled{Delay: time.Minute, Target: ref, Message: "t"}, effect.KindScheduled, "Scheduled(1m0s, testkit://sys/user/a, t)"},
		{effect.EmptyEffect{}, effect.KindEmpty, "EmptyEffect"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.effect.Kind())
			assert.Equal(t, tt.str, tt.effect.String())
		})
	}
}

func TestEffect_ValueEquality(t *testing.T) {
	path := actor.RootPath("sys").Child("a")

	assert.Equal(t, effect.Effect(effect.Spawned{ChildName: "a"}), effect.Effect(effect.Spawned{ChildName: "a"}))
	assert.NotEqual(t, effect.Effect(effect.Spawned{ChildName: "a"}), effect.Effect(effect.Stopped{ChildName: "a"}))
	assert.True(t, effect.Watched{Other: stub.NewRef(path, 0)} == effect.Watched{Other: stub.NewRef(path, 0)})
	assert.False(t, effect.Watched{Other: stub.NewRef(path, 0)} == effect.Watched{Other: stub.NewRef(path, 1)})
}

func TestReceiveTimeoutSet_IsCancellation(t *testing.T) {
	assert.True(t, effect.ReceiveTimeoutCancelled().IsCancellation())
	assert.True(t, effect.ReceiveTimeoutSet{Duration: actor.UndefinedDuration}.IsCancellation())
	assert.False(t, effect.ReceiveTimeoutSet{Duration: actor.UndefinedDuration, Message: "x"}.IsCancellation())
	assert.False(t, effect.ReceiveTimeoutSet{Duration: time.Second}.IsCancellation())
}
