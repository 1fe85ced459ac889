// Package testkit runs a behavior synchronously, one message or signal at a
// time, and records every capability the behavior invokes as an effect.
//
// A typical test builds the kit, injects input and asserts on the effects:
//
//	kit, err := testkit.NewEffectfulContext("greeter", greeter(), 100, stub.NewSystem("test", nil))
//	require.NoError(t, err)
//	require.NoError(t, kit.Run("hello"))
//	assert.Equal(t, []effect.Effect{effect.Spawned{ChildName: "A"}}, kit.GetAllEffects())
//
// Capabilities have the synthetic results of the stub package; effects are
// recorded in the order the behavior invoked them.
package testkit
