package testkit

import (
	"github.com/on-the-ground/behavior_testkit/shared/helper"
	"github.com/on-the-ground/behavior_testkit/testkit/effect"
)

// ExpectEffect removes the oldest effect and asserts it is an E, e.g.
//
//	spawned, err := testkit.ExpectEffect[effect.Spawned](kit)
//
// A mismatch fails with helper.ErrUnexpectedType, an empty queue with ErrNoEffects.
// Either way the effect is consumed.
func ExpectEffect[E effect.Effect, T any](kit *EffectfulContext[T]) (E, error) {
	return helper.GetTypedValueOf[E](func() (any, error) {
		return kit.GetEffect()
	})
}

// MustExpectEffect is ExpectEffect panicking on failure.
func MustExpectEffect[E effect.Effect, T any](kit *EffectfulContext[T]) E {
	return helper.MustGetTypedValue[E](func() (any, error) {
		return kit.GetEffect()
	})
}
