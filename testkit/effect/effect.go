// Package effect defines the records a recording context produces, one per
// capability a behavior invoked. Effects are plain values: two effects of
// the same variant with equal fields are equal.
package effect

import (
	"fmt"
	"time"

	"github.com/on-the-ground/behavior_testkit/actor"
)

// Kind names an effect variant.
type Kind string

const (
	KindSpawned           Kind = "spawned"
	KindStopped           Kind = "stopped"
	KindWatched           Kind = "watched"
	KindUnwatched         Kind = "unwatched"
	KindReceiveTimeoutSet Kind = "receive_timeout_set"
	KindMessaged          Kind = "messaged"
	KindScheduled         Kind = "scheduled"
	KindEmpty             Kind = "empty"
)

func (k Kind) String() string { return string(k) }

// Effect is a sealed interface; only the variants of this package implement it.
type Effect interface {
	Kind() Kind
	String() string
	sealedEffect()
}

var (
	_ Effect = Spawned{}
	_ Effect = Stopped{}
	_ Effect = Watched{}
	_ Effect = Unwatched{}
	_ Effect = ReceiveTimeoutSet{}
	_ Effect = Messaged{}
	_ Effect = Scheduled{}
	_ Effect = EmptyEffect{}
)

// Spawned records that a child was created under ChildName.
type Spawned struct {
	ChildName string
}

func (Spawned) Kind() Kind       { return KindSpawned }
func (e Spawned) String() string { return fmt.Sprintf("Spawned(%s)", e.ChildName) }
func (Spawned) sealedEffect()    {}

// Stopped records that a child was asked to stop.
type Stopped struct {
	ChildName string
}

func (Stopped) Kind() Kind       { return KindStopped }
func (e Stopped) String() string { return fmt.Sprintf("Stopped(%s)", e.ChildName) }
func (Stopped) sealedEffect()    {}

// Watched records a watch subscription request.
type Watched struct {
	Other actor.Ref
}

func (Watched) Kind() Kind       { return KindWatched }
func (e Watched) String() string { return fmt.Sprintf("Watched(%s)", refString(e.Other)) }
func (Watched) sealedEffect()    {}

// Unwatched records the cancellation of a watch subscription.
type Unwatched struct {
	Other actor.Ref
}

func (Unwatched) Kind() Kind       { return KindUnwatched }
func (e Unwatched) String() string { return fmt.Sprintf("Unwatched(%s)", refString(e.Other)) }
func (Unwatched) sealedEffect()    {}

// ReceiveTimeoutSet records that a receive timeout was armed. Cancelling the
// timeout is recorded with this variant too, see ReceiveTimeoutCancelled.
type ReceiveTimeoutSet struct {
	Duration time.Duration
	Message  any
}

// ReceiveTimeoutCancelled is the effect recorded for a cancelled receive timeout.
func ReceiveTimeoutCancelled() ReceiveTimeoutSet {
	return ReceiveTimeoutSet{Duration: actor.UndefinedDuration}
}

// IsCancellation reports whether e carries the undefined duration and no message.
func (e ReceiveTimeoutSet) IsCancellation() bool {
	return e.Duration == actor.UndefinedDuration && e.Message == nil
}

func (ReceiveTimeoutSet) Kind() Kind { return KindReceiveTimeoutSet }
func (e ReceiveTimeoutSet) String() string {
	if e.Duration == actor.UndefinedDuration {
		return fmt.Sprintf("ReceiveTimeoutSet(undefined, %v)", e.Message)
	}
	return fmt.Sprintf("ReceiveTimeoutSet(%s, %v)", e.Duration, e.Message)
}
func (ReceiveTimeoutSet) sealedEffect() {}

// Messaged records a send to Other.
type Messaged struct {
	Other   actor.Ref
	Message any
}

func (Messaged) Kind() Kind { return KindMessaged }
func (e Messaged) String() string {
	return fmt.Sprintf("Messaged(%s, %v)", refString(e.Other), e.Message)
}
func (Messaged) sealedEffect() {}

// Scheduled records a send to Target delayed by Delay.
type Scheduled struct {
	Delay   time.Duration
	Target  actor.Ref
	Message any
}

func (Scheduled) Kind() Kind { return KindScheduled }
func (e Scheduled) String() string {
	return fmt.Sprintf("Scheduled(%s, %s, %v)", e.Delay, refString(e.Target), e.Message)
}
func (Scheduled) sealedEffect() {}

// EmptyEffect is an explicit "nothing happened" marker. Capabilities never
// record it; it exists for callers that want one in their expectations.
type EmptyEffect struct{}

func (EmptyEffect) Kind() Kind     { return KindEmpty }
func (EmptyEffect) String() string { return "EmptyEffect" }
func (EmptyEffect) sealedEffect()  {}

func refString(ref actor.Ref) string {
	if ref == nil {
		return "<nil>"
	}
	return ref.Path().String()
}
