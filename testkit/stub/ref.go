package stub

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/on-the-ground/behavior_testkit/actor"
)

var (
	_ actor.Ref = Ref{}
	_ actor.Ref = (*AdapterRef)(nil)
)

// Ref is a synthetic actor reference. It is a comparable value, so effects
// holding one compare equal when they name the same incarnation.
type Ref struct {
	path actor.Path
	uid  uint64
}

// NewRef returns the ref of the given incarnation of the actor at path.
func NewRef(path actor.Path, incarnation uint64) Ref {
	return Ref{
		path: path,
		uid:  xxhash.Sum64String(fmt.Sprintf("%s#%d", path, incarnation)),
	}
}

func (r Ref) Path() actor.Path { return r.path }
func (r Ref) UID() uint64      { return r.uid }
func (r Ref) String() string   { return fmt.Sprintf("%s#%d", r.path, r.uid) }

// AdapterRef is returned by SpawnAdapter. Messages told to it are passed
// through its transform and delivered to the owning context.
type AdapterRef struct {
	Ref
	adapt func(any) any
}

// Adapt returns what the owner receives when msg is told to the adapter.
func (a *AdapterRef) Adapt(msg any) any {
	return a.adapt(msg)
}

// SameRef reports whether a and b denote the same actor incarnation.
func SameRef(a, b actor.Ref) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Path() == b.Path() && a.UID() == b.UID()
}
