package actor

import (
	"math"
	"strings"
	"time"
)

const (
	scheme        = "testkit://"
	pathDelimiter = "/"
	guardian      = "user"
)

// UndefinedDuration marks a receive timeout that is not armed.
const UndefinedDuration time.Duration = math.MinInt64

// Path is the hierarchical address of an actor, e.g. testkit://sys/user/parent/child.
type Path string

// RootPath returns the path under which top-level actors of system live.
func RootPath(system string) Path {
	return Path(scheme + system + pathDelimiter + guardian)
}

// Child returns the path of the child called name.
func (p Path) Child(name string) Path {
	return Path(string(p) + pathDelimiter + name)
}

// Name returns the last element of the path.
func (p Path) Name() string {
	s := string(p)
	return s[strings.LastIndex(s, pathDelimiter)+1:]
}

// Parent returns the path without its last element.
func (p Path) Parent() Path {
	s := string(p)
	idx := strings.LastIndex(s, pathDelimiter)
	if idx < len(scheme) {
		return p
	}
	return Path(s[:idx])
}

func (p Path) String() string { return string(p) }

// Ref addresses an actor. Two refs denote the same actor incarnation iff
// both Path and UID are equal.
type Ref interface {
	Path() Path
	UID() uint64
}

// Props carries per-child configuration handed to a spawn.
type Props struct {
	// MailboxCapacity bounds the child's mailbox; zero or less means unbounded.
	MailboxCapacity int
}

// EmptyProps is the configuration used when nothing is specified.
func EmptyProps() Props { return Props{} }

// Cancellable is returned for a scheduled message.
type Cancellable interface {
	// Cancel reports whether the scheduled send was prevented by this call.
	Cancel() bool
	IsCancelled() bool
}
