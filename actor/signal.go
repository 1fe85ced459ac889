package actor

// Signal is a lifecycle notification delivered to a behavior next to its
// regular messages. The set of signals is closed.
type Signal interface {
	signal()
}

var (
	_ Signal = PreRestart{}
	_ Signal = PostStop{}
	_ Signal = Terminated{}
	_ Signal = ChildFailed{}
)

// PreRestart is delivered before the actor is restarted by its supervisor.
type PreRestart struct{}

func (PreRestart) signal() {}

// PostStop is delivered once the actor has stopped.
type PostStop struct{}

func (PostStop) signal() {}

// Terminated is delivered for a watched actor that stopped.
type Terminated struct {
	Ref Ref
}

func (Terminated) signal() {}

// ChildFailed is delivered for a watched child that stopped with a failure.
type ChildFailed struct {
	Ref   Ref
	Cause error
}

func (ChildFailed) signal() {}
