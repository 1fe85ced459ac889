// Package stub implements actor.Context without an actor runtime.
//
// Every capability returns immediately with a synthetic result: spawned
// children get refs and inboxes but never run, scheduled messages never fire
// and receive timeouts are only remembered. The bookkeeping that remains,
// such as live child names, watched refs, the armed timeout and delivered
// messages, can be inspected by tests.
package stub
