// Package actor declares the contract between a behavior under test and the
// context that executes it.
//
// A behavior is a state machine: every message or lifecycle signal it
// interprets yields the next behavior. While interpreting, a behavior may ask
// its Context for capabilities such as spawning or stopping children,
// watching peers, arming a receive timeout, sending or scheduling messages.
//
// Nothing in this package executes anything. Runtimes, and the synchronous
// test doubles in the testkit packages, provide the implementations.
package actor
