// Package statemachine provides a typed, immutable-state transition table.
//
// A Table maps (state, event) pairs to target states. It does not hold a
// current state: callers pass the state they have and receive the next one,
// which keeps records that carry their own state (an order status, for
// instance) as plain values.
//
//	t := statemachine.New[Status, Event, Order]().
//	    Add(Pending, Processing, Process).
//	    Add(Pending, Cancelled, Cancel, notPaid)
//
//	next, err := t.Next(current, Process, order)
//
// Several transitions may share a (from, event) pair; the first one whose
// guards all pass wins, so declaration order sets priority. Next fails with
// a *TransitionError wrapping ErrNoTransition when nothing is declared for
// the pair, or ErrGuardRejected when guards blocked every candidate. Both
// match ErrTransition via errors.Is.
//
// A Table is safe for concurrent reads once built.
package statemachine
