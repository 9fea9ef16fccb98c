package statemachine

import (
	"errors"
	"fmt"
)

var (
	// ErrTransition is matched by every error returned from Table.Next.
	ErrTransition = errors.New("transition failed")

	// ErrNoTransition: nothing is declared for the (state, event) pair.
	ErrNoTransition = fmt.Errorf("%w: no transition declared", ErrTransition)

	// ErrGuardRejected: transitions exist but guards blocked all of them.
	ErrGuardRejected = fmt.Errorf("%w: rejected by guards", ErrTransition)
)

// TransitionError names the state and event of a failed Next call.
type TransitionError struct {
	State string
	Event string
	Err   error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s from state %q on event %q", e.Err, e.State, e.Event)
}

func (e *TransitionError) Unwrap() error { return e.Err }

func transitionError(state, event any, err error) *TransitionError {
	return &TransitionError{State: fmt.Sprint(state), Event: fmt.Sprint(event), Err: err}
}
