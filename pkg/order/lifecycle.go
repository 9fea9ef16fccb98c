package order

import (
	"fmt"

	"github.com/dmitrymomot/orderkit/pkg/statemachine"
)

// Event triggers a status change.
type Event string

const (
	EventProcess Event = "process"
	EventShip    Event = "ship"
	EventDeliver Event = "deliver"
	EventCancel  Event = "cancel"
)

// lifecycle: pending → processing → shipped → delivered, and cancel from
// pending or processing. Shipped orders can no longer be cancelled.
var lifecycle = statemachine.New[Status, Event, Order]().
	Add(StatusPending, StatusProcessing, EventProcess).
	Add(StatusProcessing, StatusShipped, EventShip).
	Add(StatusShipped, StatusDelivered, EventDeliver).
	Add(StatusPending, StatusCancelled, EventCancel).
	Add(StatusProcessing, StatusCancelled, EventCancel)

// Advance returns a copy of o moved to the status that event leads to.
// o itself is left unchanged, also on error.
func Advance(o Order, event Event) (Order, error) {
	next, err := lifecycle.Next(o.Status, event, o)
	if err != nil {
		return Order{}, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}
	advanced := o.clone()
	advanced.Status = next
	return advanced, nil
}

// Events lists the events accepted in status s.
func Events(s Status) []Event {
	return lifecycle.Events(s)
}
