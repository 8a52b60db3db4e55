// Package events defines domain events and the in-process dispatcher that
// decouples entity state changes from side effects such as notifications.
package events

import "time"

// DomainEvent is implemented by every event an aggregate publishes.
type DomainEvent interface {
	// AggregateSID returns the public identifier of the aggregate that
	// produced the event.
	AggregateSID() string

	// EventType returns the event name, e.g. "order.paid".
	EventType() string

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time
}

// BaseEvent provides the common fields of a domain event.
type BaseEvent struct {
	SID  string    `json:"aggregate_sid"`
	Type string    `json:"event_type"`
	At   time.Time `json:"occurred_at"`
}

func (e BaseEvent) AggregateSID() string  { return e.SID }
func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) OccurredAt() time.Time { return e.At }

// Handler processes domain events.
type Handler interface {
	Handle(event DomainEvent) error
}

// Publisher publishes domain events.
type Publisher interface {
	Publish(event DomainEvent) error
	PublishAll(events []DomainEvent) error
}

// Dispatcher routes published events to subscribed handlers.
type Dispatcher interface {
	Publisher

	Subscribe(eventType string, handler Handler) error
	Start() error
	Stop() error
}
