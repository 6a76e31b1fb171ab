package domain

import "time"

// ---------------------------------------------------------------------------
// Domain event system
// ---------------------------------------------------------------------------

// EventName classifies domain events for routing and filtering.
type EventName string

const (
	// Schedule context events
	EventScheduleCreated EventName = "schedule.event.created"
	EventScheduleUpdated EventName = "schedule.event.updated"
	EventScheduleDeleted EventName = "schedule.event.deleted"

	// Client context events
	EventClientCreated EventName = "client.created"
	EventClientUpdated EventName = "client.updated"

	// Billing context events
	EventRevenueAdjusted EventName = "billing.revenue.adjusted"

	// Notification context events
	EventNotificationSent   EventName = "notification.sent"
	EventNotificationFailed EventName = "notification.failed"
)

// Event is the interface all domain events implement.
type Event interface {
	// Name returns the classified event name.
	Name() EventName
	// OccurredAt returns when the event happened.
	OccurredAt() time.Time
	// AggregateID returns the ID of the entity that produced this event.
	AggregateID() EntityID
	// Payload returns the event-specific data.
	Payload() interface{}
}

// BaseEvent provides a reusable implementation of the Event interface.
type BaseEvent struct {
	EventName EventName   `json:"name"`
	Timestamp time.Time   `json:"timestamp"`
	AggID     EntityID    `json:"aggregate_id"`
	EventData interface{} `json:"data,omitempty"`
}

func (e BaseEvent) Name() EventName       { return e.EventName }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }
func (e BaseEvent) AggregateID() EntityID { return e.AggID }
func (e BaseEvent) Payload() interface{}  { return e.EventData }

// NewEvent creates a new domain event stamped with the current time.
func NewEvent(name EventName, aggregateID EntityID, data interface{}) BaseEvent {
	return BaseEvent{
		EventName: name,
		Timestamp: time.Now().UTC(),
		AggID:     aggregateID,
		EventData: data,
	}
}

// ---------------------------------------------------------------------------
// Event bus — decoupled side-effect dispatch
// ---------------------------------------------------------------------------

// EventHandler processes a domain event. Handlers should be idempotent.
type EventHandler func(Event)

// EventBus dispatches domain events to registered handlers.
type EventBus interface {
	// Publish dispatches an event to all registered handlers.
	Publish(event Event)
	// Subscribe registers a handler for a specific event name.
	Subscribe(name EventName, handler EventHandler)
	// SubscribeAll registers a handler that receives every event.
	SubscribeAll(handler EventHandler)
	// Close shuts down the event bus.
	Close()
}
