// Package schedule defines the scheduling/billing bounded context:
// clients, service packs, calendar events and the notification settings.
// JSON field names follow the backup wire format (camelCase).
package schedule

import (
	"strings"
	"time"

	"github.com/miroma-app/miroma/pkg/domain"
)

// ---------------------------------------------------------------------------
// Event type — Portuguese wire labels
// ---------------------------------------------------------------------------

// EventType classifies a calendar event. The values are the labels the
// conversational model emits and the backup format stores.
type EventType string

const (
	TypeWork     EventType = "Trabalho"
	TypePersonal EventType = "Pessoal"
	TypeOrder    EventType = "Encomenda"
	TypeEvent    EventType = "Evento"
)

// ParseEventType maps a free-text label to an EventType.
// Unrecognized labels fall back to TypePersonal.
func ParseEventType(label string) EventType {
	switch strings.TrimSpace(label) {
	case string(TypeWork):
		return TypeWork
	case string(TypeOrder):
		return TypeOrder
	case string(TypeEvent):
		return TypeEvent
	default:
		return TypePersonal
	}
}

// ManualAdjustmentPack is the distinguished PackName marking a manual
// revenue adjustment pseudo-event. Such an event carries no client or pack
// semantics, only a one-time revenue recognition at its start date.
const ManualAdjustmentPack = "Ajuste Financeiro"

// ---------------------------------------------------------------------------
// Entities
// ---------------------------------------------------------------------------

// Client is a customer record. Identity is immutable once created; clients
// are never hard-deleted so past events keep their snapshots intact.
type Client struct {
	ID      domain.EntityID `json:"id"`
	Name    string          `json:"name"`
	Contact string          `json:"contact"`
	Notes   string          `json:"notes"`
}

// Pack is a current service offering. Changing a pack's price never affects
// previously booked events: events store their own AgreedPrice/PackName
// snapshots at booking time.
type Pack struct {
	ID         domain.EntityID `json:"id"`
	Name       string          `json:"name"`
	Price      float64         `json:"price"`
	Conditions string          `json:"conditions"`
	IsActive   bool            `json:"isActive"`
}

// CalendarEvent is a scheduled commitment: a job, a personal entry, an
// order, or an occasion. AgreedPrice and PackName are historical facts
// fixed at booking time, independent of live Pack records. ClientID is a
// weak reference: it may dangle and is used for lookup only.
type CalendarEvent struct {
	ID          domain.EntityID `json:"id"`
	Title       string          `json:"title"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	BookingDate time.Time       `json:"bookingDate"`
	Type        EventType       `json:"type"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`

	ClientID domain.EntityID `json:"clientId,omitempty"`

	PackName    string  `json:"packName,omitempty"`
	AgreedPrice float64 `json:"agreedPrice,omitempty"`

	// Order-specific fields.
	IsDone          bool     `json:"isDone,omitempty"`
	ShippingAddress string   `json:"shippingAddress,omitempty"`
	ReferenceImages [][]byte `json:"referenceImages,omitempty"`
}

// IsManualAdjustment reports whether the event is a manual revenue
// adjustment pseudo-event.
func (e CalendarEvent) IsManualAdjustment() bool {
	return e.PackName == ManualAdjustmentPack
}

// NotificationConfig holds the out-of-band delivery settings. It starts
// empty and disabled; the gateway reads it, never writes it.
type NotificationConfig struct {
	BotToken string `json:"botToken"`
	ChatID   string `json:"chatId"`
	Enabled  bool   `json:"enabled"`
}

// Ready reports whether notifications are enabled and fully configured.
func (c NotificationConfig) Ready() bool {
	return c.Enabled && c.BotToken != "" && c.ChatID != ""
}

// ---------------------------------------------------------------------------
// Partial updates
// ---------------------------------------------------------------------------

// EventPatch describes a partial update to a CalendarEvent. Only non-nil
// fields are applied, so omitting a field never clears it.
type EventPatch struct {
	Title           *string
	Start           *time.Time
	End             *time.Time
	Type            *EventType
	Description     *string
	Location        *string
	ClientID        *domain.EntityID
	PackName        *string
	AgreedPrice     *float64
	IsDone          *bool
	ShippingAddress *string
}

// Apply merges the patch into an event, leaving nil fields untouched.
func (p EventPatch) Apply(e *CalendarEvent) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Start != nil {
		e.Start = *p.Start
	}
	if p.End != nil {
		e.End = *p.End
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.ClientID != nil {
		e.ClientID = *p.ClientID
	}
	if p.PackName != nil {
		e.PackName = *p.PackName
	}
	if p.AgreedPrice != nil {
		e.AgreedPrice = *p.AgreedPrice
	}
	if p.IsDone != nil {
		e.IsDone = *p.IsDone
	}
	if p.ShippingAddress != nil {
		e.ShippingAddress = *p.ShippingAddress
	}
}

// ClientPatch describes a partial update to a Client.
type ClientPatch struct {
	Name    *string
	Contact *string
	Notes   *string
}

// Apply merges the patch into a client, leaving nil fields untouched.
func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Contact != nil {
		c.Contact = *p.Contact
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}

// PackPatch describes a partial update to a Pack.
type PackPatch struct {
	Name       *string
	Price      *float64
	Conditions *string
	IsActive   *bool
}

// Apply merges the patch into a pack, leaving nil fields untouched.
func (p PackPatch) Apply(pk *Pack) {
	if p.Name != nil {
		pk.Name = *p.Name
	}
	if p.Price != nil {
		pk.Price = *p.Price
	}
	if p.Conditions != nil {
		pk.Conditions = *p.Conditions
	}
	if p.IsActive != nil {
		pk.IsActive = *p.IsActive
	}
}

// ---------------------------------------------------------------------------
// Domain errors
// ---------------------------------------------------------------------------

// Error is a typed error for the schedule domain.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrClientNotFound Error = "client not found"
	ErrEventNotFound  Error = "event not found"
)
