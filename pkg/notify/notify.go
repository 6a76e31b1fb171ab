// Package notify delivers out-of-band notifications for newly booked
// events. The core only formats the message and decides whether to send;
// delivery runs through the Gateway port and its failure is logged, never
// surfaced to the command that created the event.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/miroma-app/miroma/pkg/domain"
	"github.com/miroma-app/miroma/pkg/domain/schedule"
	"github.com/miroma-app/miroma/pkg/logger"
)

// Gateway is the delivery port. Send is expected to be a no-op when the
// channel is disabled or unconfigured.
type Gateway interface {
	Send(ctx context.Context, text string) error
}

// ConfigSource yields the current notification settings. The settings live
// in the domain store and can change at runtime, so they are read per send.
type ConfigSource func() schedule.NotificationConfig

// Listener reacts to schedule.event.created domain events by sending the
// booking notification. Delivery is fire-and-forget: it runs in its own
// goroutine so a slow or failing gateway never blocks the command result.
type Listener struct {
	gateway Gateway
	config  ConfigSource
	timeout time.Duration
	bus     domain.EventBus
}

// NewListener creates a notification listener.
func NewListener(gateway Gateway, config ConfigSource) *Listener {
	return &Listener{
		gateway: gateway,
		config:  config,
		timeout: 15 * time.Second,
	}
}

// Register subscribes the listener on the event bus. Delivery outcomes are
// published back on the same bus as notification.sent/notification.failed.
func (l *Listener) Register(bus domain.EventBus) {
	l.bus = bus
	bus.Subscribe(domain.EventScheduleCreated, l.handle)
}

func (l *Listener) handle(event domain.Event) {
	created, ok := event.Payload().(schedule.CalendarEvent)
	if !ok {
		return
	}
	if !l.config().Enabled {
		return
	}

	text := FormatBooking(created)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()
		if err := l.gateway.Send(ctx, text); err != nil {
			logger.ErrorCF("notify", "Delivery failed",
				map[string]interface{}{"event": created.Title, "error": err.Error()})
			l.bus.Publish(domain.NewEvent(domain.EventNotificationFailed, created.ID, err.Error()))
			return
		}
		logger.InfoCF("notify", "Booking notification sent",
			map[string]interface{}{"event": created.Title})
		l.bus.Publish(domain.NewEvent(domain.EventNotificationSent, created.ID, created.Title))
	}()
}

// FormatBooking renders the booking notification in the Telegram HTML
// format used by the original assistant.
func FormatBooking(e schedule.CalendarEvent) string {
	desc := e.Description
	if desc == "" {
		desc = "Sem descrição"
	}
	return fmt.Sprintf(
		"✨ <b>Novo Agendamento MIROMA</b>\n\n📌 <b>%s</b>\n🕒 %s\n💶 €%v\n📝 %s",
		e.Title, e.Start.Format("02/01 15:04"), e.AgreedPrice, desc)
}
