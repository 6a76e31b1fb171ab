package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/miroma-app/miroma/pkg/domain"
	"github.com/miroma-app/miroma/pkg/domain/schedule"
	"github.com/miroma-app/miroma/pkg/infrastructure/eventbus"
)

// fakeGateway records sends on a channel so tests can wait for the
// fire-and-forget delivery goroutine.
type fakeGateway struct {
	sent chan string
	err  error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{sent: make(chan string, 1)}
}

func (g *fakeGateway) Send(ctx context.Context, text string) error {
	g.sent <- text
	return g.err
}

func enabledConfig() schedule.NotificationConfig {
	return schedule.NotificationConfig{BotToken: "t", ChatID: "1", Enabled: true}
}

func TestListenerSendsOnBooking(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	gateway := newFakeGateway()
	NewListener(gateway, enabledConfig).Register(bus)

	outcome := make(chan domain.EventName, 1)
	bus.Subscribe(domain.EventNotificationSent, func(e domain.Event) { outcome <- e.Name() })

	booked := schedule.CalendarEvent{
		Title:       "Casamento Rita",
		Start:       time.Date(2025, time.September, 20, 15, 0, 0, 0, time.UTC),
		AgreedPrice: 2500,
		Description: "Cerimónia e copo de água",
	}
	bus.Publish(domain.NewEvent(domain.EventScheduleCreated, booked.ID, booked))

	select {
	case text := <-gateway.sent:
		if text != FormatBooking(booked) {
			t.Errorf("sent text: %q", text)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no notification sent")
	}
	select {
	case <-outcome:
	case <-time.After(2 * time.Second):
		t.Fatal("no notification.sent event published")
	}
}

func TestListenerSkipsWhenDisabled(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	gateway := newFakeGateway()
	disabled := func() schedule.NotificationConfig { return schedule.NotificationConfig{} }
	NewListener(gateway, disabled).Register(bus)

	bus.Publish(domain.NewEvent(domain.EventScheduleCreated, "e1", schedule.CalendarEvent{Title: "x"}))

	select {
	case <-gateway.sent:
		t.Fatal("disabled config must not send")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestListenerIgnoresForeignPayloads(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	gateway := newFakeGateway()
	NewListener(gateway, enabledConfig).Register(bus)

	bus.Publish(domain.NewEvent(domain.EventScheduleCreated, "e1", "not an event"))

	select {
	case <-gateway.sent:
		t.Fatal("non-event payload must not send")
	case <-time.After(100 * time.Millisecond):
	}
}

// TestListenerSwallowsDeliveryFailure verifies a failing gateway never
// propagates: the publish returns normally and the failure surfaces only as
// a notification.failed event.
func TestListenerSwallowsDeliveryFailure(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	gateway := newFakeGateway()
	gateway.err = errors.New("telegram down")
	NewListener(gateway, enabledConfig).Register(bus)

	failed := make(chan domain.Event, 1)
	bus.Subscribe(domain.EventNotificationFailed, func(e domain.Event) { failed <- e })

	bus.Publish(domain.NewEvent(domain.EventScheduleCreated, "e1", schedule.CalendarEvent{Title: "x"}))

	select {
	case <-gateway.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("delivery was not attempted")
	}
	select {
	case e := <-failed:
		if e.Payload() != "telegram down" {
			t.Errorf("failure payload: %v", e.Payload())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no notification.failed event published")
	}
}

func TestFormatBooking(t *testing.T) {
	e := schedule.CalendarEvent{
		Title:       "Casamento Rita",
		Start:       time.Date(2025, time.September, 20, 15, 30, 0, 0, time.UTC),
		AgreedPrice: 2500,
		Description: "Cerimónia",
	}

	want := "✨ <b>Novo Agendamento MIROMA</b>\n\n📌 <b>Casamento Rita</b>\n🕒 20/09 15:30\n💶 €2500\n📝 Cerimónia"
	if got := FormatBooking(e); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatBookingDefaultsDescription(t *testing.T) {
	e := schedule.CalendarEvent{Title: "x", Start: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)}
	got := FormatBooking(e)
	if want := "📝 Sem descrição"; !strings.Contains(got, want) {
		t.Errorf("got %q, want it to contain %q", got, want)
	}
}
