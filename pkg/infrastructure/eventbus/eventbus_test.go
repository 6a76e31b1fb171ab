package eventbus

import (
	"testing"

	"github.com/miroma-app/miroma/pkg/domain"
)

func TestPublishReachesNamedSubscriber(t *testing.T) {
	bus := New()
	defer bus.Close()

	var got domain.Event
	bus.Subscribe(domain.EventScheduleCreated, func(e domain.Event) { got = e })

	published := domain.NewEvent(domain.EventScheduleCreated, "e1", "payload")
	bus.Publish(published)

	if got == nil {
		t.Fatal("handler not invoked")
	}
	if got.AggregateID() != "e1" || got.Payload() != "payload" {
		t.Errorf("got %+v", got)
	}
}

func TestPublishSkipsOtherNames(t *testing.T) {
	bus := New()
	defer bus.Close()

	called := false
	bus.Subscribe(domain.EventClientCreated, func(domain.Event) { called = true })

	bus.Publish(domain.NewEvent(domain.EventScheduleCreated, "e1", nil))
	if called {
		t.Error("handler for a different name was invoked")
	}
}

func TestSubscribeAllSeesEverything(t *testing.T) {
	bus := New()
	defer bus.Close()

	var names []domain.EventName
	bus.SubscribeAll(func(e domain.Event) { names = append(names, e.Name()) })

	bus.Publish(domain.NewEvent(domain.EventScheduleCreated, "e1", nil))
	bus.Publish(domain.NewEvent(domain.EventRevenueAdjusted, "e2", nil))

	if len(names) != 2 {
		t.Fatalf("got %v", names)
	}
}

func TestNamedHandlersRunBeforeGlobal(t *testing.T) {
	bus := New()
	defer bus.Close()

	var order []string
	bus.Subscribe(domain.EventScheduleCreated, func(domain.Event) { order = append(order, "named") })
	bus.SubscribeAll(func(domain.Event) { order = append(order, "all") })

	bus.Publish(domain.NewEvent(domain.EventScheduleCreated, "e1", nil))

	if len(order) != 2 || order[0] != "named" || order[1] != "all" {
		t.Errorf("dispatch order: %v", order)
	}
}

func TestClosedBusDropsEvents(t *testing.T) {
	bus := New()

	called := false
	bus.Subscribe(domain.EventScheduleCreated, func(domain.Event) { called = true })
	bus.Close()

	bus.Publish(domain.NewEvent(domain.EventScheduleCreated, "e1", nil))
	if called {
		t.Error("closed bus must not dispatch")
	}
}
