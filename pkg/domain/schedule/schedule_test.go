package schedule

import (
	"testing"
	"time"
)

func TestParseEventType(t *testing.T) {
	tests := []struct {
		label string
		want  EventType
	}{
		{"Trabalho", TypeWork},
		{"Encomenda", TypeOrder},
		{"Evento", TypeEvent},
		{"Pessoal", TypePersonal},
		{"  Evento  ", TypeEvent},
		{"trabalho", TypePersonal}, // labels are case-sensitive wire values
		{"", TypePersonal},
		{"qualquer coisa", TypePersonal},
	}
	for _, tt := range tests {
		if got := ParseEventType(tt.label); got != tt.want {
			t.Errorf("ParseEventType(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestIsManualAdjustment(t *testing.T) {
	if !(CalendarEvent{PackName: ManualAdjustmentPack}).IsManualAdjustment() {
		t.Error("adjustment pack name should mark the event")
	}
	if (CalendarEvent{PackName: "Pack Gold"}).IsManualAdjustment() {
		t.Error("regular pack name should not mark the event")
	}
}

func TestEventPatchApplyLeavesNilFieldsUntouched(t *testing.T) {
	start := time.Date(2025, time.May, 10, 14, 0, 0, 0, time.UTC)
	e := CalendarEvent{
		Title:       "Casamento",
		Start:       start,
		Location:    "Braga",
		AgreedPrice: 2000,
		IsDone:      false,
	}

	price := 1800.0
	done := true
	EventPatch{AgreedPrice: &price, IsDone: &done}.Apply(&e)

	if e.AgreedPrice != 1800 || !e.IsDone {
		t.Errorf("patched fields not applied: %+v", e)
	}
	if e.Title != "Casamento" || e.Location != "Braga" || !e.Start.Equal(start) {
		t.Errorf("nil fields changed: %+v", e)
	}
}

func TestEventPatchCanClearWithExplicitZero(t *testing.T) {
	e := CalendarEvent{Description: "antiga"}
	empty := ""
	EventPatch{Description: &empty}.Apply(&e)
	if e.Description != "" {
		t.Errorf("explicit empty string should clear: %q", e.Description)
	}
}

func TestClientPatchApply(t *testing.T) {
	c := Client{Name: "Maria", Contact: "m@x.pt", Notes: "n"}
	name := "Maria Costa"
	ClientPatch{Name: &name}.Apply(&c)

	if c.Name != "Maria Costa" {
		t.Errorf("name: %q", c.Name)
	}
	if c.Contact != "m@x.pt" || c.Notes != "n" {
		t.Errorf("untouched fields changed: %+v", c)
	}
}

func TestPackPatchApply(t *testing.T) {
	p := Pack{Name: "Pack Gold", Price: 900, IsActive: true}
	price := 950.0
	active := false
	PackPatch{Price: &price, IsActive: &active}.Apply(&p)

	if p.Price != 950 || p.IsActive {
		t.Errorf("patch not applied: %+v", p)
	}
	if p.Name != "Pack Gold" {
		t.Errorf("name changed: %q", p.Name)
	}
}

func TestNotificationConfigReady(t *testing.T) {
	tests := []struct {
		name string
		cfg  NotificationConfig
		want bool
	}{
		{"fully configured", NotificationConfig{BotToken: "t", ChatID: "1", Enabled: true}, true},
		{"disabled", NotificationConfig{BotToken: "t", ChatID: "1"}, false},
		{"missing token", NotificationConfig{ChatID: "1", Enabled: true}, false},
		{"missing chat", NotificationConfig{BotToken: "t", Enabled: true}, false},
		{"zero value", NotificationConfig{}, false},
	}
	for _, tt := range tests {
		if got := tt.cfg.Ready(); got != tt.want {
			t.Errorf("%s: Ready() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
