package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/miroma-app/miroma/pkg/domain/schedule"
)

// SnapshotVersion is the backup format version this build writes.
const SnapshotVersion = 1

// Snapshot is the backup/export wire format. Collections are optional on
// import: a missing field means "keep the current collection".
type Snapshot struct {
	Version            int                          `json:"version"`
	Date               time.Time                    `json:"date"`
	Events             []schedule.CalendarEvent     `json:"events"`
	Clients            []schedule.Client            `json:"clients"`
	Packs              []schedule.Pack              `json:"packs"`
	NotificationConfig *schedule.NotificationConfig `json:"notificationConfig,omitempty"`
}

// Snapshot returns a copy of the full domain state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Version: SnapshotVersion,
		Date:    time.Now(),
		Events:  make([]schedule.CalendarEvent, len(s.events)),
		Clients: make([]schedule.Client, len(s.clients)),
		Packs:   make([]schedule.Pack, len(s.packs)),
	}
	copy(snap.Events, s.events)
	copy(snap.Clients, s.clients)
	copy(snap.Packs, s.packs)
	cfg := s.notify
	snap.NotificationConfig = &cfg
	return snap
}

// ExportJSON serializes the full domain state in the backup format.
func (s *Store) ExportJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exportLocked()
}

func (s *Store) exportLocked() ([]byte, error) {
	return json.MarshalIndent(s.snapshotLocked(), "", "  ")
}

// rawSnapshot defers collection decoding so each top-level field can be
// validated independently before anything is applied.
type rawSnapshot struct {
	Version            int             `json:"version"`
	Date               time.Time       `json:"date"`
	Events             json.RawMessage `json:"events"`
	Clients            json.RawMessage `json:"clients"`
	Packs              json.RawMessage `json:"packs"`
	NotificationConfig json.RawMessage `json:"notificationConfig"`
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// ImportJSON restores state from a backup payload. It is validate-then-apply
// and all-or-nothing: every present top-level field must decode cleanly or
// the whole payload is rejected and the current state stays untouched.
// Missing fields skip their collection, keeping the current one.
func (s *Store) ImportJSON(data []byte) error {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("backup payload is not an object: %w", err)
	}

	var (
		events  []schedule.CalendarEvent
		clients []schedule.Client
		packs   []schedule.Pack
		notify  *schedule.NotificationConfig
	)
	if present(raw.Events) {
		if err := json.Unmarshal(raw.Events, &events); err != nil {
			return fmt.Errorf("backup field events: %w", err)
		}
	}
	if present(raw.Clients) {
		if err := json.Unmarshal(raw.Clients, &clients); err != nil {
			return fmt.Errorf("backup field clients: %w", err)
		}
	}
	if present(raw.Packs) {
		if err := json.Unmarshal(raw.Packs, &packs); err != nil {
			return fmt.Errorf("backup field packs: %w", err)
		}
	}
	if present(raw.NotificationConfig) {
		notify = &schedule.NotificationConfig{}
		if err := json.Unmarshal(raw.NotificationConfig, notify); err != nil {
			return fmt.Errorf("backup field notificationConfig: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if events != nil {
		s.events = events
	}
	if clients != nil {
		s.clients = clients
	}
	if packs != nil {
		s.packs = packs
	}
	if notify != nil {
		s.notify = *notify
	}
	s.saveLocked()
	return nil
}
