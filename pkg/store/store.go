// Package store owns the canonical in-memory collections of the MIROMA
// core: calendar events, clients, service packs and the notification
// settings. Collections keep insertion order. A single RWMutex serializes
// command mutations against snapshot/restore, which is enough because the
// dispatcher executes one command at a time.
package store

import (
	"sync"
	"time"

	"github.com/miroma-app/miroma/pkg/domain"
	"github.com/miroma-app/miroma/pkg/domain/schedule"
	"github.com/miroma-app/miroma/pkg/logger"
)

// Persistence is the storage backend port. Load returns nil data when
// nothing has been saved yet; the store then falls back to seed defaults.
type Persistence interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Store holds the domain state. Construct with New; there is no ambient
// singleton — callers receive an explicit handle.
type Store struct {
	mu      sync.RWMutex
	events  []schedule.CalendarEvent
	clients []schedule.Client
	packs   []schedule.Pack
	notify  schedule.NotificationConfig
	persist Persistence
}

// New creates a store, restoring state from the persistence backend when
// available and seeding defaults otherwise. persist may be nil (volatile
// store, used in tests).
func New(persist Persistence) *Store {
	s := &Store{persist: persist}

	var data []byte
	if persist != nil {
		var err error
		data, err = persist.Load()
		if err != nil {
			logger.ErrorCF("store", "Load failed, starting from seed data",
				map[string]interface{}{"error": err.Error()})
			data = nil
		}
	}

	if data == nil {
		s.seed()
		return s
	}
	if err := s.ImportJSON(data); err != nil {
		logger.ErrorCF("store", "Saved state rejected, starting from seed data",
			map[string]interface{}{"error": err.Error()})
		s.seed()
	}
	return s
}

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

// AddEvent assigns an ID, defaults BookingDate to now and ReferenceImages
// to an empty sequence, appends the event and returns the stored value.
func (s *Store) AddEvent(e schedule.CalendarEvent) schedule.CalendarEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = domain.NewID()
	if e.BookingDate.IsZero() {
		e.BookingDate = time.Now()
	}
	if e.ReferenceImages == nil {
		e.ReferenceImages = [][]byte{}
	}
	s.events = append(s.events, e)
	s.saveLocked()
	return e
}

// UpdateEvent applies a patch to the event with the given id. It reports
// whether the event existed; a miss is a silent no-op.
func (s *Store) UpdateEvent(id domain.EntityID, patch schedule.EventPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			patch.Apply(&s.events[i])
			s.saveLocked()
			return true
		}
	}
	return false
}

// DeleteEvent removes the event with the given id. A miss is a no-op.
func (s *Store) DeleteEvent(id domain.EntityID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			s.saveLocked()
			return true
		}
	}
	return false
}

// Events returns the events in insertion order.
func (s *Store) Events() []schedule.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schedule.CalendarEvent, len(s.events))
	copy(out, s.events)
	return out
}

// ---------------------------------------------------------------------------
// Clients
// ---------------------------------------------------------------------------

// AddClient assigns an ID and appends the client. Clients are never
// hard-deleted: past events keep their booking-time snapshots regardless.
func (s *Store) AddClient(c schedule.Client) schedule.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = domain.NewID()
	s.clients = append(s.clients, c)
	s.saveLocked()
	return c
}

// UpdateClient applies a patch to the client with the given id.
func (s *Store) UpdateClient(id domain.EntityID, patch schedule.ClientPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].ID == id {
			patch.Apply(&s.clients[i])
			s.saveLocked()
			return true
		}
	}
	return false
}

// Clients returns the clients in insertion order.
func (s *Store) Clients() []schedule.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schedule.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// ---------------------------------------------------------------------------
// Packs
// ---------------------------------------------------------------------------

// AddPack assigns an ID and appends the pack.
func (s *Store) AddPack(p schedule.Pack) schedule.Pack {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = domain.NewID()
	s.packs = append(s.packs, p)
	s.saveLocked()
	return p
}

// UpdatePack applies a patch to the pack with the given id.
func (s *Store) UpdatePack(id domain.EntityID, patch schedule.PackPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.packs {
		if s.packs[i].ID == id {
			patch.Apply(&s.packs[i])
			s.saveLocked()
			return true
		}
	}
	return false
}

// Packs returns the packs in insertion order.
func (s *Store) Packs() []schedule.Pack {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schedule.Pack, len(s.packs))
	copy(out, s.packs)
	return out
}

// ---------------------------------------------------------------------------
// Notification settings
// ---------------------------------------------------------------------------

// Notification returns the current notification settings.
func (s *Store) Notification() schedule.NotificationConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notify
}

// SetNotification replaces the notification settings.
func (s *Store) SetNotification(cfg schedule.NotificationConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = cfg
	s.saveLocked()
}

// ---------------------------------------------------------------------------
// Persistence
// ---------------------------------------------------------------------------

// saveLocked serializes the current state and hands it to the persistence
// backend. Callers must hold the write lock. Save failures are logged only:
// a broken backend must never fail the command that triggered the save.
func (s *Store) saveLocked() {
	if s.persist == nil {
		return
	}
	data, err := s.exportLocked()
	if err != nil {
		logger.ErrorCF("store", "Snapshot serialization failed",
			map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.persist.Save(data); err != nil {
		logger.ErrorCF("store", "Save failed",
			map[string]interface{}{"error": err.Error()})
	}
}
