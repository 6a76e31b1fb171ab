// Package resolve finds clients and events from free-text fragments, as
// extracted from conversational input. Matching is a case-insensitive
// substring test; the first candidate in insertion order wins. There is no
// ranking and no edit distance: ambiguous fragments resolve to the
// earliest-created match, which downstream command semantics rely on.
package resolve

import (
	"strings"

	"github.com/miroma-app/miroma/pkg/domain/schedule"
)

// Source provides the candidate collections, in insertion order.
type Source interface {
	Clients() []schedule.Client
	Events() []schedule.CalendarEvent
}

// Resolver matches free-text fragments against a live entity source.
type Resolver struct {
	src Source
}

// New creates a resolver over the given source.
func New(src Source) *Resolver {
	return &Resolver{src: src}
}

// FindClient returns the first client whose name contains the fragment,
// ignoring case.
func (r *Resolver) FindClient(fragment string) (schedule.Client, error) {
	needle := strings.ToLower(fragment)
	for _, c := range r.src.Clients() {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			return c, nil
		}
	}
	return schedule.Client{}, schedule.ErrClientNotFound
}

// FindEvent returns the first event whose title contains the fragment,
// ignoring case.
func (r *Resolver) FindEvent(fragment string) (schedule.CalendarEvent, error) {
	needle := strings.ToLower(fragment)
	for _, e := range r.src.Events() {
		if strings.Contains(strings.ToLower(e.Title), needle) {
			return e, nil
		}
	}
	return schedule.CalendarEvent{}, schedule.ErrEventNotFound
}
