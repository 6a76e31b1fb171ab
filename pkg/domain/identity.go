// Package domain provides the shared building blocks of the MIROMA core:
// entity identity and the domain event contract used to decouple the
// command dispatcher from side effects such as notifications.
package domain

import "github.com/google/uuid"

// EntityID identifies an entity within its collection. IDs are opaque
// strings, assigned once at creation and never reassigned.
type EntityID string

// NewID generates a random identifier.
func NewID() EntityID {
	return EntityID(uuid.NewString())
}

// String implements fmt.Stringer.
func (id EntityID) String() string { return string(id) }

// IsZero reports whether the ID is empty.
func (id EntityID) IsZero() bool { return id == "" }
