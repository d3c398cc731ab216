// Package id generates identifiers for intake drafts and request traces.
package id

import (
	"github.com/google/uuid"
)

// ID is a UUID. Drafts use time-ordered UUIDv7 values so that lists sort by
// creation time without a separate timestamp.
type ID = uuid.UUID

// New returns a UUIDv7, or a random UUIDv4 if the clock source fails.
func New() ID {
	v, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return v
}

// Parse converts s to an ID.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// IsNil reports whether v is the zero UUID.
func IsNil(v ID) bool {
	return v == uuid.Nil
}
