package shared

import (
	"fmt"

	"github.com/google/uuid"
)

// SessionID is a value object identifying one player's game session
type SessionID struct {
	value string
}

// NewSessionID creates a SessionID with a generated UUID
func NewSessionID() SessionID {
	return SessionID{value: uuid.New().String()}
}

// ParseSessionID creates a SessionID from an existing UUID string
func ParseSessionID(id string) (SessionID, error) {
	if id == "" {
		return SessionID{}, fmt.Errorf("session_id cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return SessionID{}, fmt.Errorf("invalid session_id format: %w", err)
	}
	return SessionID{value: id}, nil
}

// MustParseSessionID parses id, panicking if invalid
// Use this only when you're certain the ID is valid (e.g., from database)
func MustParseSessionID(id string) SessionID {
	sid, err := ParseSessionID(id)
	if err != nil {
		panic(err)
	}
	return sid
}

// String returns a string representation of the SessionID
func (s SessionID) String() string {
	return s.value
}

// Equals checks if two SessionIDs are equal
func (s SessionID) Equals(other SessionID) bool {
	return s.value == other.value
}

// IsZero checks if the SessionID is the zero value (uninitialized)
func (s SessionID) IsZero() bool {
	return s.value == ""
}
