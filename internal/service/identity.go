package service

import "github.com/google/uuid"

// NewID returns an opaque identifier for profiles, food items, and entries.
func NewID() string {
	return uuid.NewString()
}
