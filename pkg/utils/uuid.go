package utils

import "github.com/google/uuid"

// NewID returns a random (version 4) UUID string
func NewID() string {
	return uuid.NewString()
}
