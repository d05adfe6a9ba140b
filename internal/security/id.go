package security

import (
	"github.com/google/uuid"
)

// NewID creates a new random UUID for entity identification
func NewID() string {
	return uuid.New().String()
}
