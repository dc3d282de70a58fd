package utils

import "github.com/google/uuid"

// NewID returns a new random identifier for a catalog record.
func NewID() string {
	return uuid.NewString()
}

// NewRequestID returns a short identifier used to correlate log lines of one request.
func NewRequestID() string {
	return uuid.New().String()[:8]
}
