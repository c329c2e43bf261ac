package utils

import "github.com/google/uuid"

// NewPublicToken generates the opaque token used for unauthenticated receipt
// lookup. It is independent of the receipt's internal identifier.
func NewPublicToken() string {
	return uuid.New().String()
}

// NewRequestID generates an identifier for request tracing
func NewRequestID() string {
	return uuid.New().String()
}
