package uid

import "github.com/google/uuid"

// NewRequestID returns a random identifier for a move request.
func NewRequestID() string {
	return uuid.NewString()
}

// IsRequestID reports whether id looks like an ID from NewRequestID.
func IsRequestID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
