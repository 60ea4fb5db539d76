package session

import (
	"context"
	"time"
)

// Store defines how durable token records are persisted between the
// code exchange and later session reads. Implementations must remain
// stateless per request and opaque to callers.
type Store interface {
	// Create persists the record under the session ID until expiresAt.
	Create(ctx context.Context, sessionID string, rec Record, expiresAt time.Time) error

	// Get returns the record for the session ID, or (nil, nil) when no
	// record exists or it has expired.
	Get(ctx context.Context, sessionID string) (*Record, error)

	// Delete removes the record. Deleting an absent record is not an error.
	Delete(ctx context.Context, sessionID string) error
}
