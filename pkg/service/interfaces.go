package service

import (
	"context"

	"github.com/AccelByte/extend-santa-skill/pkg/state"
)

// DocumentStore is the durable per-user document transport.
//
// Having an interface keeps the Redis and S3 backends swappable and lets
// tests run against a fake.
type DocumentStore interface {
	// Load returns the user's document, or nil with no error when the
	// user has none yet.
	Load(ctx context.Context, userID string) (*state.Document, error)
	// Save replaces the user's document.
	Save(ctx context.Context, userID string, doc *state.Document) error
}
