package giftcards

import (
	"context"

	"github.com/google/uuid"
)

// RepositoryInterface defines the contract for gift card persistence.
// The Postgres implementation lives in repository.go; tests substitute
// an in-memory fake with the same compare-and-set semantics.
type RepositoryInterface interface {
	// Save persists a never-before-stored card. Duplicate IDs are
	// rejected by the primary key and surface as DatabaseError.
	Save(ctx context.Context, card *GiftCard) error

	// FindByID returns the stored card at its current version, or
	// (nil, nil) when no card exists for the ID.
	FindByID(ctx context.Context, id uuid.UUID) (*GiftCard, error)

	// Update persists a state transition conditioned on (id, version).
	// On success the card's Version is advanced to the persisted value;
	// on a version mismatch the card is untouched and the call returns
	// OptimisticLockError.
	Update(ctx context.Context, card *GiftCard) error
}
