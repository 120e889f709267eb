package giftcards

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles gift card persistence in PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new gift card repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Save inserts a new gift card row. The primary key rejects duplicate
// IDs; that failure, like any other, comes back as a DatabaseError.
func (r *Repository) Save(ctx context.Context, card *GiftCard) error {
	query := `
		INSERT INTO giftcards.gift_cards (id, amount, status, created_at, version)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		card.ID, card.Amount, card.Status, card.CreatedAt, card.Version,
	)
	if err != nil {
		return &DatabaseError{
			Op:  fmt.Sprintf("failed to insert gift card %s", card.ID),
			Err: err,
		}
	}

	return nil
}

// FindByID retrieves a gift card by ID, or (nil, nil) when absent
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*GiftCard, error) {
	query := `
		SELECT id, amount, status, created_at, version
		FROM giftcards.gift_cards
		WHERE id = $1
	`

	card := &GiftCard{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&card.ID, &card.Amount, &card.Status, &card.CreatedAt, &card.Version,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &DatabaseError{
			Op:  fmt.Sprintf("failed to load gift card %s", id),
			Err: err,
		}
	}

	return card, nil
}

// Update writes the card's status with a compare-and-set on the
// version. The WHERE clause matches (id, version); when another writer
// has already advanced the version no row matches and the caller gets
// an OptimisticLockError. On success the card's Version is synced to
// the value the database returned.
func (r *Repository) Update(ctx context.Context, card *GiftCard) error {
	query := `
		UPDATE giftcards.gift_cards
		SET status = $2,
		    version = version + 1
		WHERE id = $1
		  AND version = $3
		RETURNING version
	`

	var newVersion int32
	err := r.db.QueryRow(ctx, query, card.ID, card.Status, card.Version).Scan(&newVersion)
	if errors.Is(err, pgx.ErrNoRows) {
		return &OptimisticLockError{ID: card.ID}
	}
	if err != nil {
		return &DatabaseError{
			Op:  fmt.Sprintf("failed to update gift card %s", card.ID),
			Err: err,
		}
	}

	card.Version = newVersion
	return nil
}
