package giftcards

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvalidAmountError is returned when a card is constructed with a
// non-positive amount.
type InvalidAmountError struct {
	Amount decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid gift card amount, got %s", e.Amount)
}

// NotAvailableError is returned when a sell is attempted on a card
// that is not in the Available state.
type NotAvailableError struct {
	ID     uuid.UUID
	Status Status
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("gift card %s is not available, status: %s", e.ID, e.Status)
}

// NotRedeemableError is returned when a redeem is attempted on a card
// that is not in the Sold state.
type NotRedeemableError struct {
	ID     uuid.UUID
	Status Status
}

func (e *NotRedeemableError) Error() string {
	return fmt.Sprintf("gift card %s is not redeemable, status: %s", e.ID, e.Status)
}

// NotFoundError is returned by the service when no card exists for the
// requested ID.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("gift card with id %s not found", e.ID)
}

// DatabaseError wraps any store-layer failure, duplicate inserts
// included. The underlying pgx error stays reachable through Unwrap,
// so callers that care can still inspect the SQLSTATE.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// OptimisticLockError means the version compare-and-set lost a race:
// another writer advanced the card since it was read. Retrying the
// whole read-modify-write cycle is safe; neither the repository nor
// the service does it implicitly.
type OptimisticLockError struct {
	ID uuid.UUID
}

func (e *OptimisticLockError) Error() string {
	return fmt.Sprintf("failed updating gift card %s: version mismatch", e.ID)
}
