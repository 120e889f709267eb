package giftcards

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a gift card
type Status string

const (
	StatusAvailable Status = "Available" // Created, not yet sold
	StatusSold      Status = "Sold"      // Bought, waiting to be redeemed
	StatusRedeemed  Status = "Redeemed"  // Terminal state
)

// GiftCard is the persisted aggregate. Status only changes through
// MarkAsSold and MarkAsRedeemed; Version only changes through a
// successful repository update.
type GiftCard struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Status    Status          `json:"status" db:"status"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	Version   int32           `json:"version" db:"version"`
}

// NewGiftCard creates an available card with a fresh ID and version 0.
// The amount must be strictly positive.
func NewGiftCard(amount decimal.Decimal) (*GiftCard, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, &InvalidAmountError{Amount: amount}
	}

	return &GiftCard{
		ID:        uuid.New(),
		Amount:    amount,
		Status:    StatusAvailable,
		CreatedAt: time.Now().UTC(),
		Version:   0,
	}, nil
}

// MarkAsSold transitions Available -> Sold. Any other starting status
// leaves the card unchanged and returns NotAvailableError.
func (g *GiftCard) MarkAsSold() error {
	if g.Status != StatusAvailable {
		return &NotAvailableError{ID: g.ID, Status: g.Status}
	}
	g.Status = StatusSold
	return nil
}

// MarkAsRedeemed transitions Sold -> Redeemed. Any other starting
// status leaves the card unchanged and returns NotRedeemableError.
func (g *GiftCard) MarkAsRedeemed() error {
	if g.Status != StatusSold {
		return &NotRedeemableError{ID: g.ID, Status: g.Status}
	}
	g.Status = StatusRedeemed
	return nil
}
