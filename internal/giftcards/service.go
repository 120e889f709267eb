package giftcards

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/richxcame/giftcard-service/pkg/logger"
)

// Service handles gift card business logic. It composes domain
// transitions with the repository; it performs no retries, so a lost
// optimistic-lock race surfaces to the caller as-is.
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new gift card service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// CreateGiftCard constructs a card with the given amount and persists
// it. Nothing is stored when the amount is invalid.
func (s *Service) CreateGiftCard(ctx context.Context, amount decimal.Decimal) (*GiftCard, error) {
	card, err := NewGiftCard(amount)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, card); err != nil {
		return nil, err
	}

	logger.Info("gift card created",
		zap.String("card_id", card.ID.String()),
		zap.String("amount", card.Amount.String()),
	)
	return card, nil
}

// BuyGiftCard sells an available card: load, mark as sold, persist via
// the version compare-and-set. A concurrent writer shows up as an
// OptimisticLockError; retrying is the caller's call.
func (s *Service) BuyGiftCard(ctx context.Context, id uuid.UUID) (*GiftCard, error) {
	card, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, &NotFoundError{ID: id}
	}

	if err := card.MarkAsSold(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, card); err != nil {
		s.logLostRace("buy", card.ID, err)
		return nil, err
	}

	return card, nil
}

// RedeemGiftCard redeems a sold card, symmetric to BuyGiftCard
func (s *Service) RedeemGiftCard(ctx context.Context, id uuid.UUID) (*GiftCard, error) {
	card, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, &NotFoundError{ID: id}
	}

	if err := card.MarkAsRedeemed(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, card); err != nil {
		s.logLostRace("redeem", card.ID, err)
		return nil, err
	}

	return card, nil
}

func (s *Service) logLostRace(op string, id uuid.UUID, err error) {
	var lockErr *OptimisticLockError
	if errors.As(err, &lockErr) {
		logger.Warn("gift card update lost optimistic lock race",
			zap.String("operation", op),
			zap.String("card_id", id.String()),
		)
	}
}
