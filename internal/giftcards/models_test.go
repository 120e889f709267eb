package giftcards

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGiftCard_ValidAmounts(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"typical amount 100.00", decimal.RequireFromString("100.00")},
		{"small amount 5", decimal.NewFromInt(5)},
		{"smallest positive unit 0.01", decimal.RequireFromString("0.01")},
		{"large amount 99999.99", decimal.RequireFromString("99999.99")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := NewGiftCard(tt.amount)

			require.NoError(t, err)
			require.NotNil(t, card)
			assert.True(t, card.Amount.Equal(tt.amount))
			assert.Equal(t, StatusAvailable, card.Status)
			assert.Equal(t, int32(0), card.Version)
			assert.NotEqual(t, card.ID.String(), "00000000-0000-0000-0000-000000000000")
			assert.Equal(t, time.UTC, card.CreatedAt.Location())
			assert.WithinDuration(t, time.Now().UTC(), card.CreatedAt, time.Minute)
		})
	}
}

func TestNewGiftCard_InvalidAmounts(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"zero amount", decimal.Zero},
		{"negative amount", decimal.RequireFromString("-10.00")},
		{"tiny negative amount", decimal.RequireFromString("-0.01")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := NewGiftCard(tt.amount)

			require.Error(t, err)
			assert.Nil(t, card)

			var invalidErr *InvalidAmountError
			require.ErrorAs(t, err, &invalidErr)
			assert.True(t, invalidErr.Amount.Equal(tt.amount))
		})
	}
}

func TestNewGiftCard_UniqueIDs(t *testing.T) {
	a, err := NewGiftCard(decimal.NewFromInt(10))
	require.NoError(t, err)
	b, err := NewGiftCard(decimal.NewFromInt(10))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestMarkAsSold_FromAvailable(t *testing.T) {
	card, err := NewGiftCard(decimal.NewFromInt(50))
	require.NoError(t, err)

	require.NoError(t, card.MarkAsSold())
	assert.Equal(t, StatusSold, card.Status)
	// The transition must not touch the version; only a persisted
	// update does that.
	assert.Equal(t, int32(0), card.Version)
}

func TestMarkAsSold_IllegalStates(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, card *GiftCard)
		want  Status
	}{
		{
			name: "already sold",
			setup: func(t *testing.T, card *GiftCard) {
				require.NoError(t, card.MarkAsSold())
			},
			want: StatusSold,
		},
		{
			name: "already redeemed",
			setup: func(t *testing.T, card *GiftCard) {
				require.NoError(t, card.MarkAsSold())
				require.NoError(t, card.MarkAsRedeemed())
			},
			want: StatusRedeemed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := NewGiftCard(decimal.NewFromInt(50))
			require.NoError(t, err)
			tt.setup(t, card)

			err = card.MarkAsSold()

			var notAvailable *NotAvailableError
			require.ErrorAs(t, err, &notAvailable)
			assert.Equal(t, card.ID, notAvailable.ID)
			assert.Equal(t, tt.want, notAvailable.Status)
			// Failed transition leaves the card unchanged
			assert.Equal(t, tt.want, card.Status)
		})
	}
}

func TestMarkAsRedeemed_FromSold(t *testing.T) {
	card, err := NewGiftCard(decimal.NewFromInt(25))
	require.NoError(t, err)
	require.NoError(t, card.MarkAsSold())

	require.NoError(t, card.MarkAsRedeemed())
	assert.Equal(t, StatusRedeemed, card.Status)
	assert.Equal(t, int32(0), card.Version)
}

func TestMarkAsRedeemed_IllegalStates(t *testing.T) {
	t.Run("fresh card is not redeemable", func(t *testing.T) {
		card, err := NewGiftCard(decimal.NewFromInt(25))
		require.NoError(t, err)

		err = card.MarkAsRedeemed()

		var notRedeemable *NotRedeemableError
		require.ErrorAs(t, err, &notRedeemable)
		assert.Equal(t, card.ID, notRedeemable.ID)
		assert.Equal(t, StatusAvailable, notRedeemable.Status)
		assert.Equal(t, StatusAvailable, card.Status)
	})

	t.Run("redeemed card cannot be redeemed again", func(t *testing.T) {
		card, err := NewGiftCard(decimal.NewFromInt(25))
		require.NoError(t, err)
		require.NoError(t, card.MarkAsSold())
		require.NoError(t, card.MarkAsRedeemed())

		err = card.MarkAsRedeemed()

		var notRedeemable *NotRedeemableError
		require.ErrorAs(t, err, &notRedeemable)
		assert.Equal(t, StatusRedeemed, notRedeemable.Status)
		assert.Equal(t, StatusRedeemed, card.Status)
	})
}

func TestGiftCard_FullLifecycle(t *testing.T) {
	card, err := NewGiftCard(decimal.RequireFromString("100.00"))
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, card.Status)

	require.NoError(t, card.MarkAsSold())
	assert.Equal(t, StatusSold, card.Status)

	require.NoError(t, card.MarkAsRedeemed())
	assert.Equal(t, StatusRedeemed, card.Status)
}
