package subscription

import (
	"testing"
	"time"

	vo "github.com/castellan-host/castellan/internal/domain/subscription/valueobjects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newActiveSubscription(t *testing.T) *Subscription {
	t.Helper()
	sub, err := NewSubscription(1, "830123456", "player@game.example", vo.PlanMonthly, 0)
	require.NoError(t, err)
	require.NotNil(t, sub)
	return sub
}

func reconstructWithStatus(t *testing.T, status vo.SubscriptionStatus) *Subscription {
	t.Helper()
	start := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)
	sub, err := ReconstructSubscription(
		1, 10, "830123456", "player@game.example",
		vo.PlanMonthly, 15000,
		status,
		start, end,
		nil, nil, 1, start, start,
	)
	require.NoError(t, err)
	return sub
}

// =====================================================================
// TestNewSubscription_*
// =====================================================================

func TestNewSubscription_ValidInput(t *testing.T) {
	sub, err := NewSubscription(1, "830123456", "player@game.example", vo.PlanMonthly, 0)

	require.NoError(t, err)
	require.NotNil(t, sub)

	assert.Equal(t, uint(1), sub.CustomerID())
	assert.Equal(t, "830123456", sub.CastleID())
	assert.Equal(t, vo.PlanMonthly, sub.Plan())
	assert.Equal(t, vo.StatusActive, sub.Status(), "new subscriptions start active")
	assert.Equal(t, vo.PlanMonthly.DefaultPriceCents(), sub.PriceCents(), "zero price falls back to catalog price")
	assert.Equal(t, 1, sub.Version())
	assert.False(t, sub.EndDate().Before(sub.StartDate()), "expiration must not precede start")
}

func TestNewSubscription_ExpirationIsOneCycleOut(t *testing.T) {
	sub, err := NewSubscription(1, "830123456", "", vo.PlanQuarterly, 0)
	require.NoError(t, err)

	assert.Equal(t, vo.PlanQuarterly.NextExpiration(sub.StartDate()), sub.EndDate())
}

func TestNewSubscription_CustomPrice(t *testing.T) {
	sub, err := NewSubscription(1, "830123456", "", vo.PlanMonthly, 12000)
	require.NoError(t, err)
	assert.Equal(t, uint64(12000), sub.PriceCents())
}

func TestNewSubscription_InvalidInput(t *testing.T) {
	_, err := NewSubscription(0, "830123456", "", vo.PlanMonthly, 0)
	assert.Error(t, err, "customer ID is required")

	_, err = NewSubscription(1, "", "", vo.PlanMonthly, 0)
	assert.Error(t, err, "castle ID is required")

	_, err = NewSubscription(1, "830123456", "", vo.Plan("weekly"), 0)
	assert.Error(t, err, "unknown plans are rejected, never defaulted")
}

// =====================================================================
// TestSubscription_Renew
// =====================================================================

func TestSubscription_Renew_ExtendsFromStoredExpiration(t *testing.T) {
	sub := reconstructWithStatus(t, vo.StatusActive)
	oldEnd := sub.EndDate()
	newEnd := sub.Plan().NextExpiration(oldEnd)

	require.NoError(t, sub.Renew(newEnd))

	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), sub.EndDate())
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, 2, sub.Version())
}

func TestSubscription_Renew_ReactivatesExpired(t *testing.T) {
	sub := reconstructWithStatus(t, vo.StatusExpired)
	newEnd := sub.Plan().NextExpiration(sub.EndDate())

	require.NoError(t, sub.Renew(newEnd))

	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, newEnd, sub.EndDate())
}

func TestSubscription_Renew_RejectedWhenCancelled(t *testing.T) {
	sub := reconstructWithStatus(t, vo.StatusCancelled)
	endBefore := sub.EndDate()

	err := sub.Renew(sub.Plan().NextExpiration(endBefore))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, vo.StatusCancelled, sub.Status(), "state must be unchanged")
	assert.Equal(t, endBefore, sub.EndDate())
}

func TestSubscription_Renew_RejectedWhenPaused(t *testing.T) {
	sub := reconstructWithStatus(t, vo.StatusPaused)

	err := sub.Renew(sub.Plan().NextExpiration(sub.EndDate()))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestSubscription_Renew_RejectsEarlierEndDate(t *testing.T) {
	sub := reconstructWithStatus(t, vo.StatusActive)

	err := sub.Renew(sub.EndDate().AddDate(0, 0, -1))

	assert.Error(t, err)
}

// =====================================================================
// TestSubscription_Pause / Cancel / MarkAsExpired
// =====================================================================

func TestSubscription_Pause(t *testing.T) {
	sub := newActiveSubscription(t)
	endBefore := sub.EndDate()

	require.NoError(t, sub.Pause())

	assert.Equal(t, vo.StatusPaused, sub.Status())
	assert.Equal(t, endBefore, sub.EndDate(), "pause must not touch the expiration")

	// idempotent
	require.NoError(t, sub.Pause())
	assert.Equal(t, vo.StatusPaused, sub.Status())
}

func TestSubscription_Pause_RejectedWhenExpired(t *testing.T) {
	sub := reconstructWithStatus(t, vo.StatusExpired)

	err := sub.Pause()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestSubscription_Cancel(t *testing.T) {
	for _, from := range []vo.SubscriptionStatus{vo.StatusActive, vo.StatusPaused, vo.StatusExpired} {
		t.Run(from.String(), func(t *testing.T) {
			sub := reconstructWithStatus(t, from)

			require.NoError(t, sub.Cancel())

			assert.Equal(t, vo.StatusCancelled, sub.Status())
			require.NotNil(t, sub.CancelledAt())
		})
	}
}

func TestSubscription_Cancel_Idempotent(t *testing.T) {
	sub := reconstructWithStatus(t, vo.StatusCancelled)
	require.NoError(t, sub.Cancel())
	assert.Equal(t, vo.StatusCancelled, sub.Status())
}

func TestSubscription_MarkAsExpired(t *testing.T) {
	sub := newActiveSubscription(t)

	require.NoError(t, sub.MarkAsExpired())
	assert.Equal(t, vo.StatusExpired, sub.Status())

	// idempotent
	require.NoError(t, sub.MarkAsExpired())
	assert.Equal(t, vo.StatusExpired, sub.Status())
}

func TestSubscription_MarkAsExpired_RejectedWhenCancelled(t *testing.T) {
	sub := reconstructWithStatus(t, vo.StatusCancelled)

	err := sub.MarkAsExpired()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestSubscription_ExpirationNeverPrecedesStart(t *testing.T) {
	sub := newActiveSubscription(t)

	require.NoError(t, sub.Renew(sub.Plan().NextExpiration(sub.EndDate())))
	assert.False(t, sub.EndDate().Before(sub.StartDate()))

	require.NoError(t, sub.Pause())
	assert.False(t, sub.EndDate().Before(sub.StartDate()))

	require.NoError(t, sub.Cancel())
	assert.False(t, sub.EndDate().Before(sub.StartDate()))
}

func TestSubscription_IsEntitled(t *testing.T) {
	now := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	active := reconstructWithStatus(t, vo.StatusActive)
	assert.True(t, active.IsEntitled(now))

	assert.False(t, active.IsEntitled(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
		"lapsed expiration means not entitled even while status is still active")

	paused := reconstructWithStatus(t, vo.StatusPaused)
	assert.False(t, paused.IsEntitled(now))
}

// =====================================================================
// TestRenewal_*
// =====================================================================

func TestNewRenewal_Valid(t *testing.T) {
	oldEnd := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)
	newEnd := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	r, err := NewRenewal(1, oldEnd, newEnd, 15000)

	require.NoError(t, err)
	assert.Equal(t, ActionRenewed, r.Action())
	assert.Equal(t, oldEnd, r.OldEndDate())
	assert.Equal(t, newEnd, r.NewEndDate())
	assert.Equal(t, uint64(15000), r.PriceCents())
	assert.False(t, r.CreatedAt().IsZero())
}

func TestNewRenewal_RejectsReversedDates(t *testing.T) {
	oldEnd := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	newEnd := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)

	_, err := NewRenewal(1, oldEnd, newEnd, 15000)
	assert.Error(t, err)
}

func TestRenewal_ChainContiguity(t *testing.T) {
	sub := reconstructWithStatus(t, vo.StatusActive)

	first, err := NewRenewal(sub.ID(), sub.EndDate(), sub.Plan().NextExpiration(sub.EndDate()), sub.PriceCents())
	require.NoError(t, err)
	require.NoError(t, sub.Renew(first.NewEndDate()))

	second, err := NewRenewal(sub.ID(), sub.EndDate(), sub.Plan().NextExpiration(sub.EndDate()), sub.PriceCents())
	require.NoError(t, err)
	require.NoError(t, sub.Renew(second.NewEndDate()))

	assert.Equal(t, first.NewEndDate(), second.OldEndDate(),
		"consecutive ledger records must chain contiguously")
	assert.Equal(t, second.NewEndDate(), sub.EndDate())
}
