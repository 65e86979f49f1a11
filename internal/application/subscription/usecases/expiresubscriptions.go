package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/castellan-host/castellan/internal/domain/subscription"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

// ExpireSubscriptionsUseCase is the reconciliation pass that marks overdue
// active subscriptions expired. It is the single place in the system where
// the clock is compared against stored expirations, and it is idempotent:
// re-running it over the same data changes nothing.
type ExpireSubscriptionsUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewExpireSubscriptionsUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *ExpireSubscriptionsUseCase {
	return &ExpireSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute finds active subscriptions whose end date lies in the past and
// marks them expired. Returns the number of subscriptions transitioned.
func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context) (int, error) {
	now := time.Now().UTC()

	overdue, err := uc.subscriptionRepo.FindOverdueActive(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to find overdue subscriptions: %w", err)
	}

	if len(overdue) == 0 {
		return 0, nil
	}

	uc.logger.Infow("found overdue subscriptions to reconcile", "count", len(overdue))

	markedCount := 0
	for _, sub := range overdue {
		release := sharedLocks.Acquire(sub.ID())

		if err := sub.MarkAsExpired(); err != nil {
			release()
			uc.logger.Warnw("failed to mark subscription as expired",
				"subscription_id", sub.ID(),
				"current_status", sub.Status().String(),
				"error", err,
			)
			continue
		}

		if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
			release()
			uc.logger.Errorw("failed to update expired subscription",
				"subscription_id", sub.ID(),
				"error", err,
			)
			continue
		}
		release()

		markedCount++
		uc.logger.Debugw("subscription marked as expired",
			"subscription_id", sub.ID(),
			"end_date", sub.EndDate(),
		)
	}

	return markedCount, nil
}
