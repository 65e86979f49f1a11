package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/castellan-host/castellan/internal/application/subscription/dto"
	"github.com/castellan-host/castellan/internal/domain/subscription"
	"github.com/castellan-host/castellan/internal/shared/errors"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

type RenewSubscriptionCommand struct {
	SubscriptionID uint
	// PriceCents overrides the subscription's stored price for this renewal
	// when non-zero.
	PriceCents uint64
}

type RenewSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	renewalRepo      subscription.RenewalRepository
	logger           logger.Interface
}

func NewRenewSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	renewalRepo subscription.RenewalRepository,
	logger logger.Interface,
) *RenewSubscriptionUseCase {
	return &RenewSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		renewalRepo:      renewalRepo,
		logger:           logger,
	}
}

func (uc *RenewSubscriptionUseCase) Execute(ctx context.Context, cmd RenewSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	release := sharedLocks.Acquire(cmd.SubscriptionID)
	defer release()

	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, errors.NewNotFoundError("subscription not found")
	}

	// the new expiration extends from the stored expiration, never from
	// now: a lapsed entitlement renewed today is not forgiven its lapse
	oldEndDate := sub.EndDate()
	newEndDate := sub.Plan().NextExpiration(oldEndDate)

	if err := sub.Renew(newEndDate); err != nil {
		uc.logger.Warnw("renew rejected",
			"subscription_id", cmd.SubscriptionID,
			"status", sub.Status().String(),
			"error", err,
		)
		if stderrors.Is(err, subscription.ErrInvalidStatusTransition) {
			return nil, errors.NewInvalidTransitionError(err.Error())
		}
		return nil, errors.NewValidationError(err.Error())
	}

	priceCents := sub.PriceCents()
	if cmd.PriceCents != 0 {
		priceCents = cmd.PriceCents
	}

	record, err := subscription.NewRenewal(sub.ID(), oldEndDate, newEndDate, priceCents)
	if err != nil {
		return nil, fmt.Errorf("failed to build renewal record: %w", err)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	if err := uc.renewalRepo.Append(ctx, record); err != nil {
		uc.logger.Errorw("failed to append renewal record", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to append renewal record: %w", err)
	}

	uc.logger.Infow("subscription renewed",
		"subscription_id", sub.ID(),
		"old_end_date", oldEndDate,
		"new_end_date", newEndDate,
		"price_cents", priceCents,
	)

	return dto.ToSubscriptionDTO(sub), nil
}
