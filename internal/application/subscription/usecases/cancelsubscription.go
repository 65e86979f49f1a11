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

type CancelSubscriptionCommand struct {
	SubscriptionID uint
}

type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	release := sharedLocks.Acquire(cmd.SubscriptionID)
	defer release()

	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, errors.NewNotFoundError("subscription not found")
	}

	// soft-terminal: the row and its ledger stay around
	if err := sub.Cancel(); err != nil {
		uc.logger.Warnw("cancel rejected",
			"subscription_id", cmd.SubscriptionID,
			"status", sub.Status().String(),
			"error", err,
		)
		if stderrors.Is(err, subscription.ErrInvalidStatusTransition) {
			return nil, errors.NewInvalidTransitionError(err.Error())
		}
		return nil, fmt.Errorf("failed to cancel subscription: %w", err)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("subscription cancelled", "subscription_id", sub.ID())

	return dto.ToSubscriptionDTO(sub), nil
}
