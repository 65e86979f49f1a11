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

type PauseSubscriptionCommand struct {
	SubscriptionID uint
}

type PauseSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewPauseSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *PauseSubscriptionUseCase {
	return &PauseSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *PauseSubscriptionUseCase) Execute(ctx context.Context, cmd PauseSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	release := sharedLocks.Acquire(cmd.SubscriptionID)
	defer release()

	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, errors.NewNotFoundError("subscription not found")
	}

	// pause leaves the expiration untouched and writes no ledger entry
	if err := sub.Pause(); err != nil {
		uc.logger.Warnw("pause rejected",
			"subscription_id", cmd.SubscriptionID,
			"status", sub.Status().String(),
			"error", err,
		)
		if stderrors.Is(err, subscription.ErrInvalidStatusTransition) {
			return nil, errors.NewInvalidTransitionError(err.Error())
		}
		return nil, fmt.Errorf("failed to pause subscription: %w", err)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("subscription paused", "subscription_id", sub.ID())

	return dto.ToSubscriptionDTO(sub), nil
}
