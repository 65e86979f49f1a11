package usecases

import (
	"context"
	"fmt"

	"github.com/castellan-host/castellan/internal/domain/subscription"
	"github.com/castellan-host/castellan/internal/shared/errors"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

type DeleteSubscriptionCommand struct {
	SubscriptionID uint
	// Confirmed must be set explicitly by the caller. Deletion is a hard,
	// irreversible purge of the subscription and its renewal ledger.
	Confirmed bool
}

type DeleteSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	renewalRepo      subscription.RenewalRepository
	logger           logger.Interface
}

func NewDeleteSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	renewalRepo subscription.RenewalRepository,
	logger logger.Interface,
) *DeleteSubscriptionUseCase {
	return &DeleteSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		renewalRepo:      renewalRepo,
		logger:           logger,
	}
}

func (uc *DeleteSubscriptionUseCase) Execute(ctx context.Context, cmd DeleteSubscriptionCommand) error {
	if !cmd.Confirmed {
		return errors.NewValidationError("deletion requires explicit confirmation")
	}

	release := sharedLocks.Acquire(cmd.SubscriptionID)
	defer release()

	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return errors.NewNotFoundError("subscription not found")
	}

	if err := uc.renewalRepo.PurgeBySubscriptionID(ctx, sub.ID()); err != nil {
		uc.logger.Errorw("failed to purge renewal ledger", "error", err, "subscription_id", sub.ID())
		return fmt.Errorf("failed to purge renewal ledger: %w", err)
	}

	if err := uc.subscriptionRepo.Delete(ctx, sub.ID()); err != nil {
		uc.logger.Errorw("failed to delete subscription", "error", err, "subscription_id", sub.ID())
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	sharedLocks.Forget(sub.ID())

	uc.logger.Infow("subscription purged",
		"subscription_id", sub.ID(),
		"customer_id", sub.CustomerID(),
		"castle_id", sub.CastleID(),
	)

	return nil
}
