package usecases

import (
	"context"
	"fmt"

	"github.com/castellan-host/castellan/internal/domain/customer"
	"github.com/castellan-host/castellan/internal/domain/subscription"
	"github.com/castellan-host/castellan/internal/shared/errors"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

type DeleteCustomerCommand struct {
	CustomerID uint
	// Confirmed must be set explicitly: deleting a customer cascades into
	// a hard purge of all its subscriptions and their renewal ledgers.
	Confirmed bool
}

type DeleteCustomerUseCase struct {
	customerRepo     customer.CustomerRepository
	subscriptionRepo subscription.SubscriptionRepository
	renewalRepo      subscription.RenewalRepository
	logger           logger.Interface
}

func NewDeleteCustomerUseCase(
	customerRepo customer.CustomerRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	renewalRepo subscription.RenewalRepository,
	logger logger.Interface,
) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{
		customerRepo:     customerRepo,
		subscriptionRepo: subscriptionRepo,
		renewalRepo:      renewalRepo,
		logger:           logger,
	}
}

// Execute removes the customer and everything it owns. Subscriptions are
// purged before the customer row so a failure mid-way never leaves
// subscriptions without an owner.
func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, cmd DeleteCustomerCommand) error {
	if !cmd.Confirmed {
		return errors.NewValidationError("deletion requires explicit confirmation")
	}

	c, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		return errors.NewNotFoundError("customer not found")
	}

	if err := uc.renewalRepo.PurgeByCustomerID(ctx, c.ID()); err != nil {
		uc.logger.Errorw("failed to purge renewal ledgers", "error", err, "customer_id", c.ID())
		return fmt.Errorf("failed to purge renewal ledgers: %w", err)
	}

	if err := uc.subscriptionRepo.DeleteByCustomerID(ctx, c.ID()); err != nil {
		uc.logger.Errorw("failed to delete subscriptions", "error", err, "customer_id", c.ID())
		return fmt.Errorf("failed to delete subscriptions: %w", err)
	}

	if err := uc.customerRepo.Delete(ctx, c.ID()); err != nil {
		uc.logger.Errorw("failed to delete customer", "error", err, "customer_id", c.ID())
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	uc.logger.Infow("customer deleted", "customer_id", c.ID(), "code", c.Code())

	return nil
}
