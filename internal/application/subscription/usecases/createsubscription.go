package usecases

import (
	"context"
	"fmt"

	"github.com/castellan-host/castellan/internal/application/subscription/dto"
	"github.com/castellan-host/castellan/internal/domain/customer"
	"github.com/castellan-host/castellan/internal/domain/subscription"
	vo "github.com/castellan-host/castellan/internal/domain/subscription/valueobjects"
	"github.com/castellan-host/castellan/internal/shared/errors"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	CustomerID  uint
	CastleID    string
	GameAccount string
	Plan        string
	// PriceCents overrides the catalog price when non-zero.
	PriceCents uint64
}

type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	customerRepo     customer.CustomerRepository
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	customerRepo customer.CustomerRepository,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		customerRepo:     customerRepo,
		logger:           logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	plan, err := vo.ParsePlan(cmd.Plan)
	if err != nil {
		uc.logger.Warnw("rejected subscription with unknown plan", "plan", cmd.Plan)
		return nil, errors.NewValidationError(err.Error())
	}

	owner, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "error", err, "customer_id", cmd.CustomerID)
		return nil, errors.NewNotFoundError("customer not found")
	}

	sub, err := subscription.NewSubscription(owner.ID(), cmd.CastleID, cmd.GameAccount, plan, cmd.PriceCents)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to create subscription", "error", err, "customer_id", cmd.CustomerID)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	// the new castle becomes part of the owner's authorization scope
	owner.GrantCastle(cmd.CastleID)
	if err := uc.customerRepo.Update(ctx, owner); err != nil {
		uc.logger.Errorw("failed to grant castle to customer", "error", err,
			"customer_id", owner.ID(), "castle_id", cmd.CastleID)
		return nil, fmt.Errorf("failed to update customer scope: %w", err)
	}

	uc.logger.Infow("subscription created",
		"subscription_id", sub.ID(),
		"customer_id", owner.ID(),
		"castle_id", sub.CastleID(),
		"plan", sub.Plan().String(),
		"end_date", sub.EndDate(),
	)

	return dto.ToSubscriptionDTO(sub), nil
}
