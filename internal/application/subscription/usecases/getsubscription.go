package usecases

import (
	"context"
	"fmt"

	"github.com/castellan-host/castellan/internal/application/subscription/dto"
	"github.com/castellan-host/castellan/internal/domain/subscription"
	"github.com/castellan-host/castellan/internal/shared/errors"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

type GetSubscriptionQuery struct {
	SubscriptionID uint
	// IncludeRenewals embeds the full renewal ledger in the response.
	IncludeRenewals bool
}

type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	renewalRepo      subscription.RenewalRepository
	logger           logger.Interface
}

func NewGetSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	renewalRepo subscription.RenewalRepository,
	logger logger.Interface,
) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		renewalRepo:      renewalRepo,
		logger:           logger,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, query GetSubscriptionQuery) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, query.SubscriptionID)
	if err != nil {
		return nil, errors.NewNotFoundError("subscription not found")
	}

	if !query.IncludeRenewals {
		return dto.ToSubscriptionDTO(sub), nil
	}

	renewals, err := uc.renewalRepo.ListBySubscriptionID(ctx, sub.ID())
	if err != nil {
		uc.logger.Errorw("failed to list renewals", "error", err, "subscription_id", sub.ID())
		return nil, fmt.Errorf("failed to list renewals: %w", err)
	}

	return dto.ToSubscriptionDTOWithRenewals(sub, renewals), nil
}
