package usecases

import (
	"context"
	"fmt"

	"github.com/castellan-host/castellan/internal/application/subscription/dto"
	"github.com/castellan-host/castellan/internal/domain/subscription"
	"github.com/castellan-host/castellan/internal/shared/constants"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

type ListSubscriptionsQuery struct {
	CustomerID *uint
	Status     *string
	Plan       *string
	CastleID   *string
	Page       int
	PageSize   int
	SortBy     string
	SortDesc   bool
}

type ListSubscriptionsResult struct {
	Subscriptions []*dto.SubscriptionDTO `json:"subscriptions"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, query ListSubscriptionsQuery) (*ListSubscriptionsResult, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.DefaultPageSize
	}

	filter := subscription.SubscriptionFilter{
		CustomerID: query.CustomerID,
		Status:     query.Status,
		Plan:       query.Plan,
		CastleID:   query.CastleID,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     query.SortBy,
		SortDesc:   query.SortDesc,
	}

	subs, total, err := uc.subscriptionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return &ListSubscriptionsResult{
		Subscriptions: dto.ToSubscriptionDTOList(subs),
		Total:         total,
		Page:          query.Page,
		PageSize:      query.PageSize,
	}, nil
}
