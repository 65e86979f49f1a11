package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/castellan-host/castellan/internal/application/customer/dto"
	"github.com/castellan-host/castellan/internal/domain/customer"
	"github.com/castellan-host/castellan/internal/domain/subscription"
	vo "github.com/castellan-host/castellan/internal/domain/subscription/valueobjects"
	"github.com/castellan-host/castellan/internal/shared/constants"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

type ListCustomersQuery struct {
	Role     *string
	Search   string
	Page     int
	PageSize int
	SortBy   string
	SortDesc bool
}

type ListCustomersResult struct {
	Customers []*dto.CustomerStatsDTO `json:"customers"`
	Total     int64                   `json:"total"`
	Page      int                     `json:"page"`
	PageSize  int                     `json:"page_size"`
}

// ListCustomersUseCase returns customers decorated with per-customer fleet
// rollups (bot counts and normalized monthly value).
type ListCustomersUseCase struct {
	customerRepo     customer.CustomerRepository
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewListCustomersUseCase(
	customerRepo customer.CustomerRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo:     customerRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, query ListCustomersQuery) (*ListCustomersResult, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.DefaultPageSize
	}

	filter := customer.CustomerFilter{
		Role:     query.Role,
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
		SortBy:   query.SortBy,
		SortDesc: query.SortDesc,
	}

	customers, total, err := uc.customerRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	now := time.Now().UTC()
	result := make([]*dto.CustomerStatsDTO, 0, len(customers))
	for _, c := range customers {
		subs, err := uc.subscriptionRepo.GetByCustomerID(ctx, c.ID())
		if err != nil {
			uc.logger.Warnw("failed to load subscriptions for rollup", "error", err, "customer_id", c.ID())
			result = append(result, dto.ToCustomerStatsDTO(c, 0, 0, 0, 0))
			continue
		}

		totalBots, activeBots, expiredBots, monthlyValueCents := rollup(subs, now)
		result = append(result, dto.ToCustomerStatsDTO(c, totalBots, activeBots, expiredBots, monthlyValueCents))
	}

	return &ListCustomersResult{
		Customers: result,
		Total:     total,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}, nil
}

// rollup computes fleet statistics for one customer. The monthly value is
// the monthly-equivalent sum of active subscription prices.
func rollup(subs []*subscription.Subscription, now time.Time) (total, active, expired int, monthlyValueCents uint64) {
	total = len(subs)
	for _, sub := range subs {
		switch sub.Status() {
		case vo.StatusActive:
			if sub.IsLapsed(now) {
				// overdue but not yet reconciled; count as expired
				expired++
				continue
			}
			active++
			monthlyValueCents += sub.PriceCents() / uint64(planMonths(sub.Plan()))
		case vo.StatusExpired:
			expired++
		}
	}
	return total, active, expired, monthlyValueCents
}

func planMonths(p vo.Plan) int {
	switch p {
	case vo.PlanQuarterly:
		return 3
	case vo.PlanSemiannual:
		return 6
	case vo.PlanAnnual:
		return 12
	default:
		return 1
	}
}
