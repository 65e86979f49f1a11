package subscription

import (
	"context"
	"time"

	vo "github.com/castellan-host/castellan/internal/domain/subscription/valueobjects"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	GetByCustomerID(ctx context.Context, customerID uint) ([]*Subscription, error)
	Update(ctx context.Context, subscription *Subscription) error
	// Delete hard-purges the subscription row. Ledger rows are removed by
	// the caller in the same transaction boundary.
	Delete(ctx context.Context, id uint) error
	DeleteByCustomerID(ctx context.Context, customerID uint) error

	FindOverdueActive(ctx context.Context, now time.Time) ([]*Subscription, error)
	List(ctx context.Context, filter SubscriptionFilter) ([]*Subscription, int64, error)

	CountByCustomerID(ctx context.Context, customerID uint) (int64, error)
	CountByStatus(ctx context.Context, status vo.SubscriptionStatus) (int64, error)
}

type SubscriptionFilter struct {
	CustomerID *uint
	Status     *string
	Plan       *string
	CastleID   *string
	Page       int
	PageSize   int
	SortBy     string
	SortDesc   bool
}

// RenewalRepository is the append-only ledger contract. There is no update
// or delete of individual records; PurgeBySubscriptionID exists solely for
// the hard-delete of a whole subscription.
type RenewalRepository interface {
	Append(ctx context.Context, renewal *Renewal) error
	ListBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*Renewal, error)
	PurgeBySubscriptionID(ctx context.Context, subscriptionID uint) error
	PurgeByCustomerID(ctx context.Context, customerID uint) error
}
