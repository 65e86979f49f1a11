package subscription

import (
	"fmt"
	"time"

	vo "github.com/castellan-host/castellan/internal/domain/subscription/valueobjects"
)

// Subscription is the bot-entitlement aggregate root. It owns the
// entitlement's status and enforces the lifecycle transition rules.
type Subscription struct {
	id          uint
	customerID  uint
	castleID    string
	gameAccount string
	plan        vo.Plan
	priceCents  uint64
	status      vo.SubscriptionStatus
	startDate   time.Time
	endDate     time.Time
	cancelledAt *time.Time
	metadata    map[string]interface{}
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSubscription creates a new active subscription. The expiration is one
// billing cycle past now; the price defaults to the plan's catalog price
// when priceCents is zero.
func NewSubscription(customerID uint, castleID, gameAccount string, plan vo.Plan, priceCents uint64) (*Subscription, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if castleID == "" {
		return nil, fmt.Errorf("castle ID is required")
	}
	if !plan.IsValid() {
		return nil, fmt.Errorf("invalid plan: %q", plan)
	}
	if priceCents == 0 {
		priceCents = plan.DefaultPriceCents()
	}

	now := time.Now().UTC()
	s := &Subscription{
		customerID:  customerID,
		castleID:    castleID,
		gameAccount: gameAccount,
		plan:        plan,
		priceCents:  priceCents,
		status:      vo.StatusActive,
		startDate:   now,
		endDate:     plan.NextExpiration(now),
		metadata:    make(map[string]interface{}),
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}

	return s, nil
}

// ReconstructSubscription reconstructs a subscription from persistence.
func ReconstructSubscription(
	id, customerID uint,
	castleID, gameAccount string,
	plan vo.Plan,
	priceCents uint64,
	status vo.SubscriptionStatus,
	startDate, endDate time.Time,
	cancelledAt *time.Time,
	metadata map[string]interface{},
	version int,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if castleID == "" {
		return nil, fmt.Errorf("castle ID is required")
	}
	if !plan.IsValid() {
		return nil, fmt.Errorf("invalid plan: %q", plan)
	}
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Subscription{
		id:          id,
		customerID:  customerID,
		castleID:    castleID,
		gameAccount: gameAccount,
		plan:        plan,
		priceCents:  priceCents,
		status:      status,
		startDate:   startDate,
		endDate:     endDate,
		cancelledAt: cancelledAt,
		metadata:    metadata,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ID returns the subscription ID
func (s *Subscription) ID() uint {
	return s.id
}

// CustomerID returns the owning customer ID
func (s *Subscription) CustomerID() uint {
	return s.customerID
}

// CastleID returns the external account identifier (castle directory name)
func (s *Subscription) CastleID() string {
	return s.castleID
}

// GameAccount returns the external game-account identifier
func (s *Subscription) GameAccount() string {
	return s.gameAccount
}

// Plan returns the billing plan
func (s *Subscription) Plan() vo.Plan {
	return s.plan
}

// PriceCents returns the price actually charged, in BRL cents
func (s *Subscription) PriceCents() uint64 {
	return s.priceCents
}

// Status returns the subscription status
func (s *Subscription) Status() vo.SubscriptionStatus {
	return s.status
}

// StartDate returns the subscription start date
func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

// EndDate returns the current expiration instant
func (s *Subscription) EndDate() time.Time {
	return s.endDate
}

// CancelledAt returns when the subscription was cancelled
func (s *Subscription) CancelledAt() *time.Time {
	return s.cancelledAt
}

// Metadata returns the subscription metadata
func (s *Subscription) Metadata() map[string]interface{} {
	return s.metadata
}

// Version returns the aggregate version for optimistic locking
func (s *Subscription) Version() int {
	return s.version
}

// CreatedAt returns when the subscription was created
func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns when the subscription was last updated
func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// Renew extends the subscription to a new expiration and reactivates it.
// Only active or expired subscriptions can be renewed; the new expiration
// is computed by the caller from the stored expiration, never from now.
func (s *Subscription) Renew(newEndDate time.Time) error {
	if !s.status.CanRenew() {
		return ErrInvalidTransition(s.status.String(), vo.StatusActive.String())
	}

	if newEndDate.Before(s.endDate) {
		return fmt.Errorf("new end date must be after current end date")
	}

	s.endDate = newEndDate
	if s.status == vo.StatusExpired {
		s.status = vo.StatusActive
	}
	s.updatedAt = time.Now().UTC()
	s.version++

	return nil
}

// Pause pauses an active subscription. The expiration is left untouched.
func (s *Subscription) Pause() error {
	if s.status == vo.StatusPaused {
		return nil
	}

	if !s.status.CanTransitionTo(vo.StatusPaused) {
		return ErrInvalidTransition(s.status.String(), vo.StatusPaused.String())
	}

	s.status = vo.StatusPaused
	s.updatedAt = time.Now().UTC()
	s.version++

	return nil
}

// Cancel cancels a subscription. Terminal: no transition out of cancelled
// is exposed. History is retained.
func (s *Subscription) Cancel() error {
	if s.status == vo.StatusCancelled {
		return nil
	}

	if !s.status.CanTransitionTo(vo.StatusCancelled) {
		return ErrInvalidTransition(s.status.String(), vo.StatusCancelled.String())
	}

	now := time.Now().UTC()
	s.status = vo.StatusCancelled
	s.cancelledAt = &now
	s.updatedAt = now
	s.version++

	return nil
}

// MarkAsExpired marks the subscription expired. Idempotent; called only by
// the reconciliation pass, which is the single place now is compared
// against the end date.
func (s *Subscription) MarkAsExpired() error {
	if s.status == vo.StatusExpired {
		return nil
	}

	if !s.status.CanTransitionTo(vo.StatusExpired) {
		return ErrInvalidTransition(s.status.String(), vo.StatusExpired.String())
	}

	s.status = vo.StatusExpired
	s.updatedAt = time.Now().UTC()
	s.version++

	return nil
}

// IsLapsed reports whether the stored expiration lies in the past relative
// to the given instant.
func (s *Subscription) IsLapsed(now time.Time) bool {
	return now.After(s.endDate)
}

// IsEntitled reports whether the bot is currently entitled to run.
func (s *Subscription) IsEntitled(now time.Time) bool {
	return s.status == vo.StatusActive && !s.IsLapsed(now)
}

// Validate performs domain-level validation
func (s *Subscription) Validate() error {
	if s.customerID == 0 {
		return fmt.Errorf("customer ID is required")
	}
	if s.castleID == "" {
		return fmt.Errorf("castle ID is required")
	}
	if !s.plan.IsValid() {
		return fmt.Errorf("invalid plan: %q", s.plan)
	}
	if !vo.ValidStatuses[s.status] {
		return fmt.Errorf("invalid status: %s", s.status)
	}
	if s.endDate.Before(s.startDate) {
		return fmt.Errorf("end date must be after start date")
	}
	return nil
}
