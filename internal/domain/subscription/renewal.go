package subscription

import (
	"errors"
	"time"
)

const (
	// ActionRenewed is the only action kind recorded in the ledger. Pauses
	// and cancellations change status without extending the expiration and
	// are not ledger events.
	ActionRenewed = "renewed"
)

var ValidActions = map[string]bool{
	ActionRenewed: true,
}

// Renewal is an immutable audit-log entry capturing one expiration-extending
// event. Once appended it is never mutated or deleted.
type Renewal struct {
	id             uint
	subscriptionID uint
	action         string
	oldEndDate     time.Time
	newEndDate     time.Time
	priceCents     uint64
	createdAt      time.Time
}

func NewRenewal(subscriptionID uint, oldEndDate, newEndDate time.Time, priceCents uint64) (*Renewal, error) {
	if subscriptionID == 0 {
		return nil, errors.New("subscription ID cannot be zero")
	}

	if newEndDate.Before(oldEndDate) {
		return nil, errors.New("new end date must not precede old end date")
	}

	return &Renewal{
		subscriptionID: subscriptionID,
		action:         ActionRenewed,
		oldEndDate:     oldEndDate,
		newEndDate:     newEndDate,
		priceCents:     priceCents,
		createdAt:      time.Now().UTC(),
	}, nil
}

func ReconstructRenewal(
	id uint,
	subscriptionID uint,
	action string,
	oldEndDate, newEndDate time.Time,
	priceCents uint64,
	createdAt time.Time,
) (*Renewal, error) {
	if id == 0 {
		return nil, errors.New("renewal ID cannot be zero")
	}

	if subscriptionID == 0 {
		return nil, errors.New("subscription ID cannot be zero")
	}

	if !ValidActions[action] {
		return nil, ErrInvalidAction
	}

	return &Renewal{
		id:             id,
		subscriptionID: subscriptionID,
		action:         action,
		oldEndDate:     oldEndDate,
		newEndDate:     newEndDate,
		priceCents:     priceCents,
		createdAt:      createdAt,
	}, nil
}

func (r *Renewal) ID() uint {
	return r.id
}

func (r *Renewal) SubscriptionID() uint {
	return r.subscriptionID
}

func (r *Renewal) Action() string {
	return r.action
}

func (r *Renewal) OldEndDate() time.Time {
	return r.oldEndDate
}

func (r *Renewal) NewEndDate() time.Time {
	return r.newEndDate
}

func (r *Renewal) PriceCents() uint64 {
	return r.priceCents
}

func (r *Renewal) CreatedAt() time.Time {
	return r.createdAt
}

// SetID sets the renewal ID (only for persistence layer use)
func (r *Renewal) SetID(id uint) error {
	if r.id != 0 {
		return errors.New("renewal ID is already set")
	}
	if id == 0 {
		return errors.New("renewal ID cannot be zero")
	}
	r.id = id
	return nil
}
