package dto

import (
	"time"

	"github.com/castellan-host/castellan/internal/domain/subscription"
	"github.com/castellan-host/castellan/internal/shared/biztime"
	"github.com/castellan-host/castellan/internal/shared/utils"
)

type SubscriptionDTO struct {
	ID          uint                   `json:"id"`
	CustomerID  uint                   `json:"customer_id"`
	CastleID    string                 `json:"castle_id"`
	GameAccount string                 `json:"game_account,omitempty"`
	Plan        string                 `json:"plan"`
	PriceCents  uint64                 `json:"price_cents"`
	Price       string                 `json:"price"`
	Status      string                 `json:"status"`
	StartDate   time.Time              `json:"start_date"`
	EndDate     time.Time              `json:"end_date"`
	// EndDateLocal presents the billing boundary in the business timezone;
	// storage and the end_date field stay UTC.
	EndDateLocal time.Time `json:"end_date_local"`
	IsEntitled  bool                   `json:"is_entitled"`
	CancelledAt *time.Time             `json:"cancelled_at,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Renewals    []*RenewalDTO          `json:"renewals,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

type RenewalDTO struct {
	ID             uint      `json:"id"`
	SubscriptionID uint      `json:"subscription_id"`
	Action         string    `json:"action"`
	OldEndDate     time.Time `json:"old_end_date"`
	NewEndDate     time.Time `json:"new_end_date"`
	PriceCents     uint64    `json:"price_cents"`
	Price          string    `json:"price"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToSubscriptionDTO converts a subscription aggregate to its presentation DTO.
func ToSubscriptionDTO(sub *subscription.Subscription) *SubscriptionDTO {
	if sub == nil {
		return nil
	}

	return &SubscriptionDTO{
		ID:           sub.ID(),
		CustomerID:   sub.CustomerID(),
		CastleID:     sub.CastleID(),
		GameAccount:  sub.GameAccount(),
		Plan:         sub.Plan().String(),
		PriceCents:   sub.PriceCents(),
		Price:        utils.FormatBRL(sub.PriceCents()),
		Status:       sub.Status().String(),
		StartDate:    sub.StartDate(),
		EndDate:      sub.EndDate(),
		EndDateLocal: biztime.ToBizTimezone(sub.EndDate()),
		IsEntitled:   sub.IsEntitled(time.Now().UTC()),
		CancelledAt:  sub.CancelledAt(),
		Metadata:     sub.Metadata(),
		CreatedAt:    sub.CreatedAt(),
		UpdatedAt:    sub.UpdatedAt(),
	}
}

// ToSubscriptionDTOWithRenewals embeds the renewal ledger in insertion order.
func ToSubscriptionDTOWithRenewals(sub *subscription.Subscription, renewals []*subscription.Renewal) *SubscriptionDTO {
	d := ToSubscriptionDTO(sub)
	if d == nil {
		return nil
	}
	d.Renewals = ToRenewalDTOList(renewals)
	return d
}

func ToSubscriptionDTOList(subs []*subscription.Subscription) []*SubscriptionDTO {
	dtos := make([]*SubscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		if sub != nil {
			dtos = append(dtos, ToSubscriptionDTO(sub))
		}
	}
	return dtos
}

func ToRenewalDTO(r *subscription.Renewal) *RenewalDTO {
	if r == nil {
		return nil
	}

	return &RenewalDTO{
		ID:             r.ID(),
		SubscriptionID: r.SubscriptionID(),
		Action:         r.Action(),
		OldEndDate:     r.OldEndDate(),
		NewEndDate:     r.NewEndDate(),
		PriceCents:     r.PriceCents(),
		Price:          utils.FormatBRL(r.PriceCents()),
		CreatedAt:      r.CreatedAt(),
	}
}

func ToRenewalDTOList(renewals []*subscription.Renewal) []*RenewalDTO {
	dtos := make([]*RenewalDTO, 0, len(renewals))
	for _, r := range renewals {
		if r != nil {
			dtos = append(dtos, ToRenewalDTO(r))
		}
	}
	return dtos
}
