package dto

import (
	"time"

	"github.com/castellan-host/castellan/internal/domain/customer"
	"github.com/castellan-host/castellan/internal/shared/utils"
)

type CustomerDTO struct {
	ID        uint      `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Whatsapp  string    `json:"whatsapp,omitempty"`
	Address   string    `json:"address,omitempty"`
	Role      string    `json:"role"`
	CastleIDs []string  `json:"castle_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerStatsDTO decorates a customer with rollups over its bot fleet.
type CustomerStatsDTO struct {
	CustomerDTO
	TotalBots         int    `json:"total_bots"`
	ActiveBots        int    `json:"active_bots"`
	ExpiredBots       int    `json:"expired_bots"`
	MonthlyValueCents uint64 `json:"monthly_value_cents"`
	MonthlyValue      string `json:"monthly_value"`
}

func ToCustomerDTO(c *customer.Customer) *CustomerDTO {
	if c == nil {
		return nil
	}

	return &CustomerDTO{
		ID:        c.ID(),
		Code:      c.Code(),
		Name:      c.Name(),
		Email:     c.Email(),
		Whatsapp:  c.Whatsapp(),
		Address:   c.Address(),
		Role:      c.Role().String(),
		CastleIDs: c.CastleIDs(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func ToCustomerStatsDTO(c *customer.Customer, total, active, expired int, monthlyValueCents uint64) *CustomerStatsDTO {
	base := ToCustomerDTO(c)
	if base == nil {
		return nil
	}

	return &CustomerStatsDTO{
		CustomerDTO:       *base,
		TotalBots:         total,
		ActiveBots:        active,
		ExpiredBots:       expired,
		MonthlyValueCents: monthlyValueCents,
		MonthlyValue:      utils.FormatBRL(monthlyValueCents),
	}
}
