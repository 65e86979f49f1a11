package models

import (
	"time"

	"github.com/castellan-host/castellan/internal/shared/constants"
)

// RenewalModel persists one immutable renewal-ledger entry. The table is
// append-only: rows are only ever inserted, or purged wholesale together
// with their subscription.
type RenewalModel struct {
	ID             uint      `gorm:"primarykey"`
	SubscriptionID uint      `gorm:"not null;index:idx_subscription_renewal"`
	Action         string    `gorm:"not null;size:20"`
	OldEndDate     time.Time `gorm:"not null"`
	NewEndDate     time.Time `gorm:"not null"`
	PriceCents     uint64    `gorm:"not null"`
	CreatedAt      time.Time
}

// TableName specifies the table name for GORM
func (RenewalModel) TableName() string {
	return constants.TableRenewals
}
