package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/castellan-host/castellan/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for
// subscriptions. This is the anti-corruption layer between domain and
// database. Rows are hard-deleted: a purge removes the row and its ledger
// entirely, so there is no soft-delete column.
type SubscriptionModel struct {
	ID          uint      `gorm:"primarykey"`
	CustomerID  uint      `gorm:"not null;index:idx_customer_subscription"`
	CastleID    string    `gorm:"not null;size:30;index:idx_castle"`
	GameAccount string    `gorm:"size:255"`
	Plan        string    `gorm:"not null;size:20"`
	PriceCents  uint64    `gorm:"not null"`
	Status      string    `gorm:"not null;size:20;index:idx_status"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null;index:idx_end_date"`
	CancelledAt *time.Time
	Metadata    datatypes.JSON
	Version     int `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
