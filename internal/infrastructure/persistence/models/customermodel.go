package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/castellan-host/castellan/internal/shared/constants"
)

// CustomerModel represents the database persistence model for customers.
// This is the anti-corruption layer between domain and database.
type CustomerModel struct {
	ID           uint      `gorm:"primarykey"`
	Code         string    `gorm:"uniqueIndex;not null;size:30;comment:human-facing customer code"`
	Name         string    `gorm:"not null;size:120"`
	Email        string    `gorm:"size:255;index:idx_customer_email"`
	Whatsapp     string    `gorm:"size:40"`
	Address      string    `gorm:"size:500"`
	PasswordHash string    `gorm:"not null;size:100"`
	Role         string    `gorm:"not null;size:20;default:client"`
	CastleIDs    datatypes.JSON
	Version      int       `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (CustomerModel) TableName() string {
	return constants.TableCustomers
}
