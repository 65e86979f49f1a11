package migration

import (
	"github.com/castellan-host/castellan/internal/infrastructure/persistence/models"
)

// AutoMigrateModels returns every model the auto-migrate strategy manages.
// Keep this list in sync with the SQL scripts under scripts/.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CustomerModel{},
		&models.SubscriptionModel{},
		&models.RenewalModel{},
	}
}
