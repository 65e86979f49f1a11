package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/castellan-host/castellan/internal/domain/subscription"
	"github.com/castellan-host/castellan/internal/infrastructure/persistence/mappers"
	"github.com/castellan-host/castellan/internal/infrastructure/persistence/models"
	"github.com/castellan-host/castellan/internal/shared/constants"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

// RenewalRepositoryImpl persists the append-only renewal ledger. No update
// path exists; rows are inserted, listed in insertion order, or purged
// together with their subscription.
type RenewalRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RenewalMapper
	logger logger.Interface
}

func NewRenewalRepository(
	db *gorm.DB,
	logger logger.Interface,
) subscription.RenewalRepository {
	return &RenewalRepositoryImpl{
		db:     db,
		mapper: mappers.NewRenewalMapper(),
		logger: logger,
	}
}

func (r *RenewalRepositoryImpl) Append(ctx context.Context, entity *subscription.Renewal) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map renewal entity to model", "error", err)
		return fmt.Errorf("failed to map renewal entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append renewal record", "error", err, "subscription_id", model.SubscriptionID)
		return fmt.Errorf("failed to append renewal record: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set renewal ID: %w", err)
	}

	return nil
}

func (r *RenewalRepositoryImpl) ListBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*subscription.Renewal, error) {
	var modelList []*models.RenewalModel

	// insertion order defines chronological order
	if err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list renewals", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to list renewals: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *RenewalRepositoryImpl) PurgeBySubscriptionID(ctx context.Context, subscriptionID uint) error {
	if err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Delete(&models.RenewalModel{}).Error; err != nil {
		r.logger.Errorw("failed to purge renewal ledger", "error", err, "subscription_id", subscriptionID)
		return fmt.Errorf("failed to purge renewal ledger: %w", err)
	}

	return nil
}

func (r *RenewalRepositoryImpl) PurgeByCustomerID(ctx context.Context, customerID uint) error {
	subQuery := r.db.
		Table(constants.TableSubscriptions).
		Select("id").
		Where("customer_id = ?", customerID)

	if err := r.db.WithContext(ctx).
		Where("subscription_id IN (?)", subQuery).
		Delete(&models.RenewalModel{}).Error; err != nil {
		r.logger.Errorw("failed to purge renewal ledgers by customer", "error", err, "customer_id", customerID)
		return fmt.Errorf("failed to purge renewal ledgers: %w", err)
	}

	return nil
}
