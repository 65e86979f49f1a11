package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/castellan-host/castellan/internal/domain/customer"
	"github.com/castellan-host/castellan/internal/infrastructure/persistence/mappers"
	"github.com/castellan-host/castellan/internal/infrastructure/persistence/models"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

var allowedCustomerSortByFields = map[string]bool{
	"id":         true,
	"code":       true,
	"name":       true,
	"email":      true,
	"role":       true,
	"created_at": true,
	"updated_at": true,
}

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
	logger logger.Interface
}

func NewCustomerRepository(
	db *gorm.DB,
	logger logger.Interface,
) customer.CustomerRepository {
	return &CustomerRepositoryImpl{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
		logger: logger,
	}
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, entity *customer.Customer) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map customer entity to model", "error", err)
		return fmt.Errorf("failed to map customer entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create customer in database", "error", err, "code", model.Code)
		return fmt.Errorf("failed to create customer: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set customer ID: %w", err)
	}

	return nil
}

func (r *CustomerRepositoryImpl) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		r.logger.Errorw("failed to get customer by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CustomerRepositoryImpl) GetByCode(ctx context.Context, code string) (*customer.Customer, error) {
	var model models.CustomerModel

	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		r.logger.Errorw("failed to get customer by code", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CustomerRepositoryImpl) Update(ctx context.Context, entity *customer.Customer) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map customer entity to model", "error", err)
		return fmt.Errorf("failed to map customer entity: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"email":         model.Email,
			"whatsapp":      model.Whatsapp,
			"address":       model.Address,
			"password_hash": model.PasswordHash,
			"castle_ids":    model.CastleIDs,
			"version":       model.Version,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update customer", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("customer %d was modified concurrently", model.ID)
	}

	return nil
}

func (r *CustomerRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomerModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete customer", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}

func (r *CustomerRepositoryImpl) List(ctx context.Context, filter customer.CustomerFilter) ([]*customer.Customer, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.CustomerModel{})

	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}
	if filter.Search != "" {
		pattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("code LIKE ? OR name LIKE ? OR email LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count customers", "error", err)
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	sortBy := "created_at"
	if filter.SortBy != "" && allowedCustomerSortByFields[filter.SortBy] {
		sortBy = filter.SortBy
	}
	order := sortBy + " ASC"
	if filter.SortDesc {
		order = sortBy + " DESC"
	}

	var modelList []*models.CustomerModel
	if err := query.
		Order(order).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list customers", "error", err)
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *CustomerRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check customer code: %w", err)
	}
	return count > 0, nil
}

func (r *CustomerRepositoryImpl) MaxCodeSequence(ctx context.Context) (uint, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Pluck("code", &codes).Error; err != nil {
		return 0, fmt.Errorf("failed to load customer codes: %w", err)
	}

	var max uint
	for _, code := range codes {
		var seq uint
		if _, err := fmt.Sscanf(code, "CLIENTE_%d", &seq); err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}

	return max, nil
}
