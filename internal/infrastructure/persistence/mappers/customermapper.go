package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/castellan-host/castellan/internal/domain/customer"
	"github.com/castellan-host/castellan/internal/infrastructure/persistence/models"
	"github.com/castellan-host/castellan/internal/shared/authorization"
)

type CustomerMapper interface {
	ToEntity(model *models.CustomerModel) (*customer.Customer, error)
	ToModel(entity *customer.Customer) (*models.CustomerModel, error)
	ToEntities(models []*models.CustomerModel) ([]*customer.Customer, error)
}

type CustomerMapperImpl struct{}

func NewCustomerMapper() CustomerMapper {
	return &CustomerMapperImpl{}
}

func (m *CustomerMapperImpl) ToEntity(model *models.CustomerModel) (*customer.Customer, error) {
	if model == nil {
		return nil, nil
	}

	var castleIDs []string
	if model.CastleIDs != nil {
		if err := json.Unmarshal(model.CastleIDs, &castleIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal castle IDs: %w", err)
		}
	}

	role, err := authorization.ParseRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to parse role: %w", err)
	}

	entity, err := customer.ReconstructCustomer(
		model.ID,
		model.Code,
		model.Name,
		model.Email,
		model.Whatsapp,
		model.Address,
		model.PasswordHash,
		role,
		castleIDs,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct customer entity: %w", err)
	}

	return entity, nil
}

func (m *CustomerMapperImpl) ToModel(entity *customer.Customer) (*models.CustomerModel, error) {
	if entity == nil {
		return nil, nil
	}

	var castleIDsJSON datatypes.JSON
	if ids := entity.CastleIDs(); len(ids) > 0 {
		data, err := json.Marshal(ids)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal castle IDs: %w", err)
		}
		castleIDsJSON = data
	}

	return &models.CustomerModel{
		ID:           entity.ID(),
		Code:         entity.Code(),
		Name:         entity.Name(),
		Email:        entity.Email(),
		Whatsapp:     entity.Whatsapp(),
		Address:      entity.Address(),
		PasswordHash: entity.PasswordHash(),
		Role:         entity.Role().String(),
		CastleIDs:    castleIDsJSON,
		Version:      entity.Version(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *CustomerMapperImpl) ToEntities(modelList []*models.CustomerModel) ([]*customer.Customer, error) {
	entities := make([]*customer.Customer, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
