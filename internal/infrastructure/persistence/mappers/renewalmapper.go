package mappers

import (
	"fmt"

	"github.com/castellan-host/castellan/internal/domain/subscription"
	"github.com/castellan-host/castellan/internal/infrastructure/persistence/models"
)

type RenewalMapper interface {
	ToEntity(model *models.RenewalModel) (*subscription.Renewal, error)
	ToModel(entity *subscription.Renewal) (*models.RenewalModel, error)
	ToEntities(models []*models.RenewalModel) ([]*subscription.Renewal, error)
}

type RenewalMapperImpl struct{}

func NewRenewalMapper() RenewalMapper {
	return &RenewalMapperImpl{}
}

func (m *RenewalMapperImpl) ToEntity(model *models.RenewalModel) (*subscription.Renewal, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := subscription.ReconstructRenewal(
		model.ID,
		model.SubscriptionID,
		model.Action,
		model.OldEndDate,
		model.NewEndDate,
		model.PriceCents,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct renewal entity: %w", err)
	}

	return entity, nil
}

func (m *RenewalMapperImpl) ToModel(entity *subscription.Renewal) (*models.RenewalModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.RenewalModel{
		ID:             entity.ID(),
		SubscriptionID: entity.SubscriptionID(),
		Action:         entity.Action(),
		OldEndDate:     entity.OldEndDate(),
		NewEndDate:     entity.NewEndDate(),
		PriceCents:     entity.PriceCents(),
		CreatedAt:      entity.CreatedAt(),
	}, nil
}

func (m *RenewalMapperImpl) ToEntities(modelList []*models.RenewalModel) ([]*subscription.Renewal, error) {
	entities := make([]*subscription.Renewal, 0, len(modelList))
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
