package usecases

import (
	"context"

	"github.com/castellan-host/castellan/internal/application/customer/dto"
	"github.com/castellan-host/castellan/internal/domain/customer"
	"github.com/castellan-host/castellan/internal/shared/errors"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

type GetCustomerQuery struct {
	CustomerID uint
}

type GetCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	logger       logger.Interface
}

func NewGetCustomerUseCase(
	customerRepo customer.CustomerRepository,
	logger logger.Interface,
) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, query GetCustomerQuery) (*dto.CustomerDTO, error) {
	c, err := uc.customerRepo.GetByID(ctx, query.CustomerID)
	if err != nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	return dto.ToCustomerDTO(c), nil
}
