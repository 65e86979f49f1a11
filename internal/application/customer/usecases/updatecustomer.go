package usecases

import (
	"context"
	"fmt"

	"github.com/castellan-host/castellan/internal/application/customer/dto"
	"github.com/castellan-host/castellan/internal/domain/customer"
	"github.com/castellan-host/castellan/internal/shared/errors"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

// UpdateCustomerCommand carries the mutable contact fields. The customer
// code is immutable and cannot be changed here. Empty fields are left
// untouched.
type UpdateCustomerCommand struct {
	CustomerID uint
	Name       string
	Email      string
	Whatsapp   string
	Address    string
	Password   string
}

type UpdateCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	hasher       PasswordHasher
	logger       logger.Interface
}

func NewUpdateCustomerUseCase(
	customerRepo customer.CustomerRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerRepo: customerRepo,
		hasher:       hasher,
		logger:       logger,
	}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, cmd UpdateCustomerCommand) (*dto.CustomerDTO, error) {
	c, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	c.UpdateContact(cmd.Name, cmd.Email, cmd.Whatsapp, cmd.Address)

	if cmd.Password != "" {
		hash, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err, "customer_id", c.ID())
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := c.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.customerRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update customer", "error", err, "customer_id", c.ID())
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	uc.logger.Infow("customer updated", "customer_id", c.ID(), "code", c.Code())

	return dto.ToCustomerDTO(c), nil
}
