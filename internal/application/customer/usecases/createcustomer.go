package usecases

import (
	"context"
	"fmt"

	"github.com/castellan-host/castellan/internal/application/customer/dto"
	"github.com/castellan-host/castellan/internal/domain/customer"
	"github.com/castellan-host/castellan/internal/shared/authorization"
	"github.com/castellan-host/castellan/internal/shared/errors"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

type CreateCustomerCommand struct {
	Name     string
	Email    string
	Whatsapp string
	Address  string
	Password string
	Role     string
}

type CreateCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	hasher       PasswordHasher
	logger       logger.Interface
}

func NewCreateCustomerUseCase(
	customerRepo customer.CustomerRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		customerRepo: customerRepo,
		hasher:       hasher,
		logger:       logger,
	}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, cmd CreateCustomerCommand) (*dto.CustomerDTO, error) {
	if cmd.Name == "" {
		return nil, errors.NewValidationError("customer name is required")
	}
	if cmd.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	seq, err := uc.customerRepo.MaxCodeSequence(ctx)
	if err != nil {
		uc.logger.Errorw("failed to determine next customer code", "error", err)
		return nil, fmt.Errorf("failed to determine next customer code: %w", err)
	}
	code := customer.FormatCode(seq + 1)

	role := authorization.RoleClient
	if cmd.Role != "" {
		role, err = authorization.ParseRole(cmd.Role)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	c, err := customer.NewCustomer(code, cmd.Name, cmd.Email, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	c.UpdateContact("", "", cmd.Whatsapp, cmd.Address)

	if err := uc.customerRepo.Create(ctx, c); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("customer code already exists")
		}
		uc.logger.Errorw("failed to create customer", "error", err, "code", code)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	uc.logger.Infow("customer created", "customer_id", c.ID(), "code", c.Code(), "role", c.Role().String())

	return dto.ToCustomerDTO(c), nil
}
