package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/castellan-host/castellan/internal/application/castle/dto"
	"github.com/castellan-host/castellan/internal/domain/castle"
	"github.com/castellan-host/castellan/internal/domain/customer"
	"github.com/castellan-host/castellan/internal/shared/errors"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

type ListCastlesQuery struct {
	CustomerID uint
}

// ListCastlesUseCase enumerates the castle directories the calling customer
// may see. The authorization scope is re-read from the customer record on
// every call rather than trusted from the token, so revocations take effect
// immediately.
type ListCastlesUseCase struct {
	customerRepo customer.CustomerRepository
	resolver     castle.Resolver
	logger       logger.Interface
}

func NewListCastlesUseCase(
	customerRepo customer.CustomerRepository,
	resolver castle.Resolver,
	logger logger.Interface,
) *ListCastlesUseCase {
	return &ListCastlesUseCase{
		customerRepo: customerRepo,
		resolver:     resolver,
		logger:       logger,
	}
}

func (uc *ListCastlesUseCase) Execute(ctx context.Context, query ListCastlesQuery) (*dto.CastleListDTO, error) {
	c, err := uc.customerRepo.GetByID(ctx, query.CustomerID)
	if err != nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	result, err := uc.resolver.ListAccessible(ctx, c.Identity())
	if err != nil {
		if stderrors.Is(err, castle.ErrRootUnavailable) {
			uc.logger.Errorw("castle root unavailable", "error", err, "customer_id", c.ID())
			return nil, errors.NewUnavailableError("castle storage is unavailable")
		}
		uc.logger.Errorw("failed to resolve castles", "error", err, "customer_id", c.ID())
		return nil, fmt.Errorf("failed to resolve castles: %w", err)
	}

	return dto.ToCastleListDTO(result), nil
}
