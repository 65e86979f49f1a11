package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castellan-host/castellan/internal/domain/customer"
	"github.com/castellan-host/castellan/internal/domain/subscription"
	vo "github.com/castellan-host/castellan/internal/domain/subscription/valueobjects"
	"github.com/castellan-host/castellan/internal/shared/authorization"
	"github.com/castellan-host/castellan/internal/shared/errors"
)

func TestCreateCustomerUseCase_MintsSequentialCodes(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := NewCreateCustomerUseCase(repo, fakeHasher{}, nopLogger{})

	first, err := uc.Execute(context.Background(), CreateCustomerCommand{
		Name:     "First Customer",
		Password: "some-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "CLIENTE_001", first.Code)

	second, err := uc.Execute(context.Background(), CreateCustomerCommand{
		Name:     "Second Customer",
		Password: "another-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "CLIENTE_002", second.Code)
}

func TestCreateCustomerUseCase_ValidationErrors(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := NewCreateCustomerUseCase(repo, fakeHasher{}, nopLogger{})

	tests := []struct {
		name string
		cmd  CreateCustomerCommand
	}{
		{name: "missing name", cmd: CreateCustomerCommand{Password: "some-password"}},
		{name: "missing password", cmd: CreateCustomerCommand{Name: "Some Customer"}},
		{name: "unknown role", cmd: CreateCustomerCommand{Name: "Some Customer", Password: "some-password", Role: "superuser"}},
		{name: "typoed role", cmd: CreateCustomerCommand{Name: "Some Customer", Password: "some-password", Role: "admin "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)

			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
		})
	}
}

func TestCreateCustomerUseCase_Roles(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := NewCreateCustomerUseCase(repo, fakeHasher{}, nopLogger{})

	created, err := uc.Execute(context.Background(), CreateCustomerCommand{
		Name:     "Operator",
		Password: "some-password",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleAdmin.String(), created.Role)

	created, err = uc.Execute(context.Background(), CreateCustomerCommand{
		Name:     "Default Role Customer",
		Password: "some-password",
	})
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleClient.String(), created.Role, "omitted role defaults to client")
}

func TestListCustomersUseCase_Rollups(t *testing.T) {
	custRepo := newFakeCustomerRepo()
	subRepo := newFakeSubscriptionRepo()

	c, err := customer.NewCustomer("CLIENTE_001", "Fleet Owner", "", "hashed", authorization.RoleClient)
	require.NoError(t, err)
	require.NoError(t, custRepo.Create(context.Background(), c))

	now := time.Now().UTC()

	// one current annual, one lapsed-but-unreconciled monthly, one expired
	seedReconstructed(t, subRepo, 1, c.ID(), vo.PlanAnnual, 140000, vo.StatusActive, now.AddDate(1, 0, 0))
	seedReconstructed(t, subRepo, 2, c.ID(), vo.PlanMonthly, 15000, vo.StatusActive, now.AddDate(0, 0, -3))
	seedReconstructed(t, subRepo, 3, c.ID(), vo.PlanMonthly, 15000, vo.StatusExpired, now.AddDate(0, -1, 0))

	uc := NewListCustomersUseCase(custRepo, subRepo, nopLogger{})

	result, err := uc.Execute(context.Background(), ListCustomersQuery{})
	require.NoError(t, err)
	require.Len(t, result.Customers, 1)

	stats := result.Customers[0]
	assert.Equal(t, 3, stats.TotalBots)
	assert.Equal(t, 1, stats.ActiveBots)
	assert.Equal(t, 2, stats.ExpiredBots)
	// annual normalized to its monthly equivalent
	assert.Equal(t, uint64(140000/12), stats.MonthlyValueCents)
}

func seedReconstructed(
	t *testing.T,
	repo *fakeSubscriptionRepo,
	id, customerID uint,
	plan vo.Plan,
	priceCents uint64,
	status vo.SubscriptionStatus,
	endDate time.Time,
) {
	t.Helper()
	sub, err := subscription.ReconstructSubscription(
		id, customerID, "830123456", "",
		plan, priceCents, status,
		endDate.AddDate(-1, 0, 0), endDate,
		nil, nil, 1, time.Now().UTC(), time.Now().UTC(),
	)
	require.NoError(t, err)
	repo.put(sub)
}
