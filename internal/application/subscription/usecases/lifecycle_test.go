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

func seedCustomer(t *testing.T, repo *fakeCustomerRepo) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("CLIENTE_001", "Test Customer", "test@example.com", "hashed", authorization.RoleClient)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func seedSubscription(t *testing.T, repo *fakeSubscriptionRepo, customerID uint) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewSubscription(customerID, "830123456", "acct@game", vo.PlanMonthly, 0)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), sub))
	return sub
}

func TestCreateSubscriptionUseCase_GrantsCastleToOwner(t *testing.T) {
	subRepo := newFakeSubscriptionRepo()
	custRepo := newFakeCustomerRepo()
	owner := seedCustomer(t, custRepo)

	uc := NewCreateSubscriptionUseCase(subRepo, custRepo, nopLogger{})

	result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		CustomerID: owner.ID(),
		CastleID:   "830123456",
		Plan:       "monthly",
	})
	require.NoError(t, err)

	assert.Equal(t, "active", result.Status)
	assert.Equal(t, uint64(15000), result.PriceCents)

	stored, err := custRepo.GetByID(context.Background(), owner.ID())
	require.NoError(t, err)
	assert.True(t, stored.Identity().CanAccessCastle("830123456"))
}

func TestCreateSubscriptionUseCase_RejectsUnknownPlan(t *testing.T) {
	subRepo := newFakeSubscriptionRepo()
	custRepo := newFakeCustomerRepo()
	owner := seedCustomer(t, custRepo)

	uc := NewCreateSubscriptionUseCase(subRepo, custRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		CustomerID: owner.ID(),
		CastleID:   "830123456",
		Plan:       "weekly",
	})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestRenewSubscriptionUseCase_ExtendsFromStoredExpiration(t *testing.T) {
	subRepo := newFakeSubscriptionRepo()
	renewalRepo := newFakeRenewalRepo()
	custRepo := newFakeCustomerRepo()
	owner := seedCustomer(t, custRepo)
	sub := seedSubscription(t, subRepo, owner.ID())

	originalEnd := sub.EndDate()

	uc := NewRenewSubscriptionUseCase(subRepo, renewalRepo, nopLogger{})

	result, err := uc.Execute(context.Background(), RenewSubscriptionCommand{
		SubscriptionID: sub.ID(),
	})
	require.NoError(t, err)

	expectedEnd := vo.PlanMonthly.NextExpiration(originalEnd)
	assert.True(t, result.EndDate.Equal(expectedEnd),
		"renewal must extend from the stored expiration, not from now")

	renewals, err := renewalRepo.ListBySubscriptionID(context.Background(), sub.ID())
	require.NoError(t, err)
	require.Len(t, renewals, 1)
	assert.Equal(t, subscription.ActionRenewed, renewals[0].Action())
	assert.True(t, renewals[0].OldEndDate().Equal(originalEnd))
	assert.True(t, renewals[0].NewEndDate().Equal(expectedEnd))
}

func TestRenewSubscriptionUseCase_RejectsCancelled(t *testing.T) {
	subRepo := newFakeSubscriptionRepo()
	renewalRepo := newFakeRenewalRepo()
	custRepo := newFakeCustomerRepo()
	owner := seedCustomer(t, custRepo)
	sub := seedSubscription(t, subRepo, owner.ID())

	require.NoError(t, sub.Cancel())
	require.NoError(t, subRepo.Update(context.Background(), sub))

	uc := NewRenewSubscriptionUseCase(subRepo, renewalRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), RenewSubscriptionCommand{
		SubscriptionID: sub.ID(),
	})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInvalidTransition, appErr.Type)

	// a rejected renewal must not add a ledger entry
	renewals, err := renewalRepo.ListBySubscriptionID(context.Background(), sub.ID())
	require.NoError(t, err)
	assert.Empty(t, renewals)
}

func TestPauseSubscriptionUseCase_KeepsExpiration(t *testing.T) {
	subRepo := newFakeSubscriptionRepo()
	custRepo := newFakeCustomerRepo()
	owner := seedCustomer(t, custRepo)
	sub := seedSubscription(t, subRepo, owner.ID())

	originalEnd := sub.EndDate()

	uc := NewPauseSubscriptionUseCase(subRepo, nopLogger{})

	result, err := uc.Execute(context.Background(), PauseSubscriptionCommand{
		SubscriptionID: sub.ID(),
	})
	require.NoError(t, err)

	assert.Equal(t, "paused", result.Status)
	assert.True(t, result.EndDate.Equal(originalEnd))
}

func TestCancelSubscriptionUseCase_FromPaused(t *testing.T) {
	subRepo := newFakeSubscriptionRepo()
	custRepo := newFakeCustomerRepo()
	owner := seedCustomer(t, custRepo)
	sub := seedSubscription(t, subRepo, owner.ID())

	require.NoError(t, sub.Pause())
	require.NoError(t, subRepo.Update(context.Background(), sub))

	uc := NewCancelSubscriptionUseCase(subRepo, nopLogger{})

	result, err := uc.Execute(context.Background(), CancelSubscriptionCommand{
		SubscriptionID: sub.ID(),
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", result.Status)
}

func TestDeleteSubscriptionUseCase_RequiresConfirmation(t *testing.T) {
	subRepo := newFakeSubscriptionRepo()
	renewalRepo := newFakeRenewalRepo()
	custRepo := newFakeCustomerRepo()
	owner := seedCustomer(t, custRepo)
	sub := seedSubscription(t, subRepo, owner.ID())

	uc := NewDeleteSubscriptionUseCase(subRepo, renewalRepo, nopLogger{})

	err := uc.Execute(context.Background(), DeleteSubscriptionCommand{
		SubscriptionID: sub.ID(),
	})
	require.Error(t, err)

	// subscription must survive an unconfirmed delete
	_, err = subRepo.GetByID(context.Background(), sub.ID())
	assert.NoError(t, err)
}

func TestDeleteSubscriptionUseCase_PurgesLedger(t *testing.T) {
	subRepo := newFakeSubscriptionRepo()
	renewalRepo := newFakeRenewalRepo()
	custRepo := newFakeCustomerRepo()
	owner := seedCustomer(t, custRepo)
	sub := seedSubscription(t, subRepo, owner.ID())

	renewUC := NewRenewSubscriptionUseCase(subRepo, renewalRepo, nopLogger{})
	_, err := renewUC.Execute(context.Background(), RenewSubscriptionCommand{SubscriptionID: sub.ID()})
	require.NoError(t, err)

	uc := NewDeleteSubscriptionUseCase(subRepo, renewalRepo, nopLogger{})
	require.NoError(t, uc.Execute(context.Background(), DeleteSubscriptionCommand{
		SubscriptionID: sub.ID(),
		Confirmed:      true,
	}))

	_, err = subRepo.GetByID(context.Background(), sub.ID())
	assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)

	renewals, err := renewalRepo.ListBySubscriptionID(context.Background(), sub.ID())
	require.NoError(t, err)
	assert.Empty(t, renewals)
}

func TestExpireSubscriptionsUseCase_MarksOnlyOverdueActive(t *testing.T) {
	subRepo := newFakeSubscriptionRepo()
	custRepo := newFakeCustomerRepo()
	owner := seedCustomer(t, custRepo)

	overdue, err := subscription.ReconstructSubscription(
		99, owner.ID(), "830123456", "acct@game",
		vo.PlanMonthly, 15000, vo.StatusActive,
		time.Now().UTC().AddDate(0, -2, 0), time.Now().UTC().AddDate(0, -1, 0),
		nil, nil, 1, time.Now().UTC(), time.Now().UTC(),
	)
	require.NoError(t, err)
	subRepo.subs[overdue.ID()] = overdue
	subRepo.nextID = 100

	current := seedSubscription(t, subRepo, owner.ID())

	uc := NewExpireSubscriptionsUseCase(subRepo, nopLogger{})

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	marked, err := subRepo.GetByID(context.Background(), overdue.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusExpired, marked.Status())

	untouched, err := subRepo.GetByID(context.Background(), current.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive, untouched.Status())
}
