package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/castellan-host/castellan/internal/domain/customer"
	"github.com/castellan-host/castellan/internal/domain/subscription"
	vo "github.com/castellan-host/castellan/internal/domain/subscription/valueobjects"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)           {}
func (nopLogger) Info(msg string, args ...any)            {}
func (nopLogger) Warn(msg string, args ...any)            {}
func (nopLogger) Error(msg string, args ...any)           {}
func (nopLogger) With(args ...any) logger.Interface       { return nopLogger{} }
func (nopLogger) Named(name string) logger.Interface      { return nopLogger{} }
func (nopLogger) Debugw(msg string, keysAndValues ...any) {}
func (nopLogger) Infow(msg string, keysAndValues ...any)  {}
func (nopLogger) Warnw(msg string, keysAndValues ...any)  {}
func (nopLogger) Errorw(msg string, keysAndValues ...any) {}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type fakeCustomerRepo struct {
	customers map[uint]*customer.Customer
	nextID    uint
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uint]*customer.Customer), nextID: 1}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *customer.Customer) error {
	c.SetID(r.nextID)
	r.customers[r.nextID] = c
	r.nextID++
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) GetByCode(ctx context.Context, code string) (*customer.Customer, error) {
	for _, c := range r.customers {
		if c.Code() == code {
			return c, nil
		}
	}
	return nil, customer.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) Update(ctx context.Context, c *customer.Customer) error {
	if _, ok := r.customers[c.ID()]; !ok {
		return customer.ErrCustomerNotFound
	}
	r.customers[c.ID()] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.customers[id]; !ok {
		return customer.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, filter customer.CustomerFilter) ([]*customer.Customer, int64, error) {
	var out []*customer.Customer
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCustomerRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, err := r.GetByCode(ctx, code)
	return err == nil, nil
}

func (r *fakeCustomerRepo) MaxCodeSequence(ctx context.Context) (uint, error) {
	var max uint
	for _, c := range r.customers {
		var seq uint
		if _, err := fmt.Sscanf(c.Code(), "CLIENTE_%d", &seq); err == nil && seq > max {
			max = seq
		}
	}
	return max, nil
}

type fakeSubscriptionRepo struct {
	subs map[uint]*subscription.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[uint]*subscription.Subscription)}
}

func (r *fakeSubscriptionRepo) put(sub *subscription.Subscription) {
	r.subs[sub.ID()] = sub
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, sub *subscription.Subscription) error {
	r.subs[sub.ID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	sub, ok := r.subs[id]
	if !ok {
		return nil, subscription.ErrSubscriptionNotFound
	}
	return sub, nil
}

func (r *fakeSubscriptionRepo) GetByCustomerID(ctx context.Context, customerID uint) ([]*subscription.Subscription, error) {
	var out []*subscription.Subscription
	for _, sub := range r.subs {
		if sub.CustomerID() == customerID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, sub *subscription.Subscription) error {
	r.subs[sub.ID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) Delete(ctx context.Context, id uint) error {
	delete(r.subs, id)
	return nil
}

func (r *fakeSubscriptionRepo) DeleteByCustomerID(ctx context.Context, customerID uint) error {
	for id, sub := range r.subs {
		if sub.CustomerID() == customerID {
			delete(r.subs, id)
		}
	}
	return nil
}

func (r *fakeSubscriptionRepo) FindOverdueActive(ctx context.Context, now time.Time) ([]*subscription.Subscription, error) {
	var out []*subscription.Subscription
	for _, sub := range r.subs {
		if sub.Status() == vo.StatusActive && sub.EndDate().Before(now) {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) List(ctx context.Context, filter subscription.SubscriptionFilter) ([]*subscription.Subscription, int64, error) {
	var out []*subscription.Subscription
	for _, sub := range r.subs {
		out = append(out, sub)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSubscriptionRepo) CountByCustomerID(ctx context.Context, customerID uint) (int64, error) {
	subs, _ := r.GetByCustomerID(ctx, customerID)
	return int64(len(subs)), nil
}

func (r *fakeSubscriptionRepo) CountByStatus(ctx context.Context, status vo.SubscriptionStatus) (int64, error) {
	var n int64
	for _, sub := range r.subs {
		if sub.Status() == status {
			n++
		}
	}
	return n, nil
}
