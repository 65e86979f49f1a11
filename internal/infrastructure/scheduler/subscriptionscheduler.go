package scheduler

import (
	"context"
	"sync"
	"time"

	subscriptionUsecases "github.com/castellan-host/castellan/internal/application/subscription/usecases"
	"github.com/castellan-host/castellan/internal/shared/goroutine"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

// SubscriptionScheduler runs the daily expiration reconciliation pass:
// active subscriptions whose end date has passed get marked expired. The
// pass is idempotent, so overlapping restarts are harmless.
type SubscriptionScheduler struct {
	expireSubscriptionsUC *subscriptionUsecases.ExpireSubscriptionsUseCase
	logger                logger.Interface
	stopChan              chan struct{}
	stopOnce              sync.Once
	wg                    sync.WaitGroup
	interval              time.Duration
}

// NewSubscriptionScheduler creates a new SubscriptionScheduler
func NewSubscriptionScheduler(
	expireSubscriptionsUC *subscriptionUsecases.ExpireSubscriptionsUseCase,
	logger logger.Interface,
) *SubscriptionScheduler {
	return &SubscriptionScheduler{
		expireSubscriptionsUC: expireSubscriptionsUC,
		logger:                logger,
		stopChan:              make(chan struct{}),
		interval:              24 * time.Hour,
	}
}

// Start starts the scheduler
func (s *SubscriptionScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting subscription scheduler", "interval", s.interval)

	s.wg.Add(1)
	goroutine.SafeGo(s.logger, "subscription-scheduler", func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	})
}

// Stop stops the scheduler gracefully
func (s *SubscriptionScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping subscription scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("subscription scheduler stopped")
	})
}

func (s *SubscriptionScheduler) runLoop(ctx context.Context) {
	// Run immediately on startup to clear any backlog of lapsed
	// subscriptions accumulated while the process was down
	s.reconcileExpired(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("subscription scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.reconcileExpired(ctx)
		}
	}
}

func (s *SubscriptionScheduler) reconcileExpired(ctx context.Context) {
	startTime := time.Now()

	expiredCount, err := s.expireSubscriptionsUC.Execute(ctx)
	if err != nil {
		s.logger.Errorw("failed to reconcile expired subscriptions",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if expiredCount > 0 {
		s.logger.Infow("expired subscriptions reconciled",
			"count", expiredCount,
			"duration", time.Since(startTime),
		)
	} else {
		s.logger.Debugw("no lapsed subscriptions to reconcile",
			"duration", time.Since(startTime),
		)
	}
}
