package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

type subscriptionExpirer interface {
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

type recruiterReconciler interface {
	ReconcileAll(ctx context.Context) (int, error)
}

// MaintenanceScheduler periodically expires due subscriptions and then
// reconciles every recruiter, so jobs past their validity get paused.
type MaintenanceScheduler struct {
	expirer     subscriptionExpirer
	reconciler  recruiterReconciler
	interval    time.Duration
	runTimeout  time.Duration
	logger      *slog.Logger
	now         func() time.Time
	stopChan    chan struct{}
	stoppedChan chan struct{}

	mu       sync.Mutex
	started  bool
	cancel   context.CancelFunc
	stopOnce sync.Once
}

func NewMaintenanceScheduler(
	expirer subscriptionExpirer,
	reconciler recruiterReconciler,
	interval time.Duration,
	logger *slog.Logger,
) *MaintenanceScheduler {
	if interval == 0 {
		interval = time.Hour
	}

	return &MaintenanceScheduler{
		expirer:     expirer,
		reconciler:  reconciler,
		interval:    interval,
		runTimeout:  10 * time.Minute,
		logger:      logger,
		now:         time.Now,
		stopChan:    make(chan struct{}),
		stoppedChan: make(chan struct{}),
	}
}

// Start runs maintenance every interval until Stop is called. Calling it
// more than once has no effect.
func (s *MaintenanceScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	base, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		defer close(s.stoppedChan)

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(base, s.runTimeout)
				if err := s.RunOnce(ctx); err != nil {
					s.logger.Error("maintenance run failed", "error", err)
				}
				cancel()
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Stop halts the scheduler. An in-flight run has its context cancelled and
// Stop waits for it to return. Stop is safe to call without Start.
func (s *MaintenanceScheduler) Stop() {
	s.mu.Lock()
	started, cancel := s.started, s.cancel
	s.mu.Unlock()

	s.stopOnce.Do(func() {
		close(s.stopChan)
		if cancel != nil {
			cancel()
		}
	})
	if started {
		<-s.stoppedChan
	}
}

// RunOnce expires due subscriptions, then reconciles all recruiters. A failed
// expiry sweep does not prevent reconciliation.
func (s *MaintenanceScheduler) RunOnce(ctx context.Context) error {
	start := s.now()
	s.logger.Info("starting maintenance run")

	var errs []error
	expired, err := s.expirer.ExpireDue(ctx, start)
	if err != nil {
		errs = append(errs, err)
	}

	reconciled, err := s.reconciler.ReconcileAll(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("reconciling: %w", err))
	}

	s.logger.Info("completed maintenance run",
		"expired", expired,
		"reconciled", reconciled,
		"duration", time.Since(start),
	)
	return errors.Join(errs...)
}
