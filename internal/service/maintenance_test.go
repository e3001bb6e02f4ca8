package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anuj140/hireengine/internal/model"
	"github.com/anuj140/hireengine/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpirer struct {
	calls atomic.Int32
	err   error
}

func (f *fakeExpirer) ExpireDue(context.Context, time.Time) (int64, error) {
	f.calls.Add(1)
	return 1, f.err
}

type fakeReconciler struct {
	calls atomic.Int32
	err   error
}

func (f *fakeReconciler) ReconcileAll(context.Context) (int, error) {
	f.calls.Add(1)
	return 2, f.err
}

func TestMaintenanceScheduler_RunOnce(t *testing.T) {
	t.Run("expiry failure still reconciles", func(t *testing.T) {
		exp := &fakeExpirer{err: errors.New("expiry failed")}
		rec := &fakeReconciler{}
		s := service.NewMaintenanceScheduler(exp, rec, time.Hour, testLogger())

		err := s.RunOnce(context.Background())
		assert.ErrorIs(t, err, exp.err)
		assert.EqualValues(t, 1, rec.calls.Load())
	})

	t.Run("errors are joined", func(t *testing.T) {
		exp := &fakeExpirer{err: errors.New("expiry failed")}
		rec := &fakeReconciler{err: errors.New("reconcile failed")}
		s := service.NewMaintenanceScheduler(exp, rec, time.Hour, testLogger())

		err := s.RunOnce(context.Background())
		assert.ErrorIs(t, err, exp.err)
		assert.ErrorIs(t, err, rec.err)
	})
}

func TestMaintenanceScheduler_StartStop(t *testing.T) {
	exp := &fakeExpirer{}
	rec := &fakeReconciler{}
	s := service.NewMaintenanceScheduler(exp, rec, 10*time.Millisecond, testLogger())

	s.Start()
	require.Eventually(t, func() bool { return rec.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := rec.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, rec.calls.Load())
}

type blockingReconciler struct {
	entered chan struct{}
	once    sync.Once
}

func (b *blockingReconciler) ReconcileAll(ctx context.Context) (int, error) {
	b.once.Do(func() { close(b.entered) })
	<-ctx.Done()
	return 0, ctx.Err()
}

func TestMaintenanceScheduler_StopCancelsInFlightRun(t *testing.T) {
	rec := &blockingReconciler{entered: make(chan struct{})}
	s := service.NewMaintenanceScheduler(&fakeExpirer{}, rec, 5*time.Millisecond, testLogger())

	s.Start()
	select {
	case <-rec.entered:
	case <-time.After(time.Second):
		t.Fatal("maintenance run never started")
	}

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop waited for the full run timeout")
	}
}

func TestMaintenanceScheduler_StopWithoutStart(t *testing.T) {
	s := service.NewMaintenanceScheduler(&fakeExpirer{}, &fakeReconciler{}, time.Hour, testLogger())

	done := make(chan struct{})
	go func() {
		s.Stop()
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked without a running scheduler")
	}
}

func TestMaintenanceScheduler_ExpiresAndPauses(t *testing.T) {
	f := newFixture(t)
	f.seedPlan(t, model.FreePlanName, model.PlanFeatures{MaxActiveJobs: intPtr(1), JobValidityDays: 30})
	premium := f.seedPlan(t, "premium", model.PlanFeatures{MaxActiveJobs: intPtr(5), JobValidityDays: 30})
	r := f.createRecruiter(t)
	sub := f.subscribe(t, r.ID, premium, model.Usage{ActiveJobs: 2})
	sub.EndDate = f.now.Add(-time.Hour)
	require.NoError(t, f.subs.Save(f.ctx, sub))
	older := f.createJob(t, r.ID, 2*day, model.JobActive)
	newer := f.createJob(t, r.ID, day, model.JobActive)

	s := service.NewMaintenanceScheduler(f.subscriptions, f.reconciler, time.Hour, testLogger())
	require.NoError(t, s.RunOnce(f.ctx))

	current := f.activeSub(t, r.ID)
	require.NotNil(t, current.Plan)
	assert.Equal(t, model.FreePlanName, current.Plan.Name)
	assert.Equal(t, model.JobPaused, f.jobStatus(t, older.ID))
	assert.Equal(t, model.JobActive, f.jobStatus(t, newer.ID))
}
