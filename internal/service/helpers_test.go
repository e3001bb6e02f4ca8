package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/anuj140/hireengine/internal/audit"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/anuj140/hireengine/internal/monitoring"
	"github.com/anuj140/hireengine/internal/repository"
	"github.com/anuj140/hireengine/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.Migrate(db))
	return db
}

// fixture wires the policy services over real repositories on SQLite.
type fixture struct {
	ctx context.Context
	now time.Time

	db         *gorm.DB
	users      *repository.UserRepository
	recruiters *repository.RecruiterRepository
	members    *repository.TeamMemberRepository
	admins     *repository.AdminRepository
	plans      *repository.PlanRepository
	subs       *repository.SubscriptionRepository
	jobs       *repository.JobRepository

	subscriptions *service.SubscriptionService
	quota         *service.QuotaEnforcer
	reconciler    *service.PlanReconciler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupTestDB(t)

	f := &fixture{
		ctx:        context.Background(),
		now:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		db:         db,
		users:      repository.NewUserRepository(db),
		recruiters: repository.NewRecruiterRepository(db),
		members:    repository.NewTeamMemberRepository(db),
		admins:     repository.NewAdminRepository(db),
		plans:      repository.NewPlanRepository(db),
		subs:       repository.NewSubscriptionRepository(db),
		jobs:       repository.NewJobRepository(db),
	}

	clock := func() time.Time { return f.now }
	f.subscriptions = service.NewSubscriptionService(f.subs, f.plans, f.recruiters, monitoring.Noop{}, testLogger(),
		service.WithClock(clock))
	f.quota = service.NewQuotaEnforcer(f.subscriptions, f.subs, audit.NoOpLogger{}, monitoring.Noop{}, testLogger())
	f.reconciler = service.NewPlanReconciler(f.subscriptions, f.subs, f.jobs, f.members, f.recruiters, monitoring.Noop{}, testLogger())
	f.reconciler.SetClock(clock)
	return f
}

func intPtr(n int) *int { return &n }

func (f *fixture) seedPlan(t *testing.T, name string, features model.PlanFeatures) *model.SubscriptionPlan {
	t.Helper()
	plan := &model.SubscriptionPlan{
		Name:        name,
		DisplayName: name,
		Currency:    "INR",
		Duration:    30,
		IsActive:    true,
		Features:    features,
	}
	if name != model.FreePlanName {
		plan.Price = 999
	}
	require.NoError(t, f.plans.Upsert(f.ctx, plan))
	return plan
}

func (f *fixture) createRecruiter(t *testing.T) *model.Recruiter {
	t.Helper()
	r := &model.Recruiter{
		Email:       uuid.NewString() + "@company.test",
		CompanyName: "Acme Hiring",
	}
	require.NoError(t, f.recruiters.Create(f.ctx, r))
	return r
}

func (f *fixture) subscribe(t *testing.T, recruiterID uuid.UUID, plan *model.SubscriptionPlan, usage model.Usage) *model.Subscription {
	t.Helper()
	sub := &model.Subscription{
		RecruiterID: recruiterID,
		PlanID:      plan.ID,
		Status:      model.SubscriptionActive,
		StartDate:   f.now.AddDate(0, 0, -1),
		EndDate:     f.now.AddDate(0, 0, 29),
		Payment:     model.Payment{PaymentStatus: model.PaymentCompleted},
		Usage:       usage,
	}
	require.NoError(t, f.subs.Create(f.ctx, sub))
	return sub
}

func (f *fixture) createJob(t *testing.T, recruiterID uuid.UUID, age time.Duration, status model.JobStatus) *model.Job {
	t.Helper()
	job := &model.Job{
		PostedBy:  recruiterID,
		Title:     "Backend Engineer",
		Status:    status,
		CreatedAt: f.now.Add(-age),
	}
	require.NoError(t, f.jobs.Create(f.ctx, job))
	return job
}

func (f *fixture) createMember(t *testing.T, recruiterID uuid.UUID, role string, status model.MemberStatus, age time.Duration) *model.TeamMember {
	t.Helper()
	m := &model.TeamMember{
		RecruiterID: recruiterID,
		Email:       uuid.NewString() + "@company.test",
		Name:        "Teammate",
		Role:        role,
		Status:      status,
		CreatedAt:   f.now.Add(-age),
	}
	require.NoError(t, f.members.Create(f.ctx, m))
	return m
}

func (f *fixture) jobStatus(t *testing.T, id uuid.UUID) model.JobStatus {
	t.Helper()
	job, err := f.jobs.FindByID(f.ctx, id)
	require.NoError(t, err)
	return job.Status
}

func (f *fixture) memberStatus(t *testing.T, id uuid.UUID) model.MemberStatus {
	t.Helper()
	m, err := f.members.FindByID(f.ctx, id)
	require.NoError(t, err)
	return m.Status
}

func (f *fixture) activeSub(t *testing.T, recruiterID uuid.UUID) *model.Subscription {
	t.Helper()
	sub, err := f.subs.FindActiveByRecruiter(f.ctx, recruiterID)
	require.NoError(t, err)
	return sub
}

const day = 24 * time.Hour
