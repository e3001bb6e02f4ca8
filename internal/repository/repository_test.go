package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/anuj140/hireengine/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func TestPlanRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewPlanRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.SubscriptionPlan{
		Name: "basic", DisplayName: "Basic", Price: 999, Currency: "INR", IsActive: true,
		Features: model.PlanFeatures{MaxActiveJobs: intPtr(10)},
	}))
	require.NoError(t, repo.Upsert(ctx, &model.SubscriptionPlan{
		Name: "basic", DisplayName: "Basic+", Price: 1299, Currency: "INR", IsActive: true,
		Features: model.PlanFeatures{MaxActiveJobs: intPtr(12)},
	}))
	require.NoError(t, repo.Upsert(ctx, &model.SubscriptionPlan{Name: "legacy", Currency: "INR", IsActive: false}))

	plan, err := repo.FindActiveByName(ctx, "basic")
	require.NoError(t, err)
	assert.Equal(t, "Basic+", plan.DisplayName)
	assert.Equal(t, 12, *plan.Features.MaxActiveJobs)

	_, err = repo.FindActiveByName(ctx, "legacy")
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)

	active, err := repo.FindAll(ctx, false)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := repo.FindAll(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSubscriptionRepository(t *testing.T) {
	db := setupTestDB(t)
	plans := repository.NewPlanRepository(db)
	subs := repository.NewSubscriptionRepository(db)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	plan := &model.SubscriptionPlan{Name: "basic", Currency: "INR", IsActive: true}
	require.NoError(t, plans.Upsert(ctx, plan))

	recruiterID := uuid.New()
	_, err := subs.FindActiveByRecruiter(ctx, recruiterID)
	assert.ErrorIs(t, err, domain.ErrSubscriptionNotFound)

	due := &model.Subscription{RecruiterID: recruiterID, PlanID: plan.ID, Status: model.SubscriptionActive, StartDate: now.AddDate(0, -1, 0), EndDate: now.Add(-time.Hour)}
	require.NoError(t, subs.Create(ctx, due))

	other := &model.Subscription{RecruiterID: uuid.New(), PlanID: plan.ID, Status: model.SubscriptionActive, StartDate: now, EndDate: now.AddDate(0, 1, 0)}
	require.NoError(t, subs.Create(ctx, other))

	found, err := subs.FindActiveByRecruiter(ctx, recruiterID)
	require.NoError(t, err)
	require.NotNil(t, found.Plan)
	assert.Equal(t, "basic", found.Plan.Name)

	n, err := subs.ExpireBefore(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = subs.FindActiveByRecruiter(ctx, recruiterID)
	assert.ErrorIs(t, err, domain.ErrSubscriptionNotFound)

	history, err := subs.FindByRecruiter(ctx, recruiterID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, model.SubscriptionExpired, history[0].Status)
}

func TestJobRepository_FindByOwnerAndStatuses(t *testing.T) {
	db := setupTestDB(t)
	jobs := repository.NewJobRepository(db)
	ctx := context.Background()
	owner := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)

	for i, status := range []model.JobStatus{model.JobActive, model.JobPaused, model.JobClosed} {
		require.NoError(t, jobs.Create(ctx, &model.Job{
			PostedBy:  owner,
			Title:     string(status),
			Status:    status,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, jobs.Create(ctx, &model.Job{PostedBy: uuid.New(), Title: "foreign", Status: model.JobActive}))

	open, err := jobs.FindByOwnerAndStatuses(ctx, owner, []model.JobStatus{model.JobActive, model.JobPaused})
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, model.JobPaused, open[0].Status)

	all, err := jobs.FindByOwnerAndStatuses(ctx, owner, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	err = jobs.UpdateStatus(ctx, uuid.New(), model.JobPaused)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestTeamMemberRepository_FindByRecruiterAndRoles(t *testing.T) {
	db := setupTestDB(t)
	members := repository.NewTeamMemberRepository(db)
	ctx := context.Background()
	recruiterID := uuid.New()

	add := func(role string, status model.MemberStatus) {
		require.NoError(t, members.Create(ctx, &model.TeamMember{
			RecruiterID: recruiterID,
			Email:       uuid.NewString() + "@acme.test",
			Name:        "m",
			Role:        role,
			Status:      status,
		}))
	}
	add(model.TeamRoleHRManager, model.MemberActive)
	add(model.TeamRoleRecruiter, model.MemberPending)
	add(model.TeamRoleTeamMember, model.MemberActive)

	managers, err := members.FindByRecruiterAndRoles(ctx, recruiterID,
		model.RoleClassManager.Roles(), []model.MemberStatus{model.MemberActive, model.MemberPaused})
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, model.TeamRoleHRManager, managers[0].Role)

	everyone, err := members.FindByRecruiter(ctx, recruiterID)
	require.NoError(t, err)
	assert.Len(t, everyone, 3)

	require.NoError(t, members.Delete(ctx, managers[0].ID))
	assert.ErrorIs(t, members.Delete(ctx, managers[0].ID), domain.ErrTeamMemberNotFound)
}

func TestPolicyAuditLogRepository_Query(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewPolicyAuditLogRepository(db)
	ctx := context.Background()
	recruiterID := uuid.New()

	require.NoError(t, repo.Create(ctx, &model.PolicyAuditLog{ActionType: model.ActionQuotaCheck, Allowed: false, RecruiterID: &recruiterID, Rule: "maxActiveJobs"}))
	require.NoError(t, repo.Create(ctx, &model.PolicyAuditLog{ActionType: model.ActionAuthorization, Allowed: false, Rule: "Admin"}))
	require.NoError(t, repo.Create(ctx, &model.PolicyAuditLog{ActionType: model.ActionAuthorization, Allowed: true, Rule: "Recruiter"}))

	denied := false
	logs, total, err := repo.Query(ctx, repository.QueryParams{Allowed: &denied})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, logs, 2)

	logs, total, err = repo.Query(ctx, repository.QueryParams{RecruiterID: &recruiterID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "maxActiveJobs", logs[0].Rule)

	_, total, err = repo.Query(ctx, repository.QueryParams{ActionType: model.ActionAuthorization, Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func intPtr(n int) *int { return &n }
