package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/anuj140/hireengine/internal/monitoring"
	"github.com/anuj140/hireengine/internal/repository"
	"github.com/google/uuid"
)

// SlotResult summarises one capacity pass.
type SlotResult struct {
	Active    int `json:"active"`
	Activated int `json:"activated"`
	Paused    int `json:"paused"`
}

type ReconcileResult struct {
	RecruiterID uuid.UUID  `json:"recruiter_id"`
	Plan        string     `json:"plan"`
	Jobs        SlotResult `json:"jobs"`
	Managers    SlotResult `json:"managers"`
	TeamMembers SlotResult `json:"team_members"`
}

// PlanReconciler re-derives which jobs and team members stay active under a
// recruiter's current plan. Newer records win active slots. Every run
// recomputes the full desired state, so a run that failed halfway is repaired
// by running it again.
type PlanReconciler struct {
	resolver   ActiveSubscriptionResolver
	subs       repository.SubscriptionRepositoryIface
	jobs       repository.JobRepositoryIface
	members    repository.TeamMemberRepositoryIface
	recruiters repository.RecruiterRepositoryIface
	monitor    monitoring.MonitorInterface
	logger     *slog.Logger
	now        func() time.Time
}

func NewPlanReconciler(
	resolver ActiveSubscriptionResolver,
	subs repository.SubscriptionRepositoryIface,
	jobs repository.JobRepositoryIface,
	members repository.TeamMemberRepositoryIface,
	recruiters repository.RecruiterRepositoryIface,
	monitor monitoring.MonitorInterface,
	logger *slog.Logger,
) *PlanReconciler {
	return &PlanReconciler{
		resolver:   resolver,
		subs:       subs,
		jobs:       jobs,
		members:    members,
		recruiters: recruiters,
		monitor:    monitor,
		logger:     logger,
		now:        time.Now,
	}
}

// SetClock replaces time.Now.
func (r *PlanReconciler) SetClock(now func() time.Time) {
	r.now = now
}

// Reconcile applies the recruiter's current plan limits to its jobs and team.
// An expired subscription is reconciled against the free plan that replaces it.
func (r *PlanReconciler) Reconcile(ctx context.Context, recruiterID uuid.UUID) (*ReconcileResult, error) {
	start := time.Now()
	res, err := r.reconcile(ctx, recruiterID)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.monitor.ReconcileRun(outcome, time.Since(start))
	return res, err
}

func (r *PlanReconciler) reconcile(ctx context.Context, recruiterID uuid.UUID) (*ReconcileResult, error) {
	sub, err := r.resolver.GetActive(ctx, recruiterID)
	if errors.Is(err, domain.ErrExpired) {
		sub, err = r.resolver.GetActive(ctx, recruiterID)
	}
	if err != nil {
		return nil, err
	}

	f := sub.Plan.Features
	res := &ReconcileResult{RecruiterID: recruiterID, Plan: sub.Plan.Name}

	if res.Jobs, err = r.reconcileJobs(ctx, recruiterID, f); err != nil {
		return res, err
	}
	sub.Usage.ActiveJobs = res.Jobs.Active
	if err := r.subs.Save(ctx, sub); err != nil {
		return res, fmt.Errorf("saving job usage: %w", err)
	}

	if res.Managers, err = r.reconcileMembers(ctx, recruiterID, model.RoleClassManager, f.MaxManagers); err != nil {
		return res, err
	}
	sub.Usage.ManagersAdded = res.Managers.Active

	if res.TeamMembers, err = r.reconcileMembers(ctx, recruiterID, model.RoleClassTeamMember, f.MaxTeamMembers); err != nil {
		return res, err
	}
	sub.Usage.TeamMembersAdded = res.TeamMembers.Active

	if err := r.subs.Save(ctx, sub); err != nil {
		return res, fmt.Errorf("saving team usage: %w", err)
	}

	r.logger.Info("reconciled recruiter",
		"recruiter_id", recruiterID.String(),
		"plan", res.Plan,
		"active_jobs", res.Jobs.Active,
		"paused_jobs", res.Jobs.Paused,
		"active_managers", res.Managers.Active,
		"active_team_members", res.TeamMembers.Active,
	)
	return res, nil
}

func (r *PlanReconciler) reconcileJobs(ctx context.Context, recruiterID uuid.UUID, f model.PlanFeatures) (SlotResult, error) {
	jobs, err := r.jobs.FindByOwnerAndStatuses(ctx, recruiterID, []model.JobStatus{model.JobActive, model.JobPaused})
	if err != nil {
		return SlotResult{}, fmt.Errorf("loading jobs: %w", err)
	}
	slices.SortStableFunc(jobs, func(a, b *model.Job) int { return b.CreatedAt.Compare(a.CreatedAt) })

	now := r.now()
	validity := time.Duration(f.JobValidityDays) * 24 * time.Hour
	aged := func(j *model.Job) bool {
		return f.JobValidityDays > 0 && now.Sub(j.CreatedAt) > validity
	}

	var res SlotResult
	for i, active := range allocateSlots(jobs, f.MaxActiveJobs, aged) {
		job := jobs[i]
		want := model.JobPaused
		if active {
			want = model.JobActive
			res.Active++
		}
		if job.Status == want {
			continue
		}
		if err := r.jobs.UpdateStatus(ctx, job.ID, want); err != nil {
			return res, fmt.Errorf("setting job %s %s: %w", job.ID, want, err)
		}
		job.Status = want
		if active {
			res.Activated++
		} else {
			res.Paused++
		}
	}
	return res, nil
}

func (r *PlanReconciler) reconcileMembers(ctx context.Context, recruiterID uuid.UUID, class model.RoleClass, limit int) (SlotResult, error) {
	members, err := r.members.FindByRecruiterAndRoles(ctx, recruiterID, class.Roles(),
		[]model.MemberStatus{model.MemberActive, model.MemberPaused})
	if err != nil {
		return SlotResult{}, fmt.Errorf("loading %ss: %w", class, err)
	}
	slices.SortStableFunc(members, func(a, b *model.TeamMember) int { return b.CreatedAt.Compare(a.CreatedAt) })

	var res SlotResult
	for i, active := range allocateSlots(members, &limit, nil) {
		m := members[i]
		want := model.MemberPaused
		if active {
			want = model.MemberActive
			res.Active++
		}
		if m.Status == want {
			continue
		}
		if err := r.members.UpdateStatus(ctx, m.ID, want); err != nil {
			return res, fmt.Errorf("setting %s %s %s: %w", class, m.ID, want, err)
		}
		m.Status = want
		if active {
			res.Activated++
		} else {
			res.Paused++
		}
	}
	return res, nil
}

// allocateSlots walks items in order and reports which ones get an active
// slot. Items for which excluded returns true never take a slot. A nil limit
// means unlimited.
func allocateSlots[T any](items []T, limit *int, excluded func(T) bool) []bool {
	out := make([]bool, len(items))
	used := 0
	for i, it := range items {
		if excluded != nil && excluded(it) {
			continue
		}
		if limit == nil || used < *limit {
			out[i] = true
			used++
		}
	}
	return out
}

// ReconcileAll reconciles every recruiter. A failure for one recruiter does
// not stop the others; all failures are returned joined.
func (r *PlanReconciler) ReconcileAll(ctx context.Context) (int, error) {
	ids, err := r.recruiters.ListIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing recruiters: %w", err)
	}

	var (
		errs []error
		done int
	)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if _, err := r.Reconcile(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNoSubscription) {
				r.logger.Debug("skipping recruiter without subscription", "recruiter_id", id.String())
				continue
			}
			r.logger.Error("failed to reconcile recruiter",
				"recruiter_id", id.String(),
				"error", err,
			)
			errs = append(errs, fmt.Errorf("recruiter %s: %w", id, err))
			continue
		}
		done++
	}

	r.logger.Info("reconciled recruiters", "total", len(ids), "succeeded", done, "failed", len(errs))
	return done, errors.Join(errs...)
}
