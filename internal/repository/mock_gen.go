// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./recruiter.go -destination=../mocks/mock_recruiter_repository.go -package=mocks RecruiterRepositoryIface
//go:generate mockgen -source=./team_member.go -destination=../mocks/mock_team_member_repository.go -package=mocks TeamMemberRepositoryIface
//go:generate mockgen -source=./admin.go -destination=../mocks/mock_admin_repository.go -package=mocks AdminRepositoryIface
//go:generate mockgen -source=./plan.go -destination=../mocks/mock_plan_repository.go -package=mocks PlanRepositoryIface
//go:generate mockgen -source=./subscription.go -destination=../mocks/mock_subscription_repository.go -package=mocks SubscriptionRepositoryIface
//go:generate mockgen -source=./job.go -destination=../mocks/mock_job_repository.go -package=mocks JobRepositoryIface
