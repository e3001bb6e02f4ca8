// internal/repository/repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/anuj140/hireengine/internal/model"
	"gorm.io/gorm"
)

// Models lists every persisted model, in dependency order, for AutoMigrate.
func Models() []any {
	return []any{
		&model.User{},
		&model.Recruiter{},
		&model.TeamMember{},
		&model.Admin{},
		&model.SubscriptionPlan{},
		&model.Subscription{},
		&model.Job{},
		&model.PolicyAuditLog{},
	}
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// notFound maps gorm's record-not-found to the given domain sentinel and wraps
// everything else with the operation name.
func notFound(err error, sentinel error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
