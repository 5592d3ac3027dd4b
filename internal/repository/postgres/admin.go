package postgres

import (
	"context"

	"contribution-rewards-backend/internal/logger"
	"contribution-rewards-backend/internal/repository"

	"github.com/lib/pq"
)

type adminRepository struct {
	db DBTX
}

func NewAdminRepository(db DBTX) repository.AdminRepository {
	return &adminRepository{db: db}
}

// Child rows go first; the statements share one transaction so a failure
// leaves no orphans.
var cleanupStatements = []string{
	`DELETE FROM activities WHERE user_id IN (SELECT id FROM users WHERE email LIKE ANY($1))`,
	`DELETE FROM encashment_requests WHERE user_id IN (SELECT id FROM users WHERE email LIKE ANY($1))`,
	`DELETE FROM profile_change_requests WHERE user_id IN (SELECT id FROM users WHERE email LIKE ANY($1))`,
}

func (r *adminRepository) DeleteUsersByEmailPatterns(ctx context.Context, patterns []string) (int64, error) {
	if len(patterns) == 0 {
		return 0, nil
	}
	logger.EnterMethod("adminRepository.DeleteUsersByEmailPatterns", "patterns", patterns)

	tx, err := begin(ctx, r.db)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	arg := pq.Array(patterns)
	for _, stmt := range cleanupStatements {
		if _, err := tx.ExecContext(ctx, stmt, arg); err != nil {
			logger.ExitMethodWithError("adminRepository.DeleteUsersByEmailPatterns", err)
			return 0, err
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE email LIKE ANY($1)`, arg)
	if err != nil {
		logger.ExitMethodWithError("adminRepository.DeleteUsersByEmailPatterns", err)
		return 0, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	logger.ExitMethod("adminRepository.DeleteUsersByEmailPatterns", "deleted", deleted)
	return deleted, nil
}
