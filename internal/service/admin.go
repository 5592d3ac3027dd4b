package service

import (
	"context"

	"contribution-rewards-backend/internal/logger"
	"contribution-rewards-backend/internal/metrics"
	"contribution-rewards-backend/internal/repository"
)

type adminService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
	patterns  []string
}

// NewAdminService removes accounts whose email matches one of patterns
// (SQL LIKE syntax).
func NewAdminService(userRepo repository.UserRepository, adminRepo repository.AdminRepository, patterns []string) AdminService {
	return &adminService{userRepo: userRepo, adminRepo: adminRepo, patterns: patterns}
}

func (s *adminService) CleanupSamples(ctx context.Context, approverID string) (int64, error) {
	if _, err := loadApprover(ctx, s.userRepo, approverID); err != nil {
		return 0, err
	}
	n, err := s.PurgeSamples(ctx)
	if err != nil {
		return 0, err
	}
	logger.Info("Sample data cleaned up", "approverID", approverID, "usersDeleted", n)
	return n, nil
}

func (s *adminService) PurgeSamples(ctx context.Context) (int64, error) {
	if len(s.patterns) == 0 {
		return 0, nil
	}
	logger.EnterMethod("adminService.PurgeSamples", "patterns", s.patterns)
	n, err := s.adminRepo.DeleteUsersByEmailPatterns(ctx, s.patterns)
	if err != nil {
		logger.ExitMethodWithError("adminService.PurgeSamples", err)
		return 0, err
	}
	metrics.SampleUsersDeleted(n)
	logger.ExitMethod("adminService.PurgeSamples", "usersDeleted", n)
	return n, nil
}
