package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/logger"
	"contribution-rewards-backend/internal/metrics"
	"contribution-rewards-backend/internal/policy"
	"contribution-rewards-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
	now      Clock
}

func NewUserService(userRepo repository.UserRepository, now Clock) UserService {
	if now == nil {
		now = time.Now
	}
	return &userService{userRepo: userRepo, now: now}
}

// Register creates the caller's account on first call. A pending account is
// returned unchanged on repeat calls; a decided one cannot re-register. The
// very first account must hold a reviewer designation and is admitted
// immediately so someone can review the rest.
func (s *userService) Register(ctx context.Context, identity Identity, input RegistrationInput) (*domain.User, error) {
	logger.EnterMethod("userService.Register", "userID", identity.UserID)

	existing, err := s.userRepo.GetByID(ctx, identity.UserID)
	switch {
	case err == nil:
		if existing.Status != domain.UserStatusPending {
			return nil, domain.InvalidStatef("Registration has already been %s", existing.Status)
		}
		return existing, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	firstName := strings.TrimSpace(input.FirstName)
	if firstName == "" {
		firstName = identity.FirstName
	}
	lastName := strings.TrimSpace(input.LastName)
	if lastName == "" {
		lastName = identity.LastName
	}
	designation := strings.TrimSpace(input.Designation)
	if firstName == "" {
		return nil, domain.Validationf("First name is required")
	}
	if designation == "" {
		return nil, domain.Validationf("Designation is required")
	}

	user := &domain.User{
		ID:          identity.UserID,
		Email:       identity.Email,
		FirstName:   firstName,
		LastName:    lastName,
		Role:        domain.DefaultRoleForDesignation(designation),
		Designation: designation,
		Department:  strings.TrimSpace(input.Department),
		Status:      domain.UserStatusPending,
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		created, err := s.bootstrap(ctx, user)
		if err != nil {
			logger.ExitMethodWithError("userService.Register", err, "userID", identity.UserID)
			return nil, err
		}
		if created {
			logger.ExitMethod("userService.Register", "userID", user.ID, "role", user.Role, "status", user.Status)
			return user, nil
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ExitMethodWithError("userService.Register", err, "userID", identity.UserID)
		return nil, err
	}
	logger.ExitMethod("userService.Register", "userID", user.ID, "role", user.Role, "status", user.Status)
	return user, nil
}

// bootstrap admits user as the first account. It reports false, leaving user
// pending, when another registration got there first.
func (s *userService) bootstrap(ctx context.Context, user *domain.User) (bool, error) {
	if !policy.IsReviewer(user) {
		return false, domain.Validationf("The first account must have a reviewer designation (%s or %s)",
			domain.DesignationSeniorManager, domain.DesignationPartner)
	}
	now := s.now().UTC()
	user.Status = domain.UserStatusApproved
	user.ApprovedAt = &now
	created, err := s.userRepo.CreateFirst(ctx, user)
	if err != nil || created {
		return created, err
	}
	user.Status = domain.UserStatusPending
	user.ApprovedAt = nil
	return false, nil
}

func (s *userService) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) ListPendingUsers(ctx context.Context, reviewerID string) ([]domain.User, error) {
	if _, err := loadReviewer(ctx, s.userRepo, reviewerID); err != nil {
		return nil, err
	}
	return s.userRepo.ListByStatus(ctx, domain.UserStatusPending)
}

func (s *userService) DecideRegistration(ctx context.Context, reviewerID, userID string, decision domain.Decision, reason string) (*domain.User, error) {
	reviewer, err := loadReviewer(ctx, s.userRepo, reviewerID)
	if err != nil {
		return nil, err
	}
	rejection, err := checkDecision(decision, reason)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status != domain.UserStatusPending {
		return nil, domain.InvalidStatef("Registration has already been %s", user.Status)
	}

	now := s.now().UTC()
	user.Status = domain.UserStatus(decision)
	user.ApprovedBy = &reviewer.ID
	user.ApprovedAt = &now
	user.RejectionReason = rejection
	if err := s.userRepo.Decide(ctx, user); err != nil {
		return nil, err
	}
	metrics.Decision("registration", string(decision))
	logger.Info("Registration decided", "userID", userID, "reviewerID", reviewerID, "status", user.Status)
	return user, nil
}
