package service

import (
	"context"
	"errors"
	"strings"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/policy"
	"contribution-rewards-backend/internal/repository"
)

// loadMember returns the caller when the account exists and has been
// admitted.
func loadMember(ctx context.Context, users repository.UserRepository, userID string) (*domain.User, error) {
	u, err := users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Forbiddenf("Account is not registered")
		}
		return nil, err
	}
	if !policy.IsActiveMember(u) {
		return nil, domain.Forbiddenf("Account is awaiting approval")
	}
	return u, nil
}

func loadApprover(ctx context.Context, users repository.UserRepository, userID string) (*domain.User, error) {
	u, err := loadMember(ctx, users, userID)
	if err != nil {
		return nil, err
	}
	if !policy.IsApprover(u) {
		return nil, domain.Forbiddenf("Only approvers can perform this action")
	}
	return u, nil
}

func loadReviewer(ctx context.Context, users repository.UserRepository, userID string) (*domain.User, error) {
	u, err := loadMember(ctx, users, userID)
	if err != nil {
		return nil, err
	}
	if !policy.IsReviewer(u) {
		return nil, domain.Forbiddenf("Only Senior Managers and Partners can review requests")
	}
	return u, nil
}

// checkDecision validates a decision and returns the trimmed rejection
// reason, or nil when approving.
func checkDecision(decision domain.Decision, reason string) (*string, error) {
	if !decision.Valid() {
		return nil, domain.Validationf("Status must be approved or rejected")
	}
	if decision == domain.DecisionApproved {
		return nil, nil
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.Validationf("Rejection reason is required")
	}
	return &reason, nil
}
