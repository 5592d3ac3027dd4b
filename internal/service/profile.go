package service

import (
	"context"
	"strings"
	"time"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/logger"
	"contribution-rewards-backend/internal/metrics"
	"contribution-rewards-backend/internal/repository"
)

type profileService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileChangeRepository
	now         Clock
}

func NewProfileService(userRepo repository.UserRepository, profileRepo repository.ProfileChangeRepository, now Clock) ProfileService {
	if now == nil {
		now = time.Now
	}
	return &profileService{userRepo: userRepo, profileRepo: profileRepo, now: now}
}

func valueOr(requested, current string) string {
	if v := strings.TrimSpace(requested); v != "" {
		return v
	}
	return current
}

// SubmitProfileChange snapshots the current values next to the requested
// ones. Blank fields keep their current value.
func (s *profileService) SubmitProfileChange(ctx context.Context, userID string, input ProfileChangeInput) (*domain.ProfileChangeRequest, error) {
	user, err := loadMember(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}

	req := &domain.ProfileChangeRequest{
		UserID:               userID,
		RequestedFirstName:   valueOr(input.FirstName, user.FirstName),
		RequestedLastName:    valueOr(input.LastName, user.LastName),
		RequestedDesignation: valueOr(input.Designation, user.Designation),
		CurrentFirstName:     user.FirstName,
		CurrentLastName:      user.LastName,
		CurrentDesignation:   user.Designation,
		Status:               domain.ProfileChangeStatusPending,
	}
	if req.RequestedFirstName == req.CurrentFirstName &&
		req.RequestedLastName == req.CurrentLastName &&
		req.RequestedDesignation == req.CurrentDesignation {
		return nil, domain.Validationf("Requested profile is identical to the current one")
	}

	if err := s.profileRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	logger.Info("Profile change requested", "requestID", req.ID, "userID", userID)
	return req, nil
}

// DecideProfileChange applies approved values to the user in the same
// transaction as the status change. Role is left as is.
func (s *profileService) DecideProfileChange(ctx context.Context, requestID int32, reviewerID string, decision domain.Decision, reason string) (*domain.ProfileChangeRequest, error) {
	reviewer, err := loadReviewer(ctx, s.userRepo, reviewerID)
	if err != nil {
		return nil, err
	}
	rejection, err := checkDecision(decision, reason)
	if err != nil {
		return nil, err
	}
	req, err := s.profileRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.ProfileChangeStatusPending {
		return nil, domain.InvalidStatef("Profile change request has already been %s", req.Status)
	}

	now := s.now().UTC()
	req.Status = domain.ProfileChangeStatus(decision)
	req.ApprovedBy = &reviewer.ID
	req.ApprovedAt = &now
	req.RejectionReason = rejection
	if err := s.profileRepo.Decide(ctx, req); err != nil {
		return nil, err
	}
	metrics.Decision("profile_change", string(decision))
	logger.Info("Profile change decided", "requestID", requestID, "reviewerID", reviewerID, "status", req.Status)
	return req, nil
}

func (s *profileService) ListMyProfileChanges(ctx context.Context, userID string) ([]domain.ProfileChangeRequest, error) {
	if _, err := loadMember(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	return s.profileRepo.ListByUser(ctx, userID)
}

func (s *profileService) ListPendingProfileChanges(ctx context.Context, reviewerID string) ([]domain.ProfileChangeRequest, error) {
	if _, err := loadReviewer(ctx, s.userRepo, reviewerID); err != nil {
		return nil, err
	}
	return s.profileRepo.ListByStatus(ctx, domain.ProfileChangeStatusPending)
}
