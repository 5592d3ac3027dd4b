package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/logger"
	"contribution-rewards-backend/internal/metrics"
	"contribution-rewards-backend/internal/policy"
	"contribution-rewards-backend/internal/repository"
	"contribution-rewards-backend/internal/stats"
)

type ledgerService struct {
	userRepo       repository.UserRepository
	categoryRepo   repository.CategoryRepository
	activityRepo   repository.ActivityRepository
	encashmentRepo repository.EncashmentRepository
	now            Clock
}

func NewLedgerService(
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	activityRepo repository.ActivityRepository,
	encashmentRepo repository.EncashmentRepository,
	now Clock,
) LedgerService {
	if now == nil {
		now = time.Now
	}
	return &ledgerService{
		userRepo:       userRepo,
		categoryRepo:   categoryRepo,
		activityRepo:   activityRepo,
		encashmentRepo: encashmentRepo,
		now:            now,
	}
}

func parseActivityDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, domain.Validationf("Activity date must be YYYY-MM-DD")
}

// validateActivity checks the input and resolves its category.
func (s *ledgerService) validateActivity(ctx context.Context, input ActivityInput) (domain.ActivityFields, error) {
	var f domain.ActivityFields
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return f, domain.Validationf("Title is required")
	}
	description := strings.TrimSpace(input.Description)
	if utf8.RuneCountInString(description) < domain.MinActivityDescriptionLength {
		return f, domain.Validationf("Description must be at least %d characters", domain.MinActivityDescriptionLength)
	}
	date, err := parseActivityDate(input.ActivityDate)
	if err != nil {
		return f, err
	}
	if _, err := s.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return f, domain.NotFoundf("Activity category not found")
		}
		return f, err
	}
	return domain.ActivityFields{
		CategoryID:    input.CategoryID,
		Title:         title,
		Description:   description,
		ActivityDate:  date,
		AttachmentURL: input.AttachmentURL,
		FilePath:      input.FilePath,
	}, nil
}

func applyFields(a *domain.Activity, f domain.ActivityFields) {
	a.CategoryID = f.CategoryID
	a.Title = f.Title
	a.Description = f.Description
	a.ActivityDate = f.ActivityDate
	a.AttachmentURL = f.AttachmentURL
	a.FilePath = f.FilePath
}

func (s *ledgerService) SubmitActivity(ctx context.Context, userID string, input ActivityInput) (*domain.Activity, error) {
	logger.EnterMethod("ledgerService.SubmitActivity", "userID", userID, "categoryID", input.CategoryID)
	if _, err := loadMember(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	fields, err := s.validateActivity(ctx, input)
	if err != nil {
		return nil, err
	}

	activity := &domain.Activity{
		UserID: userID,
		Status: domain.ActivityStatusPending,
	}
	applyFields(activity, fields)
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		logger.ExitMethodWithError("ledgerService.SubmitActivity", err, "userID", userID)
		return nil, err
	}
	metrics.ActivitySubmitted()
	logger.ExitMethod("ledgerService.SubmitActivity", "activityID", activity.ID)
	return activity, nil
}

func (s *ledgerService) EditActivity(ctx context.Context, activityID int32, requesterID string, input ActivityInput) (*domain.Activity, error) {
	requester, err := loadMember(ctx, s.userRepo, requesterID)
	if err != nil {
		return nil, err
	}
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if !policy.CanEditActivity(requester, activity) {
		return nil, domain.Forbiddenf("You can only edit your own activities")
	}
	if activity.Status != domain.ActivityStatusPending {
		return nil, domain.InvalidStatef("Only pending activities can be edited")
	}
	fields, err := s.validateActivity(ctx, input)
	if err != nil {
		return nil, err
	}

	applyFields(activity, fields)
	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, err
	}
	logger.Info("Activity edited", "activityID", activityID, "userID", requesterID)
	return activity, nil
}

func (s *ledgerService) DecideActivity(ctx context.Context, activityID int32, approverID string, decision domain.Decision, rejectionReason string) (*domain.Activity, error) {
	logger.EnterMethod("ledgerService.DecideActivity", "activityID", activityID, "approverID", approverID, "decision", decision)
	approver, err := loadApprover(ctx, s.userRepo, approverID)
	if err != nil {
		return nil, err
	}
	reason, err := checkDecision(decision, rejectionReason)
	if err != nil {
		return nil, err
	}
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if activity.Status != domain.ActivityStatusPending {
		return nil, domain.InvalidStatef("Activity has already been %s", activity.Status)
	}

	now := s.now().UTC()
	activity.Status = domain.ActivityStatus(decision)
	activity.ApprovedBy = &approver.ID
	activity.ApprovedAt = &now
	activity.RejectionReason = reason
	if err := s.activityRepo.Decide(ctx, activity); err != nil {
		logger.ExitMethodWithError("ledgerService.DecideActivity", err, "activityID", activityID)
		return nil, err
	}
	metrics.Decision("activity", string(decision))
	logger.ExitMethod("ledgerService.DecideActivity", "activityID", activityID, "status", activity.Status)
	return activity, nil
}

func (s *ledgerService) GetActivity(ctx context.Context, activityID int32, requesterID string) (*domain.Activity, error) {
	requester, err := loadMember(ctx, s.userRepo, requesterID)
	if err != nil {
		return nil, err
	}
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewActivity(requester, activity) {
		return nil, domain.Forbiddenf("You can only view your own activities")
	}
	return activity, nil
}

func (s *ledgerService) ListMyActivities(ctx context.Context, userID string) ([]domain.Activity, error) {
	if _, err := loadMember(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	return s.activityRepo.ListByUser(ctx, userID)
}

func (s *ledgerService) ListPendingActivities(ctx context.Context, approverID string) ([]domain.Activity, error) {
	if _, err := loadApprover(ctx, s.userRepo, approverID); err != nil {
		return nil, err
	}
	return s.activityRepo.ListByStatus(ctx, domain.ActivityStatusPending)
}

func (s *ledgerService) SubmitEncashment(ctx context.Context, userID string, pointsRequested int32, monetaryValue *int32) (*domain.EncashmentRequest, error) {
	logger.EnterMethod("ledgerService.SubmitEncashment", "userID", userID, "points", pointsRequested)
	if _, err := loadMember(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	if pointsRequested <= 0 {
		return nil, domain.Validationf("Points requested must be greater than zero")
	}
	value := pointsRequested * domain.CurrencyUnitsPerPoint
	if monetaryValue != nil && *monetaryValue != value {
		return nil, domain.Validationf("Monetary value must be %d for %d points", value, pointsRequested)
	}

	entries, err := s.activityRepo.ListPointEntriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	redeemed, err := s.encashmentRepo.SumApprovedPoints(ctx, userID)
	if err != nil {
		return nil, err
	}
	available := stats.AvailablePoints(userID, entries, redeemed)
	if pointsRequested > available {
		return nil, domain.InsufficientBalancef("Insufficient points. Available: %d", available)
	}

	req := &domain.EncashmentRequest{
		UserID:          userID,
		PointsRequested: pointsRequested,
		MonetaryValue:   value,
		Status:          domain.EncashmentStatusPending,
	}
	if err := s.encashmentRepo.Create(ctx, req); err != nil {
		logger.ExitMethodWithError("ledgerService.SubmitEncashment", err, "userID", userID)
		return nil, err
	}
	logger.ExitMethod("ledgerService.SubmitEncashment", "requestID", req.ID, "available", available)
	return req, nil
}

// DecideEncashment does not re-check the balance; it was checked when the
// request was submitted.
func (s *ledgerService) DecideEncashment(ctx context.Context, requestID int32, approverID string, decision domain.Decision, rejectionReason, paymentDetails string) (*domain.EncashmentRequest, error) {
	logger.EnterMethod("ledgerService.DecideEncashment", "requestID", requestID, "approverID", approverID, "decision", decision)
	approver, err := loadApprover(ctx, s.userRepo, approverID)
	if err != nil {
		return nil, err
	}
	reason, err := checkDecision(decision, rejectionReason)
	if err != nil {
		return nil, err
	}
	req, err := s.encashmentRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.EncashmentStatusPending {
		return nil, domain.InvalidStatef("Encashment request has already been %s", req.Status)
	}

	now := s.now().UTC()
	req.Status = domain.EncashmentStatus(decision)
	req.ApprovedBy = &approver.ID
	req.ApprovedAt = &now
	req.RejectionReason = reason
	req.PaymentDetails = nil
	if details := strings.TrimSpace(paymentDetails); details != "" && decision == domain.DecisionApproved {
		req.PaymentDetails = &details
	}
	if err := s.encashmentRepo.Decide(ctx, req); err != nil {
		logger.ExitMethodWithError("ledgerService.DecideEncashment", err, "requestID", requestID)
		return nil, err
	}
	metrics.Decision("encashment", string(decision))
	if decision == domain.DecisionApproved {
		metrics.PointsEncashed(req.PointsRequested)
	}
	logger.ExitMethod("ledgerService.DecideEncashment", "requestID", requestID, "status", req.Status)
	return req, nil
}

func (s *ledgerService) ListMyEncashments(ctx context.Context, userID string) ([]domain.EncashmentRequest, error) {
	if _, err := loadMember(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	return s.encashmentRepo.ListByUser(ctx, userID)
}

func (s *ledgerService) ListPendingEncashments(ctx context.Context, approverID string) ([]domain.EncashmentRequest, error) {
	if _, err := loadApprover(ctx, s.userRepo, approverID); err != nil {
		return nil, err
	}
	return s.encashmentRepo.ListByStatus(ctx, domain.EncashmentStatusPending)
}
