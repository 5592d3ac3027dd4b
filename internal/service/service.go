package service

import (
	"context"
	"time"

	"contribution-rewards-backend/internal/domain"
)

// Identity is what the identity provider asserts about the caller.
type Identity struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
}

type RegistrationInput struct {
	FirstName   string
	LastName    string
	Designation string
	Department  string
}

// ActivityInput carries the submitted or edited fields of an activity.
// ActivityDate accepts YYYY-MM-DD or RFC3339.
type ActivityInput struct {
	CategoryID    int32
	Title         string
	Description   string
	ActivityDate  string
	AttachmentURL *string
	FilePath      *string
}

type ProfileChangeInput struct {
	FirstName   string
	LastName    string
	Designation string
}

type UserService interface {
	Register(ctx context.Context, identity Identity, input RegistrationInput) (*domain.User, error)
	GetCurrentUser(ctx context.Context, userID string) (*domain.User, error)
	ListPendingUsers(ctx context.Context, reviewerID string) ([]domain.User, error)
	DecideRegistration(ctx context.Context, reviewerID, userID string, decision domain.Decision, reason string) (*domain.User, error)
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]domain.ActivityCategory, error)
	SeedCatalog(ctx context.Context) (int, error)
}

type LedgerService interface {
	SubmitActivity(ctx context.Context, userID string, input ActivityInput) (*domain.Activity, error)
	EditActivity(ctx context.Context, activityID int32, requesterID string, input ActivityInput) (*domain.Activity, error)
	DecideActivity(ctx context.Context, activityID int32, approverID string, decision domain.Decision, rejectionReason string) (*domain.Activity, error)
	GetActivity(ctx context.Context, activityID int32, requesterID string) (*domain.Activity, error)
	ListMyActivities(ctx context.Context, userID string) ([]domain.Activity, error)
	ListPendingActivities(ctx context.Context, approverID string) ([]domain.Activity, error)

	SubmitEncashment(ctx context.Context, userID string, pointsRequested int32, monetaryValue *int32) (*domain.EncashmentRequest, error)
	DecideEncashment(ctx context.Context, requestID int32, approverID string, decision domain.Decision, rejectionReason, paymentDetails string) (*domain.EncashmentRequest, error)
	ListMyEncashments(ctx context.Context, userID string) ([]domain.EncashmentRequest, error)
	ListPendingEncashments(ctx context.Context, approverID string) ([]domain.EncashmentRequest, error)
}

type StatsService interface {
	UserStats(ctx context.Context, userID string) (*domain.UserStats, error)
	Leaderboard(ctx context.Context, period domain.LeaderboardPeriod) ([]domain.LeaderboardEntry, error)
	TeamSummary(ctx context.Context, requesterID string) (*domain.TeamSummary, error)
	// MonthlyLeaderboard ranks the calendar month containing month. Used
	// for reports, so no caller check.
	MonthlyLeaderboard(ctx context.Context, month time.Time) ([]domain.LeaderboardEntry, error)
}

type ProfileService interface {
	SubmitProfileChange(ctx context.Context, userID string, input ProfileChangeInput) (*domain.ProfileChangeRequest, error)
	DecideProfileChange(ctx context.Context, requestID int32, reviewerID string, decision domain.Decision, reason string) (*domain.ProfileChangeRequest, error)
	ListMyProfileChanges(ctx context.Context, userID string) ([]domain.ProfileChangeRequest, error)
	ListPendingProfileChanges(ctx context.Context, reviewerID string) ([]domain.ProfileChangeRequest, error)
}

type AdminService interface {
	// CleanupSamples removes sample accounts on behalf of an approver.
	CleanupSamples(ctx context.Context, approverID string) (int64, error)
	// PurgeSamples is the unattended variant run by the scheduler.
	PurgeSamples(ctx context.Context) (int64, error)
}

// Clock returns the current time. Services take one so tests can pin it.
type Clock func() time.Time
