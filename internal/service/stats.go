package service

import (
	"context"
	"time"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/repository"
	"contribution-rewards-backend/internal/stats"
)

type statsService struct {
	userRepo       repository.UserRepository
	activityRepo   repository.ActivityRepository
	encashmentRepo repository.EncashmentRepository
	loc            *time.Location
	now            Clock
}

// NewStatsService evaluates calendar windows in loc.
func NewStatsService(
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
	encashmentRepo repository.EncashmentRepository,
	loc *time.Location,
	now Clock,
) StatsService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &statsService{
		userRepo:       userRepo,
		activityRepo:   activityRepo,
		encashmentRepo: encashmentRepo,
		loc:            loc,
		now:            now,
	}
}

func (s *statsService) localNow() time.Time {
	return s.now().In(s.loc)
}

func (s *statsService) load(ctx context.Context) ([]domain.User, []domain.PointEntry, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.activityRepo.ListPointEntries(ctx)
	if err != nil {
		return nil, nil, err
	}
	return users, entries, nil
}

func (s *statsService) UserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	if _, err := loadMember(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	users, entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	redeemed, err := s.encashmentRepo.SumApprovedPoints(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := stats.UserStats(userID, users, entries, redeemed, s.localNow())
	return &result, nil
}

func (s *statsService) Leaderboard(ctx context.Context, period domain.LeaderboardPeriod) ([]domain.LeaderboardEntry, error) {
	if !period.Valid() {
		return nil, domain.Validationf("Unknown leaderboard period %q", period)
	}
	users, entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Leaderboard(users, entries, stats.PeriodWindow(period, s.localNow())), nil
}

func (s *statsService) TeamSummary(ctx context.Context, requesterID string) (*domain.TeamSummary, error) {
	if _, err := loadApprover(ctx, s.userRepo, requesterID); err != nil {
		return nil, err
	}
	users, entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	result := stats.TeamSummary(users, entries, s.localNow())
	return &result, nil
}

func (s *statsService) MonthlyLeaderboard(ctx context.Context, month time.Time) ([]domain.LeaderboardEntry, error) {
	users, entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	window := stats.MonthWindow(month.In(s.loc))
	return stats.Leaderboard(users, entries, &window), nil
}
