package service_test

import (
	"context"
	"testing"
	"time"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_SubmitThenApprove(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepo)
	activities := new(MockActivityRepo)
	encashments := new(MockEncashmentRepo)
	svc := service.NewStatsService(users, activities, encashments, time.UTC, func() time.Time { return fixedNow })

	alice := member("alice")
	users.On("GetByID", ctx, "alice").Return(alice, nil)
	users.On("List", ctx).Return([]domain.User{*alice, *approverUser("carol")}, nil)
	encashments.On("SumApprovedPoints", ctx, "alice").Return(int32(0), nil)

	entry := domain.PointEntry{ActivityID: 7, UserID: "alice", Status: domain.ActivityStatusPending, Points: 10, MonetaryValue: 1000, CreatedAt: fixedNow}
	activities.On("ListPointEntries", ctx).Return([]domain.PointEntry{entry}, nil).Once()

	s, err := svc.UserStats(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int32(10), s.PendingPoints)
	assert.Equal(t, int32(0), s.TotalPoints)

	approvedAt := fixedNow.Add(time.Hour)
	entry.Status = domain.ActivityStatusApproved
	entry.ApprovedAt = &approvedAt
	activities.On("ListPointEntries", ctx).Return([]domain.PointEntry{entry}, nil).Once()

	s, err = svc.UserStats(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int32(10), s.TotalPoints)
	assert.Equal(t, int32(1000), s.TotalEarnings)
	assert.Equal(t, int32(0), s.PendingPoints)
	assert.Equal(t, int32(10), s.AvailablePoints)
	assert.Equal(t, int32(1), s.Ranking)
	assert.Equal(t, int32(2), s.TotalMembers)
}

func TestStatsService_Leaderboard(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepo)
	activities := new(MockActivityRepo)
	svc := service.NewStatsService(users, activities, new(MockEncashmentRepo), time.UTC, func() time.Time { return fixedNow })

	lastYear := fixedNow.AddDate(-1, 0, 0)
	users.On("List", ctx).Return([]domain.User{*member("u0"), *member("u5"), *member("u10")}, nil)
	activities.On("ListPointEntries", ctx).Return([]domain.PointEntry{
		approvedEntry("u10", 10),
		approvedEntry("u5", 5),
		{UserID: "u0", Status: domain.ActivityStatusApproved, Points: 50, CreatedAt: lastYear},
	}, nil)

	board, err := svc.Leaderboard(ctx, domain.LeaderboardYearly)
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, []string{"u10", "u5", "u0"}, []string{board[0].User.ID, board[1].User.ID, board[2].User.ID})
	assert.Equal(t, int32(0), board[2].TotalPoints)

	board, err = svc.Leaderboard(ctx, domain.LeaderboardAll)
	require.NoError(t, err)
	assert.Equal(t, "u0", board[0].User.ID)

	_, err = svc.Leaderboard(ctx, domain.LeaderboardPeriod("weekly"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStatsService_TeamSummaryRequiresApprover(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepo)
	activities := new(MockActivityRepo)
	svc := service.NewStatsService(users, activities, new(MockEncashmentRepo), nil, func() time.Time { return fixedNow })

	users.On("GetByID", ctx, "alice").Return(member("alice"), nil)
	users.On("GetByID", ctx, "carol").Return(approverUser("carol"), nil)
	users.On("List", ctx).Return([]domain.User{*member("alice"), *approverUser("carol")}, nil)
	activities.On("ListPointEntries", ctx).Return([]domain.PointEntry{approvedEntry("alice", 10)}, nil)

	_, err := svc.TeamSummary(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	summary, err := svc.TeamSummary(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, int32(10), summary.TotalTeamPoints)
	assert.Equal(t, int32(1), summary.ActiveContributors)
	assert.Equal(t, int32(2), summary.TotalMembers)
	assert.Equal(t, int32(1), summary.MonthlyActivities)
}

func TestStatsService_MonthlyLeaderboard(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepo)
	activities := new(MockActivityRepo)
	svc := service.NewStatsService(users, activities, new(MockEncashmentRepo), time.UTC, func() time.Time { return fixedNow })

	march := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	users.On("List", ctx).Return([]domain.User{*member("alice"), *member("bob")}, nil)
	activities.On("ListPointEntries", ctx).Return([]domain.PointEntry{
		approvedEntry("alice", 10),
		{UserID: "bob", Status: domain.ActivityStatusApproved, Points: 4, CreatedAt: march},
	}, nil)

	board, err := svc.MonthlyLeaderboard(ctx, march)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "bob", board[0].User.ID)
	assert.Equal(t, int32(4), board[0].TotalPoints)
	assert.Equal(t, int32(0), board[1].TotalPoints)
}
