package stats

import (
	"testing"
	"time"

	"contribution-rewards-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.May, 15, 12, 0, 0, 0, time.UTC)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func approved(id int32, userID string, points int32, created time.Time, approvedAt *time.Time) domain.PointEntry {
	return domain.PointEntry{
		ActivityID:    id,
		UserID:        userID,
		Status:        domain.ActivityStatusApproved,
		Points:        points,
		MonetaryValue: points * domain.CurrencyUnitsPerPoint,
		CreatedAt:     created,
		ApprovedAt:    approvedAt,
	}
}

func pending(id int32, userID string, points int32) domain.PointEntry {
	return domain.PointEntry{
		ActivityID:    id,
		UserID:        userID,
		Status:        domain.ActivityStatusPending,
		Points:        points,
		MonetaryValue: points * domain.CurrencyUnitsPerPoint,
		CreatedAt:     now,
	}
}

func team() []domain.User {
	return []domain.User{{ID: "zero"}, {ID: "five"}, {ID: "ten"}}
}

func TestLeaderboard_OrdersAndKeepsZeroRows(t *testing.T) {
	entries := []domain.PointEntry{
		approved(1, "ten", 10, now, nil),
		approved(2, "five", 5, now, nil),
		pending(3, "zero", 50),
	}

	board := Leaderboard(team(), entries, nil)

	require.Len(t, board, 3)
	assert.Equal(t, "ten", board[0].User.ID)
	assert.Equal(t, "five", board[1].User.ID)
	assert.Equal(t, "zero", board[2].User.ID)
	assert.Equal(t, int32(1000), board[0].TotalEarnings)
	assert.Equal(t, int32(0), board[2].TotalPoints)
}

func TestLeaderboard_SumMatchesApprovedPoints(t *testing.T) {
	entries := []domain.PointEntry{
		approved(1, "ten", 10, now, nil),
		approved(2, "ten", 7, now, nil),
		approved(3, "five", 5, now, nil),
		pending(4, "five", 20),
		{ActivityID: 5, UserID: "zero", Status: domain.ActivityStatusRejected, Points: 8, CreatedAt: now},
	}

	var boardSum, approvedSum int32
	for _, row := range Leaderboard(team(), entries, nil) {
		boardSum += row.TotalPoints
	}
	for _, e := range entries {
		if e.Status == domain.ActivityStatusApproved {
			approvedSum += e.Points
		}
	}
	assert.Equal(t, approvedSum, boardSum)
}

func TestLeaderboard_TiesKeepUserOrder(t *testing.T) {
	users := []domain.User{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	entries := []domain.PointEntry{
		approved(1, "c", 5, now, nil),
		approved(2, "b", 5, now, nil),
		approved(3, "a", 5, now, nil),
	}

	board := Leaderboard(users, entries, nil)
	assert.Equal(t, []string{"a", "b", "c"}, []string{board[0].User.ID, board[1].User.ID, board[2].User.ID})
}

func TestLeaderboard_Windows(t *testing.T) {
	lastMonth := at("2026-04-20T10:00:00Z")
	lastYear := at("2025-12-31T23:00:00Z")
	approvedThisMonth := at("2026-05-02T08:00:00Z")

	entries := []domain.PointEntry{
		approved(1, "ten", 10, now, nil),
		approved(2, "five", 5, lastMonth, nil),
		approved(3, "zero", 3, lastYear, nil),
		// submitted last month, approved this month: credited this month
		approved(4, "five", 2, lastMonth, &approvedThisMonth),
	}

	monthly := Leaderboard(team(), entries, PeriodWindow(domain.LeaderboardMonthly, now))
	yearly := Leaderboard(team(), entries, PeriodWindow(domain.LeaderboardYearly, now))
	all := Leaderboard(team(), entries, PeriodWindow(domain.LeaderboardAll, now))

	points := func(board []domain.LeaderboardEntry) map[string]int32 {
		m := map[string]int32{}
		for _, r := range board {
			m[r.User.ID] = r.TotalPoints
		}
		return m
	}

	assert.Equal(t, map[string]int32{"ten": 10, "five": 2, "zero": 0}, points(monthly))
	assert.Equal(t, map[string]int32{"ten": 10, "five": 7, "zero": 0}, points(yearly))
	assert.Equal(t, map[string]int32{"ten": 10, "five": 7, "zero": 3}, points(all))
}

func TestUserStats_PendingThenApproved(t *testing.T) {
	users := []domain.User{{ID: "a"}, {ID: "b"}}

	before := UserStats("a", users, []domain.PointEntry{pending(1, "a", 10)}, 0, now)
	assert.Equal(t, int32(10), before.PendingPoints)
	assert.Equal(t, int32(1), before.PendingActivities)
	assert.Equal(t, int32(0), before.TotalPoints)

	after := UserStats("a", users, []domain.PointEntry{approved(1, "a", 10, now, &now)}, 0, now)
	assert.Equal(t, int32(10), after.TotalPoints)
	assert.Equal(t, int32(1000), after.TotalEarnings)
	assert.Equal(t, int32(0), after.PendingPoints)
	assert.Equal(t, int32(10), after.MonthlyPoints)
	assert.Equal(t, int32(1), after.Ranking)
	assert.Equal(t, int32(2), after.TotalMembers)
}

func TestUserStats_MonthlyUsesSubmissionTime(t *testing.T) {
	lastMonth := at("2026-04-29T10:00:00Z")
	entries := []domain.PointEntry{approved(1, "a", 4, lastMonth, &now)}

	s := UserStats("a", []domain.User{{ID: "a"}}, entries, 0, now)
	assert.Equal(t, int32(4), s.TotalPoints)
	assert.Equal(t, int32(0), s.MonthlyPoints)
}

func TestUserStats_RankingAndRedemption(t *testing.T) {
	entries := []domain.PointEntry{
		approved(1, "ten", 10, now, nil),
		approved(2, "five", 5, now, nil),
	}

	s := UserStats("five", team(), entries, 3, now)
	assert.Equal(t, int32(2), s.Ranking)
	assert.Equal(t, int32(3), s.RedeemedPoints)
	assert.Equal(t, int32(2), s.AvailablePoints)
	assert.Equal(t, int32(3), s.TotalMembers)
}

func TestTeamSummary(t *testing.T) {
	lastMonth := at("2026-04-10T10:00:00Z")
	entries := []domain.PointEntry{
		approved(1, "ten", 10, now, nil),
		approved(2, "five", 5, lastMonth, &lastMonth),
		pending(3, "zero", 9),
	}

	s := TeamSummary(team(), entries, now)
	assert.Equal(t, domain.TeamSummary{
		TotalTeamPoints:    15,
		MonthlyTeamPoints:  10,
		ActiveContributors: 2,
		TotalMembers:       3,
		TotalActivities:    2,
		MonthlyActivities:  1,
	}, s)
}

func TestAvailablePoints(t *testing.T) {
	entries := []domain.PointEntry{
		approved(1, "a", 10, now, nil),
		pending(2, "a", 10),
		approved(3, "b", 10, now, nil),
	}
	assert.Equal(t, int32(10), AvailablePoints("a", entries, 0))
	assert.Equal(t, int32(4), AvailablePoints("a", entries, 6))
	assert.Equal(t, int32(0), AvailablePoints("c", entries, 0))
}

func TestMonthWindow_RespectsLocation(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	// 2026-05-31 20:00 UTC is already June 1st in IST
	local := time.Date(2026, time.May, 31, 20, 0, 0, 0, time.UTC).In(kolkata)

	w := MonthWindow(local)
	assert.Equal(t, time.June, w.Start.Month())
	assert.True(t, w.Contains(local))
	assert.False(t, w.Contains(time.Date(2026, time.May, 31, 18, 0, 0, 0, time.UTC)))
}
