// Package stats recomputes totals, rankings and balances from activity rows.
// Nothing here is cached; callers load the rows and aggregate on every query.
package stats

import (
	"sort"
	"time"

	"contribution-rewards-backend/internal/domain"
)

type totals struct {
	points   int32
	earnings int32
}

// Leaderboard sums approved points per user inside window (nil means all
// time). Every user appears, including those with nothing approved. Users
// must be passed in a stable order; equal totals keep that order.
func Leaderboard(users []domain.User, entries []domain.PointEntry, window *Window) []domain.LeaderboardEntry {
	byUser := make(map[string]*totals, len(users))
	for _, e := range entries {
		if e.Status != domain.ActivityStatusApproved {
			continue
		}
		if window != nil && !window.Contains(e.CreditedAt()) {
			continue
		}
		t, ok := byUser[e.UserID]
		if !ok {
			t = &totals{}
			byUser[e.UserID] = t
		}
		t.points += e.Points
		t.earnings += e.MonetaryValue
	}

	board := make([]domain.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entry := domain.LeaderboardEntry{User: u}
		if t, ok := byUser[u.ID]; ok {
			entry.TotalPoints = t.points
			entry.TotalEarnings = t.earnings
		}
		board = append(board, entry)
	}

	sort.SliceStable(board, func(i, j int) bool {
		return board[i].TotalPoints > board[j].TotalPoints
	})
	return board
}

// Ranking is the 1-based position of userID on the all-time board, or 0
// when the user is not on it.
func Ranking(board []domain.LeaderboardEntry, userID string) int32 {
	for i, e := range board {
		if e.User.ID == userID {
			return int32(i + 1)
		}
	}
	return 0
}

// UserStats aggregates one user's activities. Monthly figures follow the
// submission time of approved activities. redeemed is the sum of the user's
// approved encashment requests.
func UserStats(userID string, users []domain.User, entries []domain.PointEntry, redeemed int32, now time.Time) domain.UserStats {
	month := MonthWindow(now)
	s := domain.UserStats{
		RedeemedPoints: redeemed,
		TotalMembers:   int32(len(users)),
	}

	for _, e := range entries {
		if e.UserID != userID {
			continue
		}
		switch e.Status {
		case domain.ActivityStatusApproved:
			s.TotalPoints += e.Points
			s.TotalEarnings += e.MonetaryValue
			if month.Contains(e.CreatedAt) {
				s.MonthlyPoints += e.Points
				s.MonthlyEarnings += e.MonetaryValue
			}
		case domain.ActivityStatusPending:
			s.PendingPoints += e.Points
			s.PendingActivities++
		}
	}

	s.AvailablePoints = s.TotalPoints - s.RedeemedPoints
	s.Ranking = Ranking(Leaderboard(users, entries, nil), userID)
	return s
}

// TeamSummary aggregates across every user. Monthly figures follow the
// credited time (approval, falling back to submission).
func TeamSummary(users []domain.User, entries []domain.PointEntry, now time.Time) domain.TeamSummary {
	month := MonthWindow(now)
	s := domain.TeamSummary{TotalMembers: int32(len(users))}

	for _, e := range entries {
		if e.Status != domain.ActivityStatusApproved {
			continue
		}
		s.TotalTeamPoints += e.Points
		s.TotalActivities++
		if month.Contains(e.CreditedAt()) {
			s.MonthlyTeamPoints += e.Points
			s.MonthlyActivities++
		}
	}

	for _, row := range Leaderboard(users, entries, nil) {
		if row.TotalPoints > 0 {
			s.ActiveContributors++
		}
	}
	return s
}

// AvailablePoints is what a user may still encash: approved points minus
// approved encashments. Pending encashments are not reserved.
func AvailablePoints(userID string, entries []domain.PointEntry, redeemed int32) int32 {
	var total int32
	for _, e := range entries {
		if e.UserID == userID && e.Status == domain.ActivityStatusApproved {
			total += e.Points
		}
	}
	return total - redeemed
}
