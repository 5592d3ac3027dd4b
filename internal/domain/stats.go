package domain

type UserStats struct {
	TotalPoints       int32 `json:"totalPoints"`
	TotalEarnings     int32 `json:"totalEarnings"`
	MonthlyPoints     int32 `json:"monthlyPoints"`
	MonthlyEarnings   int32 `json:"monthlyEarnings"`
	PendingPoints     int32 `json:"pendingPoints"`
	PendingActivities int32 `json:"pendingActivities"`
	RedeemedPoints    int32 `json:"redeemedPoints"`
	AvailablePoints   int32 `json:"availablePoints"`
	Ranking           int32 `json:"ranking"`
	TotalMembers      int32 `json:"totalMembers"`
}

type LeaderboardPeriod string

const (
	LeaderboardAll     LeaderboardPeriod = "all"
	LeaderboardMonthly LeaderboardPeriod = "monthly"
	LeaderboardYearly  LeaderboardPeriod = "yearly"
)

func (p LeaderboardPeriod) Valid() bool {
	switch p {
	case LeaderboardAll, LeaderboardMonthly, LeaderboardYearly:
		return true
	}
	return false
}

type LeaderboardEntry struct {
	User          User  `json:"user"`
	TotalPoints   int32 `json:"totalPoints"`
	TotalEarnings int32 `json:"totalEarnings"`
}

type TeamSummary struct {
	TotalTeamPoints    int32 `json:"totalTeamPoints"`
	MonthlyTeamPoints  int32 `json:"monthlyTeamPoints"`
	ActiveContributors int32 `json:"activeContributors"`
	TotalMembers       int32 `json:"totalMembers"`
	TotalActivities    int32 `json:"totalActivities"`
	MonthlyActivities  int32 `json:"monthlyActivities"`
}
