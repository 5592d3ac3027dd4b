package jobs

import (
	"context"

	"contribution-rewards-backend/internal/logger"
)

// reportSize is how many leaders the monthly report logs.
const reportSize = 10

// CleanupSampleUsers removes accounts matching the configured sample email
// patterns together with everything they own.
func (jr *JobRunner) CleanupSampleUsers() {
	jr.runWithRecovery("CleanupSampleUsers", func(ctx context.Context) error {
		n, err := jr.services.Admin.PurgeSamples(ctx)
		if err != nil {
			return err
		}
		logger.Info("Sample users removed", "count", n)
		return nil
	})
}

// ReportMonthlyLeaderboard logs the leaders of the month that just ended.
func (jr *JobRunner) ReportMonthlyLeaderboard() {
	jr.runWithRecovery("ReportMonthlyLeaderboard", func(ctx context.Context) error {
		now := jr.now().In(jr.config.Location())
		previous := now.AddDate(0, 0, -now.Day())

		board, err := jr.services.Stats.MonthlyLeaderboard(ctx, previous)
		if err != nil {
			return err
		}

		month := previous.Format("2006-01")
		var total int32
		for _, e := range board {
			total += e.TotalPoints
		}
		logger.Info("Monthly leaderboard", "month", month, "members", len(board), "points", total)
		for i, e := range board {
			if i == reportSize || e.TotalPoints == 0 {
				break
			}
			logger.Info("Monthly leader",
				"month", month,
				"rank", i+1,
				"userID", e.User.ID,
				"name", e.User.FullName(),
				"points", e.TotalPoints,
				"earnings", e.TotalEarnings,
			)
		}
		return nil
	})
}
