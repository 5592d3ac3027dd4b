package http

import (
	"net/http"

	"contribution-rewards-backend/internal/domain"
)

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	s, err := h.stats.UserStats(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) GetTeamSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	s, err := h.stats.TeamSummary(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// leaderboard serves one of the fixed periods.
func (h *Handler) leaderboard(period domain.LeaderboardPeriod) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := caller(w, r); !ok {
			return
		}
		board, err := h.stats.Leaderboard(r.Context(), period)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, board)
	}
}
