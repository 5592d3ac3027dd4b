package http

import "net/http"

type cleanupResponse struct {
	Message      string `json:"message"`
	DeletedUsers int64  `json:"deletedUsers"`
}

func (h *Handler) CleanupSamples(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	n, err := h.admin.CleanupSamples(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	invalidate(w, tagUsers, tagActivities, tagEncashments, tagProfileChanges, tagStats, tagLeaderboard)
	writeJSON(w, http.StatusOK, cleanupResponse{Message: "Sample data removed", DeletedUsers: n})
}
