package http

import (
	"net/http"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/service"
)

type profileChangeRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Designation string `json:"designation"`
}

func (h *Handler) CreateProfileChange(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	var req profileChangeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	created, err := h.profiles.SubmitProfileChange(r.Context(), id.UserID, service.ProfileChangeInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Designation: req.Designation,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	invalidate(w, tagProfileChanges)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListMyProfileChanges(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	list, err := h.profiles.ListMyProfileChanges(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) ListPendingProfileChanges(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	list, err := h.profiles.ListPendingProfileChanges(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) decideProfileChange(decision domain.Decision) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := caller(w, r)
		if !ok {
			return
		}
		requestID, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		var req decisionRequest
		if err := decodeOptionalJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		decided, err := h.profiles.DecideProfileChange(r.Context(), requestID, id.UserID, decision, req.RejectionReason)
		if err != nil {
			writeError(w, r, err)
			return
		}
		invalidate(w, tagProfileChanges, tagCurrentUser, tagLeaderboard)
		writeJSON(w, http.StatusOK, decided)
	}
}
