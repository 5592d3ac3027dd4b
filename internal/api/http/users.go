package http

import (
	"net/http"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/service"

	"github.com/gorilla/mux"
)

type registerRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
}

// GetCurrentUser returns the caller's account, or 404 before registration.
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	user, err := h.users.GetCurrentUser(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	user, err := h.users.Register(r.Context(), id, service.RegistrationInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Designation: req.Designation,
		Department:  req.Department,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	invalidate(w, tagCurrentUser, tagUsers)
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) ListPendingUsers(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	users, err := h.users.ListPendingUsers(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) decideRegistration(decision domain.Decision) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := caller(w, r)
		if !ok {
			return
		}
		var req decisionRequest
		if err := decodeOptionalJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		user, err := h.users.DecideRegistration(r.Context(), id.UserID, mux.Vars(r)["id"], decision, req.RejectionReason)
		if err != nil {
			writeError(w, r, err)
			return
		}
		invalidate(w, tagUsers, tagLeaderboard)
		writeJSON(w, http.StatusOK, user)
	}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
