package http

import (
	"net/http"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/service"
)

type activityRequest struct {
	CategoryID    int32   `json:"categoryId"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ActivityDate  string  `json:"activityDate"`
	AttachmentURL *string `json:"attachmentUrl"`
	FilePath      *string `json:"filePath"`
}

func (req activityRequest) input() service.ActivityInput {
	return service.ActivityInput{
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Description:   req.Description,
		ActivityDate:  req.ActivityDate,
		AttachmentURL: req.AttachmentURL,
		FilePath:      req.FilePath,
	}
}

type decideActivityRequest struct {
	ID              int32           `json:"id"`
	Status          domain.Decision `json:"status"`
	RejectionReason string          `json:"rejectionReason"`
}

func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	var req activityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	activity, err := h.ledger.SubmitActivity(r.Context(), id.UserID, req.input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	invalidate(w, tagActivities, tagStats)
	writeJSON(w, http.StatusCreated, activity)
}

func (h *Handler) ListMyActivities(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	activities, err := h.ledger.ListMyActivities(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (h *Handler) ListPendingActivities(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	activities, err := h.ledger.ListPendingActivities(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	activityID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	activity, err := h.ledger.GetActivity(r.Context(), activityID, id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

func (h *Handler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	activityID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req activityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	activity, err := h.ledger.EditActivity(r.Context(), activityID, id.UserID, req.input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	invalidate(w, tagActivities, tagActivity(activityID), tagStats)
	writeJSON(w, http.StatusOK, activity)
}

func (h *Handler) DecideActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	var req decideActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.ID <= 0 {
		writeError(w, r, domain.Validationf("Activity id is required"))
		return
	}
	activity, err := h.ledger.DecideActivity(r.Context(), req.ID, id.UserID, req.Status, req.RejectionReason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	invalidate(w, tagActivities, tagActivity(activity.ID), tagStats, tagLeaderboard)
	writeJSON(w, http.StatusOK, activity)
}
