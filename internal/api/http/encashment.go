package http

import (
	"net/http"

	"contribution-rewards-backend/internal/domain"
)

type encashmentRequest struct {
	PointsRequested int32  `json:"pointsRequested"`
	MonetaryValue   *int32 `json:"monetaryValue"`
}

type approveEncashmentRequest struct {
	PaymentDetails string `json:"paymentDetails"`
}

func (h *Handler) CreateEncashment(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	var req encashmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	created, err := h.ledger.SubmitEncashment(r.Context(), id.UserID, req.PointsRequested, req.MonetaryValue)
	if err != nil {
		writeError(w, r, err)
		return
	}
	invalidate(w, tagEncashments, tagStats)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListMyEncashments(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	list, err := h.ledger.ListMyEncashments(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) ListPendingEncashments(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	list, err := h.ledger.ListPendingEncashments(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) ApproveEncashment(w http.ResponseWriter, r *http.Request) {
	var req approveEncashmentRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.decideEncashment(w, r, domain.DecisionApproved, "", req.PaymentDetails)
}

func (h *Handler) RejectEncashment(w http.ResponseWriter, r *http.Request) {
	var req decisionRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.decideEncashment(w, r, domain.DecisionRejected, req.RejectionReason, "")
}

func (h *Handler) decideEncashment(w http.ResponseWriter, r *http.Request, decision domain.Decision, reason, paymentDetails string) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	requestID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	decided, err := h.ledger.DecideEncashment(r.Context(), requestID, id.UserID, decision, reason, paymentDetails)
	if err != nil {
		writeError(w, r, err)
		return
	}
	invalidate(w, tagEncashments, tagStats)
	writeJSON(w, http.StatusOK, decided)
}
