package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/logger"

	"github.com/gorilla/mux"
)

// invalidateHeader lists the client cache tags a mutation made stale.
const invalidateHeader = "X-Invalidate"

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeError maps the domain error kinds to HTTP statuses. Anything else is
// logged and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInsufficientBalance):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidState):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeMessage(w, status, "Internal server error")
		return
	}

	var de *domain.Error
	if errors.As(err, &de) {
		writeMessage(w, status, de.Message)
		return
	}
	writeMessage(w, status, err.Error())
}

var errEmptyBody = domain.Validationf("Request body is required")

// decodeJSON reads exactly one JSON object and rejects unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return errEmptyBody
		case errors.As(err, &maxErr):
			return domain.Validationf("Request body is too large")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			return domain.Validationf("Unknown field %s", strings.TrimPrefix(err.Error(), "json: unknown field "))
		default:
			return domain.Validationf("Invalid request body: %v", err)
		}
	}
	if dec.More() {
		return domain.Validationf("Request body must contain a single JSON object")
	}
	return nil
}

// decodeOptionalJSON is decodeJSON for bodies that may be omitted.
func decodeOptionalJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := decodeJSON(r, dst); err != errEmptyBody {
		return err
	}
	return nil
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.Validationf("Invalid id")
	}
	return int32(id), nil
}

// invalidate names the cache tags a successful mutation affects.
func invalidate(w http.ResponseWriter, tags ...string) {
	w.Header().Set(invalidateHeader, strings.Join(tags, ", "))
}

const (
	tagActivities     = "/api/activities"
	tagStats          = "/api/stats"
	tagLeaderboard    = "/api/leaderboard"
	tagEncashments    = "/api/encashment-requests"
	tagProfileChanges = "/api/profile-change-requests"
	tagUsers          = "/api/users"
	tagCurrentUser    = "/api/auth/user"
)

func tagActivity(id int32) string {
	return fmt.Sprintf("%s/%d", tagActivities, id)
}
