package http

import (
	"net/http"

	"contribution-rewards-backend/internal/service"
)

// Handler serves the REST API on top of the services.
type Handler struct {
	users      service.UserService
	categories service.CategoryService
	ledger     service.LedgerService
	stats      service.StatsService
	profiles   service.ProfileService
	admin      service.AdminService
}

func NewHandler(
	users service.UserService,
	categories service.CategoryService,
	ledger service.LedgerService,
	stats service.StatsService,
	profiles service.ProfileService,
	admin service.AdminService,
) *Handler {
	return &Handler{
		users:      users,
		categories: categories,
		ledger:     ledger,
		stats:      stats,
		profiles:   profiles,
		admin:      admin,
	}
}

// caller returns the authenticated identity or writes a 401.
func caller(w http.ResponseWriter, r *http.Request) (service.Identity, bool) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
	}
	return id, ok
}

type decisionRequest struct {
	RejectionReason string `json:"rejectionReason"`
}
