package http

import (
	"context"
	"net/http"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/logger"
	"contribution-rewards-backend/internal/metrics"
	"contribution-rewards-backend/internal/security"

	"github.com/gorilla/mux"
)

type RouterConfig struct {
	TokenManager   security.TokenManager
	AllowedOrigins []string
	// Zero RequestsPerSecond disables rate limiting.
	RequestsPerSecond float64
	Burst             int
	// TrustForwardedFor rate-limits by X-Forwarded-For instead of the peer
	// address.
	TrustForwardedFor bool
	MaxBodyBytes      int64
	// Ready backs /readyz, typically a database ping.
	Ready func(ctx context.Context) error
}

// NewRouter registers every route and wraps the router in the request-wide
// middleware. Route names key into config.EndpointSecurityConfig.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.Use(metrics.Instrument)
	r.Use(newAuthMiddleware(cfg.TokenManager).Handler)
	if cfg.MaxBodyBytes > 0 {
		r.Use(maxBodyBytes(cfg.MaxBodyBytes))
	}

	r.HandleFunc("/healthz", healthz).Methods(http.MethodGet).Name("healthz")
	r.HandleFunc("/readyz", readyz(cfg.Ready)).Methods(http.MethodGet).Name("readyz")
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet).Name("metrics")

	api := r.PathPrefix("/api").Subrouter()

	// Identity and registration
	api.HandleFunc("/auth/user", h.GetCurrentUser).Methods(http.MethodGet).Name("auth.user")
	api.HandleFunc("/users/register", h.Register).Methods(http.MethodPost).Name("users.register")
	api.HandleFunc("/users/pending", h.ListPendingUsers).Methods(http.MethodGet).Name("users.pending")
	api.HandleFunc("/users/{id}/approve", h.decideRegistration(domain.DecisionApproved)).Methods(http.MethodPut).Name("users.approve")
	api.HandleFunc("/users/{id}/reject", h.decideRegistration(domain.DecisionRejected)).Methods(http.MethodPut).Name("users.reject")

	api.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet).Name("categories.list")

	// Activities
	api.HandleFunc("/activities", h.CreateActivity).Methods(http.MethodPost).Name("activities.create")
	api.HandleFunc("/activities", h.ListMyActivities).Methods(http.MethodGet).Name("activities.list")
	api.HandleFunc("/activities/pending", h.ListPendingActivities).Methods(http.MethodGet).Name("activities.pending")
	api.HandleFunc("/activities/approve", h.DecideActivity).Methods(http.MethodPost).Name("activities.approve")
	api.HandleFunc("/activities/{id:[0-9]+}", h.GetActivity).Methods(http.MethodGet).Name("activities.get")
	api.HandleFunc("/activities/{id:[0-9]+}", h.UpdateActivity).Methods(http.MethodPut).Name("activities.update")

	// Stats
	api.HandleFunc("/stats", h.GetStats).Methods(http.MethodGet).Name("stats.user")
	api.HandleFunc("/stats/team", h.GetTeamSummary).Methods(http.MethodGet).Name("stats.team")
	api.HandleFunc("/leaderboard", h.leaderboard(domain.LeaderboardAll)).Methods(http.MethodGet).Name("leaderboard.all")
	api.HandleFunc("/leaderboard/monthly", h.leaderboard(domain.LeaderboardMonthly)).Methods(http.MethodGet).Name("leaderboard.monthly")
	api.HandleFunc("/leaderboard/yearly", h.leaderboard(domain.LeaderboardYearly)).Methods(http.MethodGet).Name("leaderboard.yearly")

	// Encashment
	api.HandleFunc("/encashment-requests", h.CreateEncashment).Methods(http.MethodPost).Name("encashment.create")
	api.HandleFunc("/encashment-requests", h.ListMyEncashments).Methods(http.MethodGet).Name("encashment.list")
	api.HandleFunc("/encashment-requests/pending", h.ListPendingEncashments).Methods(http.MethodGet).Name("encashment.pending")
	api.HandleFunc("/encashment/approve/{id:[0-9]+}", h.ApproveEncashment).Methods(http.MethodPost).Name("encashment.approve")
	api.HandleFunc("/encashment/reject/{id:[0-9]+}", h.RejectEncashment).Methods(http.MethodPost).Name("encashment.reject")

	// Profile changes
	api.HandleFunc("/profile-change-requests", h.CreateProfileChange).Methods(http.MethodPost).Name("profile_changes.create")
	api.HandleFunc("/profile-change-requests", h.ListMyProfileChanges).Methods(http.MethodGet).Name("profile_changes.list")
	api.HandleFunc("/profile-change-requests/pending", h.ListPendingProfileChanges).Methods(http.MethodGet).Name("profile_changes.pending")
	api.HandleFunc("/profile-change-requests/{id:[0-9]+}/approve", h.decideProfileChange(domain.DecisionApproved)).Methods(http.MethodPut).Name("profile_changes.approve")
	api.HandleFunc("/profile-change-requests/{id:[0-9]+}/reject", h.decideProfileChange(domain.DecisionRejected)).Methods(http.MethodPut).Name("profile_changes.reject")

	// Admin
	api.HandleFunc("/admin/cleanup-samples", h.CleanupSamples).Methods(http.MethodDelete).Name("admin.cleanup_samples")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// CORS and rate limiting wrap the router so preflight requests, which
	// match no route, are still answered.
	var handler http.Handler = r
	if cfg.RequestsPerSecond > 0 {
		handler = newRateLimiter(cfg.RequestsPerSecond, cfg.Burst, cfg.TrustForwardedFor).Handler(handler)
	}
	if len(cfg.AllowedOrigins) > 0 {
		handler = corsHandler(cfg.AllowedOrigins)(handler)
	}
	return requestID(accessLog(recoverer(handler)))
}

func healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func readyz(ready func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ready != nil {
			if err := ready(r.Context()); err != nil {
				logger.WarnContext(r.Context(), "Readiness check failed", "error", err)
				writeMessage(w, http.StatusServiceUnavailable, "Not ready")
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
