package config

type SecurityLevel int

const (
	SecurityPublic        SecurityLevel = iota // No authentication
	SecurityAuthenticated                      // Valid identity provider token
)

// EndpointSecurityConfig maps route names to their required security level.
// Account admission, role and designation gates are checked per operation
// on top of this.
var EndpointSecurityConfig = map[string]SecurityLevel{
	"healthz": SecurityPublic,
	"readyz":  SecurityPublic,
	"metrics": SecurityPublic,

	// Registration
	"auth.user":      SecurityAuthenticated,
	"users.register": SecurityAuthenticated,

	// Registration review
	"users.pending": SecurityAuthenticated,
	"users.approve": SecurityAuthenticated,
	"users.reject":  SecurityAuthenticated,

	"categories.list": SecurityAuthenticated,

	// Activities
	"activities.create":  SecurityAuthenticated,
	"activities.list":    SecurityAuthenticated,
	"activities.pending": SecurityAuthenticated,
	"activities.get":     SecurityAuthenticated,
	"activities.update":  SecurityAuthenticated,
	"activities.approve": SecurityAuthenticated,

	// Stats
	"stats.user":          SecurityAuthenticated,
	"stats.team":          SecurityAuthenticated,
	"leaderboard.all":     SecurityAuthenticated,
	"leaderboard.monthly": SecurityAuthenticated,
	"leaderboard.yearly":  SecurityAuthenticated,

	// Encashment
	"encashment.create":  SecurityAuthenticated,
	"encashment.list":    SecurityAuthenticated,
	"encashment.pending": SecurityAuthenticated,
	"encashment.approve": SecurityAuthenticated,
	"encashment.reject":  SecurityAuthenticated,

	// Profile changes
	"profile_changes.create":  SecurityAuthenticated,
	"profile_changes.list":    SecurityAuthenticated,
	"profile_changes.pending": SecurityAuthenticated,
	"profile_changes.approve": SecurityAuthenticated,
	"profile_changes.reject":  SecurityAuthenticated,

	// Admin
	"admin.cleanup_samples": SecurityAuthenticated,
}

// GetSecurityLevel returns the level for a route name. Unknown routes
// require authentication.
func GetSecurityLevel(routeName string) SecurityLevel {
	if level, ok := EndpointSecurityConfig[routeName]; ok {
		return level
	}
	return SecurityAuthenticated
}
