// Package policy holds the authorization predicates. Role-based and
// designation-based checks are separate axes and are evaluated per endpoint;
// an approver is not automatically a reviewer and vice versa.
package policy

import "contribution-rewards-backend/internal/domain"

var reviewerDesignations = map[string]bool{
	domain.DesignationSeniorManager: true,
	domain.DesignationPartner:       true,
}

// IsApprover gates activity and encashment decisions, team-wide stats and
// admin operations.
func IsApprover(u *domain.User) bool {
	return u != nil && u.Role == domain.UserRoleApprover
}

// IsReviewer gates profile-change and user-registration decisions.
func IsReviewer(u *domain.User) bool {
	return u != nil && reviewerDesignations[u.Designation]
}

// IsActiveMember reports whether the account has been admitted.
func IsActiveMember(u *domain.User) bool {
	return u != nil && u.Status == domain.UserStatusApproved
}

func CanEditActivity(u *domain.User, a *domain.Activity) bool {
	return u != nil && a != nil && a.UserID == u.ID
}

// CanViewActivity lets owners and approvers read a single activity.
func CanViewActivity(u *domain.User, a *domain.Activity) bool {
	return CanEditActivity(u, a) || IsApprover(u)
}
