package domain

import "time"

type UserRole string

const (
	UserRoleContributor UserRole = "contributor"
	UserRoleApprover    UserRole = "approver"
)

type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
	UserStatusRejected UserStatus = "rejected"
)

const (
	DesignationPartner       = "Partner"
	DesignationSeniorManager = "Senior Manager"
)

// User is keyed by the subject issued by the external identity provider.
type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Role            UserRole   `json:"role"`
	Designation     string     `json:"designation"`
	Department      string     `json:"department"`
	Status          UserStatus `json:"status"`
	ApprovedBy      *string    `json:"approvedBy"`
	ApprovedAt      *time.Time `json:"approvedAt"`
	RejectionReason *string    `json:"rejectionReason"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// DefaultRoleForDesignation returns the role assigned when a user registers.
// Role can be changed later without touching the designation.
func DefaultRoleForDesignation(designation string) UserRole {
	if designation == DesignationPartner {
		return UserRoleApprover
	}
	return UserRoleContributor
}
