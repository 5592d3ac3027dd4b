package policy

import (
	"testing"

	"contribution-rewards-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAxesAreIndependent(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		approver bool
		reviewer bool
	}{
		{"partner approver", &domain.User{Role: domain.UserRoleApprover, Designation: "Partner"}, true, true},
		{"approver with other designation", &domain.User{Role: domain.UserRoleApprover, Designation: "Manager"}, true, false},
		{"senior manager contributor", &domain.User{Role: domain.UserRoleContributor, Designation: "Senior Manager"}, false, true},
		{"plain contributor", &domain.User{Role: domain.UserRoleContributor, Designation: "Associate"}, false, false},
		{"designation is case sensitive", &domain.User{Role: domain.UserRoleContributor, Designation: "partner"}, false, false},
		{"nil user", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.approver, IsApprover(tt.user))
			assert.Equal(t, tt.reviewer, IsReviewer(tt.user))
		})
	}
}

func TestIsActiveMember(t *testing.T) {
	assert.True(t, IsActiveMember(&domain.User{Status: domain.UserStatusApproved}))
	assert.False(t, IsActiveMember(&domain.User{Status: domain.UserStatusPending}))
	assert.False(t, IsActiveMember(&domain.User{Status: domain.UserStatusRejected}))
	assert.False(t, IsActiveMember(nil))
}

func TestActivityOwnership(t *testing.T) {
	owner := &domain.User{ID: "u1", Role: domain.UserRoleContributor}
	other := &domain.User{ID: "u2", Role: domain.UserRoleContributor}
	approver := &domain.User{ID: "u3", Role: domain.UserRoleApprover}
	act := &domain.Activity{ID: 1, UserID: "u1"}

	assert.True(t, CanEditActivity(owner, act))
	assert.False(t, CanEditActivity(other, act))
	assert.False(t, CanEditActivity(approver, act), "approval rights do not grant edit rights")

	assert.True(t, CanViewActivity(owner, act))
	assert.True(t, CanViewActivity(approver, act))
	assert.False(t, CanViewActivity(other, act))
}
