package domain

import "time"

type ProfileChangeStatus string

const (
	ProfileChangeStatusPending  ProfileChangeStatus = "pending"
	ProfileChangeStatusApproved ProfileChangeStatus = "approved"
	ProfileChangeStatusRejected ProfileChangeStatus = "rejected"
)

type ProfileChangeRequest struct {
	ID                   int32               `json:"id"`
	UserID               string              `json:"userId"`
	RequestedFirstName   string              `json:"requestedFirstName"`
	RequestedLastName    string              `json:"requestedLastName"`
	RequestedDesignation string              `json:"requestedDesignation"`
	CurrentFirstName     string              `json:"currentFirstName"`
	CurrentLastName      string              `json:"currentLastName"`
	CurrentDesignation   string              `json:"currentDesignation"`
	Status               ProfileChangeStatus `json:"status"`
	ApprovedBy           *string             `json:"approvedBy"`
	ApprovedAt           *time.Time          `json:"approvedAt"`
	RejectionReason      *string             `json:"rejectionReason"`
	CreatedAt            time.Time           `json:"createdAt"`
}
