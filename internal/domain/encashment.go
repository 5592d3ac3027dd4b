package domain

import "time"

type EncashmentStatus string

const (
	EncashmentStatusPending  EncashmentStatus = "pending"
	EncashmentStatusApproved EncashmentStatus = "approved"
	EncashmentStatusRejected EncashmentStatus = "rejected"
)

type EncashmentRequest struct {
	ID              int32            `json:"id"`
	UserID          string           `json:"userId"`
	PointsRequested int32            `json:"pointsRequested"`
	MonetaryValue   int32            `json:"monetaryValue"`
	Status          EncashmentStatus `json:"status"`
	ApprovedBy      *string          `json:"approvedBy"`
	ApprovedAt      *time.Time       `json:"approvedAt"`
	RejectionReason *string          `json:"rejectionReason"`
	PaymentDetails  *string          `json:"paymentDetails"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
