package domain

import "time"

type ActivityStatus string

const (
	ActivityStatusPending  ActivityStatus = "pending"
	ActivityStatusApproved ActivityStatus = "approved"
	ActivityStatusRejected ActivityStatus = "rejected"
)

// Decision is the outcome an approver or reviewer records on a pending item.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

func (d Decision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

const MinActivityDescriptionLength = 10

type Activity struct {
	ID              int32          `json:"id"`
	UserID          string         `json:"userId"`
	CategoryID      int32          `json:"categoryId"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	ActivityDate    time.Time      `json:"activityDate"`
	Status          ActivityStatus `json:"status"`
	ApprovedBy      *string        `json:"approvedBy"`
	ApprovedAt      *time.Time     `json:"approvedAt"`
	RejectionReason *string        `json:"rejectionReason"`
	AttachmentURL   *string        `json:"attachmentUrl"`
	FilePath        *string        `json:"filePath"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// ActivityFields are the owner-editable parts of an activity.
type ActivityFields struct {
	CategoryID    int32
	Title         string
	Description   string
	ActivityDate  time.Time
	AttachmentURL *string
	FilePath      *string
}

// PointEntry is an activity joined with the reward of its category, the
// row shape the stats aggregator works on.
type PointEntry struct {
	ActivityID    int32
	UserID        string
	Status        ActivityStatus
	Points        int32
	MonetaryValue int32
	CreatedAt     time.Time
	ApprovedAt    *time.Time
}

// CreditedAt is when the points count towards a period: the approval time,
// or the submission time for rows approved before approvals were stamped.
func (e PointEntry) CreditedAt() time.Time {
	if e.ApprovedAt != nil {
		return *e.ApprovedAt
	}
	return e.CreatedAt
}
