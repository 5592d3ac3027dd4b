package repository

import (
	"context"

	"contribution-rewards-backend/internal/domain"
)

// Repositories return domain.ErrNotFound for missing rows and
// domain.ErrInvalidState when a conditional transition finds the row
// already decided.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// CreateFirst inserts user only if no account exists yet, atomically,
	// and reports whether it did.
	CreateFirst(ctx context.Context, user *domain.User) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// List returns every user in registration order.
	List(ctx context.Context) ([]domain.User, error)
	ListByStatus(ctx context.Context, status domain.UserStatus) ([]domain.User, error)
	Count(ctx context.Context) (int32, error)
	// Decide moves a pending account to approved or rejected.
	Decide(ctx context.Context, user *domain.User) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.ActivityCategory, error)
	GetByID(ctx context.Context, id int32) (*domain.ActivityCategory, error)
	// SeedDefaults inserts the catalog when the table is empty and reports
	// how many rows were written.
	SeedDefaults(ctx context.Context, categories []domain.ActivityCategory) (int, error)
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	GetByID(ctx context.Context, id int32) (*domain.Activity, error)
	// Update overwrites the editable fields of a pending activity.
	Update(ctx context.Context, activity *domain.Activity) error
	// Decide records an approval or rejection on a pending activity.
	Decide(ctx context.Context, activity *domain.Activity) error
	ListByUser(ctx context.Context, userID string) ([]domain.Activity, error)
	ListByStatus(ctx context.Context, status domain.ActivityStatus) ([]domain.Activity, error)
	// ListPointEntries returns every activity joined with its category reward.
	ListPointEntries(ctx context.Context) ([]domain.PointEntry, error)
	ListPointEntriesByUser(ctx context.Context, userID string) ([]domain.PointEntry, error)
}

type EncashmentRepository interface {
	Create(ctx context.Context, req *domain.EncashmentRequest) error
	GetByID(ctx context.Context, id int32) (*domain.EncashmentRequest, error)
	Decide(ctx context.Context, req *domain.EncashmentRequest) error
	ListByUser(ctx context.Context, userID string) ([]domain.EncashmentRequest, error)
	ListByStatus(ctx context.Context, status domain.EncashmentStatus) ([]domain.EncashmentRequest, error)
	// SumApprovedPoints is the total already redeemed by the user.
	SumApprovedPoints(ctx context.Context, userID string) (int32, error)
}

type ProfileChangeRepository interface {
	Create(ctx context.Context, req *domain.ProfileChangeRequest) error
	GetByID(ctx context.Context, id int32) (*domain.ProfileChangeRequest, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ProfileChangeRequest, error)
	ListByStatus(ctx context.Context, status domain.ProfileChangeStatus) ([]domain.ProfileChangeRequest, error)
	// Decide records the decision and, on approval, applies the requested
	// values to the user in the same transaction.
	Decide(ctx context.Context, req *domain.ProfileChangeRequest) error
}

type AdminRepository interface {
	// DeleteUsersByEmailPatterns removes matching users and everything they
	// own in one transaction. Patterns use SQL LIKE syntax.
	DeleteUsersByEmailPatterns(ctx context.Context, patterns []string) (int64, error)
}
