package service_test

import (
	"context"

	"contribution-rewards-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) CreateFirst(ctx context.Context, user *domain.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByStatus(ctx context.Context, status domain.UserStatus) ([]domain.User, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockUserRepo) Decide(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockCategoryRepo
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) List(ctx context.Context) ([]domain.ActivityCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ActivityCategory), args.Error(1)
}
func (m *MockCategoryRepo) GetByID(ctx context.Context, id int32) (*domain.ActivityCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityCategory), args.Error(1)
}
func (m *MockCategoryRepo) SeedDefaults(ctx context.Context, categories []domain.ActivityCategory) (int, error) {
	args := m.Called(ctx, categories)
	return args.Int(0), args.Error(1)
}

// MockActivityRepo
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Create(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}
func (m *MockActivityRepo) GetByID(ctx context.Context, id int32) (*domain.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}
func (m *MockActivityRepo) Update(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}
func (m *MockActivityRepo) Decide(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}
func (m *MockActivityRepo) ListByUser(ctx context.Context, userID string) ([]domain.Activity, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Activity), args.Error(1)
}
func (m *MockActivityRepo) ListByStatus(ctx context.Context, status domain.ActivityStatus) ([]domain.Activity, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Activity), args.Error(1)
}
func (m *MockActivityRepo) ListPointEntries(ctx context.Context) ([]domain.PointEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PointEntry), args.Error(1)
}
func (m *MockActivityRepo) ListPointEntriesByUser(ctx context.Context, userID string) ([]domain.PointEntry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.PointEntry), args.Error(1)
}

// MockEncashmentRepo
type MockEncashmentRepo struct {
	mock.Mock
}

func (m *MockEncashmentRepo) Create(ctx context.Context, req *domain.EncashmentRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockEncashmentRepo) GetByID(ctx context.Context, id int32) (*domain.EncashmentRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EncashmentRequest), args.Error(1)
}
func (m *MockEncashmentRepo) Decide(ctx context.Context, req *domain.EncashmentRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockEncashmentRepo) ListByUser(ctx context.Context, userID string) ([]domain.EncashmentRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.EncashmentRequest), args.Error(1)
}
func (m *MockEncashmentRepo) ListByStatus(ctx context.Context, status domain.EncashmentStatus) ([]domain.EncashmentRequest, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.EncashmentRequest), args.Error(1)
}
func (m *MockEncashmentRepo) SumApprovedPoints(ctx context.Context, userID string) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}

// MockProfileChangeRepo
type MockProfileChangeRepo struct {
	mock.Mock
}

func (m *MockProfileChangeRepo) Create(ctx context.Context, req *domain.ProfileChangeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockProfileChangeRepo) GetByID(ctx context.Context, id int32) (*domain.ProfileChangeRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileChangeRequest), args.Error(1)
}
func (m *MockProfileChangeRepo) ListByUser(ctx context.Context, userID string) ([]domain.ProfileChangeRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.ProfileChangeRequest), args.Error(1)
}
func (m *MockProfileChangeRepo) ListByStatus(ctx context.Context, status domain.ProfileChangeStatus) ([]domain.ProfileChangeRequest, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.ProfileChangeRequest), args.Error(1)
}
func (m *MockProfileChangeRepo) Decide(ctx context.Context, req *domain.ProfileChangeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockAdminRepo
type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) DeleteUsersByEmailPatterns(ctx context.Context, patterns []string) (int64, error) {
	args := m.Called(ctx, patterns)
	return args.Get(0).(int64), args.Error(1)
}

// Fixtures

func member(id string) *domain.User {
	return &domain.User{ID: id, FirstName: id, Role: domain.UserRoleContributor, Designation: "Associate", Status: domain.UserStatusApproved}
}

func approverUser(id string) *domain.User {
	return &domain.User{ID: id, FirstName: id, Role: domain.UserRoleApprover, Designation: domain.DesignationPartner, Status: domain.UserStatusApproved}
}

func reviewerUser(id string) *domain.User {
	return &domain.User{ID: id, FirstName: id, Role: domain.UserRoleContributor, Designation: domain.DesignationSeniorManager, Status: domain.UserStatusApproved}
}
