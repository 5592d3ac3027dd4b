package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"contribution-rewards-backend/internal/domain"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "email", "first_name", "last_name", "role", "designation", "department", "status",
	"approved_by", "approved_at", "rejection_reason", "created_at", "updated_at"}

func TestUserRepository_List_RegistrationOrder(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM users ORDER BY created_at, id").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u1", "a@firm.com", "A", "One", "approver", "Partner", "Audit", "approved", nil, nil, nil, now, now).
			AddRow("u2", "b@firm.com", "B", "Two", "contributor", "Associate", "Tax", "pending", nil, nil, nil, now, now))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, domain.UserRoleApprover, users[0].Role)
	assert.Equal(t, domain.UserStatusPending, users[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO users").WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &domain.User{ID: "u1", Status: domain.UserStatusPending})
	assert.True(t, errors.Is(err, domain.ErrInvalidState))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Decide(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	reviewer := "partner"
	now := time.Now().UTC()

	mock.ExpectExec("UPDATE users SET status").
		WithArgs(domain.UserStatusApproved, reviewer, sqlmock.AnyArg(), nil, sqlmock.AnyArg(), "u2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	u := &domain.User{ID: "u2", Status: domain.UserStatusApproved, ApprovedBy: &reviewer, ApprovedAt: &now}
	assert.NoError(t, repo.Decide(context.Background(), u))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_SeedDefaults(t *testing.T) {
	cats := domain.DefaultCategories[:2]

	t.Run("EmptyTable", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewCategoryRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM activity_categories").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		for _, c := range cats {
			mock.ExpectExec("INSERT INTO activity_categories").
				WithArgs(c.Name, c.Points, c.MonetaryValue, c.Description).
				WillReturnResult(sqlmock.NewResult(1, 1))
		}
		mock.ExpectCommit()

		n, err := repo.SeedDefaults(context.Background(), cats)
		assert.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadySeeded", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewCategoryRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM activity_categories").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
		mock.ExpectRollback()

		n, err := repo.SeedDefaults(context.Background(), cats)
		assert.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_CreateFirst(t *testing.T) {
	now := time.Now().UTC()
	first := func() *domain.User {
		return &domain.User{ID: "u1", Email: "p@firm.com", FirstName: "P", Role: domain.UserRoleApprover,
			Designation: domain.DesignationPartner, Status: domain.UserStatusApproved, ApprovedAt: &now}
	}

	t.Run("Empty table", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewUserRepository(db)
		mock.ExpectBegin()
		mock.ExpectExec("SELECT pg_advisory_xact_lock").WithArgs(bootstrapLockKey).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		created, err := repo.CreateFirst(context.Background(), first())
		require.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Another account exists", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewUserRepository(db)
		mock.ExpectBegin()
		mock.ExpectExec("SELECT pg_advisory_xact_lock").WithArgs(bootstrapLockKey).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		created, err := repo.CreateFirst(context.Background(), first())
		require.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
