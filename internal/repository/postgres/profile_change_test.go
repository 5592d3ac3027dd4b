package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"contribution-rewards-backend/internal/domain"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestProfileChangeRepository_Decide(t *testing.T) {
	reviewer := "partner-1"
	now := time.Now().UTC()

	t.Run("ApproveAppliesToUserInTransaction", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewProfileChangeRepository(db)
		req := &domain.ProfileChangeRequest{
			ID: 3, UserID: "u1", Status: domain.ProfileChangeStatusApproved,
			RequestedFirstName: "Asha", RequestedLastName: "Rao", RequestedDesignation: "Manager",
			ApprovedBy: &reviewer, ApprovedAt: &now,
		}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE profile_change_requests").
			WithArgs(domain.ProfileChangeStatusApproved, reviewer, sqlmock.AnyArg(), nil, int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE users SET first_name").
			WithArgs("Asha", "Rao", "Manager", sqlmock.AnyArg(), "u1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Decide(context.Background(), req))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RejectLeavesUserAlone", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewProfileChangeRepository(db)
		reason := "name mismatch with records"
		req := &domain.ProfileChangeRequest{ID: 4, UserID: "u1", Status: domain.ProfileChangeStatusRejected,
			ApprovedBy: &reviewer, ApprovedAt: &now, RejectionReason: &reason}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE profile_change_requests").
			WithArgs(domain.ProfileChangeStatusRejected, reviewer, sqlmock.AnyArg(), reason, int32(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Decide(context.Background(), req))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyDecidedRollsBack", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewProfileChangeRepository(db)
		req := &domain.ProfileChangeRequest{ID: 5, UserID: "u1", Status: domain.ProfileChangeStatusApproved, ApprovedBy: &reviewer, ApprovedAt: &now}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE profile_change_requests").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Decide(context.Background(), req)
		assert.True(t, errors.Is(err, domain.ErrInvalidState))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UserUpdateFailureRollsBack", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewProfileChangeRepository(db)
		req := &domain.ProfileChangeRequest{ID: 6, UserID: "u1", Status: domain.ProfileChangeStatusApproved, ApprovedBy: &reviewer, ApprovedAt: &now}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE profile_change_requests").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE users SET first_name").WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		assert.Error(t, repo.Decide(context.Background(), req))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
