package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAdminRepository_DeleteUsersByEmailPatterns(t *testing.T) {
	patterns := []string{"%@example.com"}

	t.Run("AllOrNothing", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewAdminRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM activities").WithArgs(sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec("DELETE FROM encashment_requests").WithArgs(sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM profile_change_requests").WithArgs(sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM users").WithArgs(sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		n, err := repo.DeleteUsersByEmailPatterns(context.Background(), patterns)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("FailureRollsBack", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewAdminRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM activities").WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec("DELETE FROM encashment_requests").WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()

		n, err := repo.DeleteUsersByEmailPatterns(context.Background(), patterns)
		assert.Error(t, err)
		assert.Equal(t, int64(0), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoPatterns", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewAdminRepository(db)

		n, err := repo.DeleteUsersByEmailPatterns(context.Background(), nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
