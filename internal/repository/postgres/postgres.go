package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.CategoryRepository
	repository.ActivityRepository
	repository.EncashmentRepository
	repository.ProfileChangeRepository
	repository.AdminRepository
}

func NewStore(db *sql.DB) *Store {
	s := newStore(db)
	s.db = db
	return s
}

func newStore(db DBTX) *Store {
	return &Store{
		UserRepository:          NewUserRepository(db),
		CategoryRepository:      NewCategoryRepository(db),
		ActivityRepository:      NewActivityRepository(db),
		EncashmentRepository:    NewEncashmentRepository(db),
		ProfileChangeRepository: NewProfileChangeRepository(db),
		AdminRepository:         NewAdminRepository(db),
	}
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithTx runs fn against repositories bound to one transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(newStore(tx)); err != nil {
		return err
	}
	return tx.Commit()
}

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txHandle interface {
	DBTX
	Commit() error
	Rollback() error
}

// joinedTx is a repository transaction nested in a caller's; the caller
// commits or rolls back.
type joinedTx struct {
	*sql.Tx
}

func (joinedTx) Commit() error   { return nil }
func (joinedTx) Rollback() error { return nil }

// begin opens a transaction on db, or joins db when it already is one.
func begin(ctx context.Context, db DBTX) (txHandle, error) {
	switch d := db.(type) {
	case *sql.Tx:
		return joinedTx{d}, nil
	case *sql.DB:
		tx, err := d.BeginTx(ctx, nil)
		if err != nil {
			return nil, err
		}
		return tx, nil
	}
	return nil, fmt.Errorf("cannot begin a transaction on %T", db)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

// notFound translates sql.ErrNoRows into the domain error.
func notFound(err error, what string, id any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundf("%s %v not found", what, id)
	}
	return err
}

// foreignKeyViolation maps a missing referenced row onto a domain error.
func foreignKeyViolation(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return domain.NotFoundf("%s", message)
	}
	return err
}

// uniqueViolation maps a duplicate key onto a domain error.
func uniqueViolation(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.InvalidStatef("%s", message)
	}
	return err
}

// requireOneRow turns a conditional UPDATE that touched nothing into an
// invalid state error.
func requireOneRow(res sql.Result, message string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.InvalidStatef("%s", message)
	}
	return nil
}
