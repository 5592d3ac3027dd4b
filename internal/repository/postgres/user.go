package postgres

import (
	"context"
	"database/sql"
	"time"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/logger"
	"contribution-rewards-backend/internal/repository"
)

const userColumns = `id, email, first_name, last_name, role, designation, department, status,
	approved_by, approved_at, rejection_reason, created_at, updated_at`

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

func scanUser(s scanner) (*domain.User, error) {
	u := &domain.User{}
	var approvedBy, reason sql.NullString
	var approvedAt sql.NullTime
	err := s.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.Designation, &u.Department, &u.Status,
		&approvedBy, &approvedAt, &reason, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.ApprovedBy = stringPtr(approvedBy)
	u.ApprovedAt = timePtr(approvedAt)
	u.RejectionReason = stringPtr(reason)
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, email, first_name, last_name, role, designation, department, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	logger.DatabaseCall("insert", "users", "userID", u.ID)
	res, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.FirstName, u.LastName, u.Role, u.Designation, u.Department, u.Status, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		logger.DatabaseResult("insert", 0, err, "userID", u.ID)
		return uniqueViolation(err, "user is already registered")
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("insert", n, nil, "userID", u.ID)
	return nil
}

// bootstrapLockKey serializes first-account inserts across connections.
const bootstrapLockKey = 72417001

// CreateFirst inserts u only while the users table is empty. It reports
// false, without writing, when another account already exists.
func (r *userRepository) CreateFirst(ctx context.Context, u *domain.User) (bool, error) {
	logger.EnterMethod("userRepository.CreateFirst", "userID", u.ID)
	tx, err := begin(ctx, r.db)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, bootstrapLockKey); err != nil {
		logger.ExitMethodWithError("userRepository.CreateFirst", err, "userID", u.ID)
		return false, err
	}
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users)`).Scan(&exists); err != nil {
		logger.ExitMethodWithError("userRepository.CreateFirst", err, "userID", u.ID)
		return false, err
	}
	if exists {
		logger.ExitMethod("userRepository.CreateFirst", "userID", u.ID, "created", false)
		return false, nil
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (id, email, first_name, last_name, role, designation, department, status, approved_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		u.ID, u.Email, u.FirstName, u.LastName, u.Role, u.Designation, u.Department, u.Status, nullTime(u.ApprovedAt), u.CreatedAt, u.UpdatedAt)
	if err != nil {
		logger.ExitMethodWithError("userRepository.CreateFirst", err, "userID", u.ID)
		return false, uniqueViolation(err, "user is already registered")
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	logger.ExitMethod("userRepository.CreateFirst", "userID", u.ID, "created", true)
	return true, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "user", id)
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`
	return r.list(ctx, query)
}

func (r *userRepository) ListByStatus(ctx context.Context, status domain.UserStatus) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE status = $1 ORDER BY created_at, id`
	return r.list(ctx, query, status)
}

func (r *userRepository) list(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *userRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&count)
	return count, err
}

func (r *userRepository) Decide(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4, updated_at = $5
	          WHERE id = $6 AND status = 'pending'`
	u.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, u.Status, nullString(u.ApprovedBy), nullTime(u.ApprovedAt), nullString(u.RejectionReason), u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	return requireOneRow(res, "Only pending registrations can be decided")
}
