package postgres

import (
	"context"
	"database/sql"
	"time"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/logger"
	"contribution-rewards-backend/internal/repository"
)

const profileChangeColumns = `id, user_id, requested_first_name, requested_last_name, requested_designation,
	current_first_name, current_last_name, current_designation, status,
	approved_by, approved_at, rejection_reason, created_at`

type profileChangeRepository struct {
	db DBTX
}

func NewProfileChangeRepository(db DBTX) repository.ProfileChangeRepository {
	return &profileChangeRepository{db: db}
}

func scanProfileChange(s scanner) (*domain.ProfileChangeRequest, error) {
	p := &domain.ProfileChangeRequest{}
	var approvedBy, reason sql.NullString
	var approvedAt sql.NullTime
	err := s.Scan(&p.ID, &p.UserID, &p.RequestedFirstName, &p.RequestedLastName, &p.RequestedDesignation,
		&p.CurrentFirstName, &p.CurrentLastName, &p.CurrentDesignation, &p.Status,
		&approvedBy, &approvedAt, &reason, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.ApprovedBy = stringPtr(approvedBy)
	p.ApprovedAt = timePtr(approvedAt)
	p.RejectionReason = stringPtr(reason)
	return p, nil
}

func (r *profileChangeRepository) Create(ctx context.Context, p *domain.ProfileChangeRequest) error {
	query := `INSERT INTO profile_change_requests
	          (user_id, requested_first_name, requested_last_name, requested_designation,
	           current_first_name, current_last_name, current_designation, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	p.CreatedAt = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, p.UserID, p.RequestedFirstName, p.RequestedLastName, p.RequestedDesignation,
		p.CurrentFirstName, p.CurrentLastName, p.CurrentDesignation, p.Status, p.CreatedAt).Scan(&p.ID)
}

func (r *profileChangeRepository) GetByID(ctx context.Context, id int32) (*domain.ProfileChangeRequest, error) {
	query := `SELECT ` + profileChangeColumns + ` FROM profile_change_requests WHERE id = $1`
	p, err := scanProfileChange(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "profile change request", id)
	}
	return p, nil
}

func (r *profileChangeRepository) ListByUser(ctx context.Context, userID string) ([]domain.ProfileChangeRequest, error) {
	query := `SELECT ` + profileChangeColumns + ` FROM profile_change_requests WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, userID)
}

func (r *profileChangeRepository) ListByStatus(ctx context.Context, status domain.ProfileChangeStatus) ([]domain.ProfileChangeRequest, error) {
	query := `SELECT ` + profileChangeColumns + ` FROM profile_change_requests WHERE status = $1 ORDER BY created_at, id`
	return r.list(ctx, query, status)
}

func (r *profileChangeRepository) list(ctx context.Context, query string, args ...any) ([]domain.ProfileChangeRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := []domain.ProfileChangeRequest{}
	for rows.Next() {
		p, err := scanProfileChange(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *p)
	}
	return reqs, rows.Err()
}

func (r *profileChangeRepository) Decide(ctx context.Context, p *domain.ProfileChangeRequest) error {
	logger.EnterMethod("profileChangeRepository.Decide", "requestID", p.ID, "status", p.Status)

	tx, err := begin(ctx, r.db)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE profile_change_requests SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4
		 WHERE id = $5 AND status = 'pending'`,
		p.Status, nullString(p.ApprovedBy), nullTime(p.ApprovedAt), nullString(p.RejectionReason), p.ID)
	if err != nil {
		logger.ExitMethodWithError("profileChangeRepository.Decide", err, "requestID", p.ID)
		return err
	}
	if err := requireOneRow(res, "Only pending profile change requests can be decided"); err != nil {
		return err
	}

	if p.Status == domain.ProfileChangeStatusApproved {
		res, err := tx.ExecContext(ctx,
			`UPDATE users SET first_name = $1, last_name = $2, designation = $3, updated_at = $4 WHERE id = $5`,
			p.RequestedFirstName, p.RequestedLastName, p.RequestedDesignation, time.Now().UTC(), p.UserID)
		if err != nil {
			logger.ExitMethodWithError("profileChangeRepository.Decide", err, "requestID", p.ID)
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.NotFoundf("user %s not found", p.UserID)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logger.ExitMethod("profileChangeRepository.Decide", "requestID", p.ID)
	return nil
}
