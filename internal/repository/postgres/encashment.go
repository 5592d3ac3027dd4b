package postgres

import (
	"context"
	"database/sql"
	"time"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/repository"
)

const encashmentColumns = `id, user_id, points_requested, monetary_value, status,
	approved_by, approved_at, rejection_reason, payment_details, created_at, updated_at`

type encashmentRepository struct {
	db DBTX
}

func NewEncashmentRepository(db DBTX) repository.EncashmentRepository {
	return &encashmentRepository{db: db}
}

func scanEncashment(s scanner) (*domain.EncashmentRequest, error) {
	e := &domain.EncashmentRequest{}
	var approvedBy, reason, payment sql.NullString
	var approvedAt sql.NullTime
	err := s.Scan(&e.ID, &e.UserID, &e.PointsRequested, &e.MonetaryValue, &e.Status,
		&approvedBy, &approvedAt, &reason, &payment, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.ApprovedBy = stringPtr(approvedBy)
	e.ApprovedAt = timePtr(approvedAt)
	e.RejectionReason = stringPtr(reason)
	e.PaymentDetails = stringPtr(payment)
	return e, nil
}

func (r *encashmentRepository) Create(ctx context.Context, e *domain.EncashmentRequest) error {
	query := `INSERT INTO encashment_requests (user_id, points_requested, monetary_value, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	return r.db.QueryRowContext(ctx, query, e.UserID, e.PointsRequested, e.MonetaryValue, e.Status, e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
}

func (r *encashmentRepository) GetByID(ctx context.Context, id int32) (*domain.EncashmentRequest, error) {
	query := `SELECT ` + encashmentColumns + ` FROM encashment_requests WHERE id = $1`
	e, err := scanEncashment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "encashment request", id)
	}
	return e, nil
}

func (r *encashmentRepository) Decide(ctx context.Context, e *domain.EncashmentRequest) error {
	query := `UPDATE encashment_requests
	          SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4, payment_details = $5, updated_at = $6
	          WHERE id = $7 AND status = 'pending'`
	e.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, e.Status, nullString(e.ApprovedBy), nullTime(e.ApprovedAt),
		nullString(e.RejectionReason), nullString(e.PaymentDetails), e.UpdatedAt, e.ID)
	if err != nil {
		return err
	}
	return requireOneRow(res, "Only pending encashment requests can be decided")
}

func (r *encashmentRepository) ListByUser(ctx context.Context, userID string) ([]domain.EncashmentRequest, error) {
	query := `SELECT ` + encashmentColumns + ` FROM encashment_requests WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, userID)
}

func (r *encashmentRepository) ListByStatus(ctx context.Context, status domain.EncashmentStatus) ([]domain.EncashmentRequest, error) {
	query := `SELECT ` + encashmentColumns + ` FROM encashment_requests WHERE status = $1 ORDER BY created_at, id`
	return r.list(ctx, query, status)
}

func (r *encashmentRepository) list(ctx context.Context, query string, args ...any) ([]domain.EncashmentRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := []domain.EncashmentRequest{}
	for rows.Next() {
		e, err := scanEncashment(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *e)
	}
	return reqs, rows.Err()
}

func (r *encashmentRepository) SumApprovedPoints(ctx context.Context, userID string) (int32, error) {
	var sum int32
	query := `SELECT COALESCE(SUM(points_requested), 0) FROM encashment_requests WHERE user_id = $1 AND status = 'approved'`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&sum)
	return sum, err
}
