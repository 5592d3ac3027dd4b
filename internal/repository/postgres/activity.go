package postgres

import (
	"context"
	"database/sql"
	"time"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/logger"
	"contribution-rewards-backend/internal/repository"
)

const activityColumns = `id, user_id, category_id, title, description, activity_date, status,
	approved_by, approved_at, rejection_reason, attachment_url, file_path, created_at, updated_at`

type activityRepository struct {
	db DBTX
}

func NewActivityRepository(db DBTX) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func scanActivity(s scanner) (*domain.Activity, error) {
	a := &domain.Activity{}
	var approvedBy, reason, attachmentURL, filePath sql.NullString
	var approvedAt sql.NullTime
	err := s.Scan(&a.ID, &a.UserID, &a.CategoryID, &a.Title, &a.Description, &a.ActivityDate, &a.Status,
		&approvedBy, &approvedAt, &reason, &attachmentURL, &filePath, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.ApprovedBy = stringPtr(approvedBy)
	a.ApprovedAt = timePtr(approvedAt)
	a.RejectionReason = stringPtr(reason)
	a.AttachmentURL = stringPtr(attachmentURL)
	a.FilePath = stringPtr(filePath)
	return a, nil
}

func (r *activityRepository) Create(ctx context.Context, a *domain.Activity) error {
	logger.EnterMethod("activityRepository.Create", "userID", a.UserID, "categoryID", a.CategoryID)
	query := `INSERT INTO activities (user_id, category_id, title, description, activity_date, status, attachment_url, file_path, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, query, a.UserID, a.CategoryID, a.Title, a.Description, a.ActivityDate, a.Status,
		nullString(a.AttachmentURL), nullString(a.FilePath), a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
	if err != nil {
		logger.ExitMethodWithError("activityRepository.Create", err, "userID", a.UserID)
		return foreignKeyViolation(err, "Activity category not found")
	}
	logger.ExitMethod("activityRepository.Create", "activityID", a.ID)
	return nil
}

func (r *activityRepository) GetByID(ctx context.Context, id int32) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`
	a, err := scanActivity(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "activity", id)
	}
	return a, nil
}

func (r *activityRepository) Update(ctx context.Context, a *domain.Activity) error {
	query := `UPDATE activities
	          SET category_id = $1, title = $2, description = $3, activity_date = $4, attachment_url = $5, file_path = $6, updated_at = $7
	          WHERE id = $8 AND status = 'pending'`
	a.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, a.CategoryID, a.Title, a.Description, a.ActivityDate,
		nullString(a.AttachmentURL), nullString(a.FilePath), a.UpdatedAt, a.ID)
	if err != nil {
		return foreignKeyViolation(err, "Activity category not found")
	}
	return requireOneRow(res, "Only pending activities can be edited")
}

func (r *activityRepository) Decide(ctx context.Context, a *domain.Activity) error {
	logger.EnterMethod("activityRepository.Decide", "activityID", a.ID, "status", a.Status)
	query := `UPDATE activities
	          SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4, updated_at = $5
	          WHERE id = $6 AND status = 'pending'`
	a.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, a.Status, nullString(a.ApprovedBy), nullTime(a.ApprovedAt),
		nullString(a.RejectionReason), a.UpdatedAt, a.ID)
	if err != nil {
		logger.ExitMethodWithError("activityRepository.Decide", err, "activityID", a.ID)
		return err
	}
	if err := requireOneRow(res, "Only pending activities can be decided"); err != nil {
		return err
	}
	logger.ExitMethod("activityRepository.Decide", "activityID", a.ID)
	return nil
}

func (r *activityRepository) ListByUser(ctx context.Context, userID string) ([]domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, userID)
}

func (r *activityRepository) ListByStatus(ctx context.Context, status domain.ActivityStatus) ([]domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE status = $1 ORDER BY created_at, id`
	return r.list(ctx, query, status)
}

func (r *activityRepository) list(ctx context.Context, query string, args ...any) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}
	return activities, rows.Err()
}

const pointEntryQuery = `SELECT a.id, a.user_id, a.status, c.points, c.monetary_value, a.created_at, a.approved_at
	FROM activities a JOIN activity_categories c ON c.id = a.category_id`

func (r *activityRepository) ListPointEntries(ctx context.Context) ([]domain.PointEntry, error) {
	return r.listEntries(ctx, pointEntryQuery+` ORDER BY a.id`)
}

func (r *activityRepository) ListPointEntriesByUser(ctx context.Context, userID string) ([]domain.PointEntry, error) {
	return r.listEntries(ctx, pointEntryQuery+` WHERE a.user_id = $1 ORDER BY a.id`, userID)
}

func (r *activityRepository) listEntries(ctx context.Context, query string, args ...any) ([]domain.PointEntry, error) {
	logger.DatabaseCall("select", "activities+categories")
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("select", 0, err)
		return nil, err
	}
	defer rows.Close()

	entries := []domain.PointEntry{}
	for rows.Next() {
		var e domain.PointEntry
		var approvedAt sql.NullTime
		if err := rows.Scan(&e.ActivityID, &e.UserID, &e.Status, &e.Points, &e.MonetaryValue, &e.CreatedAt, &approvedAt); err != nil {
			return nil, err
		}
		e.ApprovedAt = timePtr(approvedAt)
		entries = append(entries, e)
	}
	logger.DatabaseResult("select", int64(len(entries)), rows.Err())
	return entries, rows.Err()
}
