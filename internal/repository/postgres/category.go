package postgres

import (
	"context"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/repository"
)

type categoryRepository struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.ActivityCategory, error) {
	query := `SELECT id, name, points, monetary_value, COALESCE(description, '') FROM activity_categories ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := []domain.ActivityCategory{}
	for rows.Next() {
		var c domain.ActivityCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Points, &c.MonetaryValue, &c.Description); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *categoryRepository) GetByID(ctx context.Context, id int32) (*domain.ActivityCategory, error) {
	c := &domain.ActivityCategory{}
	query := `SELECT id, name, points, monetary_value, COALESCE(description, '') FROM activity_categories WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Points, &c.MonetaryValue, &c.Description)
	if err != nil {
		return nil, notFound(err, "category", id)
	}
	return c, nil
}

func (r *categoryRepository) SeedDefaults(ctx context.Context, categories []domain.ActivityCategory) (int, error) {
	tx, err := begin(ctx, r.db)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM activity_categories`).Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, c := range categories {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO activity_categories (name, points, monetary_value, description) VALUES ($1, $2, $3, $4)`,
			c.Name, c.Points, c.MonetaryValue, c.Description)
		if err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(categories), nil
}
