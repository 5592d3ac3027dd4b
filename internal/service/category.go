package service

import (
	"context"

	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/logger"
	"contribution-rewards-backend/internal/repository"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.ActivityCategory, error) {
	return s.categoryRepo.List(ctx)
}

// SeedCatalog installs the default categories into an empty table.
func (s *categoryService) SeedCatalog(ctx context.Context) (int, error) {
	n, err := s.categoryRepo.SeedDefaults(ctx, domain.DefaultCategories)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Info("Seeded activity categories", "count", n)
	}
	return n, nil
}
