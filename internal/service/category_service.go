package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mpatel/task-planner-web/internal/domain"
	"github.com/mpatel/task-planner-web/internal/repository"
	"gorm.io/gorm"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

type CreateCategoryInput struct {
	UserID uuid.UUID
	Name   string
	Color  string
}

func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	category := &domain.Category{
		ID:        uuid.New(),
		Name:      input.Name,
		Color:     input.Color,
		UserID:    input.UserID,
		CreatedAt: time.Now(),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	return s.categoryRepo.GetByUserID(ctx, userID)
}

func (s *CategoryService) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	if category.UserID != userID {
		return domain.ErrCategoryNotFound
	}
	return s.categoryRepo.Delete(ctx, categoryID)
}
