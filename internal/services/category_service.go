package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/models"
	"expensetracker/internal/store"
)

// categoryService handles category-related business logic.
type categoryService struct {
	store *store.Store[models.Category]
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{store: store.New[models.Category](db)}
}

// ListCategories returns every category.
func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.store.FindAll(ctx)
}

// GetCategoryByID retrieves a category by ID, or nil if it does not exist.
func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	return s.store.FindByID(ctx, id)
}

// GetCategoriesByIDs retrieves the categories that exist among ids.
func (s *categoryService) GetCategoriesByIDs(ctx context.Context, ids []string) ([]models.Category, error) {
	return s.store.FindByIDs(ctx, ids)
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	category.Base = models.Base{}
	if err := s.store.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames or recolors an existing category.
func (s *categoryService) UpdateCategory(ctx context.Context, id string, changes *models.Category) (*models.Category, error) {
	category, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.ErrCategoryNotFound
	}

	category.Name = changes.Name
	category.Color = changes.Color

	updated, err := s.store.Update(ctx, id, category)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Deleted since it was read.
		return nil, apperrors.ErrCategoryNotFound
	}
	return category, nil
}

// DeleteCategory removes a category. Expenses still filed under it make the
// delete fail on databases that enforce the foreign key.
func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}
