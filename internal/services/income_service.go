package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/filter"
	"expensetracker/internal/models"
	"expensetracker/internal/store"
)

// incomeService handles income-related business logic.
type incomeService struct {
	store *store.Store[models.Income]
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{store: store.New[models.Income](db)}
}

// ListIncome returns the income records matching every filter that is set.
func (s *incomeService) ListIncome(ctx context.Context, f filter.IncomeFilter) ([]models.Income, error) {
	return s.store.FindAll(ctx, f.Predicate().Scope())
}

// GetIncomeByID returns the income record, or nil if it does not exist.
func (s *incomeService) GetIncomeByID(ctx context.Context, id string) (*models.Income, error) {
	return s.store.FindByID(ctx, id)
}

// CreateIncome persists a new income record.
func (s *incomeService) CreateIncome(ctx context.Context, income *models.Income) (*models.Income, error) {
	income.Base = models.Base{}
	if err := s.store.Create(ctx, income); err != nil {
		return nil, err
	}
	return income, nil
}

// UpdateIncome overwrites amount, date, source and description.
func (s *incomeService) UpdateIncome(ctx context.Context, id string, changes *models.Income) (*models.Income, error) {
	income, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if income == nil {
		return nil, apperrors.ErrIncomeNotFound
	}

	income.Amount = changes.Amount
	income.Date = changes.Date
	income.Source = changes.Source
	income.Description = changes.Description

	updated, err := s.store.Update(ctx, id, income)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Deleted since it was read.
		return nil, apperrors.ErrIncomeNotFound
	}
	return income, nil
}

// DeleteIncome permanently removes an income record.
func (s *incomeService) DeleteIncome(ctx context.Context, id string) error {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.ErrIncomeNotFound
	}
	return nil
}
