package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/filter"
	"expensetracker/internal/models"
	"expensetracker/internal/store"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	store *store.Store[models.Expense]
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{store: store.New[models.Expense](db)}
}

// ListExpenses returns the expenses matching every filter that is set.
func (s *expenseService) ListExpenses(ctx context.Context, f filter.ExpenseFilter) ([]models.Expense, error) {
	return s.store.FindAll(ctx, f.Predicate().Scope())
}

// GetExpenseByID returns the expense, or nil if it does not exist.
func (s *expenseService) GetExpenseByID(ctx context.Context, id string) (*models.Expense, error) {
	return s.store.FindByID(ctx, id)
}

// CreateExpense persists a new expense. Any client-supplied id or timestamps are discarded.
func (s *expenseService) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	expense.Base = models.Base{}
	if err := s.store.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// UpdateExpense overwrites the mutable fields of an existing expense.
func (s *expenseService) UpdateExpense(ctx context.Context, id string, changes *models.Expense) (*models.Expense, error) {
	expense, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperrors.ErrExpenseNotFound
	}

	expense.Amount = changes.Amount
	expense.Date = changes.Date
	expense.CategoryID = changes.CategoryID
	expense.Description = changes.Description

	updated, err := s.store.Update(ctx, id, expense)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Deleted since it was read.
		return nil, apperrors.ErrExpenseNotFound
	}
	return expense, nil
}

// DeleteExpense permanently removes an expense.
func (s *expenseService) DeleteExpense(ctx context.Context, id string) error {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}
