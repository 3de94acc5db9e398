package services

import (
	"context"

	"expensetracker/internal/filter"
	"expensetracker/internal/models"
)

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	ListExpenses(ctx context.Context, f filter.ExpenseFilter) ([]models.Expense, error)
	GetExpenseByID(ctx context.Context, id string) (*models.Expense, error)
	CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	UpdateExpense(ctx context.Context, id string, changes *models.Expense) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

// IncomeServicer defines the contract for income-related business logic.
type IncomeServicer interface {
	ListIncome(ctx context.Context, f filter.IncomeFilter) ([]models.Income, error)
	GetIncomeByID(ctx context.Context, id string) (*models.Income, error)
	CreateIncome(ctx context.Context, income *models.Income) (*models.Income, error)
	UpdateIncome(ctx context.Context, id string, changes *models.Income) (*models.Income, error)
	DeleteIncome(ctx context.Context, id string) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	GetCategoriesByIDs(ctx context.Context, ids []string) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, changes *models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}
