package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"expensetracker/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:  fmt.Sprintf("Test Category %d", nextID()),
		Color: "#9E9E9E",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates an expense with the given amount ("12.34") and date ("2024-03-05").
func CreateTestExpense(t *testing.T, db *gorm.DB, categoryID, amount, date string, description *string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Amount:      models.MustParseAmount(amount),
		Date:        models.MustParseDate(date),
		CategoryID:  categoryID,
		Description: description,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestIncome creates an income record with the given amount and date.
func CreateTestIncome(t *testing.T, db *gorm.DB, source, amount, date string, description *string) *models.Income {
	t.Helper()

	income := &models.Income{
		Amount:      models.MustParseAmount(amount),
		Date:        models.MustParseDate(date),
		Source:      source,
		Description: description,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}
