package filter

import "expensetracker/internal/models"

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	StartDate   *models.Date
	EndDate     *models.Date
	CategoryID  *string
	MinAmount   *models.Amount
	MaxAmount   *models.Amount
	Description *string
}

// Predicate builds the conjunction of every filter that is set.
// CategoryID matches exactly; Description is a case-insensitive substring.
func (f ExpenseFilter) Predicate() Predicate[models.Expense] {
	var p Predicate[models.Expense]
	if f.StartDate != nil {
		p = p.And(OnOrAfter("date", *f.StartDate, expenseDate))
	}
	if f.EndDate != nil {
		p = p.And(OnOrBefore("date", *f.EndDate, expenseDate))
	}
	if present(f.CategoryID) {
		p = p.And(Equals("category_id", *f.CategoryID, func(e models.Expense) string { return e.CategoryID }))
	}
	if f.MinAmount != nil {
		p = p.And(AtLeast("amount", *f.MinAmount, expenseAmount))
	}
	if f.MaxAmount != nil {
		p = p.And(AtMost("amount", *f.MaxAmount, expenseAmount))
	}
	if present(f.Description) {
		p = p.And(ContainsFold("description", *f.Description, func(e models.Expense) *string { return e.Description }))
	}
	return p
}

func expenseDate(e models.Expense) models.Date     { return e.Date }
func expenseAmount(e models.Expense) models.Amount { return e.Amount }
