package filter

import "expensetracker/internal/models"

// IncomeFilter holds optional filter parameters for listing income.
type IncomeFilter struct {
	StartDate   *models.Date
	EndDate     *models.Date
	Source      *string
	MinAmount   *models.Amount
	MaxAmount   *models.Amount
	Description *string
}

// Predicate builds the conjunction of every filter that is set.
// Unlike an expense's category, Source is a case-insensitive substring match.
func (f IncomeFilter) Predicate() Predicate[models.Income] {
	var p Predicate[models.Income]
	if f.StartDate != nil {
		p = p.And(OnOrAfter("date", *f.StartDate, incomeDate))
	}
	if f.EndDate != nil {
		p = p.And(OnOrBefore("date", *f.EndDate, incomeDate))
	}
	if present(f.Source) {
		p = p.And(ContainsFold("source", *f.Source, func(i models.Income) *string { return &i.Source }))
	}
	if f.MinAmount != nil {
		p = p.And(AtLeast("amount", *f.MinAmount, incomeAmount))
	}
	if f.MaxAmount != nil {
		p = p.And(AtMost("amount", *f.MaxAmount, incomeAmount))
	}
	if present(f.Description) {
		p = p.And(ContainsFold("description", *f.Description, func(i models.Income) *string { return i.Description }))
	}
	return p
}

func incomeDate(i models.Income) models.Date     { return i.Date }
func incomeAmount(i models.Income) models.Amount { return i.Amount }
