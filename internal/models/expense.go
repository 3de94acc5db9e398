package models

import "gorm.io/gorm"

// Expense is money spent on a given date under a category.
type Expense struct {
	Base
	Amount      Amount  `gorm:"type:decimal(19,2);not null" json:"amount"`
	Date        Date    `gorm:"type:date;not null;index" json:"date"`
	CategoryID  string  `gorm:"type:varchar(36);not null;index" json:"categoryId"`
	Description *string `gorm:"size:500" json:"description,omitempty"`
}

// TableName sets the table name
func (Expense) TableName() string {
	return "expenses"
}

// BeforeSave rejects amounts the database cannot store exactly.
func (e *Expense) BeforeSave(tx *gorm.DB) error {
	return checkStorable(tx, e.Amount)
}
