package models

import "gorm.io/gorm"

// Income is money received on a given date from a freeform source.
type Income struct {
	Base
	Amount      Amount  `gorm:"type:decimal(19,2);not null" json:"amount"`
	Date        Date    `gorm:"type:date;not null;index" json:"date"`
	Source      string  `gorm:"size:255;not null" json:"source"`
	Description *string `gorm:"size:500" json:"description,omitempty"`
}

// TableName sets the table name
func (Income) TableName() string {
	return "income"
}

// BeforeSave rejects amounts the database cannot store exactly.
func (i *Income) BeforeSave(tx *gorm.DB) error {
	return checkStorable(tx, i.Amount)
}
