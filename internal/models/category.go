package models

// Category is a label expenses are filed under.
type Category struct {
	Base
	Name  string `gorm:"size:100;not null" json:"name"`
	Color string `gorm:"size:20" json:"color,omitempty"`
}

// TableName sets the table name
func (Category) TableName() string {
	return "categories"
}

// CategoryRef is the read-only view of a category embedded in expense responses.
type CategoryRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Ref returns the display reference for c.
func (c Category) Ref() *CategoryRef {
	return &CategoryRef{ID: c.ID, Name: c.Name, Color: c.Color}
}
