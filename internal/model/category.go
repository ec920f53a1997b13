package model

// Category is a named reference entity participating in the product join.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`
}
