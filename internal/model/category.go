package model

// Category is a named reference entry products point at by name.
// Deletion is guarded while any product still references it.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
}
