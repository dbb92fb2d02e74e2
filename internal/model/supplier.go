package model

// Supplier mirrors Category: a unique name products reference, with the
// same delete-while-referenced guard. An empty supplier on a product
// means unassigned.
type Supplier struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
}
