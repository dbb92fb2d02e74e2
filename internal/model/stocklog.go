package model

import "time"

// Reasons recorded with every quantity transition.
const (
	ReasonProductCreated = "Product Created"
	ReasonStockUpdate    = "Stock Update"
	ReasonProductDeleted = "Product Deleted"
)

// ActorSystem is recorded when no authenticated actor is attached to a
// stock change (seeding, maintenance).
const ActorSystem = "System"

// StockLog is an append-only record of a quantity transition. Entries
// are never updated or deleted and outlive the product they describe,
// so the product name is denormalized into the row.
type StockLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	ProductName string    `gorm:"type:varchar(255)" json:"product_name"`
	OldQuantity int       `gorm:"not null" json:"old_quantity"`
	NewQuantity int       `gorm:"not null" json:"new_quantity"`
	Reason      string    `gorm:"type:varchar(100);not null" json:"reason"`
	UserName    string    `gorm:"type:varchar(100)" json:"user_name"`
	Timestamp   time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}
