package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock status values derived from quantity vs. min stock threshold.
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

type Product struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	SKU       string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"sku" validate:"required"`
	Category  string          `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity  int             `gorm:"not null;default:0" json:"quantity"`
	MinStock  int             `gorm:"not null;default:0" json:"minStock"`
	Supplier  string          `gorm:"type:varchar(255)" json:"supplier"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StockStatus classifies a quantity against its minimum threshold.
// Zero quantity is always out of stock, even when min stock is zero;
// a quantity exactly at the threshold counts as low.
func StockStatus(quantity, minStock int) string {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= minStock:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// ProductResponse is the external read shape, including the derived status.
type ProductResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	MinStock    int       `json:"minStock"`
	Supplier    string    `json:"supplier"`
	Status      string    `json:"status"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Category:    p.Category,
		Price:       p.Price.InexactFloat64(),
		Quantity:    p.Quantity,
		MinStock:    p.MinStock,
		Supplier:    p.Supplier,
		Status:      StockStatus(p.Quantity, p.MinStock),
		LastUpdated: p.UpdatedAt,
	}
}
