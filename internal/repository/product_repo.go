package repository

import (
	"strings"
	"time"

	"go-inventory-tracker/internal/model"

	"gorm.io/gorm"
)

// ProductFilters are AND-combined. Status values are the derived
// labels from model.StockStatus; each one is translated into its
// defining quantity/min_stock predicate so the count and the page
// agree with the pure function.
type ProductFilters struct {
	Category string
	Supplier string
	Status   string
	Search   string
}

// DateRange windows chart queries by creation time. End is exclusive;
// callers extend the requested end date to the start of the next day.
type DateRange struct {
	Start time.Time
	End   time.Time
}

type DashboardStats struct {
	TotalProducts   int64   `json:"totalProducts"`
	TotalValue      float64 `json:"totalValue"`
	LowStockItems   int64   `json:"lowStockItems"`
	OutOfStockItems int64   `json:"outOfStockItems"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Value    int64  `json:"value"`
}

type ProductValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindByID(id uint) (*model.Product, error)
	FindPage(filters ProductFilters, page, limit int) ([]model.Product, int64, error)
	FindAllByName() ([]model.Product, error)
	Update(product *model.Product) error
	Delete(id uint) error
	CountByCategory(name string) (int64, error)
	CountBySupplier(name string) (int64, error)
	Stats() (*DashboardStats, error)
	CategoryChart(window *DateRange) ([]CategoryCount, error)
	ValueChart(window *DateRange) ([]ProductValue, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindPage(filters ProductFilters, page, limit int) ([]model.Product, int64, error) {
	query := r.db.Model(&model.Product{})

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Supplier != "" {
		query = query.Where("supplier = ?", filters.Supplier)
	}
	switch filters.Status {
	case model.StatusInStock:
		query = query.Where("quantity > min_stock")
	case model.StatusLowStock:
		query = query.Where("quantity <= min_stock AND quantity > 0")
	case model.StatusOutOfStock:
		query = query.Where("quantity = 0")
	}
	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	// Secondary key keeps pages stable when timestamps tie.
	err := query.
		Order("updated_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepo) FindAllByName() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uint) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) CountByCategory(name string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("category = ?", name).Count(&count).Error
	return count, err
}

func (r *productRepo) CountBySupplier(name string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("supplier = ?", name).Count(&count).Error
	return count, err
}

func (r *productRepo) Stats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(price * quantity), 0)").
		Scan(&stats.TotalValue).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("quantity <= min_stock AND quantity > 0").
		Count(&stats.LowStockItems).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("quantity = 0").
		Count(&stats.OutOfStockItems).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *productRepo) CategoryChart(window *DateRange) ([]CategoryCount, error) {
	query := r.db.Model(&model.Product{}).
		Select("category, COUNT(*) as value").
		Group("category")
	if window != nil {
		query = query.Where("created_at >= ? AND created_at < ?", window.Start, window.End)
	}

	var results []CategoryCount
	err := query.Scan(&results).Error
	return results, err
}

func (r *productRepo) ValueChart(window *DateRange) ([]ProductValue, error) {
	query := r.db.Model(&model.Product{}).
		Select("name, (price * quantity) as value").
		Where("(price * quantity) > 0")
	if window != nil {
		query = query.Where("created_at >= ? AND created_at < ?", window.Start, window.End)
	}

	var results []ProductValue
	err := query.Order("value DESC").Limit(5).Scan(&results).Error
	return results, err
}
