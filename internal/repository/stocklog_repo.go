package repository

import (
	"go-inventory-tracker/internal/model"

	"gorm.io/gorm"
)

// StockLogRepository is append-and-read-only: entries are never
// updated or deleted.
type StockLogRepository interface {
	Create(entry *model.StockLog) error
	FindRecent(limit int) ([]model.StockLog, error)
}

type stockLogRepo struct {
	db *gorm.DB
}

func NewStockLogRepo(db *gorm.DB) StockLogRepository {
	return &stockLogRepo{db}
}

func (r *stockLogRepo) Create(entry *model.StockLog) error {
	return r.db.Create(entry).Error
}

func (r *stockLogRepo) FindRecent(limit int) ([]model.StockLog, error) {
	var entries []model.StockLog
	err := r.db.Order("timestamp DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
