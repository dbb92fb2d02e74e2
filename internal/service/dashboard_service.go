package service

import (
	"time"

	"go-inventory-tracker/internal/repository"
)

type DashboardService interface {
	Stats() (*repository.DashboardStats, error)
	CategoryChart(startDate, endDate string) ([]repository.CategoryCount, error)
	ValueChart(startDate, endDate string) ([]repository.ProductValue, error)
}

type dashboardService struct {
	products repository.ProductRepository
}

func NewDashboardService(products repository.ProductRepository) DashboardService {
	return &dashboardService{products: products}
}

func (s *dashboardService) Stats() (*repository.DashboardStats, error) {
	return s.products.Stats()
}

func (s *dashboardService) CategoryChart(startDate, endDate string) ([]repository.CategoryCount, error) {
	return s.products.CategoryChart(parseWindow(startDate, endDate))
}

func (s *dashboardService) ValueChart(startDate, endDate string) ([]repository.ProductValue, error) {
	return s.products.ValueChart(parseWindow(startDate, endDate))
}

// parseWindow turns a pair of YYYY-MM-DD dates into an inclusive
// window: the upper bound is the start of the day after endDate, so the
// whole end day counts. Absent or unparseable dates disable windowing.
func parseWindow(startDate, endDate string) *repository.DateRange {
	if startDate == "" || endDate == "" || startDate == "null" || endDate == "null" {
		return nil
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil
	}

	return &repository.DateRange{
		Start: start,
		End:   end.AddDate(0, 0, 1),
	}
}
