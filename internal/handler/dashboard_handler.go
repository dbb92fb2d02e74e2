package handler

import (
	"go-inventory-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type DashboardHandler struct {
	service service.DashboardService
	log     zerolog.Logger
}

func NewDashboardHandler(s service.DashboardService, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{service: s, log: log}
}

// GetStats returns aggregate inventory figures.
// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(stats)
}

// GetCategoryChart returns product counts per category, optionally
// windowed by creation date.
// GET /api/dashboard/category-chart?startDate&endDate
func (h *DashboardHandler) GetCategoryChart(c *fiber.Ctx) error {
	data, err := h.service.CategoryChart(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(data)
}

// GetValueChart returns the top five products by stock value.
// GET /api/dashboard/value-chart?startDate&endDate
func (h *DashboardHandler) GetValueChart(c *fiber.Ctx) error {
	data, err := h.service.ValueChart(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(data)
}
