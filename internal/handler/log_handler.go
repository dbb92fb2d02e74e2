package handler

import (
	"go-inventory-tracker/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// recentLogLimit caps the audit feed at the latest entries.
const recentLogLimit = 200

type LogHandler struct {
	logs repository.StockLogRepository
	log  zerolog.Logger
}

func NewLogHandler(logs repository.StockLogRepository, log zerolog.Logger) *LogHandler {
	return &LogHandler{logs: logs, log: log}
}

// GetLogs returns the most recent stock transitions, newest first.
// GET /api/logs (admin only)
func (h *LogHandler) GetLogs(c *fiber.Ctx) error {
	entries, err := h.logs.FindRecent(recentLogLimit)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(entries)
}
