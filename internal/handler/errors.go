package handler

import (
	"go-inventory-tracker/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// fail maps a service error onto the HTTP response. Classified errors
// surface their message; anything else is a storage failure reported
// generically and logged in detail server-side.
func fail(c *fiber.Ctx, log zerolog.Logger, err error) error {
	switch apperr.KindOf(err) {
	case apperr.Validation, apperr.DuplicateKey, apperr.InUse:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case apperr.Unauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case apperr.Forbidden:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case apperr.NotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("storage failure")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
}
