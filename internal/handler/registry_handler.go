package handler

import (
	"go-inventory-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RegistryHandler serves the category and supplier registries. All
// routes are admin-only.
type RegistryHandler struct {
	service service.RegistryService
	log     zerolog.Logger
}

func NewRegistryHandler(s service.RegistryService, log zerolog.Logger) *RegistryHandler {
	return &RegistryHandler{service: s, log: log}
}

type nameRequest struct {
	Name string `json:"name"`
}

// GET /api/categories
func (h *RegistryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(categories)
}

// POST /api/categories
func (h *RegistryHandler) CreateCategory(c *fiber.Ctx) error {
	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.service.AddCategory(req.Name)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// DELETE /api/categories/:id
func (h *RegistryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	if err := h.service.DeleteCategory(id); err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}

// GET /api/suppliers
func (h *RegistryHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.ListSuppliers()
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(suppliers)
}

// POST /api/suppliers
func (h *RegistryHandler) CreateSupplier(c *fiber.Ctx) error {
	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	supplier, err := h.service.AddSupplier(req.Name)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// DELETE /api/suppliers/:id
func (h *RegistryHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	if err := h.service.DeleteSupplier(id); err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(fiber.Map{"message": "Supplier deleted successfully"})
}
