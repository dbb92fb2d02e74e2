package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"go-inventory-tracker/internal/repository"
	"go-inventory-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type ProductHandler struct {
	service service.ProductService
	log     zerolog.Logger
}

func NewProductHandler(s service.ProductService, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{service: s, log: log}
}

// actor pulls the authenticated identity out of the request context
// (set by RequireAuth).
func actor(c *fiber.Ctx) service.Actor {
	id, _ := c.Locals("user_id").(uint)
	username, _ := c.Locals("username").(string)
	role, _ := c.Locals("role").(string)
	return service.Actor{ID: id, Username: username, Role: role}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

// GetProducts lists products with filters and pagination.
// GET /api/products?category&supplier&status&search&page&limit
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	filters := repository.ProductFilters{
		Category: c.Query("category"),
		Supplier: c.Query("supplier"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}

	result, err := h.service.List(filters, page, limit)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(result)
}

// ExportProducts streams the full product set as a CSV attachment.
// GET /api/products/export (admin only)
func (h *ProductHandler) ExportProducts(c *fiber.Ctx) error {
	products, err := h.service.Export()
	if err != nil {
		return fail(c, h.log, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"name", "sku", "category", "price", "quantity", "min_stock", "supplier"})
	for i := range products {
		p := &products[i]
		_ = w.Write([]string{
			p.Name,
			p.SKU,
			p.Category,
			p.Price.StringFixed(2),
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.MinStock),
			p.Supplier,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fail(c, h.log, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Send(buf.Bytes())
}

// GetProduct returns one product with its derived status.
// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.Get(id)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(product)
}

// CreateProduct adds a product and logs the initial stock.
// POST /api/products (admin only)
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.Create(&req, actor(c))
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created successfully",
		"id":      product.ID,
	})
}

// UpdateProduct applies a role-narrowed field update.
// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if _, err := h.service.Update(id, &req, actor(c)); err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(fiber.Map{"message": "Product updated successfully"})
}

// DeleteProduct removes a product; its stock log entries remain.
// DELETE /api/products/:id (admin only)
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.Delete(id, actor(c)); err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
