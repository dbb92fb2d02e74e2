package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-inventory-tracker/internal/audit"
	"go-inventory-tracker/internal/middleware"
	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/repository"
	"go-inventory-tracker/internal/service"
	"go-inventory-tracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	app    *fiber.App
	tokens *jwt.Manager
	db     *gorm.DB
}

// setupFixture wires the product routes exactly as cmd/api does, on an
// in-memory database.
func setupFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.StockLog{}))

	productRepo := repository.NewProductRepo(db)
	stockLogRepo := repository.NewStockLogRepo(db)
	recorder := audit.NewRecorder(stockLogRepo, zerolog.Nop())
	productService := service.NewProductService(productRepo, recorder, nil)

	log := zerolog.Nop()
	productHandler := NewProductHandler(productService, log)
	logHandler := NewLogHandler(stockLogRepo, log)

	tokens := jwt.NewManager("test-secret")
	app := fiber.New()
	api := app.Group("/api", middleware.RequireAuth(tokens))
	admin := middleware.RequireAdmin()

	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/export", admin, productHandler.ExportProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Post("/products", admin, productHandler.CreateProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", admin, productHandler.DeleteProduct)
	api.Get("/logs", admin, logHandler.GetLogs)

	return &fixture{app: app, tokens: tokens, db: db}
}

func (f *fixture) request(t *testing.T, method, path, body string, userID uint, username, role string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	token, err := f.tokens.Generate(userID, username, role)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestCreateProductEndpoint(t *testing.T) {
	f := setupFixture(t)

	resp := f.request(t, http.MethodPost, "/api/products",
		`{"name":"Widget","sku":"W-1","category":"Electronics","price":10.00,"quantity":5,"minStock":10}`,
		1, "alice", model.RoleAdmin)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotZero(t, body["id"])

	// Missing required fields
	resp = f.request(t, http.MethodPost, "/api/products",
		`{"name":"No SKU","category":"Electronics","price":1,"quantity":1}`,
		1, "alice", model.RoleAdmin)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Duplicate SKU
	resp = f.request(t, http.MethodPost, "/api/products",
		`{"name":"Copycat","sku":"W-1","category":"Electronics","price":1,"quantity":1}`,
		1, "alice", model.RoleAdmin)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "SKU already exists", decodeBody(t, resp)["error"])
}

func TestStaffCannotCreateButCanUpdateStock(t *testing.T) {
	f := setupFixture(t)

	resp := f.request(t, http.MethodPost, "/api/products",
		`{"name":"Widget","sku":"W-1","category":"Electronics","price":10.00,"quantity":5}`,
		2, "bob", model.RoleStaff)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.request(t, http.MethodPost, "/api/products",
		`{"name":"Widget","sku":"W-1","category":"Electronics","price":10.00,"quantity":5}`,
		1, "alice", model.RoleAdmin)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = f.request(t, http.MethodPut, "/api/products/1",
		`{"name":"Hijacked","sku":"H-1","quantity":2,"minStock":1}`,
		2, "bob", model.RoleStaff)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stored model.Product
	require.NoError(t, f.db.First(&stored, 1).Error)
	assert.Equal(t, "Widget", stored.Name)
	assert.Equal(t, "W-1", stored.SKU)
	assert.Equal(t, 2, stored.Quantity)
}

func TestGetProductIncludesStatus(t *testing.T) {
	f := setupFixture(t)

	resp := f.request(t, http.MethodPost, "/api/products",
		`{"name":"Widget","sku":"W-1","category":"Electronics","price":10.00,"quantity":5,"minStock":10}`,
		1, "alice", model.RoleAdmin)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = f.request(t, http.MethodGet, "/api/products/1", "", 2, "bob", model.RoleStaff)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, model.StatusLowStock, body["status"])

	resp = f.request(t, http.MethodGet, "/api/products/999", "", 2, "bob", model.RoleStaff)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListResponseShape(t *testing.T) {
	f := setupFixture(t)

	for i := 0; i < 3; i++ {
		resp := f.request(t, http.MethodPost, "/api/products",
			fmt.Sprintf(`{"name":"Item %d","sku":"S-%d","category":"Electronics","price":1,"quantity":1}`, i, i),
			1, "alice", model.RoleAdmin)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := f.request(t, http.MethodGet, "/api/products?page=1&limit=2", "", 2, "bob", model.RoleStaff)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(3), body["totalProducts"])
	assert.Equal(t, float64(2), body["totalPages"])
	assert.Equal(t, float64(1), body["currentPage"])
	assert.Len(t, body["products"], 2)
}

func TestExportIsAdminOnlyCSV(t *testing.T) {
	f := setupFixture(t)

	resp := f.request(t, http.MethodPost, "/api/products",
		`{"name":"Widget","sku":"W-1","category":"Electronics","price":10.00,"quantity":5,"minStock":2,"supplier":"TechCorp"}`,
		1, "alice", model.RoleAdmin)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = f.request(t, http.MethodGet, "/api/products/export", "", 2, "bob", model.RoleStaff)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.request(t, http.MethodGet, "/api/products/export", "", 1, "alice", model.RoleAdmin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,sku,category,price,quantity,min_stock,supplier", lines[0])
	assert.Equal(t, "Widget,W-1,Electronics,10.00,5,2,TechCorp", lines[1])
}

func TestLogsEndpointAdminOnly(t *testing.T) {
	f := setupFixture(t)

	resp := f.request(t, http.MethodPost, "/api/products",
		`{"name":"Widget","sku":"W-1","category":"Electronics","price":10.00,"quantity":5}`,
		1, "alice", model.RoleAdmin)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = f.request(t, http.MethodGet, "/api/logs", "", 2, "bob", model.RoleStaff)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.request(t, http.MethodGet, "/api/logs", "", 1, "alice", model.RoleAdmin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []model.StockLog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	require.Len(t, entries, 1)
	assert.Equal(t, model.ReasonProductCreated, entries[0].Reason)
	assert.Equal(t, "alice", entries[0].UserName)
}
