package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-inventory-tracker/internal/audit"
	"go-inventory-tracker/internal/handler"
	"go-inventory-tracker/internal/middleware"
	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/repository"
	"go-inventory-tracker/internal/service"
	"go-inventory-tracker/internal/ws"
	"go-inventory-tracker/pkg/config"
	"go-inventory-tracker/pkg/database"
	"go-inventory-tracker/pkg/jwt"
	"go-inventory-tracker/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New("inventory-tracker", cfg.LogLevel)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Category{},
		&model.Supplier{},
		&model.StockLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}

	// Wiring
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	userRepo := repository.NewUserRepo(db)
	stockLogRepo := repository.NewStockLogRepo(db)

	recorder := audit.NewRecorder(stockLogRepo, log)
	tokens := jwt.NewManager(cfg.JWTSecret)

	wsHub := ws.NewHub(log)
	go wsHub.Run()

	productService := service.NewProductService(productRepo, recorder, wsHub)
	authService := service.NewAuthService(userRepo, tokens)
	registryService := service.NewRegistryService(categoryRepo, supplierRepo, productRepo)
	dashboardService := service.NewDashboardService(productRepo)

	authHandler := handler.NewAuthHandler(authService, log)
	productHandler := handler.NewProductHandler(productService, log)
	registryHandler := handler.NewRegistryHandler(registryService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)
	logHandler := handler.NewLogHandler(stockLogRepo, log)

	seedReferenceData(db, recorder, log)

	app := fiber.New(fiber.Config{
		AppName: "Inventory Tracker v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api")

	// Public routes
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "message": "Server is running"})
	})
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Everything below requires a valid bearer token.
	protected := api.Group("", middleware.RequireAuth(tokens))
	admin := middleware.RequireAdmin()

	// Products. Export registers before :id so the literal path wins.
	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/export", admin, productHandler.ExportProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Post("/products", admin, productHandler.CreateProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", admin, productHandler.DeleteProduct)

	// Reference registries (admin only)
	protected.Get("/categories", admin, registryHandler.GetCategories)
	protected.Post("/categories", admin, registryHandler.CreateCategory)
	protected.Delete("/categories/:id", admin, registryHandler.DeleteCategory)
	protected.Get("/suppliers", admin, registryHandler.GetSuppliers)
	protected.Post("/suppliers", admin, registryHandler.CreateSupplier)
	protected.Delete("/suppliers/:id", admin, registryHandler.DeleteSupplier)

	// Dashboard
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)
	protected.Get("/dashboard/category-chart", dashboardHandler.GetCategoryChart)
	protected.Get("/dashboard/value-chart", dashboardHandler.GetValueChart)

	// Audit log (admin only)
	protected.Get("/logs", admin, logHandler.GetLogs)

	// Live stock-change feed
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if err := database.Close(db); err != nil {
		log.Error().Err(err).Msg("failed to close database")
	}
	log.Info().Msg("server exited")
}

// seedReferenceData inserts default registries and sample products on
// an empty database. Seeded stock is recorded in the audit log under
// the System actor.
func seedReferenceData(db *gorm.DB, recorder audit.Recorder, log zerolog.Logger) {
	categories := []string{"Electronics", "Clothing", "Lifestyle", "Office", "Fitness", "Uncategorized"}
	for _, name := range categories {
		if err := db.FirstOrCreate(&model.Category{}, model.Category{Name: name}).Error; err != nil {
			log.Warn().Err(err).Str("category", name).Msg("failed to seed category")
		}
	}

	suppliers := []string{"TechCorp", "FashionHub", "LifeStyle Inc", "OfficeMax", "FitGear", "Unassigned"}
	for _, name := range suppliers {
		if err := db.FirstOrCreate(&model.Supplier{}, model.Supplier{Name: name}).Error; err != nil {
			log.Warn().Err(err).Str("supplier", name).Msg("failed to seed supplier")
		}
	}

	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	samples := []model.Product{
		{Name: "Wireless Headphones", SKU: "WH-001", Category: "Electronics", Price: decimal.NewFromFloat(79.99), Quantity: 45, MinStock: 10, Supplier: "TechCorp"},
		{Name: "Cotton T-Shirt", SKU: "TS-002", Category: "Clothing", Price: decimal.NewFromFloat(24.99), Quantity: 8, MinStock: 15, Supplier: "FashionHub"},
		{Name: "Smart Water Bottle", SKU: "WB-003", Category: "Lifestyle", Price: decimal.NewFromFloat(34.99), Quantity: 0, MinStock: 5, Supplier: "LifeStyle Inc"},
		{Name: "Laptop Stand", SKU: "LS-004", Category: "Office", Price: decimal.NewFromFloat(49.99), Quantity: 23, MinStock: 8, Supplier: "OfficeMax"},
		{Name: "Yoga Mat", SKU: "YM-005", Category: "Fitness", Price: decimal.NewFromFloat(39.99), Quantity: 12, MinStock: 10, Supplier: "FitGear"},
	}
	for i := range samples {
		if err := db.Create(&samples[i]).Error; err != nil {
			log.Warn().Err(err).Str("sku", samples[i].SKU).Msg("failed to seed product")
			continue
		}
		recorder.Record(samples[i].ID, samples[i].Name, 0, samples[i].Quantity, model.ReasonProductCreated, model.ActorSystem)
	}
	log.Info().Msg("sample data seeded")
}
