package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zakirya592/rk-co-pos-sub002/internal/application/service"
	"github.com/zakirya592/rk-co-pos-sub002/internal/config"
	"github.com/zakirya592/rk-co-pos-sub002/internal/infrastructure/database"
	"github.com/zakirya592/rk-co-pos-sub002/internal/infrastructure/repository"
	"github.com/zakirya592/rk-co-pos-sub002/internal/infrastructure/storage"
	"github.com/zakirya592/rk-co-pos-sub002/internal/presentation/http/handler"
	"github.com/zakirya592/rk-co-pos-sub002/internal/presentation/http/routes"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db, cfg.Currency.BaseCode); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize attachment storage
	attachmentStore, err := storage.NewLocalStorage(cfg.Storage.Path, cfg.Storage.UploadMaxSize)
	if err != nil {
		log.Fatalf("Failed to initialize attachment storage: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	shopRepo := repository.NewShopRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	currencyRepo := repository.NewCurrencyRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	voucherRepo := repository.NewVoucherRepository(db)
	ownerRepo := repository.NewOwnerRepository(db)
	partnershipRepo := repository.NewPartnershipAccountRepository(db)
	returnRepo := repository.NewProductReturnRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, shopRepo, jwtManager)
	saleService := service.NewSaleService(saleRepo, customerRepo)
	paymentService := service.NewPaymentService(paymentRepo, saleRepo, customerRepo)
	customerService := service.NewCustomerService(customerRepo)
	currencyService := service.NewCurrencyService(currencyRepo)
	expenseService := service.NewExpenseService(expenseRepo, currencyRepo)
	voucherService := service.NewVoucherService(voucherRepo, currencyRepo)
	ownerService := service.NewOwnerService(ownerRepo, partnershipRepo)
	returnService := service.NewProductReturnService(returnRepo, saleRepo)
	shopService := service.NewShopService(shopRepo, warehouseRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)
	reportService := service.NewReportService(saleRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Sale:          handler.NewSaleHandler(saleService),
		Payment:       handler.NewPaymentHandler(paymentService),
		Customer:      handler.NewCustomerHandler(customerService),
		Currency:      handler.NewCurrencyHandler(currencyService),
		Expense:       handler.NewExpenseHandler(expenseService),
		Voucher:       handler.NewVoucherHandler(voucherService, attachmentStore),
		Owner:         handler.NewOwnerHandler(ownerService),
		ProductReturn: handler.NewProductReturnHandler(returnService),
		Warehouse:     handler.NewWarehouseHandler(shopService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
		Report:        handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
