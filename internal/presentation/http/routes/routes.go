package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zakirya592/rk-co-pos-sub002/internal/config"
	domainRepo "github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"github.com/zakirya592/rk-co-pos-sub002/internal/presentation/http/handler"
	"github.com/zakirya592/rk-co-pos-sub002/internal/presentation/http/middleware"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth          *handler.AuthHandler
	Sale          *handler.SaleHandler
	Payment       *handler.PaymentHandler
	Customer      *handler.CustomerHandler
	Currency      *handler.CurrencyHandler
	Expense       *handler.ExpenseHandler
	Voucher       *handler.VoucherHandler
	Owner         *handler.OwnerHandler
	ProductReturn *handler.ProductReturnHandler
	Warehouse     *handler.WarehouseHandler
	Dashboard     *handler.DashboardHandler
	Report        *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.RequireShop())

		// Per-shop rate limiter
		rateLimiter := middleware.NewShopRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		// Retried mutations replay their original response
		protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}))

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)

	// Sales
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Create)
		sales.GET("/by-location/:type/:id", h.Sale.ByLocation)
		sales.GET("/customer/:id", h.Sale.CustomerHistory)
		sales.GET("/:id", h.Sale.Get)
		sales.PUT("/:id", h.Sale.Update)
		sales.DELETE("/:id", h.Sale.Delete)
		sales.GET("/:id/payments", h.Payment.ListBySale)
	}
	protected.GET("/reports/sales/export", h.Report.ExportSales)

	// Payments
	payments := protected.Group("/payments")
	{
		payments.POST("/customer", h.Payment.RecordCustomerPayment)
		payments.POST("/apply-customer-advance", h.Payment.ApplyCustomerAdvance)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.GET("/:id/payments", h.Payment.ListByCustomer)
	}

	// Currencies
	currencies := protected.Group("/currencies")
	{
		currencies.GET("", h.Currency.List)
		currencies.POST("", h.Currency.Create)
		currencies.GET("/convert", h.Currency.Convert)
		currencies.GET("/:id", h.Currency.Get)
		currencies.PUT("/:id", h.Currency.Update)
		currencies.DELETE("/:id", h.Currency.Delete)
		currencies.GET("/:id/exchange-history", h.Currency.History)
	}

	// Expenses, one resource per dashboard category screen
	expenses := protected.Group("/expenses/:category")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}

	// Vouchers, one top-level resource per dashboard voucher screen
	for _, slug := range []string{
		"bank-payment-vouchers",
		"bank-account-transfer-vouchers",
		"saraf-entry-vouchers",
		"opening-balance-vouchers",
		"reconcile-bank-accounts-vouchers",
	} {
		vouchers := protected.Group("/"+slug, withVoucherType(slug))
		vouchers.GET("", h.Voucher.List)
		vouchers.POST("", h.Voucher.Create)
		vouchers.GET("/:id", h.Voucher.Get)
		vouchers.PUT("/:id", h.Voucher.Update)
		vouchers.DELETE("/:id", h.Voucher.Delete)
	}

	// Owners
	owners := protected.Group("/owners")
	{
		owners.GET("", h.Owner.ListOwners)
		owners.POST("", h.Owner.CreateOwner)
		owners.GET("/:id", h.Owner.GetOwner)
		owners.PUT("/:id", h.Owner.UpdateOwner)
		owners.DELETE("/:id", h.Owner.DeleteOwner)
	}

	// Partnership accounts
	partnerships := protected.Group("/partnership-accounts")
	{
		partnerships.GET("", h.Owner.ListPartnershipAccounts)
		partnerships.POST("", h.Owner.CreatePartnershipAccount)
		partnerships.GET("/:id", h.Owner.GetPartnershipAccount)
		partnerships.PUT("/:id", h.Owner.UpdatePartnershipAccount)
		partnerships.DELETE("/:id", h.Owner.DeletePartnershipAccount)
	}

	// Product returns
	returns := protected.Group("/product-returns")
	{
		returns.GET("", h.ProductReturn.List)
		returns.POST("", h.ProductReturn.Create)
		returns.GET("/by-location/:type/:id", h.ProductReturn.ByLocation)
		returns.GET("/:id", h.ProductReturn.Get)
	}

	// Warehouses
	warehouses := protected.Group("/warehouses")
	{
		warehouses.GET("", h.Warehouse.List)
		warehouses.POST("", middleware.RequireRole("admin", "manager"), h.Warehouse.Create)
	}
}

// withVoucherType injects the screen's path segment as the voucherType
// param, so one handler set serves all five voucher resources.
func withVoucherType(slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Params = append(c.Params, gin.Param{Key: "voucherType", Value: slug})
		c.Next()
	}
}
