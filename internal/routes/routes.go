// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"pulsepay/internal/handlers"
	"pulsepay/internal/middleware"
	"pulsepay/internal/models"
	"pulsepay/internal/repositories"
	"pulsepay/internal/services/fraud"
	"pulsepay/internal/services/payment"
	"pulsepay/internal/services/wallet"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB, engine *fraud.Engine) {
	// Initialize repositories
	walletRepo := repositories.NewWalletRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	// Initialize services
	walletService := wallet.NewService(walletRepo, repositories.CacheService, wallet.Config{})
	paymentService := payment.NewService(engine, walletService, transactionRepo)

	// Initialize handlers
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	walletHandler := handlers.NewWalletHandler(walletService)
	fraudHandler := handlers.NewFraudHandler(engine)

	// Public endpoints (no auth required)
	app.Get("/health", handlers.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to PulsePay API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	// Protected routes with auth middleware
	api := app.Group("/api", middleware.AuthMiddleware)

	api.Post("/transactions",
		middleware.HasPermission(models.PermissionTransactionWrite),
		paymentHandler.ProcessPayment)
	api.Get("/transactions",
		middleware.HasPermission(models.PermissionTransactionRead),
		paymentHandler.GetTransactions)

	api.Get("/wallet",
		middleware.HasPermission(models.PermissionWalletRead),
		walletHandler.GetWallet)
	api.Post("/wallet/deposit",
		middleware.HasPermission(models.PermissionWalletRead),
		walletHandler.Deposit)

	fraudGroup := api.Group("/fraud", middleware.HasPermission(models.PermissionFraudRead))
	fraudGroup.Get("/blocked", fraudHandler.GetBlockedTransactions)
	fraudGroup.Get("/profile/:accountId", fraudHandler.GetAccountProfile)
}
