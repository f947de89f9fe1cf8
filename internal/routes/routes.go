package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/inhalebay/internal/config"
	"github.com/example/inhalebay/internal/handlers"
	"github.com/example/inhalebay/internal/kiosk"
	"github.com/example/inhalebay/internal/middleware"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, gate *kiosk.Gate) {
	authHandler := handlers.NewAuthHandler(cfg)
	adminHandler := handlers.NewAdminHandler(db)
	customerHandler := handlers.NewCustomerHandler(db, cfg)
	transactionHandler := handlers.NewTransactionHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db, cfg)
	storeHandler := handlers.NewStoreHandler(db)
	kioskHandler := handlers.NewKioskHandler(gate, cfg)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))

	protected.Get("/dashboard", adminHandler.DashboardStats)

	customers := protected.Group("/customers")
	customers.Get("/", customerHandler.ListCustomers)
	customers.Post("/", customerHandler.CreateCustomer)
	customers.Get("/phone/:phone", customerHandler.FindByPhone)
	customers.Get("/:id", customerHandler.GetCustomer)
	customers.Put("/:id", customerHandler.UpdateCustomer)
	customers.Delete("/:id", customerHandler.DeleteCustomer)
	customers.Get("/:id/detail", customerHandler.CustomerDetail)
	customers.Get("/:id/transactions", customerHandler.CustomerTransactions)

	transactions := protected.Group("/transactions")
	transactions.Get("/", transactionHandler.ListTransactions)
	transactions.Post("/", transactionHandler.CreateTransaction)
	transactions.Get("/:id", transactionHandler.GetTransaction)
	transactions.Delete("/:id", transactionHandler.DeleteTransaction)
	transactions.Get("/:id/detail", transactionHandler.TransactionDetail)

	rewards := protected.Group("/rewards")
	rewards.Get("/", catalogHandler.ListRewards)
	rewards.Post("/", catalogHandler.CreateReward)
	rewards.Get("/:id", catalogHandler.GetReward)
	rewards.Put("/:id", catalogHandler.UpdateReward)
	rewards.Delete("/:id", catalogHandler.DeleteReward)

	memberTiers := protected.Group("/member-tiers")
	memberTiers.Get("/", catalogHandler.ListMemberTiers)
	memberTiers.Post("/", catalogHandler.CreateMemberTier)
	memberTiers.Get("/:id", catalogHandler.GetMemberTier)
	memberTiers.Put("/:id", catalogHandler.UpdateMemberTier)
	memberTiers.Delete("/:id", catalogHandler.DeleteMemberTier)

	screenCodes := protected.Group("/screen-codes")
	screenCodes.Get("/", catalogHandler.ListScreenCodes)
	screenCodes.Post("/", catalogHandler.CreateScreenCode)
	screenCodes.Get("/:id", catalogHandler.GetScreenCode)
	screenCodes.Put("/:id", catalogHandler.UpdateScreenCode)
	screenCodes.Delete("/:id", catalogHandler.DeleteScreenCode)

	protected.Get("/stores/:code", storeHandler.StoreByCode)

	// Kiosk screens are locked by device code, not by operator token
	kioskGroup := app.Group("/kiosk")
	kioskGroup.Get("/status", kioskHandler.Status)
	kioskGroup.Post("/:device/login", kioskHandler.Login)
	kioskGroup.Post("/:device/logout", kioskHandler.Logout)
	kioskGroup.Get("/:device/main", middleware.KioskGuard(gate), kioskHandler.Main)
}
