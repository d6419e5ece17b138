package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-warrior-store/internal/catalog"
	"go-warrior-store/internal/handler"
	"go-warrior-store/internal/middleware"
	"go-warrior-store/internal/model"
	"go-warrior-store/internal/repository"
	"go-warrior-store/internal/service"
	"go-warrior-store/internal/validation"
	"go-warrior-store/internal/ws"
	"go-warrior-store/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{}, &model.WarriorConfiguration{}, &model.Purchase{})

	// 3. Catalog and validator (immutable, injected everywhere)
	cat := catalog.Default(os.Getenv("STORAGE_PUBLIC_URL"))
	configValidator := validation.New(cat)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	configRepo := repository.NewConfigurationRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)

	ownership := service.NewOwnershipResolver(purchaseRepo, cat)
	authService := service.NewAuthService(userRepo)
	configService := service.NewConfigurationService(configRepo, ownership, configValidator, wsHub)
	purchaseService := service.NewPurchaseService(purchaseRepo, wsHub)
	stripeCheckout := service.NewStripeCheckout(cat)
	lemonSqueezyCheckout := service.NewLemonSqueezyCheckout(cat)
	paypalCheckout := service.NewPayPalCheckout(cat)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(cat)
	configHandler := handler.NewConfigurationHandler(configService)
	checkoutHandler := handler.NewCheckoutHandler(cat, stripeCheckout, lemonSqueezyCheckout, paypalCheckout, purchaseService, ownership)
	webhookHandler := handler.NewWebhookHandler(stripeCheckout, lemonSqueezyCheckout, userRepo, purchaseService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Warrior Store v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Payment provider callbacks authenticate themselves via signatures
	webhooks := api.Group("/webhooks")
	webhooks.Post("/stripe", webhookHandler.StripeWebhook)
	webhooks.Post("/lemonsqueezy", webhookHandler.LemonSqueezyWebhook)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Catalog
	protected.Get("/products", catalogHandler.GetProducts)
	protected.Get("/products/:id", catalogHandler.GetProduct)
	protected.Get("/bundles", catalogHandler.GetBundles)

	// Configuration
	protected.Get("/configuration", configHandler.GetConfiguration)
	protected.Put("/configuration", configHandler.SaveConfiguration)

	// Purchases and ownership
	protected.Get("/purchases", checkoutHandler.GetPurchases)
	protected.Post("/purchases/record", checkoutHandler.RecordPurchase)
	protected.Get("/stats", checkoutHandler.GetStoreStats)

	// Checkout
	protected.Post("/checkout/stripe", checkoutHandler.CreateStripeSession)
	protected.Get("/checkout/stripe/:id", checkoutHandler.GetStripeSession)
	protected.Post("/checkout/lemonsqueezy", checkoutHandler.CreateLemonSqueezyCheckout)
	protected.Post("/checkout/paypal", checkoutHandler.CreatePayPalOrder)
	protected.Post("/checkout/paypal/:id/capture", checkoutHandler.CapturePayPalOrder)

	// WebSocket Route
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
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
