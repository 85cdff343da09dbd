package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/vultuk/online-bookstore-final-assessment/internal/cart"
	"github.com/vultuk/online-bookstore-final-assessment/internal/catalog"
	"github.com/vultuk/online-bookstore-final-assessment/internal/checkout"
	"github.com/vultuk/online-bookstore-final-assessment/internal/config"
	"github.com/vultuk/online-bookstore-final-assessment/internal/email"
	"github.com/vultuk/online-bookstore-final-assessment/internal/order"
	"github.com/vultuk/online-bookstore-final-assessment/internal/payment"
	"github.com/vultuk/online-bookstore-final-assessment/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger(log))

	// catalog is seeded once and read-only afterwards
	catalogService := catalog.NewService(catalog.NewInMemoryRepository(catalog.Seed()))
	catalogHandler := catalog.NewHandler(catalogService)

	// accounts; the demo user matches the store's stock login
	userRepo := user.NewInMemoryRepository([]user.User{{
		Email:    "demo@bookstore.com",
		Password: "demo123",
		Name:     "Demo User",
		Address:  "123 Demo Street, Demo City",
	}})
	userHandler := user.NewHandler(user.NewService(userRepo), cfg.JWTSecret)

	cartRepo := cart.NewInMemoryRepository()
	cartService := cart.NewService(cartRepo, catalogService)
	cartHandler := cart.NewHandler(cartService)

	orderService := order.NewService(order.NewInMemoryRepository())
	orderHandler := order.NewHandler(orderService)

	gateway := payment.NewMockGateway(cfg.PaymentDelay)
	mailService := email.NewService(email.LogNotifier{Log: log})

	checkoutService := checkout.NewService(cartRepo, orderService, gateway, mailService, log)
	checkoutHandler := checkout.NewHandler(checkoutService)

	userHandler.RegisterPublicRoutes(app)
	catalogHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	cartHandler.RegisterProtectedRoutes(app)
	checkoutHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)

	log.Info().Str("addr", cfg.Addr).Msg("bookstore listening")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", c.Response().StatusCode()).
			Dur("took", time.Since(start)).
			Msg("request")
		return err
	}
}
