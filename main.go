package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"paletteandfit/internal/config"
	"paletteandfit/internal/database"
	"paletteandfit/internal/handlers"
	"paletteandfit/internal/middleware"
	"paletteandfit/internal/repositories"
	"paletteandfit/internal/services"
	"paletteandfit/pkg/cache"
	"paletteandfit/pkg/mailer"
	"paletteandfit/pkg/rabbitmq"
	"paletteandfit/pkg/stylist"
)

const bodyLimit = 16 * 1024 * 1024

// Deps are the external services the app talks to. Redis and Events may be
// nil, which disables caching, rate limiting and event publishing.
type Deps struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Events  services.EventPublisher
	Stylist stylist.Client
	Mailer  services.ContactMailer
}

// NewApp builds the HTTP application with every route registered.
func NewApp(cfg config.Config, deps Deps) *fiber.App {
	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	productRepo := repositories.NewGORMProductRepository(deps.DB)
	wishlistRepo := repositories.NewGORMWishlistRepository(deps.DB)
	chatLogRepo := repositories.NewGORMChatLogRepository(deps.DB)
	contactRepo := repositories.NewGORMContactRepository(deps.DB)
	analyticsRepo := repositories.NewGORMAnalyticsRepository(deps.DB)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.IsAdmin, deps.Events)
	profileService := services.NewProfileService(userRepo)
	productService := services.NewProductService(productRepo)
	wishlistService := services.NewWishlistService(wishlistRepo)
	recommendationService := services.NewRecommendationService(userRepo, chatLogRepo, deps.Stylist, deps.Events)
	contactService := services.NewContactService(contactRepo, deps.Mailer, deps.Events)
	analyticsService := services.NewAnalyticsService(analyticsRepo, userRepo, chatLogRepo, cache.NewStore(deps.Redis, "analytics:"))

	// --- Fiber ---
	app := fiber.New(fiber.Config{
		BodyLimit:    bodyLimit,
		ErrorHandler: errorHandler,
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Static("/uploads", cfg.UploadDir)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")
	api.Get("/hello", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello from the Palette & Fit backend!"})
	})

	authRequired := middleware.AuthRequired(authService)
	adminOnly := []fiber.Handler{authRequired, middleware.AdminOnly()}
	limiter := middleware.RateLimiter(deps.Redis, cfg.RateLimitPerMinute)

	handlers.NewAuthHandler(authService).RegisterRoutes(api, limiter)
	handlers.NewContactHandler(contactService, cfg.DebugContactRsp).RegisterRoutes(api, limiter)
	handlers.NewProductHandler(productService, cfg.UploadDir).RegisterRoutes(api, adminOnly...)
	handlers.NewProfileHandler(profileService).RegisterRoutes(api, authRequired)
	handlers.NewWishlistHandler(wishlistService).RegisterRoutes(api, authRequired)
	handlers.NewRecommendationHandler(recommendationService).RegisterRoutes(api, authRequired)
	handlers.NewAdminHandler(analyticsService).RegisterRoutes(api, adminOnly...)

	return app
}

// errorHandler renders errors that escape handlers as JSON.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code >= fiber.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{"path": c.Path(), "error": err}).Error("Unhandled error")
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

func main() {
	// --- Configuration ---
	cfg := config.Load()
	setupLogging(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	// --- Database ---
	db, err := database.Open(cfg)
	if err != nil {
		logrus.Fatalf("Failed to open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()
	deps := Deps{
		DB: db,
		Mailer: mailer.NewSender(mailer.Config{
			Host:   cfg.SMTPHost,
			Port:   cfg.SMTPPort,
			User:   cfg.SMTPUser,
			Pass:   cfg.SMTPPass,
			UseTLS: cfg.SMTPUseTLS,
			From:   cfg.MailFrom,
			To:     cfg.ContactTo,
		}),
	}

	// --- Redis (optional) ---
	if cfg.RedisAddr != "" {
		rdb, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			logrus.WithError(err).Warn("Redis unavailable, caching and rate limiting disabled")
		} else {
			deps.Redis = rdb
			defer rdb.Close()
		}
	}

	// --- RabbitMQ (optional) ---
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			logrus.WithError(err).Warn("RabbitMQ unavailable, events disabled")
		} else {
			deps.Events = mqClient
			defer mqClient.Close()

			go func() {
				logrus.Info("Starting RabbitMQ audit consumer")
				if err := mqClient.ConsumeEvents(rabbitmq.LogEvent); err != nil {
					logrus.WithError(err).Error("RabbitMQ consumer stopped")
				}
			}()
		}
	}

	// --- Stylist ---
	aiClient, err := stylist.NewGeminiClient(ctx, stylist.Config{
		APIKey:  cfg.GoogleAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: time.Duration(cfg.AITimeoutSeconds) * time.Second,
	})
	if err != nil {
		logrus.Fatalf("Failed to initialize stylist client: %v", err)
	}
	if cfg.GoogleAPIKey == "" {
		logrus.Warn("GOOGLE_API_KEY is not set, recommendations will fail")
	}
	deps.Stylist = aiClient

	app := NewApp(cfg, deps)

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Infof("Starting server on port %s", cfg.AppPort)
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	logrus.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logrus.WithError(err).Error("Error during Fiber shutdown")
	}
	logrus.Info("Server gracefully stopped")
}
