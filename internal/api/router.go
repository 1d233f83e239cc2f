package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/idekita/idekita-api/internal/api/handler"
	"github.com/idekita/idekita-api/internal/api/middleware"
	"github.com/idekita/idekita-api/internal/core/domain"
	"github.com/idekita/idekita-api/internal/core/service"
	"github.com/idekita/idekita-api/internal/infrastructure/config"
	mongodb "github.com/idekita/idekita-api/internal/infrastructure/db/mongo"
	redisdb "github.com/idekita/idekita-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. notifier receives endorsement notifications for async
// delivery; it may be nil.
func NewRouter(db *mongo.Database, rdb *redis.Client, notifier service.Notifier, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("idekita"))

	// --- Dependencies ---
	policy := domain.HandlePolicy{MinLen: cfg.Policy.HandleMinLen, MaxLen: cfg.Policy.HandleMaxLen}

	endorsementRepo := mongodb.NewEndorsementRepository(db)
	registryRepo := mongodb.NewRegistryRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	availabilityCache := redisdb.NewAvailabilityCache(rdb, cfg.Policy.TakenCacheTTL)

	endorsementService := service.NewEndorsementService(endorsementRepo, notifier, log)
	registryService := service.NewRegistryService(registryRepo, availabilityCache, policy, log)
	feedService := service.NewFeedService(postRepo, log)

	endorsementHandler := handler.NewEndorsementHandler(endorsementService)
	registryHandler := handler.NewRegistryHandler(registryService, policy)
	feedHandler := handler.NewFeedHandler(feedService, cfg.Policy.FeedPageSize)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// Keystroke probes arrive debounced but still per-keystroke-burst;
	// throttle per client IP.
	probeLimiter := echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.Policy.ProbeRatePerSec),
			Burst:     cfg.Policy.ProbeBurst,
			ExpiresIn: 3 * time.Minute,
		}),
	})

	// --- Public routes ---
	e.GET("/feed", feedHandler.Page)
	e.GET("/usernames/:handle/availability", registryHandler.Availability, probeLimiter)

	// --- Authenticated routes ---
	e.POST("/register", registryHandler.Register, authMiddleware)
	e.POST("/posts/:author/:slug/endorse", endorsementHandler.Endorse, authMiddleware)
	e.GET("/posts/:author/:slug/endorsement", endorsementHandler.HasEndorsed, authMiddleware)

	// --- Operational routes ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
