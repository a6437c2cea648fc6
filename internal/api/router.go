package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/siteforge/siteforge-api/internal/api/handler"
	"github.com/siteforge/siteforge-api/internal/api/middleware"
	"github.com/siteforge/siteforge-api/internal/core/domain"
	"github.com/siteforge/siteforge-api/internal/core/ports"
	"github.com/siteforge/siteforge-api/internal/core/service"
	mongodb "github.com/siteforge/siteforge-api/internal/infrastructure/db/mongo"
	redisdb "github.com/siteforge/siteforge-api/internal/infrastructure/db/redis"
)

// RouterConfig carries the tunables the router needs to wire services.
type RouterConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	BcryptCost        int
	GenerationTimeout time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, gen ports.ContentGenerator, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("siteforge"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	permRepo := mongodb.NewPermissionRepository(db)
	siteRepo := mongodb.NewWebsiteRepository(db)
	revocation := redisdb.NewRevocationStore(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, revocation, log)
	aclService := service.NewACLService(permRepo, tokenService, log)
	authService := service.NewAuthService(userRepo, tokenService, cfg.BcryptCost, log)
	userService := service.NewUserService(userRepo, log)
	websiteService := service.NewWebsiteService(siteRepo, gen, cfg.GenerationTimeout, log)

	authHandler := handler.NewAuthHandler(authService, tokenService)
	adminHandler := handler.NewAdminHandler(userService)
	websiteHandler := handler.NewWebsiteHandler(websiteService)

	// perm gates a route on a required permission via the authorization gate.
	perm := func(p string) echo.MiddlewareFunc {
		return middleware.Permission(aclService, p)
	}

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Admin routes ---
	admin := e.Group("/admin")
	admin.GET("/users", adminHandler.ListUsers, perm(domain.PermReadUser))
	admin.PUT("/assign-role", adminHandler.AssignRole, perm(domain.PermAssignRole))
	admin.DELETE("/users/:id", adminHandler.DeleteUser, perm(domain.PermDeleteUser))

	// --- Website routes ---
	sites := e.Group("/api")
	sites.POST("/generate", websiteHandler.Generate, perm(domain.PermCreateSite))
	sites.GET("", websiteHandler.List, perm(domain.PermListAllSites))
	sites.GET("/:id", websiteHandler.Get, perm(domain.PermReadSite))
	sites.PUT("/:id", websiteHandler.Update, perm(domain.PermUpdateSite))
	sites.DELETE("/:id", websiteHandler.Delete, perm(domain.PermDeleteSite))

	// --- Public preview (no auth required) ---
	e.GET("/preview/:id", websiteHandler.Preview)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
