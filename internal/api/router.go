package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/bistro-api/internal/api/handler"
	"github.com/bistroboss/bistro-api/internal/api/middleware"
	"github.com/bistroboss/bistro-api/internal/core/ports"
	"github.com/bistroboss/bistro-api/internal/core/service"
	"github.com/bistroboss/bistro-api/internal/infrastructure/config"
	mongodb "github.com/bistroboss/bistro-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bistroboss/bistro-api/internal/infrastructure/db/redis"
)

// Dependencies carries everything route registration needs. Splitting it from
// NewRouter lets tests drive the full route table with stub ports.
type Dependencies struct {
	Tokens  ports.TokenService
	Users   ports.UserRepository
	UserSvc ports.UserService
	Catalog ports.CatalogService
	Carts   ports.CartService
}

// NewRouter builds and returns the Echo instance with all routes registered.
// cache may be nil; the catalog is then served without a cache.
func NewRouter(db *mongo.Database, cache *redisdb.CatalogCache, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	userRepo := mongodb.NewUserRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	cartRepo := mongodb.NewCartRepository(db)

	var (
		catalogCache ports.CatalogCache
		cachePinger  handler.DependencyPinger
	)
	if cache != nil {
		catalogCache = cache
		cachePinger = cache
	}

	tokenService := service.NewTokenService(cfg.JWTSecret, time.Hour)

	e := newEcho(log)
	e.Use(echoprometheus.NewMiddleware("bistro"))
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthDepsHandler := handler.NewHealthDependenciesHandler(mongodb.NewPinger(db.Client()), cachePinger)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	registerRoutes(e, Dependencies{
		Tokens:  tokenService,
		Users:   userRepo,
		UserSvc: service.NewUserService(userRepo, log),
		Catalog: service.NewCatalogService(menuRepo, reviewRepo, catalogCache, log),
		Carts:   service.NewCartService(cartRepo, log),
	})

	return e
}

func newEcho(log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	return e
}

// registerRoutes declares the route table and the access gate applied to each
// route. Admin always runs after Auth: it reads the email claim Auth sets.
func registerRoutes(e *echo.Echo, deps Dependencies) {
	auth := middleware.Auth(deps.Tokens)
	admin := middleware.Admin(deps.Users)

	tokenHandler := handler.NewTokenHandler(deps.Tokens)
	userHandler := handler.NewUserHandler(deps.UserSvc)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	cartHandler := handler.NewCartHandler(deps.Carts)
	healthHandler := handler.NewHealthHandler()

	e.GET("/", healthHandler.Liveness)

	// --- Auth ---
	e.POST("/jwt", tokenHandler.Issue)

	// --- Users ---
	e.GET("/users", userHandler.List, auth, admin)
	e.POST("/users", userHandler.Create)
	e.GET("/users/admin/:email", userHandler.AdminStatus, auth)
	e.PATCH("/users/admin/:id", userHandler.Promote, auth, admin)

	// --- Catalog ---
	e.GET("/menu", catalogHandler.Menu)
	e.GET("/reviews", catalogHandler.Reviews)

	// --- Carts ---
	e.GET("/carts", cartHandler.List, auth)
	e.POST("/carts", cartHandler.Add, auth)
	e.DELETE("/carts/:id", cartHandler.Delete, auth)
}
