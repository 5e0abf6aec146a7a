package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/config"
	"github.com/itinerary-service/internal/delivery/http/handler"
	"github.com/itinerary-service/internal/delivery/http/middleware"
	"github.com/itinerary-service/internal/pkg/errors"
	"github.com/itinerary-service/internal/pkg/utils"
)

// HealthCheck - проверка зависимости для /health (nil-проверки пропускаются)
type HealthCheck func(ctx context.Context) error

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	itineraryHandler   *handler.ItineraryHandler
	placeHandler       *handler.PlaceHandler
	recommenderHandler *handler.RecommenderHandler
	rateLimiter        *middleware.RateLimiter
	checks             map[string]HealthCheck
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	itineraryHandler *handler.ItineraryHandler,
	placeHandler *handler.PlaceHandler,
	recommenderHandler *handler.RecommenderHandler,
	checks map[string]HealthCheck,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Itinerary Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		itineraryHandler:   itineraryHandler,
		placeHandler:       placeHandler,
		recommenderHandler: recommenderHandler,
		rateLimiter:        middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		checks:             checks,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.health)

	// Itinerary routes; static paths go before /:id
	itinerary := api.Group("/itinerary")
	itinerary.Post("/generate", s.rateLimiter.Handler(), s.itineraryHandler.Generate)
	itinerary.Get("/categories", s.itineraryHandler.Categories)
	itinerary.Get("/districts", s.itineraryHandler.Districts)
	itinerary.Get("/clusters", s.itineraryHandler.Clusters)
	itinerary.Get("/:id/pdf", s.itineraryHandler.PDF)
	itinerary.Get("/:id", s.itineraryHandler.Get)

	// Catalog routes
	places := api.Group("/places")
	places.Get("/", s.placeHandler.List)
	places.Post("/", s.placeHandler.Create)
	places.Get("/:id", s.placeHandler.Get)
	places.Put("/:id", s.placeHandler.Update)
	places.Delete("/:id", s.placeHandler.Delete)

	// ML peer routes
	ml := api.Group("/ml")
	ml.Get("/health", s.recommenderHandler.Health)
	ml.Post("/retrain", s.recommenderHandler.Retrain)
	ml.Get("/model-info", s.recommenderHandler.ModelInfo)
}

// health - статус сервиса и его хранилищ; 503 если хотя бы одна проверка упала
func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "healthy"
	code := fiber.StatusOK
	components := make(fiber.Map, len(s.checks))
	for name, check := range s.checks {
		if check == nil {
			continue
		}
		if err := check(ctx); err != nil {
			components[name] = err.Error()
			status = "degraded"
			code = fiber.StatusServiceUnavailable
			continue
		}
		components[name] = "ok"
	}

	return c.Status(code).JSON(fiber.Map{
		"status":     status,
		"components": components,
		"time":       time.Now(),
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не отрендеренные хендлерами (404 роутера, паники, AppError из middleware)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if _, ok := errors.As(err); ok {
			return utils.SendError(c, err)
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		appErr := errors.ErrInternalServer
		if code < fiber.StatusInternalServerError {
			appErr = errors.New("HTTP_ERROR", err.Error(), code)
		}
		return c.Status(code).JSON(utils.ErrorResponse{Error: appErr})
	}
}
