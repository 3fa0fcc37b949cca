package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/grachmannico95/statement-reconciler/internal/config"
	"github.com/grachmannico95/statement-reconciler/internal/handler"
	"github.com/grachmannico95/statement-reconciler/internal/middleware"
	"github.com/grachmannico95/statement-reconciler/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// multipartOverhead is added to the upload limit for form boundaries and
// part headers.
const multipartOverhead = 64 << 10

type Server struct {
	echo             *echo.Echo
	cfg              *config.Config
	logger           *logger.Logger
	statementHandler *handler.StatementHandler
	positionHandler  *handler.PositionHandler
	datevHandler     *handler.DatevHandler
	healthHandler    *handler.HealthHandler
	setup            sync.Once
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	statementHandler *handler.StatementHandler,
	positionHandler *handler.PositionHandler,
	datevHandler *handler.DatevHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Server{
		echo:             e,
		cfg:              cfg,
		logger:           log,
		statementHandler: statementHandler,
		positionHandler:  positionHandler,
		datevHandler:     datevHandler,
		healthHandler:    healthHandler,
	}
}

func (s *Server) Start() error {
	s.configure()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) configure() {
	s.setup.Do(func() {
		s.setupMiddleware()
		s.setupRoutes()
	})
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
	if s.cfg.Import.MaxUploadBytes > 0 {
		s.echo.Use(echoMiddleware.BodyLimit(fmt.Sprintf("%dB", s.cfg.Import.MaxUploadBytes+multipartOverhead)))
	}
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	statements := s.echo.Group("/statements")
	statements.POST("", s.statementHandler.Create)
	statements.GET("", s.statementHandler.List)
	statements.GET("/stats", s.statementHandler.Stats)
	statements.POST("/preview", s.statementHandler.Preview)
	statements.GET("/:id", s.statementHandler.Get)
	statements.DELETE("/:id", s.statementHandler.Delete)
	statements.PATCH("/:id/status", s.statementHandler.UpdateStatus)
	statements.POST("/:id/import", s.statementHandler.Import)
	statements.GET("/:id/positions.csv", s.statementHandler.ExportPositions)
	statements.POST("/:id/auto-match", s.positionHandler.AutoMatch)

	positions := s.echo.Group("/positions")
	positions.GET("/:id/candidates", s.positionHandler.Candidates)
	positions.POST("/:id/assign", s.positionHandler.Assign)
	positions.POST("/:id/unassign", s.positionHandler.Unassign)
	positions.POST("/:id/ignore", s.positionHandler.Ignore)
	positions.POST("/:id/booking", s.positionHandler.CreateBooking)

	datev := s.echo.Group("/datev")
	datev.POST("/parse", s.datevHandler.Parse)
	datev.POST("/import", s.datevHandler.Import)
	datev.GET("/export", s.datevHandler.Export)
}

func (s *Server) Handler() *echo.Echo {
	s.configure()
	return s.echo
}
