package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vsinha/supplychain/pkg/application/dto"
	"github.com/vsinha/supplychain/pkg/domain/entities"
	"github.com/vsinha/supplychain/pkg/domain/repositories"
	"github.com/vsinha/supplychain/pkg/domain/services"
	"github.com/vsinha/supplychain/pkg/infrastructure/config"
	"github.com/vsinha/supplychain/pkg/infrastructure/repositories/memory"
)

// Server exposes a precomputed analysis and per-shipment delays over HTTP
type Server struct {
	app       *fiber.App
	config    config.ServerConfig
	logger    *zap.Logger
	counts    map[string]int
	shipments repositories.ShipmentRepository
	deriver   *services.DelayDeriver
	result    *dto.AnalysisResult
}

// NewServer wires routes over a dataset and the analysis computed from it.
// Datasets with duplicate ids are rejected.
func NewServer(ds *entities.Dataset, result *dto.AnalysisResult, cfg config.ServerConfig, logger *zap.Logger) (*Server, error) {
	if ds == nil || result == nil {
		return nil, errors.New("dataset and analysis result are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	store, err := memory.NewStoreFromDataset(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to index dataset: %w", err)
	}

	s := &Server{
		config:    cfg,
		logger:    logger.Named("api"),
		counts:    ds.Counts(),
		shipments: store.Shipments,
		deriver:   services.NewDelayDeriver(ds),
		result:    result,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "supplychain",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.app.Use(RequestID())
	s.app.Use(Logger(s.logger))

	api := s.app.Group("/api")
	api.Get("/health", s.health)

	var protected []fiber.Handler
	if s.config.JWTSecret != "" {
		protected = append(protected, JWTMiddleware(s.config.JWTSecret, s.config.JWTIssuer))
	}

	reports := api.Group("/reports", protected...)
	reports.Get("/", s.reports)
	reports.Get("/suppliers", s.supplierReport)
	reports.Get("/warehouses", s.warehouseReport)
	reports.Get("/products", s.productReport)
	reports.Get("/trend", s.trendReport)

	shipments := api.Group("/shipments", protected...)
	shipments.Get("/:id/delay", s.shipmentDelay)
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) {
		return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	}
	s.logger.Error("unhandled request error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

// App returns the underlying fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens on the configured port until ctx is cancelled, then shuts
// down within the configured shutdown timeout
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- s.app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", zap.Duration("timeout", s.config.ShutdownTimeout))
	if err := s.app.ShutdownWithTimeout(s.config.ShutdownTimeout); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}
