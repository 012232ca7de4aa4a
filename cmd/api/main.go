package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/officeflow/space-planner/planning-api/internal/allocation"
	"github.com/officeflow/space-planner/planning-api/internal/config"
	"github.com/officeflow/space-planner/planning-api/internal/gateway"
	"github.com/officeflow/space-planner/planning-api/internal/logging"
	"github.com/officeflow/space-planner/planning-api/internal/metrics"
	"github.com/officeflow/space-planner/planning-api/internal/planning"
	"github.com/officeflow/space-planner/planning-api/internal/repository"

	_ "github.com/officeflow/space-planner/planning-api/docs" // swagger docs
)

// @title Space Planner Planning API
// @version 1.0
// @description Office layout planning API: floor plans, space requirements, and heuristic layout solutions.
// @description
// @description The allocation estimator converts a space requirement and an available floor area into an area estimate, a feasibility score, a placement breakdown, and advisory text.

// @contact.name API Support
// @contact.email support@officeflow.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "planning-api")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := initTracer(); err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}

	// Select the storage driver
	var store *repository.Store
	var pool *pgxpool.Pool
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Info("Using in-memory storage")
		store = repository.NewMemoryStore()
	default:
		pool = connectDatabase(cfg, logger)
		defer pool.Close()

		if err := repository.EnsureSchema(context.Background(), pool); err != nil {
			logger.Fatal("Failed to apply database schema", zap.Error(err))
		}
		store = repository.NewPostgresStore(pool)
	}

	planningMetrics, err := metrics.NewPlanningMetrics()
	if err != nil {
		logger.Fatal("Failed to initialize metrics", zap.Error(err))
	}

	// Wire the service layer: feed first so generation can broadcast
	feed := gateway.NewSolutionFeed(logger, planningMetrics)
	service := planning.NewService(store, allocation.NewDefaultEstimator(), planningMetrics, feed, logger)
	handler := gateway.NewHandler(service, feed, logger)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.GinMiddleware(logger))

	// Health checks MUST be at the root for the WebService standard
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/ready", func(c *gin.Context) {
		// Check database connectivity for readiness
		if pool != nil {
			if err := pool.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "not ready",
					"error":  "database connection failed",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting planning API server",
			zap.String("port", cfg.Port),
			zap.String("storage_driver", cfg.StorageDriver),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// connectDatabase dials PostgreSQL with a retry loop for the initial
// connection; the database regularly comes up after the API in compose
// and cluster deployments.
func connectDatabase(cfg *config.Config, logger *zap.Logger) *pgxpool.Pool {
	var pool *pgxpool.Pool
	var err error

	for i := 0; i < cfg.DBConnectAttempts; i++ {
		pool, err = pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err == nil {
			err = pool.Ping(context.Background())
			if err == nil {
				break
			}
		}
		logger.Warn("Waiting for database...",
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", cfg.DBConnectAttempts),
			zap.Error(err),
		)
		time.Sleep(cfg.DBConnectBackoff)
	}

	if err != nil {
		logger.Fatal("Failed to connect to database after retries", zap.Error(err))
	}

	logger.Info("Connected to PostgreSQL database")
	return pool
}

// initTracer initializes OpenTelemetry tracing
func initTracer() error {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return fmt.Errorf("failed to create stdout exporter: %w", err)
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
	)

	otel.SetTracerProvider(tp)

	return nil
}
