package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/ooplearn/backend/docs"
	"github.com/ooplearn/backend/internal/config"
	"github.com/ooplearn/backend/internal/content"
	"github.com/ooplearn/backend/internal/handlers"
	"github.com/ooplearn/backend/internal/logger"
	"github.com/ooplearn/backend/internal/middleware"
	"github.com/ooplearn/backend/internal/repositories"
	"github.com/ooplearn/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const apiVersion = "1.0.0"

// @title OOP Learning API
// @version 1.0
// @description Lessons and quizzes about object-oriented programming concepts with quiz scoring

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting OOP Learning API", zap.String("contentSource", cfg.Content.Source))

	// Load lessons and quizzes
	catalog, err := loadCatalog(cfg)
	if err != nil {
		logger.Logger.Fatal("Failed to load content", zap.Error(err))
	}
	logger.Logger.Info("Content loaded",
		zap.Int("lessons", len(catalog.Lessons())),
		zap.Int("quizzes", len(catalog.Quizzes())),
	)

	// Initialize services
	lessonsService := services.NewLessonsService(catalog, logger.Logger)
	quizzesService := services.NewQuizzesService(catalog, logger.Logger)
	progressService := services.NewProgressService(catalog, catalog)

	// Initialize handlers
	infoHandler := handlers.NewInfoHandler(apiVersion, logger.Logger)
	lessonsHandler := handlers.NewLessonsHandler(lessonsService, logger.Logger)
	quizzesHandler := handlers.NewQuizzesHandler(quizzesService, logger.Logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Root and health routes
	infoHandler.RegisterRoutes(r)

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		lessonsHandler.RegisterRoutes(r)
		quizzesHandler.RegisterRoutes(r)
		progressHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// loadCatalog builds the content catalog from the configured source
func loadCatalog(cfg *config.Config) (*content.Catalog, error) {
	switch cfg.Content.Source {
	case config.ContentSourceMySQL:
		return loadCatalogFromDB(cfg.DSN())
	default:
		if cfg.Content.File != "" {
			return content.LoadFile(cfg.Content.File)
		}
		return content.LoadDefault()
	}
}

// loadCatalogFromDB migrates the content database and reads it once.
// The connection is closed after the catalog is built.
func loadCatalogFromDB(dsn string) (*content.Catalog, error) {
	db, err := connectDB(dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := repositories.NewContentRepository(db, logger.Logger)
	return content.LoadFromSource(ctx, repo)
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "content_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
