package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"draftsmith/internal/auth"
	"draftsmith/internal/config"
	"draftsmith/internal/handler"
	"draftsmith/internal/llm"
	"draftsmith/internal/middleware"
	"draftsmith/internal/prompts"
	"draftsmith/internal/repository/postgres"
	"draftsmith/internal/service"
	serviceAuth "draftsmith/internal/service/auth"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	var logOutput io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, 10)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer logFile.Close()
		logOutput = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create token verifier (JWKS endpoint or shared HMAC secret)
	verifier, err := auth.NewVerifier(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create token verifier: %v", err)
	}
	defer verifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	projectRepo := postgres.NewProjectRepository(repoConfig)
	outlineRepo := postgres.NewOutlineRepository(repoConfig)
	contentRepo := postgres.NewContentItemRepository(repoConfig)
	refinementRepo := postgres.NewRefinementRepository(repoConfig)
	revisionRepo := postgres.NewRevisionRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Setup the text-generation provider and prompt templates
	provider, err := llm.NewProvider(cfg)
	if err != nil {
		log.Fatalf("Failed to setup provider: %v", err)
	}
	logger.Info("provider initialized", "provider", provider.Name())

	promptRegistry, err := prompts.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load prompt templates: %v", err)
	}

	// Create services
	authorizer := serviceAuth.NewOwnerBasedAuthorizer(projectRepo, contentRepo)
	projectService := service.NewProjectService(projectRepo, logger)
	outlineService := service.NewOutlineService(outlineRepo, contentRepo, authorizer, txManager, logger)
	contentService := service.NewContentService(contentRepo, authorizer, logger)
	generationService := service.NewGenerationService(outlineRepo, contentRepo, authorizer, provider, promptRegistry, logger)
	refinementService := service.NewRefinementService(contentRepo, refinementRepo, authorizer, provider, promptRegistry, logger)
	revisionService := service.NewRevisionService(revisionRepo, contentRepo, txManager, authorizer, logger)
	exportService := service.NewExportService(contentRepo, authorizer, logger)

	// Create handlers
	healthHandler := handler.NewHealthHandler(pool)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	outlineHandler := handler.NewOutlineHandler(outlineService, logger)
	contentHandler := handler.NewContentHandler(contentService, logger)
	generationHandler := handler.NewGenerationHandler(generationService, logger)
	refinementHandler := handler.NewRefinementHandler(refinementService, logger)
	revisionHandler := handler.NewRevisionHandler(revisionService, logger)
	exportHandler := handler.NewExportHandler(exportService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", healthHandler.HealthCheck)

	// Project routes
	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)
	mux.HandleFunc("PATCH /api/projects/{id}", projectHandler.UpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", projectHandler.DeleteProject)

	// Outline routes
	mux.HandleFunc("PUT /api/projects/{id}/outline", outlineHandler.SaveOutline)
	mux.HandleFunc("GET /api/projects/{id}/outline", outlineHandler.GetOutline)

	// Generation
	mux.HandleFunc("POST /api/projects/{id}/generate", generationHandler.Generate)

	// Content item routes
	mux.HandleFunc("GET /api/projects/{id}/items", contentHandler.ListItems)
	mux.HandleFunc("GET /api/projects/{id}/items/{itemID}", contentHandler.GetItem)

	// Refinement routes
	mux.HandleFunc("POST /api/items/{id}/refine", refinementHandler.Refine)
	mux.HandleFunc("GET /api/items/{id}/refinements", refinementHandler.ListRefinements)

	// Revision routes
	mux.HandleFunc("POST /api/projects/{id}/revisions", revisionHandler.CreateRevision)
	mux.HandleFunc("GET /api/projects/{id}/revisions", revisionHandler.ListRevisions)
	mux.HandleFunc("GET /api/projects/{id}/revisions/{number}", revisionHandler.GetRevision)

	// Export
	mux.HandleFunc("GET /api/projects/{id}/export", exportHandler.ExportProject)

	// Build middleware chain
	var httpHandler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	httpHandler = middleware.AuthMiddleware(verifier)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // generation batches hold the request open
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
