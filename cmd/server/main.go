package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"sitenav/internal/auth"
	"sitenav/internal/config"
	"sitenav/internal/content"
	"sitenav/internal/domain/repositories"
	"sitenav/internal/handler"
	"sitenav/internal/middleware"
	"sitenav/internal/repository/postgres"
	navsvc "sitenav/internal/service/navigation"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Structured logging, mirrored to a rotating file when LOG_DIR is set
	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, "server", cfg.LogMaxFiles)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}
	logger := config.NewLogger(cfg.Environment, logOut)
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"content_source", cfg.ContentSource,
		"max_depth", cfg.MaxDepth,
		"hide_invisible", cfg.HideInvisible,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional JWT verifier; without one every request is a visitor
	var jwtVerifier auth.JWTVerifier
	if cfg.JWKSURL != "" {
		v, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWT verifier: %v", err)
		}
		defer v.Close()
		jwtVerifier = v
	} else {
		logger.Warn("JWKS_URL not set, all requests are served as visitors")
	}

	// Item source
	var source repositories.ItemSource
	switch cfg.ContentSource {
	case config.SourcePostgres:
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to create connection pool: %v", err)
		}
		defer pool.Close()

		repoConfig := &postgres.RepositoryConfig{
			Pool:   pool,
			Tables: postgres.NewTableNames(cfg.TablePrefix),
			Logger: logger,
		}
		source = postgres.NewNavigationItemRepository(repoConfig, postgres.NewTransactionManager(pool, logger))
		logger.Info("database connected", "table", repoConfig.Tables.NavigationItems)
	default:
		source = content.NewLoader(cfg.ContentDir, logger)
	}

	navService := navsvc.NewService(source, navsvc.Options{
		BaseURL:       cfg.SiteBaseURL,
		DefaultLocale: cfg.DefaultLocale,
		MaxDepth:      cfg.MaxDepth,
		HideInvisible: cfg.HideInvisible,
	}, logger)

	// Warm the snapshot so the first request does not pay for the load
	if _, err := navService.Reload(ctx); err != nil {
		log.Fatalf("Failed to load navigation: %v", err)
	}

	if cfg.ContentSource == config.SourceFS && cfg.ContentWatch {
		watcher, err := content.NewWatcher(cfg.ContentDir, func(ctx context.Context) {
			_, _ = navService.Reload(ctx)
		}, logger)
		if err != nil {
			log.Fatalf("Failed to create content watcher: %v", err)
		}
		if err := watcher.Start(ctx); err != nil {
			log.Fatalf("Failed to start content watcher: %v", err)
		}
		defer watcher.Stop()
		logger.Info("watching content", "dir", cfg.ContentDir)
	}

	navHandler := handler.NewNavigationHandler(navService, logger)

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()
	navHandler.RegisterRoutes(mux)

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Request ID → Recovery → Auth → Routes
	var h http.Handler = mux
	h = middleware.OptionalAuth(jwtVerifier, logger)(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestID(logger)(h)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
	logger.Info("server stopped")
}
