// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/agriformation/backoffice/internal/audit"
	"github.com/agriformation/backoffice/internal/auth"
	"github.com/agriformation/backoffice/internal/config"
	"github.com/agriformation/backoffice/internal/database"
	"github.com/agriformation/backoffice/internal/email"
	"github.com/agriformation/backoffice/internal/email/notifier"
	"github.com/agriformation/backoffice/internal/handler"
	"github.com/agriformation/backoffice/internal/media"
	"github.com/agriformation/backoffice/internal/repository"
	"github.com/agriformation/backoffice/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
}

// newMediaHost picks the configured provider. The local host also returns a
// directory to serve under /uploads.
func newMediaHost(cfg *config.Config) (media.Host, string, error) {
	switch cfg.Media.Provider {
	case "local":
		host, err := media.NewLocalHost(cfg.Media.UploadDir, cfg.Media.PublicBaseURL)
		if err != nil {
			return nil, "", err
		}
		return host, host.Dir(), nil
	case "cloudinary", "":
		host, err := media.NewCloudinaryHost(cfg.Media.CloudinaryURL, cfg.Media.CloudName, cfg.Media.APIKey, cfg.Media.APISecret)
		if err != nil {
			return nil, "", err
		}
		return host, "", nil
	default:
		return nil, "", fmt.Errorf("unsupported media provider: %s", cfg.Media.Provider)
	}
}

func run() error {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx := context.Background()

	// Initialize database
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	if err := repository.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	volunteerRepo := repository.NewVolunteerRepository(db)
	callRepo := repository.NewOpportunityRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.Provider(cfg.Email.Provider))
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}
	credentials := notifier.New(emailService, cfg.Email.LoginURL)

	mediaHost, uploadDir, err := newMediaHost(cfg)
	if err != nil {
		return fmt.Errorf("initializing media host: %w", err)
	}

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	var auditLogger audit.Logger = auditService

	accountService := service.NewAccountService(accountRepo, passwordHasher, tokenManager, auditLogger, cfg)
	applicationService := service.NewApplicationService(applicationRepo, accountRepo, passwordHasher, credentials, auditLogger)
	volunteerService := service.NewVolunteerService(volunteerRepo, applicationRepo, auditLogger)
	opportunityService := service.NewOpportunityService(callRepo, mediaHost, auditLogger)
	galleryService := service.NewGalleryService(galleryRepo, mediaHost, auditLogger)

	if created, err := accountService.EnsureSuperadmin(ctx); err != nil {
		logger.Error("failed to seed superadmin", "error", err)
	} else if !created {
		logger.Info("superadmin already present")
	}

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	if uploadDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))
	}

	handler.Mount(r, handler.Handlers{
		Auth:        handler.NewAuthHandler(accountService),
		Volunteer:   handler.NewVolunteerHandler(applicationService, volunteerService),
		Admin:       handler.NewAdminHandler(applicationService, volunteerService, accountService, auditService),
		Opportunity: handler.NewOpportunityHandler(opportunityService),
		Gallery:     handler.NewGalleryHandler(galleryService),
	}, accountService)

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port, "mediaProvider", cfg.Media.Provider, "emailEnabled", emailService.Enabled())
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					logger.Error("panic recovered",
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"success":false,"message":"Internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
