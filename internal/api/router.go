package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"cityDesk/internal/api/handlers/http/admin"
	"cityDesk/internal/api/handlers/http/dashboard"
	"cityDesk/internal/api/handlers/http/system"
	"cityDesk/internal/config"
	"cityDesk/internal/middleware"
	"cityDesk/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

// NewServer builds the router. ctx bounds the rate limiter janitors.
func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, checks map[string]system.Pinger) *Server {
	adminHandler := admin.NewHandler(logger, svc, svc)
	dashboardHandler := dashboard.NewHandler(logger, svc, svc)
	systemHandler := system.NewHandler(logger, checks)

	r := InitRouter(ctx, cfg, adminHandler, dashboardHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func InitRouter(
	ctx context.Context,
	cfg *config.Config,
	adminHandler *admin.Handler,
	dashboardHandler *dashboard.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Http.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.APIKeyHeader},
		ExposedHeaders:   []string{"Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	// request_id must be set before chi's Logger runs
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(ctx, cfg.Http.AdminRPS, cfg.Http.AdminBurst, 10*time.Minute, logger))

			ar.Post("/issues", middleware.BindJSON(adminHandler.IssueCreate))
			ar.Patch("/issues/{id}/status", middleware.BindJSON(adminHandler.IssueStatusUpdate))
			ar.Put("/users/{id}/areas", middleware.DecodeJSON(adminHandler.UserAreasAssign))
		})

		// DASHBOARD
		api.Group(func(dr chi.Router) {
			dr.Use(middleware.Limit(ctx, cfg.Http.PublicRPS, cfg.Http.PublicBurst, 5*time.Minute, logger))

			dr.Route("/users/{id}", func(ur chi.Router) {
				ur.Get("/issues", dashboardHandler.UserIssues)
				ur.Get("/stats", dashboardHandler.UserStats)
			})

			dr.Route("/issues", func(ir chi.Router) {
				ir.Get("/nearby", dashboardHandler.NearbyIssues)
				ir.Get("/{id}/sla", dashboardHandler.IssueSLA)
			})

			dr.Route("/areas", func(ar chi.Router) {
				ar.Get("/", dashboardHandler.AreasList)
				ar.Get("/closest", dashboardHandler.AreaClosest)
				ar.Post("/validate", middleware.DecodeJSON(dashboardHandler.AreaValidate))
			})
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
