// Package server is the composition root: it wires the store, repositories,
// services and handlers together, defines every route, and owns the HTTP
// server lifecycle including graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/volunteerhub/internal/auth"
	"github.com/sakif/volunteerhub/internal/handler"
	"github.com/sakif/volunteerhub/internal/middleware"
	"github.com/sakif/volunteerhub/internal/repository/kv"
	"github.com/sakif/volunteerhub/internal/service"
)

// Config holds server configuration, loaded once in main.
type Config struct {
	Port   int
	DBPath string // path to the record store file, ":memory:" for tests
}

// Server owns the router and the store. The store is opened in New and
// closed when Start returns, after in-flight requests have drained.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	store  *kv.Store
}

// New opens the store and assembles the full dependency chain:
//
//	kv.Store → typed repositories → services → handlers → routes
//
// Handlers never touch the store, services never touch HTTP. All wiring
// happens here and nowhere else — there are no package-level singletons.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	store, err := kv.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening record store: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		store:  store,
	}
	s.setupRoutes()

	return s, nil
}

// setupRoutes configures middleware and the full endpoint surface:
//
//	POST /admins                               → create admin
//	POST /volunteers                           → create volunteer
//	GET  /volunteers                           → list volunteers (404 when empty)
//	GET  /volunteers/pagination/{start}/{end}  → paginated listing
//	GET  /volunteers/{id}                      → get volunteer
//	POST /events                               → create event (requires existing admin)
//	GET  /events                               → list events
//	POST /registrations                        → create registration
//	GET  /registrations                        → list registrations
//	POST /feedbacks                            → create feedback
//	GET  /feedbacks                            → list feedbacks
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	adminRepo := kv.NewAdminRepo(s.store)
	volunteerRepo := kv.NewVolunteerRepo(s.store)
	eventRepo := kv.NewEventRepo(s.store)
	registrationRepo := kv.NewRegistrationRepo(s.store)
	feedbackRepo := kv.NewFeedbackRepo(s.store)

	adminHandler := handler.NewAdminHandler(
		service.NewAdminService(adminRepo, auth.NewPasswordService(), s.logger), s.logger)
	volunteerHandler := handler.NewVolunteerHandler(
		service.NewVolunteerService(volunteerRepo, s.logger), s.logger)
	eventHandler := handler.NewEventHandler(
		service.NewEventService(eventRepo, adminRepo, s.logger), s.logger)
	registrationHandler := handler.NewRegistrationHandler(
		service.NewRegistrationService(registrationRepo, s.logger), s.logger)
	feedbackHandler := handler.NewFeedbackHandler(
		service.NewFeedbackService(feedbackRepo, s.logger), s.logger)

	s.router.Post("/admins", adminHandler.HandleCreate)

	s.router.Post("/volunteers", volunteerHandler.HandleCreate)
	s.router.Get("/volunteers", volunteerHandler.HandleList)
	s.router.Get("/volunteers/pagination/{start}/{end}", volunteerHandler.HandleListPage)
	s.router.Get("/volunteers/{id}", volunteerHandler.HandleGetByID)

	s.router.Post("/events", eventHandler.HandleCreate)
	s.router.Get("/events", eventHandler.HandleList)

	s.router.Post("/registrations", registrationHandler.HandleCreate)
	s.router.Get("/registrations", registrationHandler.HandleList)

	s.router.Post("/feedbacks", feedbackHandler.HandleCreate)
	s.router.Get("/feedbacks", feedbackHandler.HandleList)
}

// Handler exposes the assembled router, mainly for tests that drive the full
// surface through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the store. Start does this itself on shutdown; Close exists
// for callers that use Handler directly and never call Start.
func (s *Server) Close() error {
	return s.store.Close()
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests 30 seconds
// to finish, close the store (flushing the WAL).
func (s *Server) Start() error {
	defer s.store.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
