// Package rest assembles the HTTP router: cross-cutting middleware, the
// stocks route family, and the fallback envelopes for unknown routes.
package rest

import (
	"net/http"

	"stocks-api/application/commands/bus"
	querybus "stocks-api/application/queries/bus"
	"stocks-api/interfaces/http/rest/handlers"
	"stocks-api/interfaces/http/rest/middleware"
	"stocks-api/pkg/common"
	apperrors "stocks-api/pkg/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router.
type Router struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewRouter creates a new router instance.
func NewRouter(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *Router {
	return &Router{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Request metadata first so every later layer, including the panic
	// recovery envelope, sees the request id and start time.
	router.Use(middleware.RequestMetadata())
	router.Use(middleware.Recovery(rt.logger))
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Preflight())

	// Origin decoration for non-preflight responses.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	// Health checks
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Stocks route family. The mutating verbs are registered on the
	// collection path too: the target code is then empty and the handler
	// rejects the request before any store interaction.
	router.Route("/stocks", func(r chi.Router) {
		stockHandler := handlers.NewStockHandler(rt.commandBus, rt.queryBus, rt.logger)
		r.Get("/", stockHandler.ListStocks)
		r.Post("/", stockHandler.CreateStock)
		r.Put("/", stockHandler.UpdateStock)
		r.Delete("/", stockHandler.DeleteStock)
		r.Get("/{code}", stockHandler.GetStock)
		r.Post("/{code}", stockHandler.CreateStock)
		r.Put("/{code}", stockHandler.UpdateStock)
		r.Delete("/{code}", stockHandler.DeleteStock)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		common.RespondError(w, r, http.StatusNotFound,
			string(apperrors.ErrorTypeNotFound), "Route not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		common.RespondError(w, r, http.StatusMethodNotAllowed,
			"METHOD_NOT_ALLOWED", "Method not allowed")
	})

	return router
}

// healthCheck handles health check requests.
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests.
func (rt *Router) readinessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
