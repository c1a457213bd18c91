// Package api exposes the service over HTTP: auth endpoints, the guarded
// ingest trigger, CRUD over the warehouse tables, and the assistant.
package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flightwarehouse-service/internal/domain/repository"
	"flightwarehouse-service/internal/usecase"
	"flightwarehouse-service/pkg/logger"
)

// Server holds the HTTP handler dependencies.
type Server struct {
	auth      *usecase.AuthService
	ingest    *usecase.IngestOrchestrator
	assistant *usecase.AssistantService
	airports  repository.AirportRepository
	airlines  repository.AirlineRepository
	flights   repository.FlightRepository
	frontend  string
	logger    logger.Logger
}

// NewServer creates a new API server
func NewServer(
	auth *usecase.AuthService,
	ingest *usecase.IngestOrchestrator,
	assistant *usecase.AssistantService,
	airports repository.AirportRepository,
	airlines repository.AirlineRepository,
	flights repository.FlightRepository,
	frontendRedirect string,
	logger logger.Logger,
) *Server {
	return &Server{
		auth:      auth,
		ingest:    ingest,
		assistant: assistant,
		airports:  airports,
		airlines:  airlines,
		flights:   flights,
		frontend:  frontendRedirect,
		logger:    logger,
	}
}

// Router builds the chi router.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Get("/google/url", s.handleGoogleAuthURL)
		r.Get("/google/callback", s.handleGoogleCallback)
		r.Post("/google/token", s.handleGoogleToken)
	})

	// Everything mutating or data-bearing sits behind the bearer token.
	r.Route("/api", func(r chi.Router) {
		r.Use(s.bearerAuth)

		r.Post("/ingest/flights", s.handleIngest)

		r.Route("/airports", func(r chi.Router) {
			r.Get("/", s.handleListAirports)
			r.Post("/", s.handleCreateAirport)
			r.Get("/{iata}", s.handleGetAirport)
			r.Put("/{iata}", s.handleUpdateAirport)
			r.Delete("/{iata}", s.handleDeleteAirport)
			r.Get("/{iata}/airlines", s.handleAirlinesByAirport)
		})

		r.Route("/airlines", func(r chi.Router) {
			r.Get("/", s.handleListAirlines)
			r.Post("/", s.handleCreateAirline)
			r.Get("/{iata}", s.handleGetAirline)
			r.Put("/{iata}", s.handleUpdateAirline)
			r.Delete("/{iata}", s.handleDeleteAirline)
		})

		r.Route("/flights", func(r chi.Router) {
			r.Get("/", s.handleListFlights)
			r.Post("/", s.handleCreateFlight)
			r.Get("/{flight_nk}", s.handleGetFlight)
			r.Put("/{flight_nk}", s.handleUpdateFlight)
			r.Delete("/{flight_nk}", s.handleDeleteFlight)
		})

		r.Post("/ai/ask", s.handleAsk)
	})

	return r
}

// pageParams parses limit/offset query parameters with bounds.
func pageParams(req *http.Request, defaultLimit, maxLimit int) (int, int) {
	limit := defaultLimit
	if v := req.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= maxLimit {
			limit = n
		}
	}
	offset := 0
	if v := req.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
