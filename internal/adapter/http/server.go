package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/tcipi-service/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Assessor runs the index engine under the service's profile.
type Assessor interface {
	Assess(ctx context.Context, obs domain.Observation, size domain.SizeClass) domain.Assessment
	Profile() domain.Profile
}

// StationSource serves station feed batches.
type StationSource interface {
	Fetch(ctx context.Context) domain.StationBatch
	Latest() (domain.StationBatch, bool)
}

// Server exposes the index API, the station feed, and health, readiness, and
// metrics endpoints.
type Server struct {
	httpServer *http.Server
	assessor   Assessor
	stations   StationSource
	logger     *slog.Logger
}

// NewServer creates an HTTP server. Pass a nil stations source when the feed
// is disabled; the station routes then answer 503.
func NewServer(addr string, ready sharedobs.ReadinessChecker, assessor Assessor, stations StationSource, corsOrigins []string, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		assessor: assessor,
		stations: stations,
		logger:   logger,
	}

	r.Get("/healthz", sharedobs.LivenessHandler())
	r.Get("/readyz", sharedobs.ReadinessHandler(ready))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/tcipi", s.handleAssess)
		r.Get("/tcipi/profile", s.handleProfile)
		r.Get("/stations", s.handleStations)
		r.Get("/stations/latest", s.handleLatestStations)
	})

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

type assessRequest struct {
	domain.Observation
	Size string `json:"size"`
}

// maxAssessBody bounds POST /v1/tcipi bodies.
const maxAssessBody = 4 << 10

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var req assessRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAssessBody)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	size, err := domain.ParseSizeClass(req.Size)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, s.assessor.Assess(r.Context(), req.Observation, size))
}

type profileResponse struct {
	domain.Profile
	Categories []domain.CategoryInfo `json:"categories"`
}

func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	p := s.assessor.Profile()
	sharedobs.WriteJSON(w, http.StatusOK, profileResponse{Profile: p, Categories: p.Categories()})
}

var errFeedDisabled = errors.New("station feed is disabled")

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	if s.stations == nil {
		writeError(w, http.StatusServiceUnavailable, errFeedDisabled)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, s.stations.Fetch(r.Context()))
}

func (s *Server) handleLatestStations(w http.ResponseWriter, _ *http.Request) {
	if s.stations == nil {
		writeError(w, http.StatusServiceUnavailable, errFeedDisabled)
		return
	}
	batch, ok := s.stations.Latest()
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("no station batch fetched yet"))
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, batch)
}

func writeError(w http.ResponseWriter, status int, err error) {
	sharedobs.WriteJSON(w, status, map[string]string{"error": err.Error()})
}
