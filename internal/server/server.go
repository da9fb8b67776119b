package server

import (
	"context"
	"net/http"
	"time"

	"github.com/glucoach/glucoach/internal/domain"
	apperrors "github.com/glucoach/glucoach/internal/errors"
	"github.com/glucoach/glucoach/internal/logger"
)

// HealthChecker is the slice of the database the health endpoint needs.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Path() string
}

// Server wires the HTTP API onto the domain services.
type Server struct {
	readings domain.ReadingService
	profiles domain.ProfileService
	summary  domain.SummaryService
	coach    domain.CoachService
	health   HealthChecker
	errs     *apperrors.Handler
	started  time.Time
}

func New(readings domain.ReadingService, profiles domain.ProfileService, summary domain.SummaryService, coach domain.CoachService, health HealthChecker) *Server {
	return &Server{
		readings: readings,
		profiles: profiles,
		summary:  summary,
		coach:    coach,
		health:   health,
		errs:     apperrors.NewHandler(logger.GetLogger()),
		started:  time.Now(),
	}
}

// Routes returns the full handler with middleware applied.
func (s *Server) Routes(allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/logs", s.handleAddLog)
	mux.HandleFunc("GET /api/logs", s.handleListLogs)
	mux.HandleFunc("DELETE /api/logs", s.handleDeleteLogs)
	mux.HandleFunc("GET /api/profile", s.handleGetProfile)
	mux.HandleFunc("PUT /api/profile", s.handlePutProfile)
	mux.HandleFunc("GET /api/summary/weekly/raw", s.handleWeeklyRaw)
	mux.HandleFunc("GET /api/summary/weekly", s.handleWeeklySummary)
	mux.HandleFunc("POST /api/coach", s.handleCoach)

	return requestLogger(corsMiddleware(allowedOrigins, mux))
}
