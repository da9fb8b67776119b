package server

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/glucoach/glucoach/internal/domain"
	apperrors "github.com/glucoach/glucoach/internal/errors"
	"github.com/glucoach/glucoach/internal/logger"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// respondError logs the error by severity and maps the taxonomy onto
// HTTP statuses: validation errors are the caller's fault, everything
// else is a server-side 500.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	s.errs.Handle(r.Context(), err)
	status := http.StatusInternalServerError
	if apperrors.TypeOf(err) == apperrors.ErrorTypeValidation {
		status = http.StatusBadRequest
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.health.Ping(r.Context()); err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "db_error",
			"message": err.Error(),
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.started).Seconds(),
		"dbPath": s.health.Path(),
	})
}

type addLogRequest struct {
	Date      string   `json:"date"`
	TimeSlot  string   `json:"timeSlot"`
	Value     *float64 `json:"value"`
	Note      string   `json:"note"`
	MealState string   `json:"mealState"`
}

func (s *Server) handleAddLog(w http.ResponseWriter, r *http.Request) {
	var req addLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, apperrors.NewValidationError("invalid payload"))
		return
	}
	if req.Value == nil {
		s.respondError(w, r, apperrors.NewValidationError("value must be a number"))
		return
	}

	_, err := s.readings.Add(r.Context(), domain.NewReading{
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Value:     *req.Value,
		Note:      req.Note,
		MealState: req.MealState,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	rangeKey := r.URL.Query().Get("range")
	if rangeKey == "" {
		rangeKey = "week"
	}
	items, err := s.readings.List(r.Context(), rangeKey)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

type deleteLogsRequest struct {
	IDs []uint `json:"ids"`
}

func (s *Server) handleDeleteLogs(w http.ResponseWriter, r *http.Request) {
	var req deleteLogsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, apperrors.NewValidationError("ids array required"))
		return
	}
	deleted, err := s.readings.Delete(r.Context(), req.IDs)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": deleted})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.profiles.Get(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	// Full replace: the decode target is pre-filled with the hardcoded
	// defaults, so omitted fields reset rather than keep stored values.
	profile := domain.DefaultProfile()
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.respondError(w, r, apperrors.NewValidationError("invalid payload"))
		return
	}
	if err := s.profiles.Put(r.Context(), profile); err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleWeeklyRaw(w http.ResponseWriter, r *http.Request) {
	summary, err := s.summary.Weekly(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (s *Server) handleWeeklySummary(w http.ResponseWriter, r *http.Request) {
	report, err := s.coach.WeeklyReport(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

type coachRequest struct {
	Value     *float64 `json:"value"`
	TimeSlot  string   `json:"timeSlot"`
	MealState string   `json:"mealState"`
}

func (s *Server) handleCoach(w http.ResponseWriter, r *http.Request) {
	var req coachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, apperrors.NewValidationError("invalid payload"))
		return
	}
	if req.Value == nil || *req.Value < 0 {
		s.respondError(w, r, apperrors.NewValidationError("value must be a non-negative number"))
		return
	}
	slot := domain.TimeSlot(req.TimeSlot)
	if !slot.Valid() {
		s.respondError(w, r, apperrors.NewValidationError("timeSlot must be Morning, Noon or Evening"))
		return
	}
	state := domain.MealState(req.MealState)
	if req.MealState != "" && !state.Valid() {
		s.respondError(w, r, apperrors.NewValidationError("mealState must be Fasting or Post-meal"))
		return
	}

	message, err := s.coach.Tip(r.Context(), domain.TipRequest{
		Value:     int(math.Round(*req.Value)),
		TimeSlot:  slot,
		MealState: state,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}
