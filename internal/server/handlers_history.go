package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-match/internal/matching"
	"github.com/jonathan/resume-match/internal/server/middleware"
)

// SaveMatchRequest is the body for POST /matches. The report is computed
// server-side and stored under the authenticated user.
type SaveMatchRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=1"`
	JobText    string `json:"job_text" validate:"required,min=1"`
	ResumeName string `json:"resume_name,omitempty"`
	JobName    string `json:"job_name,omitempty"`
}

// handleSaveMatch scores a resume against a job and stores the report.
func (s *Server) handleSaveMatch(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SaveMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	report := matching.Report(req.ResumeText, req.JobText)

	id, err := s.db.SaveMatch(r.Context(), userID, req.ResumeName, req.JobName, report)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save match")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":     id,
		"report": report,
	})
}

// handleListMatches lists the authenticated user's stored matches.
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
	}

	matches, err := s.db.ListMatches(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list matches")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches})
}

// handleGetMatch retrieves one stored match with its full report.
func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matchID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid match ID")
		return
	}

	rec, err := s.db.GetMatch(r.Context(), userID, matchID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get match")
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Match not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDeleteMatch deletes one stored match.
func (s *Server) handleDeleteMatch(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matchID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid match ID")
		return
	}

	if err := s.db.DeleteMatch(r.Context(), userID, matchID); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Match not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
