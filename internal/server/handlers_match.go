package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-match/internal/matching"
	"github.com/jonathan/resume-match/internal/types"
)

// maxBatchJobs bounds one batch scoring request.
const maxBatchJobs = 25

// MatchRequest is the body for POST /match.
type MatchRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=1"`
	JobText    string `json:"job_text" validate:"required,min=1"`
}

// BatchMatchRequest is the body for POST /match/batch. One resume is scored
// against every job in the list.
type BatchMatchRequest struct {
	ResumeText string     `json:"resume_text" validate:"required,min=1"`
	Jobs       []BatchJob `json:"jobs" validate:"required,min=1,dive"`
}

// BatchJob is one job posting within a batch request.
type BatchJob struct {
	Name    string `json:"name,omitempty"`
	JobText string `json:"job_text" validate:"required,min=1"`
}

// BatchMatchResult pairs a job name with its match report.
type BatchMatchResult struct {
	Name   string             `json:"name,omitempty"`
	Report *types.MatchReport `json:"report"`
}

// handleMatch scores one resume against one job description.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	report := matching.Report(req.ResumeText, req.JobText)
	s.jsonResponse(w, http.StatusOK, report)
}

// handleBatchMatch scores one resume against several job descriptions
// concurrently and returns the reports in request order.
func (s *Server) handleBatchMatch(w http.ResponseWriter, r *http.Request) {
	var req BatchMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if len(req.Jobs) > maxBatchJobs {
		s.errorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("too many jobs in batch: %d (max %d)", len(req.Jobs), maxBatchJobs))
		return
	}

	results := make([]BatchMatchResult, len(req.Jobs))

	g, _ := errgroup.WithContext(r.Context())
	g.SetLimit(4)
	for i, job := range req.Jobs {
		g.Go(func() error {
			results[i] = BatchMatchResult{
				Name:   job.Name,
				Report: matching.Report(req.ResumeText, job.JobText),
			}
			return nil
		})
	}
	// Scoring never fails; the group is used for bounded concurrency.
	_ = g.Wait()

	s.jsonResponse(w, http.StatusOK, map[string]any{"results": results})
}
