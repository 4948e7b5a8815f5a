package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-match/internal/types"
)

func newTestServer() *Server {
	return &Server{
		logger:    zap.NewNop(),
		validator: validator.New(),
	}
}

const (
	testResume = "3 years experience with Python, SQL, and React. Built REST APIs and dashboards."
	testJob    = "Seeking Software Developer, 2+ years, Python, JavaScript, React, SQL, REST APIs, Git."
)

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleMatch_ReturnsReport(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s.handleMatch, MatchRequest{ResumeText: testResume, JobText: testJob})

	require.Equal(t, http.StatusOK, rec.Code)

	var report types.MatchReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Greater(t, report.Result.Overall, 0.0)
	assert.LessOrEqual(t, report.Result.Overall, 100.0)
	assert.NotEmpty(t, report.Interpretation.Level)
	assert.NotEmpty(t, report.MatchedSkills)
}

func TestHandleMatch_MissingFields(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s.handleMatch, MatchRequest{ResumeText: testResume})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error")

	rec = postJSON(t, s.handleMatch, MatchRequest{JobText: testJob})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMatch_InvalidBody(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.handleMatch(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBatchMatch_ScoresAllJobs(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s.handleBatchMatch, BatchMatchRequest{
		ResumeText: testResume,
		Jobs: []BatchJob{
			{Name: "backend", JobText: testJob},
			{Name: "frontend", JobText: "Frontend Engineer. React, JavaScript, CSS required."},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results []BatchMatchResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)

	// Order must follow the request.
	assert.Equal(t, "backend", resp.Results[0].Name)
	assert.Equal(t, "frontend", resp.Results[1].Name)
	for _, result := range resp.Results {
		require.NotNil(t, result.Report)
		assert.GreaterOrEqual(t, result.Report.Result.Overall, 0.0)
	}
}

func TestHandleBatchMatch_EmptyJobs(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s.handleBatchMatch, BatchMatchRequest{ResumeText: testResume})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBatchMatch_TooManyJobs(t *testing.T) {
	s := newTestServer()

	jobs := make([]BatchJob, maxBatchJobs+1)
	for i := range jobs {
		jobs[i] = BatchJob{JobText: testJob}
	}

	rec := postJSON(t, s.handleBatchMatch, BatchMatchRequest{ResumeText: testResume, Jobs: jobs})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "too many jobs")
}

func TestHandleBatchMatch_Deterministic(t *testing.T) {
	s := newTestServer()

	run := func() float64 {
		rec := postJSON(t, s.handleBatchMatch, BatchMatchRequest{
			ResumeText: testResume,
			Jobs:       []BatchJob{{JobText: testJob}},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Results []BatchMatchResult `json:"results"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 1)
		return resp.Results[0].Report.Result.Overall
	}

	assert.Equal(t, run(), run())
}
