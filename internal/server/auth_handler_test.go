package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-match/internal/types"
)

func newTestAuthHandler() *AuthHandler {
	svc, _ := newTestUserService()
	return NewAuthHandler(svc, newTestJWTService())
}

func authPost(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	h := newTestAuthHandler()

	rec := authPost(t, h.Register, types.CreateUserRequest{
		Name: "Dana", Email: "dana@example.com", Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "dana@example.com", resp.User.Email)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h := newTestAuthHandler()

	rec := authPost(t, h.Register, types.CreateUserRequest{
		Name: "Dana", Email: "dana@example.com", Password: "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error")
}

func TestAuthHandler_Login_RoundTrip(t *testing.T) {
	h := newTestAuthHandler()

	rec := authPost(t, h.Register, types.CreateUserRequest{
		Name: "Dana", Email: "dana@example.com", Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = authPost(t, h.Login, types.LoginRequest{
		Email: "dana@example.com", Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h := newTestAuthHandler()

	rec := authPost(t, h.Login, types.LoginRequest{
		Email: "nobody@example.com", Password: "whatever1",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
