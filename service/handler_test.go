package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/0xalexb/objectops/recipe"
	"github.com/0xalexb/objectops/service/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, maxBodyBytes int64) http.Handler {
	t.Helper()

	program := compile(t, &recipe.Recipe{Steps: []recipe.Step{
		{Op: recipe.OpMove, From: "user.name", To: "profile.displayName"},
		{Op: recipe.OpRemove, Paths: []string{"user.password"}},
	}})

	handler, err := NewHandler(program, Config{MaxBodyBytes: maxBodyBytes})
	require.NoError(t, err)

	return handler
}

func serve(handler http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body errorBody

	err := json.Unmarshal(rec.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Equal(t, rec.Header().Get(middleware.RequestIDHeader), body.RequestID)

	return body
}

func TestNewHandler_NilProgram(t *testing.T) {
	t.Parallel()

	handler, err := NewHandler(nil, Config{})
	require.ErrorIs(t, err, ErrNilProgram)
	assert.Nil(t, handler)
}

func TestHandler_ApplyJSON(t *testing.T) {
	t.Parallel()

	rec := serve(newTestHandler(t, 0), http.MethodPost, ApplyPath, "application/json",
		`{"user": {"name": "ada", "password": "secret"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	assert.JSONEq(t, `{"user": {}, "profile": {"displayName": "ada"}}`, rec.Body.String())
}

func TestHandler_ApplyDefaultsToJSON(t *testing.T) {
	t.Parallel()

	rec := serve(newTestHandler(t, 0), http.MethodPost, ApplyPath, "", `{"user": {"name": "ada"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user": {}, "profile": {"displayName": "ada"}}`, rec.Body.String())
}

func TestHandler_ApplyYAML(t *testing.T) {
	t.Parallel()

	rec := serve(newTestHandler(t, 0), http.MethodPost, ApplyPath, "application/yaml; charset=utf-8",
		"user:\n  name: ada\n  age: 36\n")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.YAMLEq(t, "profile:\n  displayName: ada\nuser:\n  age: 36\n", rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		method      string
		path        string
		contentType string
		body        string
		status      int
		message     string
	}{
		{
			name: "wrong method", method: http.MethodGet, path: ApplyPath,
			status: http.StatusMethodNotAllowed, message: "method not allowed",
		},
		{
			name: "unknown content type", method: http.MethodPost, path: ApplyPath, contentType: "text/csv",
			body: "a,b", status: http.StatusUnsupportedMediaType, message: "unknown format",
		},
		{
			name: "undecodable body", method: http.MethodPost, path: ApplyPath, contentType: "application/json",
			body: `{"user":`, status: http.StatusBadRequest,
		},
		{
			name: "not a mapping", method: http.MethodPost, path: ApplyPath, contentType: "application/json",
			body: `[1, 2]`, status: http.StatusBadRequest, message: "not a mapping",
		},
		{
			name: "body too large", method: http.MethodPost, path: ApplyPath, contentType: "application/json",
			body: `{"user": {"name": "` + strings.Repeat("x", 64) + `"}}`, status: http.StatusRequestEntityTooLarge,
			message: "too large",
		},
		{
			name: "edit failure", method: http.MethodPost, path: ApplyPath, contentType: "application/json",
			body: `{"user": "ada"}`, status: http.StatusUnprocessableEntity,
			message: `path "user.name" is invalid at depth 0`,
		},
		{
			name: "unknown route", method: http.MethodGet, path: "/nope",
			status: http.StatusNotFound, message: "not found",
		},
		{
			name: "health wrong method", method: http.MethodPost, path: HealthPath,
			status: http.StatusMethodNotAllowed, message: "method not allowed",
		},
	}

	handler := newTestHandler(t, 48)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(handler, tc.method, tc.path, tc.contentType, tc.body)

			require.Equal(t, tc.status, rec.Code)

			body := decodeError(t, rec)
			assert.NotEmpty(t, body.Error)
			assert.Contains(t, body.Error, tc.message)
		})
	}
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	rec := serve(newTestHandler(t, 0), http.MethodGet, HealthPath, "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandler_ReusesRequestID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-id-1")

	rec := httptest.NewRecorder()

	newTestHandler(t, 0).ServeHTTP(rec, req)

	assert.Equal(t, "client-id-1", decodeError(t, rec).RequestID)
}
