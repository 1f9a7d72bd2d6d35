package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBareServer builds a server with no database, pool or hub. Requests that
// fail validation never reach a service, so these tests exercise the guard
// paths; happy paths are covered by the integration tests that have a real
// database.
func newBareServer() *Server {
	gin.SetMode(gin.TestMode)
	return NewServer(nil, nil, nil, nil)
}

func performRequest(s *Server, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func TestRequestValidation(t *testing.T) {
	s := newBareServer()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		expectCode int
	}{
		{
			name:       "create completion rejects malformed JSON",
			method:     http.MethodPost,
			path:       "/api/v1/reports/report-1/completions",
			body:       "{not json",
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "create completion rejects empty prompt content",
			method:     http.MethodPost,
			path:       "/api/v1/reports/report-1/completions",
			body:       `{"prompt":{"content":""}}`,
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "list completions rejects non-numeric limit",
			method:     http.MethodGet,
			path:       "/api/v1/completions?limit=abc",
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "list completions rejects negative offset",
			method:     http.MethodGet,
			path:       "/api/v1/completions?offset=-1",
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "list reports rejects zero limit",
			method:     http.MethodGet,
			path:       "/api/v1/reports?limit=0",
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "create instruction rejects empty text",
			method:     http.MethodPost,
			path:       "/api/v1/instructions",
			body:       `{"text":""}`,
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "update instruction rejects malformed JSON",
			method:     http.MethodPatch,
			path:       "/api/v1/instructions/instr-1",
			body:       "{not json",
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "stream without hub returns 503",
			method:     http.MethodGet,
			path:       "/api/v1/completions/comp-1/stream",
			expectCode: http.StatusServiceUnavailable,
		},
		{
			name:       "websocket without hub returns 503",
			method:     http.MethodGet,
			path:       "/api/v1/stream/ws",
			expectCode: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown route returns 404",
			method:     http.MethodGet,
			path:       "/api/v1/nonexistent",
			expectCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performRequest(s, tt.method, tt.path, []byte(tt.body), nil)
			assert.Equal(t, tt.expectCode, rec.Code)
		})
	}
}

func TestCreateCompletionRejectsOversizedPrompt(t *testing.T) {
	s := newBareServer()

	huge := make([]byte, maxPromptChars+1)
	for i := range huge {
		huge[i] = 'a'
	}
	body := []byte(`{"prompt":{"content":"` + string(huge) + `"}}`)

	rec := performRequest(s, http.MethodPost, "/api/v1/reports/report-1/completions", body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "maximum length")
}

func TestHealthWithoutDependencies(t *testing.T) {
	s := newBareServer()

	rec := performRequest(s, http.MethodGet, "/api/v1/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestShutdownBeforeStart(t *testing.T) {
	s := newBareServer()
	assert.NoError(t, s.Shutdown(context.Background()))
}
