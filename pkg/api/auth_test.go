package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ginTestContext(headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestExtractOrganization(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "no headers returns default tenant",
			headers:  map[string]string{},
			expected: "default",
		},
		{
			name: "X-Organization-ID is used when present",
			headers: map[string]string{
				"X-Organization-ID": "org-acme",
			},
			expected: "org-acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractOrganization(ginTestContext(tt.headers))
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExtractUser(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "no headers returns default",
			headers:  map[string]string{},
			expected: "api-client",
		},
		{
			name: "X-User-ID takes priority",
			headers: map[string]string{
				"X-User-ID":        "user-42",
				"X-Forwarded-User": "alice",
			},
			expected: "user-42",
		},
		{
			name: "X-Forwarded-User beats X-Forwarded-Email",
			headers: map[string]string{
				"X-Forwarded-User":  "alice",
				"X-Forwarded-Email": "alice@example.com",
			},
			expected: "alice",
		},
		{
			name: "X-Forwarded-Email used when no user",
			headers: map[string]string{
				"X-Forwarded-Email": "bob@example.com",
			},
			expected: "bob@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractUser(ginTestContext(tt.headers))
			assert.Equal(t, tt.expected, result)
		})
	}
}
