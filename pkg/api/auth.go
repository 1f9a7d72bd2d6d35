package api

import (
	"github.com/gin-gonic/gin"
)

// defaultOrganization is used when no organization header is present, so
// single-tenant deployments work without any proxy configuration.
const defaultOrganization = "default"

// extractOrganization resolves the tenant from proxy headers. Authorization
// itself happens upstream (oauth2-proxy or the API gateway); by the time a
// request reaches this service the headers are trusted.
func extractOrganization(c *gin.Context) string {
	if org := c.GetHeader("X-Organization-ID"); org != "" {
		return org
	}
	return defaultOrganization
}

// extractUser extracts the acting user from proxy headers.
// Priority: X-User-ID > X-Forwarded-User (oauth2-proxy) >
// X-Forwarded-Email (oauth2-proxy) > "api-client"
func extractUser(c *gin.Context) string {
	if user := c.GetHeader("X-User-ID"); user != "" {
		return user
	}
	if user := c.GetHeader("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.GetHeader("X-Forwarded-Email"); email != "" {
		return email
	}
	return "api-client"
}
