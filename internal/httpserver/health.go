package httpserver

import (
	"github.com/gin-gonic/gin"

	"pourpal-backoffice/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "PourPal backoffice is pouring"
	HealthVersion = "1.0.0"
	ServiceName   = "pourpal-backoffice"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once routes are mapped.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// clientConfig exposes the settings the dashboard bundle needs at runtime.
// @Summary Client configuration
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /client-config [get]
func (srv *HTTPServer) clientConfig(c *gin.Context) {
	response.OK(c, gin.H{
		"backend_api_url": srv.publicAPIURL,
	})
}
