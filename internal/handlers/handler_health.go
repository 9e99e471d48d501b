package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/ARLocke322/Payment-Router/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// HealthResponse is the body of the health check.
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database" example:"connected"`
	Version   string    `json:"version" example:"1.0.0"`
}

// getHealth godoc
// @Summary Service health
// @Description Reports storage connectivity and the running version
// @Tags root
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func getHealth(healthService portssvc.HealthSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		report := healthService.Check(c.Request.Context())
		status := http.StatusOK
		if report.Status != "healthy" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, HealthResponse{
			Status:    report.Status,
			Timestamp: time.Now().UTC(),
			Database:  report.Database,
			Version:   report.Version,
		})
	}
}
