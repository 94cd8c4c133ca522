package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the health check body
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SystemHandler handles health and liveness endpoints
type SystemHandler struct {
	BaseHandler
}

// NewSystemHandler creates a new system handler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, HealthResponse{
		Status:    "OK",
		Message:   "Campaign backend is running",
		Timestamp: time.Now().UTC(),
	})
}
