package handler

import (
	"github.com/gin-gonic/gin"
	appcampaign "github.com/promokit/backend/internal/application/campaign"
)

// TrackingHandler handles public QR scan resolution
type TrackingHandler struct {
	BaseHandler
	trackingService *appcampaign.TrackingService
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(trackingService *appcampaign.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// Track handles GET /track/:trackerId. The route is public; customers land
// here from scanning a QR code.
func (h *TrackingHandler) Track(c *gin.Context) {
	token := c.Param("trackerId")
	if token == "" {
		h.NotFound(c, "Invalid or expired tracking link")
		return
	}

	result, err := h.trackingService.Scan(c.Request.Context(), appcampaign.ScanInput{
		Token:   token,
		Visitor: c.ClientIP(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
