package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

func (h *Handler) sendEmergency(c *gin.Context) {
	var req emergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "sessionId is required")
		return
	}

	trigger := entity.EmotionData{Emotion: entity.EmotionFear}
	if snap := h.monitor.Snapshot(req.SessionID); snap.Data != nil {
		trigger = *snap.Data
	}

	record, err := h.alerts.SendEmergency(c.Request.Context(), req.SessionID, trigger)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"success": false, "error": err.Error(), "record": record})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Emergency email sent successfully", "record": record})
}

func (h *Handler) sendEmail(c *gin.Context) {
	var msg entity.EmailMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		badRequest(c, "invalid input")
		return
	}

	if err := h.alerts.SendEmail(c.Request.Context(), msg); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email sent successfully"})
}

func (h *Handler) alertHistory(c *gin.Context) {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		badRequest(c, "invalid limit")
		return
	}

	alerts, err := h.alerts.History(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
