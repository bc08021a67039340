package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/shopx-sentinel/internal/infrastructure/vision"
	"github.com/yourusername/shopx-sentinel/internal/usecase"
)

type analyzeRequest struct {
	SessionID   string `json:"sessionId" binding:"required"`
	ImageBase64 string `json:"imageBase64" binding:"required"`
	Language    string `json:"language"`
}

type emergencyRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

func (h *Handler) analyzeEmotion(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "sessionId and imageBase64 are required")
		return
	}

	frame, err := vision.DecodeFrame(req.ImageBase64)
	if err != nil {
		respondError(c, err)
		return
	}

	outcome := h.monitor.AnalyzeFrame(c.Request.Context(), req.SessionID, frame, usecase.ParseLanguage(req.Language))

	switch outcome.Status {
	case usecase.StatusRateLimited, usecase.StatusCoolingDown:
		if outcome.RetryAt != nil {
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(outcome)))
		}
		c.JSON(http.StatusTooManyRequests, outcome)
	case usecase.StatusPaymentRequired:
		c.JSON(http.StatusPaymentRequired, outcome)
	default:
		// qolgan holatlar oxirgi natija bilan 200
		c.JSON(http.StatusOK, outcome)
	}
}

func retryAfterSeconds(outcome usecase.Outcome) int {
	secs := int(time.Until(*outcome.RetryAt).Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return secs
}

func (h *Handler) emotionSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.Snapshot(c.Param("session")))
}

func (h *Handler) resetEmotion(c *gin.Context) {
	h.monitor.Reset(c.Param("session"))
	c.Status(http.StatusNoContent)
}
