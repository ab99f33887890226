package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ashara.health/site/internal/availability"
	"ashara.health/site/internal/http/dto"
)

const (
	defaultAvailabilityDays = 30
	maxAvailabilityDays     = 90
)

type AvailabilityHandler struct {
	provider availability.Provider
}

func NewAvailabilityHandler(provider availability.Provider) *AvailabilityHandler {
	return &AvailabilityHandler{provider: provider}
}

func (h *AvailabilityHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	days := defaultAvailabilityDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = min(parsed, maxAvailabilityDays)
	}

	slots, err := h.provider.Slots(ctx, time.Now(), days)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load availability", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load availability"})
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{Days: slots})
}
