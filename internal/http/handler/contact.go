package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ashara.health/site/internal/contact"
	"ashara.health/site/internal/http/dto"
)

type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(service contact.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid contact request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.service.Submit(ctx, contact.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		var vErr *contact.ErrValidation
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, dto.ContactValidationResponse{
				Error:   "Validation failed",
				Details: vErr.Fields,
			})
			return
		}
		slog.ErrorContext(ctx, "failed to process contact submission", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ContactErrorResponse{
			Error:   "Internal server error",
			Message: "Failed to send message. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ContactSuccessResponse{
		Success: true,
		Message: "Message sent successfully! We'll get back to you soon.",
	})
}

// MethodNotAllowed answers reads on the submission endpoint; the form only
// ever posts.
func (h *ContactHandler) MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}
