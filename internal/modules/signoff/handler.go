package signoff

import (
	"net/http"
	"strconv"

	"weddingdesk/internal/modules/event"
	"weddingdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/events/:id/suppliers/:supplierID/signature", h.Capture)
}

// Capture accepts the drawn signature strokes and records the sign-off.
func (h *Handler) Capture(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || eventID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid event ID")
		return
	}
	supplierID, err := strconv.ParseInt(c.Param("supplierID"), 10, 64)
	if err != nil || supplierID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid supplier ID")
		return
	}

	var req CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sup, err := h.service.Capture(c.Request.Context(), userID, eventID, supplierID, req)
	if err != nil {
		switch err {
		case event.ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Signing date and name are required")
		case event.ErrNotFound:
			response.Error(c, http.StatusNotFound, "EVENT_NOT_FOUND", "Event not found")
		case event.ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Event belongs to another producer")
		case event.ErrSupplierNotFound:
			response.Error(c, http.StatusNotFound, "SUPPLIER_NOT_FOUND", "Supplier not found on this event")
		case event.ErrAlreadySigned:
			response.Error(c, http.StatusConflict, "ALREADY_SIGNED", "Supplier has already signed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record signature")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"supplier": sup})
}
