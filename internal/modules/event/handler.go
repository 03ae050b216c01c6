package event

import (
	"net/http"
	"strconv"

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
	events := protected.Group("/events")
	{
		events.POST("", h.Create)
		events.GET("", h.List)
		events.GET("/:id", h.GetByID)
		events.PUT("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
		events.POST("/:id/suppliers/:supplierID/signoff", h.SignOffSupplier)
	}
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req SaveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Couple name and a valid wedding date are required")
		case ErrDuplicate:
			response.Error(c, http.StatusConflict, "EVENT_EXISTS", "An event for this couple and date already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create event")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"event": e})
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	events, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load events")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"events": events})
}

func (h *Handler) GetByID(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		respondEventError(c, err, "Failed to load event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": e})
}

func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req SaveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Couple name and a valid wedding date are required")
		case ErrDuplicate:
			response.Error(c, http.StatusConflict, "EVENT_EXISTS", "An event for this couple and date already exists")
		default:
			respondEventError(c, err, "Failed to update event")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"event": e})
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		respondEventError(c, err, "Failed to delete event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) SignOffSupplier(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}
	supplierID, ok := pathID(c, "supplierID")
	if !ok {
		return
	}

	var req SignOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sup, err := h.service.SignOffSupplier(c.Request.Context(), userID, eventID, supplierID, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Signing date, name and signature are required")
		case ErrSupplierNotFound:
			response.Error(c, http.StatusNotFound, "SUPPLIER_NOT_FOUND", "Supplier not found on this event")
		case ErrAlreadySigned:
			response.Error(c, http.StatusConflict, "ALREADY_SIGNED", "Supplier has already signed")
		default:
			respondEventError(c, err, "Failed to record supplier sign-off")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"supplier": sup})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func respondEventError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "EVENT_NOT_FOUND", "Event not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Event belongs to another producer")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
