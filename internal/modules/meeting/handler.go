package meeting

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
	meetings := protected.Group("/meetings")
	{
		meetings.POST("", h.Create)
		meetings.GET("", h.List)
		meetings.GET("/:id", h.GetByID)
		meetings.PUT("/:id", h.Update)
		meetings.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req SaveMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Couple name, a valid date and time are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create meeting")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"meeting": m})
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	// Optional ?date=YYYY-MM-DD narrows to one day.
	if date := c.Query("date"); date != "" {
		meetings, err := h.service.MeetingsOn(c.Request.Context(), userID, date)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load meetings")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"meetings": meetings})
		return
	}

	meetings, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load meetings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"meetings": meetings})
}

func (h *Handler) GetByID(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid meeting ID")
		return
	}

	m, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		respondMeetingError(c, err, "Failed to load meeting")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"meeting": m})
}

func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid meeting ID")
		return
	}

	var req SaveMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Couple name, a valid date and time are required")
			return
		}
		respondMeetingError(c, err, "Failed to update meeting")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"meeting": m})
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid meeting ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		respondMeetingError(c, err, "Failed to delete meeting")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func respondMeetingError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "MEETING_NOT_FOUND", "Meeting not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Meeting belongs to another producer")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
