package supplier

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
	suppliers := protected.Group("/suppliers")
	{
		suppliers.POST("", h.Create)
		suppliers.GET("", h.List)
		suppliers.PUT("/:id", h.Update)
		suppliers.DELETE("/:id", h.Delete)
		suppliers.GET("/:id/as-event-supplier", h.AsEventSupplier)
	}
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req SaveSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sup, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A role or name is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create supplier")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"supplier": sup})
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	suppliers, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load suppliers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"suppliers": suppliers})
}

func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid supplier ID")
		return
	}

	var req SaveSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sup, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A role or name is required")
			return
		}
		respondSupplierError(c, err, "Failed to update supplier")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"supplier": sup})
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid supplier ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		respondSupplierError(c, err, "Failed to delete supplier")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// AsEventSupplier returns the entry shaped as a questionnaire supplier row.
func (h *Handler) AsEventSupplier(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid supplier ID")
		return
	}

	row, err := h.service.AsEventSupplier(c.Request.Context(), userID, id)
	if err != nil {
		respondSupplierError(c, err, "Failed to load supplier")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"supplier": row})
}

func respondSupplierError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "SUPPLIER_NOT_FOUND", "Supplier not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Supplier belongs to another producer")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
