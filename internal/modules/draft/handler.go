package draft

import (
	"context"
	"net/http"
	"strconv"

	"weddingdesk/internal/domain"
	"weddingdesk/internal/modules/event"
	"weddingdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// TotalSteps is the questionnaire's step count: couple details, suppliers,
// budget, review.
const TotalSteps = 4

// EventSource supplies the authoritative record a draft merges onto.
type EventSource interface {
	GetByID(ctx context.Context, ownerID, id int64) (*domain.Event, error)
}

type Handler struct {
	store  *Store
	events EventSource
}

func NewHandler(store *Store, events EventSource) *Handler {
	return &Handler{store: store, events: events}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	drafts := protected.Group("/drafts")
	{
		drafts.GET("/new", h.OpenNew)
		drafts.PUT("/new", h.SaveNew)
		drafts.DELETE("/new", h.DiscardNew)
		drafts.GET("/events/:id", h.OpenForEvent)
		drafts.PUT("/events/:id", h.SaveForEvent)
		drafts.DELETE("/events/:id", h.DiscardForEvent)
	}
}

// OpenNew restores the blank-questionnaire draft over empty defaults.
func (h *Handler) OpenNew(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	d := h.store.Open(NewDraftKey(userID), Draft{Form: map[string]string{}}, TotalSteps)
	response.Success(c, http.StatusOK, gin.H{"draft": d})
}

// SaveNew autosaves the blank-questionnaire draft. Storage failures are
// swallowed; the editor must never block on a full disk.
func (h *Handler) SaveNew(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var d Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	h.store.Autosave(NewDraftKey(userID), d)
	response.Success(c, http.StatusOK, gin.H{"saved": true})
}

// DiscardNew drops the draft after a final save.
func (h *Handler) DiscardNew(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	h.store.Discard(NewDraftKey(userID))
	response.Success(c, http.StatusOK, gin.H{"discarded": true})
}

// OpenForEvent merges the stored draft over a baseline computed from the
// authoritative event record. Draft values win per field.
func (h *Handler) OpenForEvent(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	eventID, ok := h.pathEventID(c)
	if !ok {
		return
	}

	e, err := h.events.GetByID(c.Request.Context(), userID, eventID)
	if err != nil {
		respondDraftError(c, err)
		return
	}

	d := h.store.Open(EventDraftKey(userID, eventID), FromEvent(e), TotalSteps)
	response.Success(c, http.StatusOK, gin.H{"draft": d})
}

func (h *Handler) SaveForEvent(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	eventID, ok := h.pathEventID(c)
	if !ok {
		return
	}

	var d Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	h.store.Autosave(EventDraftKey(userID, eventID), d)
	response.Success(c, http.StatusOK, gin.H{"saved": true})
}

func (h *Handler) DiscardForEvent(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	eventID, ok := h.pathEventID(c)
	if !ok {
		return
	}

	h.store.Discard(EventDraftKey(userID, eventID))
	response.Success(c, http.StatusOK, gin.H{"discarded": true})
}

func (h *Handler) pathEventID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid event ID")
		return 0, false
	}
	return id, true
}

func respondDraftError(c *gin.Context, err error) {
	switch err {
	case event.ErrNotFound:
		response.Error(c, http.StatusNotFound, "EVENT_NOT_FOUND", "Event not found")
	case event.ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Event belongs to another producer")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to open draft")
	}
}

// FromEvent renders the authoritative record as the editor baseline: every
// field as its display string, numeric fields empty when unset.
func FromEvent(e *domain.Event) Draft {
	form := map[string]string{
		"couple_name":  e.CoupleName,
		"wedding_date": e.WeddingDate,
		"hall":         e.Hall,
		"address":      e.Address,
		"budget":       event.FormatAmount(e.Budget),
		"notes":        e.Notes,
	}
	if e.GuestCount != nil {
		form["guest_count"] = strconv.Itoa(*e.GuestCount)
	} else {
		form["guest_count"] = ""
	}

	suppliers := make([]SupplierForm, 0, len(e.Suppliers))
	for _, s := range e.Suppliers {
		suppliers = append(suppliers, SupplierForm{
			Role:         s.Role,
			Name:         s.Name,
			Phone:        s.Phone,
			Hours:        event.FormatAmount(s.Hours),
			TotalPayment: event.FormatAmount(s.TotalPayment),
			Deposit:      event.FormatAmount(s.Deposit),
		})
	}

	return Draft{Form: form, Suppliers: suppliers}
}
