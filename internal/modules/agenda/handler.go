package agenda

import (
	"errors"
	"net/http"
	"strconv"

	"weddingdesk/internal/pkg/response"
	"weddingdesk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

type Handler struct {
	settings      *SettingsService
	manager       *Manager
	notifications *repository.NotificationRepository
	hub           *Hub
	upgrader      websocket.Upgrader
	log           zerolog.Logger
}

func NewHandler(settings *SettingsService, manager *Manager, notifications *repository.NotificationRepository, hub *Hub, log zerolog.Logger) *Handler {
	return &Handler{
		settings:      settings,
		manager:       manager,
		notifications: notifications,
		hub:           hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser origin checks are handled by the CORS layer.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log.With().Str("component", "agenda-handler").Logger(),
	}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	alerts := protected.Group("/alerts")
	{
		alerts.POST("/enable", h.Enable)
		alerts.POST("/disable", h.Disable)
		alerts.GET("/settings", h.GetSettings)
		alerts.PUT("/settings", h.SaveSettings)
		alerts.GET("/today", h.Today)
		alerts.GET("/pending", h.PendingAlert)
		alerts.POST("/send", h.ConsumeAlert)
		alerts.GET("/ws", h.Stream)
	}

	notifs := protected.Group("/notifications")
	{
		notifs.GET("", h.ListNotifications)
		notifs.POST("/:id/read", h.MarkNotificationRead)
	}
}

// Enable starts the producer's agenda scheduler. Safe to call repeatedly;
// the first call per device also accounts for the one-time permission
// prompt.
func (h *Handler) Enable(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	h.manager.Enable(userID)
	alreadyPrompted := h.settings.MarkPrompted(userID)

	response.Success(c, http.StatusOK, gin.H{
		"enabled":  true,
		"prompted": !alreadyPrompted,
	})
}

func (h *Handler) Disable(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	h.manager.Disable(userID)
	response.Success(c, http.StatusOK, gin.H{"enabled": false})
}

func (h *Handler) GetSettings(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	s := h.settings.Load(c.Request.Context(), userID)
	response.Success(c, http.StatusOK, gin.H{
		"phone": s.Phone,
		"time":  s.Time,
	})
}

type saveSettingsRequest struct {
	Phone string `json:"phone"`
	Time  string `json:"time"`
}

func (h *Handler) SaveSettings(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req saveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	s, err := h.settings.Save(c.Request.Context(), userID, req.Phone, req.Time)
	if err != nil {
		if errors.Is(err, ErrRemoteSync) {
			// Local save succeeded; report the degraded state, not a failure.
			response.Success(c, http.StatusOK, gin.H{
				"phone":  s.Phone,
				"time":   s.Time,
				"synced": false,
			})
			return
		}
		response.Error(c, http.StatusInternalServerError, "SETTINGS_SAVE_FAILED", "Could not save alert settings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"phone":  s.Phone,
		"time":   s.Time,
		"synced": true,
	})
}

// Today returns the current day's agenda summary without firing the alert.
func (h *Handler) Today(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	s := h.manager.Enable(userID)
	sum, err := s.Preview(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "AGENDA_FAILED", "Could not compute today's agenda")
		return
	}
	if sum == nil {
		response.Success(c, http.StatusOK, gin.H{"empty": true})
		return
	}
	response.Success(c, http.StatusOK, sum)
}

func (h *Handler) PendingAlert(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	s := h.manager.Get(userID)
	if s == nil {
		response.Success(c, http.StatusOK, gin.H{"link": ""})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"link": s.PendingPhoneAlert()})
}

// ConsumeAlert hands the pending deep link to the manual "send" affordance
// and clears it.
func (h *Handler) ConsumeAlert(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	s := h.manager.Get(userID)
	if s == nil {
		response.Error(c, http.StatusNotFound, "NO_PENDING_ALERT", "No pending phone alert")
		return
	}
	link := s.TakePendingPhoneAlert()
	if link == "" {
		response.Error(c, http.StatusNotFound, "NO_PENDING_ALERT", "No pending phone alert")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"link": link})
}

// Stream upgrades to a websocket and keeps the connection registered until
// the client goes away. Connecting also enables the scheduler: an attached
// client means the producer is authenticated and ready.
func (h *Handler) Stream(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.manager.Enable(userID)
	connID := h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID, connID)

	// Drain control frames; the stream is push-only.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) ListNotifications(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	items, err := h.notifications.GetByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not load notifications")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notifications": items})
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	if err := h.notifications.MarkRead(c.Request.Context(), userID, id); err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not mark notification as read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"read": true})
}
