package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"weddingdesk/internal/database"
	"weddingdesk/internal/middleware"
	"weddingdesk/internal/modules/agenda"
	"weddingdesk/internal/modules/auth"
	"weddingdesk/internal/modules/draft"
	"weddingdesk/internal/modules/event"
	"weddingdesk/internal/modules/meeting"
	"weddingdesk/internal/modules/signoff"
	"weddingdesk/internal/modules/supplier"
	jwtsvc "weddingdesk/internal/pkg/jwt"
	"weddingdesk/internal/repository"
	"weddingdesk/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type TestSuite struct {
	router  *gin.Engine
	db      *gorm.DB
	manager *agenda.Manager
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupSuite(t *testing.T) *TestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, repository.AutoMigrate(db))

	local, err := storage.Open(filepath.Join(t.TempDir(), "local.json"))
	require.NoError(t, err)

	log := zerolog.Nop()

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	supplierRepo := repository.NewRecommendedSupplierRepository(db)
	alertRepo := repository.NewAlertSettingsRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))

	eventService := event.NewService(eventRepo)
	eventHandler := event.NewHandler(eventService)

	meetingService := meeting.NewService(meetingRepo)
	meetingHandler := meeting.NewHandler(meetingService)

	supplierHandler := supplier.NewHandler(supplier.NewService(supplierRepo))
	signoffHandler := signoff.NewHandler(signoff.NewService(eventService))
	draftHandler := draft.NewHandler(draft.NewStore(local, log), eventService)

	settingsService := agenda.NewSettingsService(local, alertRepo, log)
	hub := agenda.NewHub()
	notifier := agenda.NewInAppNotifier(notificationRepo, hub, log)

	manager := agenda.NewManager(context.Background(), func(ownerID int64) *agenda.Scheduler {
		return agenda.NewScheduler(agenda.Config{
			OwnerID:  ownerID,
			Interval: time.Hour,
		}, meetingService, eventService, settingsService, notifier, log)
	})
	t.Cleanup(manager.Close)
	t.Cleanup(hub.Close)

	agendaHandler := agenda.NewHandler(settingsService, manager, notificationRepo, hub, log)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(jwtService))

	authHandler.RegisterRoutes(v1, protected)
	eventHandler.RegisterRoutes(protected)
	meetingHandler.RegisterRoutes(protected)
	supplierHandler.RegisterRoutes(protected)
	signoffHandler.RegisterRoutes(protected)
	draftHandler.RegisterRoutes(protected)
	agendaHandler.RegisterRoutes(protected)

	return &TestSuite{router: r, db: db, manager: manager}
}

func (s *TestSuite) request(t *testing.T, method, path string, body interface{}, token string) *TestResponse {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp),
		"status %d body %s", w.Code, w.Body.String())
	return &resp
}

func (s *TestSuite) registerAndLogin(t *testing.T, email string) string {
	t.Helper()

	resp := s.request(t, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":    email,
		"password": "secret-password",
		"name":     "Michal Producer",
	}, "")
	require.True(t, resp.Success, "register failed: %+v", resp.Error)

	resp = s.request(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    email,
		"password": "secret-password",
	}, "")
	require.True(t, resp.Success, "login failed: %+v", resp.Error)
	return resp.Data["token"].(string)
}

func TestFullProducerFlow(t *testing.T) {
	s := setupSuite(t)
	token := s.registerAndLogin(t, "michal@example.com")
	today := time.Now().Format("2006-01-02")

	// Two meetings and one event today.
	for _, m := range []gin.H{
		{"date": today, "time": "14:00", "couple_name": "Dana & Omer", "location": "Office"},
		{"date": today, "time": "09:00", "couple_name": "Noa & Yonatan", "location": "Cafe Greg"},
	} {
		resp := s.request(t, http.MethodPost, "/api/v1/meetings", m, token)
		require.True(t, resp.Success, "meeting create failed: %+v", resp.Error)
	}

	resp := s.request(t, http.MethodPost, "/api/v1/events", gin.H{
		"couple_name":  "Maya & Ido",
		"wedding_date": today,
		"hall":         "Gan HaPecan",
		"budget":       "1,500",
		"suppliers": []gin.H{
			{"role": "DJ", "name": "Amit Levi", "phone": "050-111-2233", "total_payment": "9,000", "deposit": "2000"},
			{"role": "", "name": "", "phone": "0529999999"},
		},
	}, token)
	require.True(t, resp.Success, "event create failed: %+v", resp.Error)

	eventData := resp.Data["event"].(map[string]interface{})
	assert.Equal(t, float64(1500), eventData["budget"])
	suppliers := eventData["suppliers"].([]interface{})
	require.Len(t, suppliers, 1, "blank role+name supplier must be dropped")
	dj := suppliers[0].(map[string]interface{})
	assert.Equal(t, "0521112233", dj["phone"])
	assert.Equal(t, float64(7000), dj["balance"], "balance derived from total minus deposit")

	// Save alert settings and read them back.
	resp = s.request(t, http.MethodPut, "/api/v1/alerts/settings", gin.H{
		"phone": "050-123-4567",
		"time":  "25:00",
	}, token)
	require.True(t, resp.Success)
	assert.Equal(t, "0501234567", resp.Data["phone"])
	assert.Equal(t, "08:00", resp.Data["time"], "invalid time falls back to the default")

	// Today's agenda preview.
	resp = s.request(t, http.MethodGet, "/api/v1/alerts/today", nil, token)
	require.True(t, resp.Success)
	assert.Equal(t, float64(2), resp.Data["meetings_count"])
	assert.Equal(t, float64(1), resp.Data["events_count"])

	msg := resp.Data["phone_message"].(string)
	first := strings.Index(msg, "09:00 Noa & Yonatan")
	second := strings.Index(msg, "14:00 Dana & Omer")
	eventAt := strings.Index(msg, "Maya & Ido")
	require.True(t, first >= 0 && second >= 0 && eventAt >= 0, "phone message: %q", msg)
	assert.Less(t, first, second, "meetings listed in ascending time order")
	assert.Less(t, second, eventAt, "events follow the meetings")
}

func TestSupplierSignatureFlow(t *testing.T) {
	s := setupSuite(t)
	token := s.registerAndLogin(t, "producer@example.com")

	resp := s.request(t, http.MethodPost, "/api/v1/events", gin.H{
		"couple_name":  "Shir & Tom",
		"wedding_date": "2026-10-20",
		"suppliers":    []gin.H{{"role": "DJ", "name": "Amit Levi"}},
	}, token)
	require.True(t, resp.Success)

	eventData := resp.Data["event"].(map[string]interface{})
	eventID := int64(eventData["id"].(float64))
	sup := eventData["suppliers"].([]interface{})[0].(map[string]interface{})
	supplierID := int64(sup["id"].(float64))

	path := fmt.Sprintf("/api/v1/events/%d/suppliers/%d/signature", eventID, supplierID)

	// No strokes drawn: the signature falls back to a textual label.
	resp = s.request(t, http.MethodPost, path, gin.H{
		"date":   "2026-10-20",
		"name":   "Amit Levi",
		"amount": "1,500",
	}, token)
	require.True(t, resp.Success, "sign-off failed: %+v", resp.Error)

	signed := resp.Data["supplier"].(map[string]interface{})
	assert.Equal(t, true, signed["has_signed"])
	assert.Equal(t, "Signed by: Amit Levi", signed["payment_received_signature"])
	assert.Equal(t, float64(1500), signed["payment_received_amount"])

	// Signing is write-once.
	resp = s.request(t, http.MethodPost, path, gin.H{
		"date": "2026-10-21",
		"name": "Someone Else",
	}, token)
	require.False(t, resp.Success)
	assert.Equal(t, "ALREADY_SIGNED", resp.Error.Code)
}

func TestOwnershipIsolation(t *testing.T) {
	s := setupSuite(t)
	tokenA := s.registerAndLogin(t, "a@example.com")
	tokenB := s.registerAndLogin(t, "b@example.com")

	resp := s.request(t, http.MethodPost, "/api/v1/events", gin.H{
		"couple_name":  "Noa & Yonatan",
		"wedding_date": "2026-06-15",
	}, tokenA)
	require.True(t, resp.Success)
	eventID := int64(resp.Data["event"].(map[string]interface{})["id"].(float64))

	resp = s.request(t, http.MethodGet, fmt.Sprintf("/api/v1/events/%d", eventID), nil, tokenB)
	require.False(t, resp.Success)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)

	resp = s.request(t, http.MethodGet, "/api/v1/events", nil, tokenB)
	require.True(t, resp.Success)
	assert.Empty(t, resp.Data["events"])
}

func TestDraftRoundTrip(t *testing.T) {
	s := setupSuite(t)
	token := s.registerAndLogin(t, "producer@example.com")

	resp := s.request(t, http.MethodPost, "/api/v1/events", gin.H{
		"couple_name":  "Noa & Yonatan",
		"wedding_date": "2026-06-15",
		"hall":         "Old Hall",
	}, token)
	require.True(t, resp.Success)
	eventID := int64(resp.Data["event"].(map[string]interface{})["id"].(float64))
	draftPath := fmt.Sprintf("/api/v1/drafts/events/%d", eventID)

	resp = s.request(t, http.MethodPut, draftPath, gin.H{
		"form":         gin.H{"hall": "Aurora"},
		"current_step": 2,
	}, token)
	require.True(t, resp.Success)

	// Reopening merges the draft over the authoritative record.
	resp = s.request(t, http.MethodGet, draftPath, nil, token)
	require.True(t, resp.Success)
	d := resp.Data["draft"].(map[string]interface{})
	form := d["form"].(map[string]interface{})
	assert.Equal(t, float64(2), d["current_step"])
	assert.Equal(t, "Aurora", form["hall"], "drafted field wins")
	assert.Equal(t, "Noa & Yonatan", form["couple_name"], "untouched field comes from the record")

	// Final save discards the draft; reopening yields the baseline again.
	resp = s.request(t, http.MethodDelete, draftPath, nil, token)
	require.True(t, resp.Success)

	resp = s.request(t, http.MethodGet, draftPath, nil, token)
	require.True(t, resp.Success)
	d = resp.Data["draft"].(map[string]interface{})
	form = d["form"].(map[string]interface{})
	assert.Equal(t, "Old Hall", form["hall"])
	assert.Equal(t, float64(0), d["current_step"])
}

func TestDuplicateEventRejected(t *testing.T) {
	s := setupSuite(t)
	token := s.registerAndLogin(t, "producer@example.com")

	body := gin.H{"couple_name": "Noa & Yonatan", "wedding_date": "2026-06-15"}
	resp := s.request(t, http.MethodPost, "/api/v1/events", body, token)
	require.True(t, resp.Success)

	resp = s.request(t, http.MethodPost, "/api/v1/events", body, token)
	require.False(t, resp.Success)
	assert.Equal(t, "EVENT_EXISTS", resp.Error.Code)
}
