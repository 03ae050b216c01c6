package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"weddingdesk/internal/config"
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
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	local, err := storage.Open(cfg.LocalStorePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.LocalStorePath).Msg("local store unavailable")
	}

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	supplierRepo := repository.NewRecommendedSupplierRepository(db)
	alertRepo := repository.NewAlertSettingsRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, jwtService)
	authHandler := auth.NewHandler(authService)

	eventService := event.NewService(eventRepo)
	eventHandler := event.NewHandler(eventService)

	meetingService := meeting.NewService(meetingRepo)
	meetingHandler := meeting.NewHandler(meetingService)

	supplierService := supplier.NewService(supplierRepo)
	supplierHandler := supplier.NewHandler(supplierService)

	signoffService := signoff.NewService(eventService)
	signoffHandler := signoff.NewHandler(signoffService)

	draftStore := draft.NewStore(local, log)
	draftHandler := draft.NewHandler(draftStore, eventService)

	settingsService := agenda.NewSettingsService(local, alertRepo, log)
	hub := agenda.NewHub()
	notifier := agenda.NewInAppNotifier(notificationRepo, hub, log)

	manager := agenda.NewManager(context.Background(), func(ownerID int64) *agenda.Scheduler {
		return agenda.NewScheduler(agenda.Config{
			OwnerID:  ownerID,
			Interval: cfg.AlertInterval,
		}, meetingService, eventService, settingsService, notifier, log)
	})
	defer manager.Close()
	defer hub.Close()

	agendaHandler := agenda.NewHandler(settingsService, manager, notificationRepo, hub, log)

	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(jwtService))

		authHandler.RegisterRoutes(v1, protected)
		eventHandler.RegisterRoutes(protected)
		meetingHandler.RegisterRoutes(protected)
		supplierHandler.RegisterRoutes(protected)
		signoffHandler.RegisterRoutes(protected)
		draftHandler.RegisterRoutes(protected)
		agendaHandler.RegisterRoutes(protected)
	}

	log.Info().Str("port", cfg.Port).Msg("weddingdesk listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
