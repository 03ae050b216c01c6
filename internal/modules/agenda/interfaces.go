package agenda

import (
	"context"

	"weddingdesk/internal/domain"
)

// MeetingSource yields the producer's meetings for a local calendar date.
type MeetingSource interface {
	MeetingsOn(ctx context.Context, ownerID int64, date string) ([]domain.Meeting, error)
}

// EventSource yields the producer's events for a local calendar date.
type EventSource interface {
	EventsOn(ctx context.Context, ownerID int64, date string) ([]domain.Event, error)
}

// SettingsSource supplies the effective alert settings at tick time.
type SettingsSource interface {
	Load(ctx context.Context, ownerID int64) domain.AlertSettings
}

// RemoteSettings is the persisted settings record. It overwrites the local
// copy once a load resolves.
type RemoteSettings interface {
	GetByOwner(ctx context.Context, ownerID int64) (*domain.AlertSettings, error)
	Upsert(ctx context.Context, s *domain.AlertSettings) error
}

// Notifier is the desktop-notification capability: implementations report
// whether delivery is available and deliver a title/body/link. Delivery
// failure is never fatal to the scheduler.
type Notifier interface {
	Supported() bool
	Notify(ctx context.Context, userID int64, title, body, link string) error
}

// NotificationStore persists in-app notification records.
type NotificationStore interface {
	Create(ctx context.Context, n *domain.Notification) error
}
