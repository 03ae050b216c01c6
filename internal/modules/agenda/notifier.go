package agenda

import (
	"context"
	"time"

	"weddingdesk/internal/domain"

	"github.com/rs/zerolog"
)

// InAppNotifier persists notifications and pushes them to the producer's
// open websocket connections. Push is best-effort; the stored record is the
// durable copy.
type InAppNotifier struct {
	store NotificationStore
	hub   *Hub
	log   zerolog.Logger
}

func NewInAppNotifier(store NotificationStore, hub *Hub, log zerolog.Logger) *InAppNotifier {
	return &InAppNotifier{
		store: store,
		hub:   hub,
		log:   log.With().Str("component", "notifier").Logger(),
	}
}

func (n *InAppNotifier) Supported() bool { return true }

func (n *InAppNotifier) Notify(ctx context.Context, userID int64, title, body, link string) error {
	rec := &domain.Notification{
		UserID:    userID,
		Type:      domain.NotificationAgendaDaily,
		Title:     title,
		Body:      body,
		Link:      link,
		CreatedAt: time.Now(),
	}
	if err := n.store.Create(ctx, rec); err != nil {
		return err
	}

	if n.hub != nil && !n.hub.SendToUser(userID, rec) {
		n.log.Debug().Int64("user_id", userID).Msg("no live connection, notification stored only")
	}
	return nil
}
