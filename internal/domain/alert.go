package domain

import "time"

// AlertSettings is the per-producer agenda alert configuration. Phone is
// digits-only; an empty phone is a valid state meaning "no phone alerts".
// Time is always a zero-padded 24-hour "15:04" string.
type AlertSettings struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id" gorm:"uniqueIndex"`
	Phone     string    `json:"phone"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Notification type constants.
const (
	NotificationAgendaDaily = "agenda.daily"
)

// Notification is an in-app notification record, also pushed live to the
// producer's open websocket connections.
type Notification struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id" gorm:"index"`
	Type      string     `json:"type" gorm:"index"`
	Title     string     `json:"title"`
	Body      string     `json:"body" gorm:"type:text"`
	Link      string     `json:"link,omitempty"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// IsRead reports whether the notification has been read.
func (n *Notification) IsRead() bool { return n.ReadAt != nil }
