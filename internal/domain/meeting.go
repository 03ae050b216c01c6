package domain

import "time"

// Meeting is a non-wedding-day appointment with a couple, independent of any
// Event. Date is a local "2006-01-02" string, Time a zero-padded "15:04".
type Meeting struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"owner_id"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	CoupleName string    `json:"couple_name"`
	Location   string    `json:"location,omitempty"`
	Notes      string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
