package domain

import "time"

// RecommendedSupplier is a reusable contact-book entry a producer can attach
// to any event. Phone is stored digits-only.
type RecommendedSupplier struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
