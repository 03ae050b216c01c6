package domain

import "time"

// Event is a wedding being produced, the top-level scheduling unit.
// Dates are stored as local calendar dates ("2006-01-02") and times of day as
// zero-padded "15:04" strings; the agenda scheduler compares them against the
// producer's wall clock, never against UTC instants.
type Event struct {
	ID          int64           `json:"id"`
	OwnerID     int64           `json:"owner_id"`
	CoupleName  string          `json:"couple_name"`
	WeddingDate string          `json:"wedding_date"`
	Hall        string          `json:"hall,omitempty"`
	Address     string          `json:"address,omitempty"`
	GuestCount  *int            `json:"guest_count,omitempty"`
	Budget      *float64        `json:"budget,omitempty"`
	Notes       string          `json:"notes,omitempty" gorm:"type:text"`
	Suppliers   []EventSupplier `json:"suppliers,omitempty" gorm:"foreignKey:EventID"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// EventSupplier is a supplier engaged for one specific event, including its
// payment sign-off state. Numeric fields are pointers so that an amount the
// producer never filled in stays omitted instead of turning into a zero.
type EventSupplier struct {
	ID           int64    `json:"id"`
	EventID      int64    `json:"event_id" gorm:"index"`
	Role         string   `json:"role"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone,omitempty"`
	Hours        *float64 `json:"hours,omitempty"`
	TotalPayment *float64 `json:"total_payment,omitempty"`
	Deposit      *float64 `json:"deposit,omitempty"`
	Balance      *float64 `json:"balance,omitempty"`

	// Sign-off: written once per signing action, advisory only.
	HasSigned                bool     `json:"has_signed"`
	PaymentReceivedDate      string   `json:"payment_received_date,omitempty"`
	PaymentReceivedName      string   `json:"payment_received_name,omitempty"`
	PaymentReceivedSignature string   `json:"payment_received_signature,omitempty" gorm:"type:text"`
	PaymentReceivedHours     *float64 `json:"payment_received_hours,omitempty"`
	PaymentReceivedAmount    *float64 `json:"payment_received_amount,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
