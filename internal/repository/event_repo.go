package repository

import (
	"context"
	"time"

	"weddingdesk/internal/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

type eventModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	OwnerID     int64     `gorm:"column:owner_id;index;uniqueIndex:idx_owner_couple_date"`
	CoupleName  string    `gorm:"column:couple_name;uniqueIndex:idx_owner_couple_date"`
	WeddingDate string    `gorm:"column:wedding_date;index;uniqueIndex:idx_owner_couple_date"`
	Hall        string    `gorm:"column:hall"`
	Address     string    `gorm:"column:address"`
	GuestCount  *int      `gorm:"column:guest_count"`
	Budget      *float64  `gorm:"column:budget"`
	Notes       *string   `gorm:"column:notes;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`

	Suppliers []supplierModel `gorm:"foreignKey:EventID"`
}

func (eventModel) TableName() string { return "events" }

type supplierModel struct {
	ID           int64    `gorm:"column:id;primaryKey"`
	EventID      int64    `gorm:"column:event_id;index"`
	Role         string   `gorm:"column:role"`
	Name         string   `gorm:"column:name"`
	Phone        string   `gorm:"column:phone"`
	Hours        *float64 `gorm:"column:hours"`
	TotalPayment *float64 `gorm:"column:total_payment"`
	Deposit      *float64 `gorm:"column:deposit"`
	Balance      *float64 `gorm:"column:balance"`

	HasSigned                bool     `gorm:"column:has_signed"`
	PaymentReceivedDate      string   `gorm:"column:payment_received_date"`
	PaymentReceivedName      string   `gorm:"column:payment_received_name"`
	PaymentReceivedSignature string   `gorm:"column:payment_received_signature;type:text"`
	PaymentReceivedHours     *float64 `gorm:"column:payment_received_hours"`
	PaymentReceivedAmount    *float64 `gorm:"column:payment_received_amount"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (supplierModel) TableName() string { return "event_suppliers" }

// toDomainEvent is the total decoding function for event rows: every nullable
// column maps to a documented fallback (empty string / nil pointer).
func toDomainEvent(m eventModel) *domain.Event {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	suppliers := make([]domain.EventSupplier, 0, len(m.Suppliers))
	for _, sm := range m.Suppliers {
		suppliers = append(suppliers, toDomainSupplier(sm))
	}

	return &domain.Event{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		CoupleName:  m.CoupleName,
		WeddingDate: m.WeddingDate,
		Hall:        m.Hall,
		Address:     m.Address,
		GuestCount:  m.GuestCount,
		Budget:      m.Budget,
		Notes:       notes,
		Suppliers:   suppliers,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDomainSupplier(m supplierModel) domain.EventSupplier {
	return domain.EventSupplier{
		ID:           m.ID,
		EventID:      m.EventID,
		Role:         m.Role,
		Name:         m.Name,
		Phone:        m.Phone,
		Hours:        m.Hours,
		TotalPayment: m.TotalPayment,
		Deposit:      m.Deposit,
		Balance:      m.Balance,

		HasSigned:                m.HasSigned,
		PaymentReceivedDate:      m.PaymentReceivedDate,
		PaymentReceivedName:      m.PaymentReceivedName,
		PaymentReceivedSignature: m.PaymentReceivedSignature,
		PaymentReceivedHours:     m.PaymentReceivedHours,
		PaymentReceivedAmount:    m.PaymentReceivedAmount,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toEventModel(e *domain.Event) eventModel {
	var notes *string
	if e.Notes != "" {
		v := e.Notes
		notes = &v
	}

	suppliers := make([]supplierModel, 0, len(e.Suppliers))
	for _, s := range e.Suppliers {
		suppliers = append(suppliers, toSupplierModel(s))
	}

	return eventModel{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		CoupleName:  e.CoupleName,
		WeddingDate: e.WeddingDate,
		Hall:        e.Hall,
		Address:     e.Address,
		GuestCount:  e.GuestCount,
		Budget:      e.Budget,
		Notes:       notes,
		Suppliers:   suppliers,
	}
}

func toSupplierModel(s domain.EventSupplier) supplierModel {
	return supplierModel{
		ID:           s.ID,
		EventID:      s.EventID,
		Role:         s.Role,
		Name:         s.Name,
		Phone:        s.Phone,
		Hours:        s.Hours,
		TotalPayment: s.TotalPayment,
		Deposit:      s.Deposit,
		Balance:      s.Balance,

		HasSigned:                s.HasSigned,
		PaymentReceivedDate:      s.PaymentReceivedDate,
		PaymentReceivedName:      s.PaymentReceivedName,
		PaymentReceivedSignature: s.PaymentReceivedSignature,
		PaymentReceivedHours:     s.PaymentReceivedHours,
		PaymentReceivedAmount:    s.PaymentReceivedAmount,
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	m := toEventModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEvent(m)
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var m eventModel
	tx := r.db.WithContext(ctx).Preload("Suppliers").First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEvent(m), nil
}

func (r *EventRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Event, error) {
	var rows []eventModel
	tx := r.db.WithContext(ctx).
		Preload("Suppliers").
		Where("owner_id = ?", ownerID).
		Order("wedding_date ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Event, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEvent(m))
	}
	return out, nil
}

func (r *EventRepository) GetByOwnerAndDate(ctx context.Context, ownerID int64, date string) ([]domain.Event, error) {
	var rows []eventModel
	tx := r.db.WithContext(ctx).
		Preload("Suppliers").
		Where("owner_id = ? AND wedding_date = ?", ownerID, date).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Event, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEvent(m))
	}
	return out, nil
}

// Update rewrites the event row and replaces its supplier list wholesale.
// The supplier list is authoritative at save time; reconciliation happens in
// the service layer, not by merging deltas here.
func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toEventModel(e)
		suppliers := m.Suppliers
		m.Suppliers = nil

		if err := tx.Model(&eventModel{}).Where("id = ?", m.ID).Updates(map[string]any{
			"couple_name":  m.CoupleName,
			"wedding_date": m.WeddingDate,
			"hall":         m.Hall,
			"address":      m.Address,
			"guest_count":  m.GuestCount,
			"budget":       m.Budget,
			"notes":        m.Notes,
		}).Error; err != nil {
			return err
		}

		if err := tx.Where("event_id = ?", m.ID).Delete(&supplierModel{}).Error; err != nil {
			return err
		}
		for i := range suppliers {
			suppliers[i].ID = 0
			suppliers[i].EventID = m.ID
			if err := tx.Create(&suppliers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&supplierModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&eventModel{}, id).Error
	})
}

func (r *EventRepository) GetSupplierByID(ctx context.Context, eventID, supplierID int64) (*domain.EventSupplier, error) {
	var m supplierModel
	tx := r.db.WithContext(ctx).Where("id = ? AND event_id = ?", supplierID, eventID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	s := toDomainSupplier(m)
	return &s, nil
}

// MergeSupplierSignOff writes the sign-off payload into the supplier row
// without touching the rest of the record.
func (r *EventRepository) MergeSupplierSignOff(ctx context.Context, supplierID int64, s *domain.EventSupplier) error {
	return r.db.WithContext(ctx).Model(&supplierModel{}).Where("id = ?", supplierID).Updates(map[string]any{
		"has_signed":                 s.HasSigned,
		"payment_received_date":      s.PaymentReceivedDate,
		"payment_received_name":      s.PaymentReceivedName,
		"payment_received_signature": s.PaymentReceivedSignature,
		"payment_received_hours":     s.PaymentReceivedHours,
		"payment_received_amount":    s.PaymentReceivedAmount,
	}).Error
}
