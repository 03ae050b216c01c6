package repository

import (
	"context"
	"errors"

	"weddingdesk/internal/domain"

	"gorm.io/gorm"
)

// AlertSettingsRepository is the remote side of the alert settings store.
// The local-storage copy lives in internal/storage; this record wins once a
// load resolves.
type AlertSettingsRepository struct {
	db *gorm.DB
}

func NewAlertSettingsRepository(db *gorm.DB) *AlertSettingsRepository {
	return &AlertSettingsRepository{db: db}
}

func (r *AlertSettingsRepository) GetByOwner(ctx context.Context, ownerID int64) (*domain.AlertSettings, error) {
	var s domain.AlertSettings
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert creates the settings row on first save and overwrites it afterwards.
// Settings are never deleted, only reset to blank phone / default time.
func (r *AlertSettingsRepository) Upsert(ctx context.Context, s *domain.AlertSettings) error {
	var existing domain.AlertSettings
	err := r.db.WithContext(ctx).Where("owner_id = ?", s.OwnerID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(s).Error
		}
		return err
	}

	existing.Phone = s.Phone
	existing.Time = s.Time
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	*s = existing
	return nil
}
