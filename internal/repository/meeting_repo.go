package repository

import (
	"context"

	"weddingdesk/internal/domain"

	"gorm.io/gorm"
)

type MeetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

func (r *MeetingRepository) Create(ctx context.Context, m *domain.Meeting) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MeetingRepository) GetByID(ctx context.Context, id int64) (*domain.Meeting, error) {
	var m domain.Meeting
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MeetingRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Meeting, error) {
	var out []domain.Meeting
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date ASC, time ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MeetingRepository) GetByOwnerAndDate(ctx context.Context, ownerID int64, date string) ([]domain.Meeting, error) {
	var out []domain.Meeting
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND date = ?", ownerID, date).
		Order("time ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MeetingRepository) Update(ctx context.Context, m *domain.Meeting) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MeetingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Meeting{}, id).Error
}
