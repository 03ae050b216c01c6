package repository

import (
	"context"

	"weddingdesk/internal/domain"

	"gorm.io/gorm"
)

// RecommendedSupplierRepository persists the producer's reusable contact book.
type RecommendedSupplierRepository struct {
	db *gorm.DB
}

func NewRecommendedSupplierRepository(db *gorm.DB) *RecommendedSupplierRepository {
	return &RecommendedSupplierRepository{db: db}
}

func (r *RecommendedSupplierRepository) Create(ctx context.Context, s *domain.RecommendedSupplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *RecommendedSupplierRepository) GetByID(ctx context.Context, id int64) (*domain.RecommendedSupplier, error) {
	var s domain.RecommendedSupplier
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RecommendedSupplierRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.RecommendedSupplier, error) {
	var out []domain.RecommendedSupplier
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("role ASC, name ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RecommendedSupplierRepository) Update(ctx context.Context, s *domain.RecommendedSupplier) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *RecommendedSupplierRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.RecommendedSupplier{}, id).Error
}
