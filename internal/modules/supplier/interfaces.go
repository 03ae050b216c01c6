package supplier

import (
	"context"

	"weddingdesk/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, s *domain.RecommendedSupplier) error
	GetByID(ctx context.Context, id int64) (*domain.RecommendedSupplier, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.RecommendedSupplier, error)
	Update(ctx context.Context, s *domain.RecommendedSupplier) error
	Delete(ctx context.Context, id int64) error
}
