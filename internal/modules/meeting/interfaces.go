package meeting

import (
	"context"

	"weddingdesk/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, m *domain.Meeting) error
	GetByID(ctx context.Context, id int64) (*domain.Meeting, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Meeting, error)
	GetByOwnerAndDate(ctx context.Context, ownerID int64, date string) ([]domain.Meeting, error)
	Update(ctx context.Context, m *domain.Meeting) error
	Delete(ctx context.Context, id int64) error
}
