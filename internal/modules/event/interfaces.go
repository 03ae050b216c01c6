package event

import (
	"context"

	"weddingdesk/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Event, error)
	GetByOwnerAndDate(ctx context.Context, ownerID int64, date string) ([]domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id int64) error
	GetSupplierByID(ctx context.Context, eventID, supplierID int64) (*domain.EventSupplier, error)
	MergeSupplierSignOff(ctx context.Context, supplierID int64, s *domain.EventSupplier) error
}
