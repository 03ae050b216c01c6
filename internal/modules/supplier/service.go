// Package supplier manages the producer's reusable contact book. Entries are
// copied into an event's supplier list when attached; the copy is independent
// of the directory entry afterwards.
package supplier

import (
	"context"
	"errors"
	"strings"

	"weddingdesk/internal/domain"
	"weddingdesk/internal/modules/event"
	"weddingdesk/internal/pkg/phone"

	"gorm.io/gorm"
)

type SaveSupplierRequest struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type Service struct {
	suppliers Repository
}

func NewService(suppliers Repository) *Service {
	return &Service{suppliers: suppliers}
}

func (s *Service) Create(ctx context.Context, ownerID int64, req SaveSupplierRequest) (*domain.RecommendedSupplier, error) {
	sup, err := buildSupplier(ownerID, req)
	if err != nil {
		return nil, err
	}
	if err := s.suppliers.Create(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]domain.RecommendedSupplier, error) {
	return s.suppliers.GetByOwner(ctx, ownerID)
}

func (s *Service) Update(ctx context.Context, ownerID, id int64, req SaveSupplierRequest) (*domain.RecommendedSupplier, error) {
	current, err := s.ownedSupplier(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	sup, err := buildSupplier(ownerID, req)
	if err != nil {
		return nil, err
	}
	sup.ID = id
	sup.CreatedAt = current.CreatedAt

	if err := s.suppliers.Update(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	if _, err := s.ownedSupplier(ctx, ownerID, id); err != nil {
		return err
	}
	return s.suppliers.Delete(ctx, id)
}

// AsEventSupplier renders a directory entry as a questionnaire supplier row,
// ready to append to an event's list. Payment fields start blank.
func (s *Service) AsEventSupplier(ctx context.Context, ownerID, id int64) (*event.SupplierInput, error) {
	sup, err := s.ownedSupplier(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return &event.SupplierInput{
		Role:  sup.Role,
		Name:  sup.Name,
		Phone: sup.Phone,
	}, nil
}

func (s *Service) ownedSupplier(ctx context.Context, ownerID, id int64) (*domain.RecommendedSupplier, error) {
	sup, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if sup.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return sup, nil
}

// buildSupplier applies the same keep rule as the questionnaire: an entry
// with blank role and blank name is not worth persisting.
func buildSupplier(ownerID int64, req SaveSupplierRequest) (*domain.RecommendedSupplier, error) {
	role := strings.TrimSpace(req.Role)
	name := strings.TrimSpace(req.Name)
	if role == "" && name == "" {
		return nil, ErrValidation
	}

	return &domain.RecommendedSupplier{
		OwnerID: ownerID,
		Role:    role,
		Name:    name,
		Phone:   phone.Digits(req.Phone),
		Notes:   req.Notes,
	}, nil
}
