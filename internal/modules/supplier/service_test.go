package supplier

import (
	"context"
	"testing"

	"weddingdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) Create(ctx context.Context, s *domain.RecommendedSupplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplierRepository) GetByID(ctx context.Context, id int64) (*domain.RecommendedSupplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecommendedSupplier), args.Error(1)
}

func (m *MockSupplierRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.RecommendedSupplier, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecommendedSupplier), args.Error(1)
}

func (m *MockSupplierRepository) Update(ctx context.Context, s *domain.RecommendedSupplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreate_NormalizesPhone(t *testing.T) {
	repo := new(MockSupplierRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := NewService(repo)

	sup, err := svc.Create(context.Background(), 7, SaveSupplierRequest{
		Role:  "DJ",
		Name:  "Amit",
		Phone: "050-123-4567",
	})

	require.NoError(t, err)
	assert.Equal(t, "0501234567", sup.Phone)
}

func TestCreate_RejectsBlankRoleAndName(t *testing.T) {
	svc := NewService(new(MockSupplierRepository))

	_, err := svc.Create(context.Background(), 7, SaveSupplierRequest{
		Phone: "0501234567",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAsEventSupplier_CopiesContactFieldsOnly(t *testing.T) {
	repo := new(MockSupplierRepository)
	repo.On("GetByID", mock.Anything, int64(9)).Return(&domain.RecommendedSupplier{
		ID:      9,
		OwnerID: 7,
		Role:    "Catering",
		Name:    "Tavlin",
		Phone:   "0529999999",
		Notes:   "kosher",
	}, nil)
	svc := NewService(repo)

	row, err := svc.AsEventSupplier(context.Background(), 7, 9)
	require.NoError(t, err)

	assert.Equal(t, "Catering", row.Role)
	assert.Equal(t, "Tavlin", row.Name)
	assert.Equal(t, "0529999999", row.Phone)
	assert.Empty(t, row.TotalPayment, "payment fields start blank on the copy")
	assert.Zero(t, row.ID, "the copy is a new row, not a reference")
}

func TestAsEventSupplier_OwnershipEnforced(t *testing.T) {
	repo := new(MockSupplierRepository)
	repo.On("GetByID", mock.Anything, int64(9)).Return(&domain.RecommendedSupplier{
		ID: 9, OwnerID: 99,
	}, nil)
	svc := NewService(repo)

	_, err := svc.AsEventSupplier(context.Background(), 7, 9)
	assert.ErrorIs(t, err, ErrForbidden)
}
