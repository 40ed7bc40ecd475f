package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"specialist-directory-backend/internal/domains/platformfee/model"
)

type mockPlatformFeeRepo struct {
	mock.Mock
}

func (m *mockPlatformFeeRepo) List(ctx context.Context, activeOnly bool) ([]*model.PlatformFee, error) {
	args := m.Called(ctx, activeOnly)
	var fees []*model.PlatformFee
	if args.Get(0) != nil {
		fees = args.Get(0).([]*model.PlatformFee)
	}
	return fees, args.Error(1)
}

func (m *mockPlatformFeeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PlatformFee, error) {
	args := m.Called(ctx, id)
	var fee *model.PlatformFee
	if args.Get(0) != nil {
		fee = args.Get(0).(*model.PlatformFee)
	}
	return fee, args.Error(1)
}

func TestListActiveFees(t *testing.T) {
	ctx := context.Background()

	t.Run("queries active fees only", func(t *testing.T) {
		repo := new(mockPlatformFeeRepo)
		svc := NewPlatformFeeService(repo)

		repo.On("List", ctx, true).Return([]*model.PlatformFee{
			{ID: uuid.New(), FeeName: "Standard", IsActive: true},
		}, nil).Once()

		fees, err := svc.ListActiveFees(ctx)

		assert.NoError(t, err)
		assert.Len(t, fees, 1)
		assert.Equal(t, "Standard", fees[0].FeeName)
		repo.AssertExpectations(t)
	})

	t.Run("propagates storage errors", func(t *testing.T) {
		repo := new(mockPlatformFeeRepo)
		svc := NewPlatformFeeService(repo)

		repo.On("List", ctx, true).Return(nil, errors.New("query failed")).Once()

		fees, err := svc.ListActiveFees(ctx)

		assert.Nil(t, fees)
		assert.Error(t, err)
		repo.AssertExpectations(t)
	})
}

func TestGetFeeByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the fee", func(t *testing.T) {
		repo := new(mockPlatformFeeRepo)
		svc := NewPlatformFeeService(repo)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(&model.PlatformFee{ID: id, FeeName: "Standard"}, nil).Once()

		fee, err := svc.GetFeeByID(ctx, id)

		assert.NoError(t, err)
		assert.Equal(t, "Standard", fee.FeeName)
		repo.AssertExpectations(t)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		repo := new(mockPlatformFeeRepo)
		svc := NewPlatformFeeService(repo)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, nil).Once()

		fee, err := svc.GetFeeByID(ctx, id)

		assert.Nil(t, fee)
		assert.ErrorIs(t, err, model.ErrPlatformFeeNotFound)
		repo.AssertExpectations(t)
	})
}
