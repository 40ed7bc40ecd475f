package service

import (
	"context"

	"github.com/google/uuid"

	"specialist-directory-backend/internal/domains/platformfee/model"
	"specialist-directory-backend/internal/domains/platformfee/repository"
)

// platformFeeService exposes the fee schedule read-only. Fees are reference
// data; nothing in the API mutates them.
type platformFeeService struct {
	repo repository.RepositoryInterface
}

func NewPlatformFeeService(repo repository.RepositoryInterface) ServiceInterface {
	return &platformFeeService{repo: repo}
}

func (s *platformFeeService) ListActiveFees(ctx context.Context) ([]*model.PlatformFee, error) {
	return s.repo.List(ctx, true)
}

func (s *platformFeeService) GetFeeByID(ctx context.Context, id uuid.UUID) (*model.PlatformFee, error) {
	fee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fee == nil {
		return nil, model.ErrPlatformFeeNotFound
	}
	return fee, nil
}
