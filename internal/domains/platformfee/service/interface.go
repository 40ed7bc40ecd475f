package service

import (
	"context"

	"github.com/google/uuid"

	"specialist-directory-backend/internal/domains/platformfee/model"
)

type ServiceInterface interface {
	ListActiveFees(ctx context.Context) ([]*model.PlatformFee, error)
	GetFeeByID(ctx context.Context, id uuid.UUID) (*model.PlatformFee, error)
}
