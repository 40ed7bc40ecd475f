package repository

import (
	"context"

	"github.com/google/uuid"

	"specialist-directory-backend/internal/domains/platformfee/model"
)

type RepositoryInterface interface {
	// List returns fee definitions, optionally restricted to active ones.
	List(ctx context.Context, activeOnly bool) ([]*model.PlatformFee, error)

	// FindByID returns the fee or (nil, nil) when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*model.PlatformFee, error)
}
