package service

import (
	"context"

	"github.com/google/uuid"

	"specialist-directory-backend/internal/domains/media/model"
)

type ServiceInterface interface {
	RegisterMedia(ctx context.Context, req *model.RegisterMediaRequest) (*model.Media, error)
	GetMediaByID(ctx context.Context, id uuid.UUID) (*model.Media, error)
}
