package service

import (
	"context"

	"github.com/google/uuid"

	"specialist-directory-backend/internal/domains/media/model"
	"specialist-directory-backend/internal/domains/media/repository"
)

// mediaService manages media metadata records. Binary storage is out of
// scope; callers upload elsewhere and register the resulting URL here.
type mediaService struct {
	repo repository.RepositoryInterface
}

func NewMediaService(repo repository.RepositoryInterface) ServiceInterface {
	return &mediaService{repo: repo}
}

func (s *mediaService) RegisterMedia(ctx context.Context, req *model.RegisterMediaRequest) (*model.Media, error) {
	media := &model.Media{
		ID:           uuid.New(),
		SpecialistID: req.SpecialistID,
		FileName:     req.FileName,
		FileURL:      req.FileURL,
		FileType:     req.FileType,
		FileSize:     req.FileSize,
		MediaType:    model.MediaType(req.MediaType),
	}

	return s.repo.Create(ctx, media)
}

func (s *mediaService) GetMediaByID(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	media, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, model.ErrMediaNotFound
	}
	return media, nil
}
