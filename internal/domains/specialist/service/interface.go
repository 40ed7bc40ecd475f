package service

import (
	"context"

	"github.com/google/uuid"

	"specialist-directory-backend/internal/domains/specialist/model"
)

type ServiceInterface interface {
	// ListSpecialists returns one page of specialists for administrative
	// consumers, honoring the caller's status filter.
	ListSpecialists(ctx context.Context, query model.ListSpecialistsQuery) (*model.ListResult, error)

	// ListPublicSpecialists is the public entry point: identical to
	// ListSpecialists except the status filter is forced to published.
	ListPublicSpecialists(ctx context.Context, query model.ListSpecialistsQuery) (*model.ListResult, error)

	GetSpecialistByID(ctx context.Context, id uuid.UUID) (*model.Specialist, error)
	CreateSpecialist(ctx context.Context, req *model.CreateSpecialistRequest) (*model.Specialist, error)
	UpdateSpecialist(ctx context.Context, id uuid.UUID, req *model.UpdateSpecialistRequest) (*model.Specialist, error)
	PublishSpecialist(ctx context.Context, id uuid.UUID, status model.SpecialistStatus) (*model.Specialist, error)
	DeleteSpecialist(ctx context.Context, id uuid.UUID) error
}
