package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"specialist-directory-backend/internal/domains/media/model"
)

type RepositoryInterface interface {
	// Create inserts a media metadata record.
	Create(ctx context.Context, media *model.Media) (*model.Media, error)

	// FindByID returns the record or (nil, nil) when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Media, error)

	// DetachBySpecialistWithTx clears the specialist reference on every
	// media row pointing at the given specialist. Runs inside the caller's
	// transaction so it is atomic with the specialist delete.
	DetachBySpecialistWithTx(ctx context.Context, tx pgx.Tx, specialistID uuid.UUID) error
}
