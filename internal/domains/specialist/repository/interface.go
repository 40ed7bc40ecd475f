package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"specialist-directory-backend/internal/domains/specialist/model"
)

// RepositoryInterface is the persistence contract for the specialist
// aggregate. Find methods return (nil, nil) when no row matches; mutation
// methods ending in WithTx run inside the caller's transaction so one
// aggregate mutation is a single unit of work.
type RepositoryInterface interface {
	// List returns one page of specialists with their relations loaded
	// (offerings, logo, media) plus the total match count.
	List(ctx context.Context, query model.ListSpecialistsQuery) ([]*model.Specialist, int, error)

	// FindByID loads the full aggregate: scalar row, offerings with their
	// fee reference, logo and media.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Specialist, error)

	// FindByEmail looks a specialist up by contact email (exact match).
	FindByEmail(ctx context.Context, email string) (*model.Specialist, error)

	CreateWithTx(ctx context.Context, tx pgx.Tx, specialist *model.Specialist) error
	UpdateWithTx(ctx context.Context, tx pgx.Tx, specialist *model.Specialist) error
	DeleteWithTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error

	CreateOfferingWithTx(ctx context.Context, tx pgx.Tx, offering *model.ServiceOffering) error

	// UpdateOfferingWithTx writes the merged offering row, scoped to its
	// owning specialist. An id that matches no row of that specialist is
	// a no-op.
	UpdateOfferingWithTx(ctx context.Context, tx pgx.Tx, offering *model.ServiceOffering) error

	DeleteOfferingsWithTx(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) error
	DeleteOfferingsBySpecialistWithTx(ctx context.Context, tx pgx.Tx, specialistID uuid.UUID) error
}
