package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"specialist-directory-backend/internal/domains/media/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, media *model.Media) (*model.Media, error) {
	query := `
    INSERT INTO media (id, specialist_id, file_name, file_url, file_type, file_size, media_type, uploaded_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
    RETURNING id, specialist_id, file_name, file_url, file_type, file_size, media_type, uploaded_at
  `

	var created model.Media
	err := r.pool.QueryRow(ctx, query,
		media.ID,
		media.SpecialistID,
		media.FileName,
		media.FileURL,
		media.FileType,
		media.FileSize,
		media.MediaType,
	).Scan(
		&created.ID,
		&created.SpecialistID,
		&created.FileName,
		&created.FileURL,
		&created.FileType,
		&created.FileSize,
		&created.MediaType,
		&created.UploadedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create media record: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	query := `
    SELECT id, specialist_id, file_name, file_url, file_type, file_size, media_type, uploaded_at
    FROM media
    WHERE id = $1
  `

	var media model.Media
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&media.ID,
		&media.SpecialistID,
		&media.FileName,
		&media.FileURL,
		&media.FileType,
		&media.FileSize,
		&media.MediaType,
		&media.UploadedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get media by id: %w", err)
	}

	return &media, nil
}

func (r *postgresRepository) DetachBySpecialistWithTx(ctx context.Context, tx pgx.Tx, specialistID uuid.UUID) error {
	query := `
    UPDATE media
    SET specialist_id = NULL
    WHERE specialist_id = $1
  `

	if _, err := tx.Exec(ctx, query, specialistID); err != nil {
		return fmt.Errorf("failed to detach media from specialist: %w", err)
	}

	return nil
}
