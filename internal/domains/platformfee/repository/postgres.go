package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"specialist-directory-backend/internal/domains/platformfee/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context, activeOnly bool) ([]*model.PlatformFee, error) {
	query := `
    SELECT id, fee_name, fee_percentage, fee_fixed_amount, is_active, created_at, updated_at
    FROM platform_fee
  `
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list platform fees: %w", err)
	}
	defer rows.Close()

	var fees []*model.PlatformFee

	for rows.Next() {
		var fee model.PlatformFee
		err := rows.Scan(
			&fee.ID,
			&fee.FeeName,
			&fee.FeePercentage,
			&fee.FeeFixedAmount,
			&fee.IsActive,
			&fee.CreatedAt,
			&fee.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan platform fee row: %w", err)
		}
		fees = append(fees, &fee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating platform fee rows: %w", err)
	}

	return fees, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PlatformFee, error) {
	query := `
    SELECT id, fee_name, fee_percentage, fee_fixed_amount, is_active, created_at, updated_at
    FROM platform_fee
    WHERE id = $1
  `

	var fee model.PlatformFee
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&fee.ID,
		&fee.FeeName,
		&fee.FeePercentage,
		&fee.FeeFixedAmount,
		&fee.IsActive,
		&fee.CreatedAt,
		&fee.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get platform fee by id: %w", err)
	}

	return &fee, nil
}
