package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	mediamodel "specialist-directory-backend/internal/domains/media/model"
	feemodel "specialist-directory-backend/internal/domains/platformfee/model"
	"specialist-directory-backend/internal/domains/specialist/model"
)

// sortColumns whitelists the ORDER BY targets. The query DTO validates the
// same set; the map keeps a stray value out of the SQL either way.
var sortColumns = map[string]string{
	model.SortByCreatedAt: "created_at",
	model.SortByName:      "name",
	model.SortByUpdatedAt: "updated_at",
}

const specialistColumns = `id, name, description, status, contact_email, contact_phone, website_url, logo_id, published_at, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanSpecialist(row pgx.Row) (*model.Specialist, error) {
	var s model.Specialist
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.Status,
		&s.ContactEmail,
		&s.ContactPhone,
		&s.WebsiteURL,
		&s.LogoID,
		&s.PublishedAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns one page of specialists plus the total match count. The
// relations of every specialist on the page are loaded in three batched
// queries instead of one round trip per row.
func (r *postgresRepository) List(ctx context.Context, query model.ListSpecialistsQuery) ([]*model.Specialist, int, error) {
	var clauses []string
	var args []interface{}

	if status := query.StatusFilter(); status != nil {
		args = append(args, *status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}

	if query.Search != "" {
		args = append(args, "%"+query.Search+"%")
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM specialists` + where

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count specialists: %w", err)
	}

	direction := "DESC"
	if query.SortOrder == "ASC" {
		direction = "ASC"
	}
	sortColumn, ok := sortColumns[query.SortBy]
	if !ok {
		sortColumn = "created_at"
	}

	args = append(args, query.Limit, query.Offset())
	listQuery := fmt.Sprintf(
		`SELECT %s FROM specialists%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		specialistColumns, where, sortColumn, direction, len(args)-1, len(args),
	)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list specialists: %w", err)
	}
	defer rows.Close()

	var specialists []*model.Specialist
	for rows.Next() {
		s, err := scanSpecialist(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan specialist row: %w", err)
		}
		specialists = append(specialists, s)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating specialist rows: %w", err)
	}

	if err := r.loadRelations(ctx, specialists); err != nil {
		return nil, 0, err
	}

	return specialists, total, nil
}

// FindByID loads the full aggregate graph for one specialist.
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Specialist, error) {
	query := `SELECT ` + specialistColumns + ` FROM specialists WHERE id = $1`

	s, err := scanSpecialist(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get specialist by id: %w", err)
	}

	if err := r.loadRelations(ctx, []*model.Specialist{s}); err != nil {
		return nil, err
	}

	return s, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*model.Specialist, error) {
	query := `SELECT ` + specialistColumns + ` FROM specialists WHERE contact_email = $1`

	s, err := scanSpecialist(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get specialist by email: %w", err)
	}

	return s, nil
}

// loadRelations populates offerings (with fee reference), logo and media
// for the given specialists.
func (r *postgresRepository) loadRelations(ctx context.Context, specialists []*model.Specialist) error {
	if len(specialists) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(specialists))
	byID := make(map[uuid.UUID]*model.Specialist, len(specialists))
	for i, s := range specialists {
		ids[i] = s.ID
		byID[s.ID] = s
		// Relations default to empty collections, not null, on the wire.
		s.ServiceOfferings = []model.ServiceOffering{}
		s.Media = []mediamodel.Media{}
	}

	if err := r.loadOfferings(ctx, ids, byID); err != nil {
		return err
	}
	if err := r.loadMedia(ctx, ids, byID); err != nil {
		return err
	}
	return r.loadLogos(ctx, specialists)
}

func (r *postgresRepository) loadOfferings(ctx context.Context, ids []uuid.UUID, byID map[uuid.UUID]*model.Specialist) error {
	query := `
    SELECT
      so.id, so.specialist_id, so.service_name, so.service_type, so.description, so.platform_fee_id,
      so.created_at, so.updated_at,
      pf.id, pf.fee_name, pf.fee_percentage, pf.fee_fixed_amount, pf.is_active, pf.created_at, pf.updated_at
    FROM service_offerings so
    LEFT JOIN platform_fee pf ON pf.id = so.platform_fee_id
    WHERE so.specialist_id = ANY($1)
    ORDER BY so.created_at ASC
  `

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load service offerings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var o model.ServiceOffering

		// The joined fee columns are all NULL when the offering carries no
		// fee reference, so every one scans through a pointer.
		var feeID *uuid.UUID
		var feeName *string
		var feePercentage, feeFixedAmount *decimal.Decimal
		var feeActive *bool
		var feeCreatedAt, feeUpdatedAt *time.Time

		err := rows.Scan(
			&o.ID,
			&o.SpecialistID,
			&o.ServiceName,
			&o.ServiceType,
			&o.Description,
			&o.PlatformFeeID,
			&o.CreatedAt,
			&o.UpdatedAt,
			&feeID,
			&feeName,
			&feePercentage,
			&feeFixedAmount,
			&feeActive,
			&feeCreatedAt,
			&feeUpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to scan service offering row: %w", err)
		}

		o.PlatformFee = joinedFee(feeID, feeName, feePercentage, feeFixedAmount, feeActive, feeCreatedAt, feeUpdatedAt)

		if s, ok := byID[o.SpecialistID]; ok {
			s.ServiceOfferings = append(s.ServiceOfferings, o)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating service offering rows: %w", err)
	}

	return nil
}

// joinedFee assembles the fee reference from the LEFT JOIN columns. A NULL
// join (no fee id) yields nil.
func joinedFee(id *uuid.UUID, name *string, percentage, fixedAmount *decimal.Decimal, active *bool, createdAt, updatedAt *time.Time) *feemodel.PlatformFee {
	if id == nil {
		return nil
	}

	fee := &feemodel.PlatformFee{
		ID:             *id,
		FeeName:        *name,
		FeePercentage:  percentage,
		FeeFixedAmount: fixedAmount,
		IsActive:       *active,
	}
	if createdAt != nil {
		fee.CreatedAt = *createdAt
	}
	if updatedAt != nil {
		fee.UpdatedAt = *updatedAt
	}
	return fee
}

func (r *postgresRepository) loadMedia(ctx context.Context, ids []uuid.UUID, byID map[uuid.UUID]*model.Specialist) error {
	query := `
    SELECT id, specialist_id, file_name, file_url, file_type, file_size, media_type, uploaded_at
    FROM media
    WHERE specialist_id = ANY($1)
    ORDER BY uploaded_at ASC
  `

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load media: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m mediamodel.Media
		err := rows.Scan(
			&m.ID,
			&m.SpecialistID,
			&m.FileName,
			&m.FileURL,
			&m.FileType,
			&m.FileSize,
			&m.MediaType,
			&m.UploadedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to scan media row: %w", err)
		}

		if m.SpecialistID != nil {
			if s, ok := byID[*m.SpecialistID]; ok {
				s.Media = append(s.Media, m)
			}
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating media rows: %w", err)
	}

	return nil
}

func (r *postgresRepository) loadLogos(ctx context.Context, specialists []*model.Specialist) error {
	var logoIDs []uuid.UUID
	for _, s := range specialists {
		if s.LogoID != nil {
			logoIDs = append(logoIDs, *s.LogoID)
		}
	}
	if len(logoIDs) == 0 {
		return nil
	}

	query := `
    SELECT id, specialist_id, file_name, file_url, file_type, file_size, media_type, uploaded_at
    FROM media
    WHERE id = ANY($1)
  `

	rows, err := r.pool.Query(ctx, query, logoIDs)
	if err != nil {
		return fmt.Errorf("failed to load logos: %w", err)
	}
	defer rows.Close()

	logos := make(map[uuid.UUID]*mediamodel.Media, len(logoIDs))
	for rows.Next() {
		var m mediamodel.Media
		err := rows.Scan(
			&m.ID,
			&m.SpecialistID,
			&m.FileName,
			&m.FileURL,
			&m.FileType,
			&m.FileSize,
			&m.MediaType,
			&m.UploadedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to scan logo row: %w", err)
		}
		logos[m.ID] = &m
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating logo rows: %w", err)
	}

	for _, s := range specialists {
		if s.LogoID != nil {
			s.Logo = logos[*s.LogoID]
		}
	}

	return nil
}

func (r *postgresRepository) CreateWithTx(ctx context.Context, tx pgx.Tx, specialist *model.Specialist) error {
	query := `
    INSERT INTO specialists (id, name, description, status, contact_email, contact_phone, website_url, logo_id, published_at, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
  `

	_, err := tx.Exec(ctx, query,
		specialist.ID,
		specialist.Name,
		specialist.Description,
		specialist.Status,
		specialist.ContactEmail,
		specialist.ContactPhone,
		specialist.WebsiteURL,
		specialist.LogoID,
		specialist.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create specialist: %w", err)
	}

	return nil
}

func (r *postgresRepository) UpdateWithTx(ctx context.Context, tx pgx.Tx, specialist *model.Specialist) error {
	query := `
    UPDATE specialists
    SET name = $1, description = $2, status = $3, contact_email = $4, contact_phone = $5,
        website_url = $6, logo_id = $7, published_at = $8, updated_at = NOW()
    WHERE id = $9
  `

	result, err := tx.Exec(ctx, query,
		specialist.Name,
		specialist.Description,
		specialist.Status,
		specialist.ContactEmail,
		specialist.ContactPhone,
		specialist.WebsiteURL,
		specialist.LogoID,
		specialist.PublishedAt,
		specialist.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update specialist: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrSpecialistNotFound
	}

	return nil
}

func (r *postgresRepository) DeleteWithTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	result, err := tx.Exec(ctx, `DELETE FROM specialists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete specialist: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrSpecialistNotFound
	}

	return nil
}

func (r *postgresRepository) CreateOfferingWithTx(ctx context.Context, tx pgx.Tx, offering *model.ServiceOffering) error {
	query := `
    INSERT INTO service_offerings (id, specialist_id, service_name, service_type, description, platform_fee_id, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
  `

	_, err := tx.Exec(ctx, query,
		offering.ID,
		offering.SpecialistID,
		offering.ServiceName,
		offering.ServiceType,
		offering.Description,
		offering.PlatformFeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to create service offering: %w", err)
	}

	return nil
}

func (r *postgresRepository) UpdateOfferingWithTx(ctx context.Context, tx pgx.Tx, offering *model.ServiceOffering) error {
	query := `
    UPDATE service_offerings
    SET service_name = $1, service_type = $2, description = $3, platform_fee_id = $4, updated_at = NOW()
    WHERE id = $5 AND specialist_id = $6
  `

	_, err := tx.Exec(ctx, query,
		offering.ServiceName,
		offering.ServiceType,
		offering.Description,
		offering.PlatformFeeID,
		offering.ID,
		offering.SpecialistID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service offering: %w", err)
	}

	return nil
}

func (r *postgresRepository) DeleteOfferingsWithTx(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := tx.Exec(ctx, `DELETE FROM service_offerings WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("failed to delete service offerings: %w", err)
	}

	return nil
}

func (r *postgresRepository) DeleteOfferingsBySpecialistWithTx(ctx context.Context, tx pgx.Tx, specialistID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM service_offerings WHERE specialist_id = $1`, specialistID); err != nil {
		return fmt.Errorf("failed to delete specialist offerings: %w", err)
	}

	return nil
}
