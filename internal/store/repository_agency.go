package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/models"
)

// agencyRepository is the PostgreSQL-backed implementation of
// [AgencyRepository]. It manages tenant rows in the "agencies" table.
type agencyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAgencyRepository constructs an [AgencyRepository] backed by the provided
// database connection and logger.
func NewAgencyRepository(db *DB, logger *logger.Logger) AgencyRepository {
	logger.Debug().Msg("creating agency repository")
	return &agencyRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAgency persists a new tenant and returns the canonical database
// representation.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSlugAlreadyExists].
//   - Any other error → wrapped as "unexpected DB error".
func (r *agencyRepository) CreateAgency(ctx context.Context, agency models.Agency) (models.Agency, error) {
	log := logger.FromContext(ctx)

	agency.ID = uuid.NewString()
	row := r.db.QueryRowContext(ctx, createAgency, agency.ID, agency.Name, agency.Slug, agency.Phone, agency.Email)

	var created models.Agency
	if err := scanAgency(row, &created); err != nil {
		log.Err(err).Str("func", "*agencyRepository.CreateAgency").Str("slug", agency.Slug).Msg("error creating agency")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Agency{}, ErrSlugAlreadyExists
		default:
			return models.Agency{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// ListAgencies returns every tenant, newest first.
func (r *agencyRepository) ListAgencies(ctx context.Context) ([]models.Agency, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAgencies)
	if err != nil {
		log.Err(err).Str("func", "*agencyRepository.ListAgencies").Msg("failed to execute query for listing agencies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	agencies := make([]models.Agency, 0, 16)
	for rows.Next() {
		var agency models.Agency
		if err := scanAgency(rows, &agency); err != nil {
			log.Err(err).Str("func", "*agencyRepository.ListAgencies").Msg("failed to scan agency row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		agencies = append(agencies, agency)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*agencyRepository.ListAgencies").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return agencies, nil
}

// FindAgencyByID retrieves the tenant with the given identifier.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrAgencyNotFound].
//   - Any other error → wrapped as "unexpected DB error".
func (r *agencyRepository) FindAgencyByID(ctx context.Context, id string) (models.Agency, error) {
	log := logger.FromContext(ctx)

	var agency models.Agency
	row := r.db.QueryRowContext(ctx, findAgencyByID, id)

	if err := scanAgency(row, &agency); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Agency{}, ErrAgencyNotFound
		}

		log.Err(err).Str("func", "*agencyRepository.FindAgencyByID").Str("id", id).Msg("error finding agency")
		return models.Agency{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return agency, nil
}

// UpdateAgencyStatus flips the tenant's active flag and returns the updated
// row. Returns [ErrAgencyNotFound] when no tenant matches.
func (r *agencyRepository) UpdateAgencyStatus(ctx context.Context, id string, isActive bool) (models.Agency, error) {
	log := logger.FromContext(ctx)

	var agency models.Agency
	row := r.db.QueryRowContext(ctx, updateAgencyStatus, id, isActive)

	if err := scanAgency(row, &agency); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Agency{}, ErrAgencyNotFound
		}

		log.Err(err).Str("func", "*agencyRepository.UpdateAgencyStatus").Str("id", id).Msg("error updating agency status")
		return models.Agency{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return agency, nil
}

// UpdateAgencyBranding applies the tri-state branding fields. The UPDATE is
// built dynamically so that absent fields never touch their columns: a field
// with Set=false is skipped, Set=true with a nil value writes NULL, and
// Set=true with a concrete value writes it.
//
// When neither field is set the method degrades to a plain lookup so the
// caller still receives the current row.
func (r *agencyRepository) UpdateAgencyBranding(ctx context.Context, id string, logoUrl, primaryColor models.NullableString) (models.Agency, error) {
	log := logger.FromContext(ctx)

	if !logoUrl.Set && !primaryColor.Set {
		return r.FindAgencyByID(ctx, id)
	}

	builder := sq.Update("agencies").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, slug, phone, email, is_active, logo_url, primary_color, created_at").
		PlaceholderFormat(sq.Dollar)

	if logoUrl.Set {
		builder = builder.Set("logo_url", logoUrl.Value)
	}
	if primaryColor.Set {
		builder = builder.Set("primary_color", primaryColor.Value)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*agencyRepository.UpdateAgencyBranding").Str("id", id).Msg("failed to build branding update")
		return models.Agency{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var agency models.Agency
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := scanAgency(row, &agency); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Agency{}, ErrAgencyNotFound
		}

		log.Err(err).Str("func", "*agencyRepository.UpdateAgencyBranding").Str("id", id).Msg("error updating agency branding")
		return models.Agency{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return agency, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAgency(row rowScanner, agency *models.Agency) error {
	return row.Scan(
		&agency.ID,
		&agency.Name,
		&agency.Slug,
		&agency.Phone,
		&agency.Email,
		&agency.IsActive,
		&agency.LogoUrl,
		&agency.PrimaryColor,
		&agency.CreatedAt,
	)
}
