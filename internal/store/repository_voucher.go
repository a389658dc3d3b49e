package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/models"
)

// voucherRepository is the PostgreSQL-backed implementation of
// [VoucherRepository]. Voucher creation spans seven tables; everything is
// written inside one transaction so a constraint violation on any row leaves
// no partial voucher behind.
type voucherRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVoucherRepository constructs a [VoucherRepository] backed by the provided
// database connection and logger.
func NewVoucherRepository(db *DB, logger *logger.Logger) VoucherRepository {
	logger.Debug().Msg("creating voucher repository")
	return &voucherRepository{
		db:     db,
		logger: logger,
	}
}

// CreateVoucher persists the voucher, its flight segments, and every optional
// sub-record as one atomic operation.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrReservationCodeExists].
//   - Any other error → wrapped; the transaction is rolled back.
//
// On success the stored voucher is returned with all nested records attached.
func (r *voucherRepository) CreateVoucher(ctx context.Context, voucher models.Voucher) (models.Voucher, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*voucherRepository.CreateVoucher").Msg("failed to begin transaction")
		return models.Voucher{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	voucher.ID = uuid.NewString()
	row := tx.QueryRowContext(ctx, createVoucher, voucher.ID, voucher.AgencyID, voucher.ReservationCode, voucher.ClientName)

	var created models.Voucher
	if err := row.Scan(&created.ID, &created.AgencyID, &created.ReservationCode, &created.ClientName, &created.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*voucherRepository.CreateVoucher").
			Str("agency_id", voucher.AgencyID).
			Str("reservation_code", voucher.ReservationCode).
			Msg("error creating voucher")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Voucher{}, ErrReservationCodeExists
		default:
			return models.Voucher{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created.Flights = make([]models.Flight, 0, len(voucher.Flights))
	for _, flight := range voucher.Flights {
		flight.ID = uuid.NewString()
		flight.VoucherID = created.ID

		_, err := tx.ExecContext(ctx, createFlight,
			flight.ID, flight.VoucherID, flight.Direction, flight.SegmentOrder,
			flight.FlightNumber, flight.DepartureTime, flight.ArrivalTime,
			flight.EmbarkAirport, flight.DisembarkAirport, flight.FlightDate,
		)
		if err != nil {
			log.Err(err).Str("func", "*voucherRepository.CreateVoucher").Msg("error creating flight segment")
			return models.Voucher{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		created.Flights = append(created.Flights, flight)
	}

	if voucher.Hotel != nil {
		hotel := *voucher.Hotel
		hotel.ID = uuid.NewString()
		hotel.VoucherID = created.ID

		_, err := tx.ExecContext(ctx, createHotel,
			hotel.ID, hotel.VoucherID, hotel.HotelName, hotel.MealPlan,
			hotel.RoomType, hotel.CheckInTime, hotel.CheckOutTime,
		)
		if err != nil {
			log.Err(err).Str("func", "*voucherRepository.CreateVoucher").Msg("error creating hotel record")
			return models.Voucher{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		created.Hotel = &hotel
	}

	if voucher.Transfer != nil {
		transfer := *voucher.Transfer
		transfer.ID = uuid.NewString()
		transfer.VoucherID = created.ID

		_, err := tx.ExecContext(ctx, createTransfer, transfer.ID, transfer.VoucherID, transfer.ReceptiveName)
		if err != nil {
			log.Err(err).Str("func", "*voucherRepository.CreateVoucher").Msg("error creating transfer record")
			return models.Voucher{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		created.Transfer = &transfer
	}

	if voucher.Stopover != nil {
		stopover := *voucher.Stopover
		stopover.ID = uuid.NewString()
		stopover.VoucherID = created.ID

		_, err := tx.ExecContext(ctx, createStopover, stopover.ID, stopover.VoucherID, stopover.Location, stopover.Duration)
		if err != nil {
			log.Err(err).Str("func", "*voucherRepository.CreateVoucher").Msg("error creating stopover record")
			return models.Voucher{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		created.Stopover = &stopover
	}

	if len(voucher.Tours) > 0 {
		created.Tours = make([]models.Tour, 0, len(voucher.Tours))
		for _, tour := range voucher.Tours {
			tour.ID = uuid.NewString()
			tour.VoucherID = created.ID

			_, err := tx.ExecContext(ctx, createTour, tour.ID, tour.VoucherID, tour.Name, tour.DateTime, tour.MeetingPoint)
			if err != nil {
				log.Err(err).Str("func", "*voucherRepository.CreateVoucher").Msg("error creating tour record")
				return models.Voucher{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			created.Tours = append(created.Tours, tour)
		}
	}

	if voucher.TravelInsurance != nil {
		insurance := *voucher.TravelInsurance
		insurance.ID = uuid.NewString()
		insurance.VoucherID = created.ID

		_, err := tx.ExecContext(ctx, createTravelInsurance, insurance.ID, insurance.VoucherID, insurance.ProviderName, insurance.ProviderPhone)
		if err != nil {
			log.Err(err).Str("func", "*voucherRepository.CreateVoucher").Msg("error creating travel insurance record")
			return models.Voucher{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		created.TravelInsurance = &insurance
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*voucherRepository.CreateVoucher").Msg("failed to commit transaction")
		return models.Voucher{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// ListVouchersByAgency returns the tenant's vouchers without nested records,
// newest first.
func (r *voucherRepository) ListVouchersByAgency(ctx context.Context, agencyID string) ([]models.Voucher, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listVouchersByAgency, agencyID)
	if err != nil {
		log.Err(err).
			Str("func", "*voucherRepository.ListVouchersByAgency").
			Str("agency_id", agencyID).
			Msg("failed to execute query for listing vouchers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	vouchers := make([]models.Voucher, 0, 32)
	for rows.Next() {
		var voucher models.Voucher
		if err := rows.Scan(&voucher.ID, &voucher.AgencyID, &voucher.ReservationCode, &voucher.ClientName, &voucher.CreatedAt); err != nil {
			log.Err(err).Str("func", "*voucherRepository.ListVouchersByAgency").Msg("failed to scan voucher row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		vouchers = append(vouchers, voucher)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*voucherRepository.ListVouchersByAgency").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return vouchers, nil
}

// FindVoucherByID retrieves one voucher with nested records, scoped to the
// given tenant.
func (r *voucherRepository) FindVoucherByID(ctx context.Context, agencyID, id string) (models.Voucher, error) {
	log := logger.FromContext(ctx)

	var voucher models.Voucher
	row := r.db.QueryRowContext(ctx, findVoucherByID, id, agencyID)

	if err := row.Scan(&voucher.ID, &voucher.AgencyID, &voucher.ReservationCode, &voucher.ClientName, &voucher.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Voucher{}, ErrVoucherNotFound
		}

		log.Err(err).Str("func", "*voucherRepository.FindVoucherByID").Str("id", id).Msg("error finding voucher")
		return models.Voucher{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := r.loadNestedRecords(ctx, &voucher); err != nil {
		return models.Voucher{}, err
	}

	return voucher, nil
}

// FindVoucherByReservationCode retrieves one voucher with nested records by a
// case-insensitive reservation-code match.
func (r *voucherRepository) FindVoucherByReservationCode(ctx context.Context, code string) (models.Voucher, error) {
	log := logger.FromContext(ctx)

	var voucher models.Voucher
	row := r.db.QueryRowContext(ctx, findVoucherByReservationCode, code)

	if err := row.Scan(&voucher.ID, &voucher.AgencyID, &voucher.ReservationCode, &voucher.ClientName, &voucher.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Voucher{}, ErrVoucherNotFound
		}

		log.Err(err).Str("func", "*voucherRepository.FindVoucherByReservationCode").Msg("error finding voucher by reservation code")
		return models.Voucher{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := r.loadNestedRecords(ctx, &voucher); err != nil {
		return models.Voucher{}, err
	}

	return voucher, nil
}

// loadNestedRecords populates the voucher's flights and optional sub-records.
// Absent sub-records are simply left nil; only unexpected errors propagate.
func (r *voucherRepository) loadNestedRecords(ctx context.Context, voucher *models.Voucher) error {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getVoucherFlights, voucher.ID)
	if err != nil {
		log.Err(err).Str("func", "*voucherRepository.loadNestedRecords").Str("voucher_id", voucher.ID).Msg("failed to query flights")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	voucher.Flights = make([]models.Flight, 0, 4)
	for rows.Next() {
		var flight models.Flight
		if err := rows.Scan(
			&flight.ID, &flight.VoucherID, &flight.Direction, &flight.SegmentOrder,
			&flight.FlightNumber, &flight.DepartureTime, &flight.ArrivalTime,
			&flight.EmbarkAirport, &flight.DisembarkAirport, &flight.FlightDate,
		); err != nil {
			log.Err(err).Str("func", "*voucherRepository.loadNestedRecords").Msg("failed to scan flight row")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		voucher.Flights = append(voucher.Flights, flight)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	var hotel models.Hotel
	err = r.db.QueryRowContext(ctx, getVoucherHotel, voucher.ID).
		Scan(&hotel.ID, &hotel.VoucherID, &hotel.HotelName, &hotel.MealPlan, &hotel.RoomType, &hotel.CheckInTime, &hotel.CheckOutTime)
	switch {
	case err == nil:
		voucher.Hotel = &hotel
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var transfer models.Transfer
	err = r.db.QueryRowContext(ctx, getVoucherTransfer, voucher.ID).
		Scan(&transfer.ID, &transfer.VoucherID, &transfer.ReceptiveName)
	switch {
	case err == nil:
		voucher.Transfer = &transfer
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var stopover models.Stopover
	err = r.db.QueryRowContext(ctx, getVoucherStopover, voucher.ID).
		Scan(&stopover.ID, &stopover.VoucherID, &stopover.Location, &stopover.Duration)
	switch {
	case err == nil:
		voucher.Stopover = &stopover
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	tourRows, err := r.db.QueryContext(ctx, getVoucherTours, voucher.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer tourRows.Close()

	for tourRows.Next() {
		var tour models.Tour
		if err := tourRows.Scan(&tour.ID, &tour.VoucherID, &tour.Name, &tour.DateTime, &tour.MeetingPoint); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		voucher.Tours = append(voucher.Tours, tour)
	}
	if err := tourRows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	var insurance models.TravelInsurance
	err = r.db.QueryRowContext(ctx, getVoucherTravelInsurance, voucher.ID).
		Scan(&insurance.ID, &insurance.VoucherID, &insurance.ProviderName, &insurance.ProviderPhone)
	switch {
	case err == nil:
		voucher.TravelInsurance = &insurance
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
