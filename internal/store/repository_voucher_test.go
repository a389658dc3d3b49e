package store

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/models"
)

var voucherColumns = []string{"id", "agency_id", "reservation_code", "client_name", "created_at"}

func voucherRow(id, agencyID, code, client string) *sqlmock.Rows {
	return sqlmock.NewRows(voucherColumns).
		AddRow(id, agencyID, code, client, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
}

// expectNoNestedRecords queues empty results for every sub-record lookup that
// follows a successful voucher fetch.
func expectNoNestedRecords(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(regexp.QuoteMeta(getVoucherFlights)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "voucher_id", "direction", "segment_order", "flight_number",
			"departure_time", "arrival_time", "embark_airport", "disembark_airport", "flight_date",
		}))
	mock.ExpectQuery(regexp.QuoteMeta(getVoucherHotel)).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(getVoucherTransfer)).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(getVoucherStopover)).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(getVoucherTours)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "voucher_id", "name", "date_time", "meeting_point"}))
	mock.ExpectQuery(regexp.QuoteMeta(getVoucherTravelInsurance)).WillReturnError(sql.ErrNoRows)
}

// ---- CreateVoucher ----

func TestCreateVoucherTransaction(t *testing.T) {
	outbound := "GRU"

	t.Run("commits voucher with nested records", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewVoucherRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(createVoucher)).
			WithArgs(sqlmock.AnyArg(), "agency-1", "ABC123", "Ana Souza").
			WillReturnRows(voucherRow("voucher-1", "agency-1", "ABC123", "Ana Souza"))
		mock.ExpectExec(regexp.QuoteMeta(createFlight)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(createFlight)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(createHotel)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(createTour)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		created, err := repo.CreateVoucher(testContext(), models.Voucher{
			AgencyID:        "agency-1",
			ReservationCode: "ABC123",
			ClientName:      "Ana Souza",
			Flights: []models.Flight{
				{Direction: models.DirectionOutbound, SegmentOrder: 0, EmbarkAirport: &outbound},
				{Direction: models.DirectionReturn, SegmentOrder: 0},
			},
			Hotel: &models.Hotel{HotelName: "Hotel Azul"},
			Tours: []models.Tour{{Name: "City Tour"}},
		})
		require.NoError(t, err)

		assert.Equal(t, "voucher-1", created.ID)
		require.Len(t, created.Flights, 2)
		assert.Equal(t, "voucher-1", created.Flights[0].VoucherID)
		assert.NotEmpty(t, created.Flights[0].ID)
		require.NotNil(t, created.Hotel)
		assert.Equal(t, "voucher-1", created.Hotel.VoucherID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate reservation code rolls back", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewVoucherRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(createVoucher)).
			WillReturnError(uniqueViolation())
		mock.ExpectRollback()

		_, err := repo.CreateVoucher(testContext(), models.Voucher{
			AgencyID:        "agency-1",
			ReservationCode: "TAKEN",
		})
		assert.ErrorIs(t, err, ErrReservationCodeExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed flight insert rolls back everything", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewVoucherRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(createVoucher)).
			WillReturnRows(voucherRow("voucher-1", "agency-1", "ABC123", "Ana Souza"))
		mock.ExpectExec(regexp.QuoteMeta(createFlight)).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		_, err := repo.CreateVoucher(testContext(), models.Voucher{
			AgencyID:        "agency-1",
			ReservationCode: "ABC123",
			Flights:         []models.Flight{{Direction: models.DirectionOutbound}},
		})
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// ---- ListVouchersByAgency ----

func TestListVouchersByAgency(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVoucherRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(listVouchersByAgency)).
		WithArgs("agency-1").
		WillReturnRows(sqlmock.NewRows(voucherColumns).
			AddRow("voucher-2", "agency-1", "DEF456", "Bruno Lima", time.Now()).
			AddRow("voucher-1", "agency-1", "ABC123", "Ana Souza", time.Now()))

	vouchers, err := repo.ListVouchersByAgency(testContext(), "agency-1")
	require.NoError(t, err)

	require.Len(t, vouchers, 2)
	assert.Equal(t, "DEF456", vouchers[0].ReservationCode)
	assert.Nil(t, vouchers[0].Flights, "listing must not load nested records")
}

// ---- FindVoucherByID ----

func TestFindVoucherByID(t *testing.T) {
	t.Run("scoped to the agency", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewVoucherRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(findVoucherByID)).
			WithArgs("voucher-1", "agency-1").
			WillReturnRows(voucherRow("voucher-1", "agency-1", "ABC123", "Ana Souza"))
		expectNoNestedRecords(mock)

		found, err := repo.FindVoucherByID(testContext(), "agency-1", "voucher-1")
		require.NoError(t, err)

		assert.Equal(t, "ABC123", found.ReservationCode)
		assert.Empty(t, found.Flights)
		assert.Nil(t, found.Hotel)
	})

	t.Run("other tenant's voucher is invisible", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewVoucherRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(findVoucherByID)).
			WithArgs("voucher-1", "agency-2").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindVoucherByID(testContext(), "agency-2", "voucher-1")
		assert.ErrorIs(t, err, ErrVoucherNotFound)
	})
}

// ---- FindVoucherByReservationCode ----

func TestFindVoucherByReservationCode(t *testing.T) {
	t.Run("loads nested records", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewVoucherRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(findVoucherByReservationCode)).
			WithArgs("ABC123").
			WillReturnRows(voucherRow("voucher-1", "agency-1", "ABC123", "Ana Souza"))
		mock.ExpectQuery(regexp.QuoteMeta(getVoucherFlights)).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "voucher_id", "direction", "segment_order", "flight_number",
				"departure_time", "arrival_time", "embark_airport", "disembark_airport", "flight_date",
			}).
				AddRow("flight-1", "voucher-1", "OUTBOUND", 0, "LA100", nil, nil, "GRU", "LIM", nil).
				AddRow("flight-2", "voucher-1", "RETURN", 0, "LA400", nil, nil, "LIM", "GRU", nil))
		mock.ExpectQuery(regexp.QuoteMeta(getVoucherHotel)).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "voucher_id", "hotel_name", "meal_plan", "room_type", "check_in_time", "check_out_time",
			}).AddRow("hotel-1", "voucher-1", "Hotel Azul", nil, nil, nil, nil))
		mock.ExpectQuery(regexp.QuoteMeta(getVoucherTransfer)).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta(getVoucherStopover)).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta(getVoucherTours)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "voucher_id", "name", "date_time", "meeting_point"}).
				AddRow("tour-1", "voucher-1", "City Tour", nil, nil))
		mock.ExpectQuery(regexp.QuoteMeta(getVoucherTravelInsurance)).WillReturnError(sql.ErrNoRows)

		found, err := repo.FindVoucherByReservationCode(testContext(), "ABC123")
		require.NoError(t, err)

		require.Len(t, found.Flights, 2)
		assert.Equal(t, models.DirectionOutbound, found.Flights[0].Direction)
		require.NotNil(t, found.Hotel)
		assert.Equal(t, "Hotel Azul", found.Hotel.HotelName)
		require.Len(t, found.Tours, 1)
		assert.Nil(t, found.Transfer)
		assert.Nil(t, found.TravelInsurance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown code", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewVoucherRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(findVoucherByReservationCode)).
			WithArgs("NOPE").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindVoucherByReservationCode(testContext(), "NOPE")
		assert.ErrorIs(t, err, ErrVoucherNotFound)
	})
}
