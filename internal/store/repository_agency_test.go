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

var agencyColumns = []string{"id", "name", "slug", "phone", "email", "is_active", "logo_url", "primary_color", "created_at"}

func agencyRow(id, name, slug string, isActive bool) *sqlmock.Rows {
	return sqlmock.NewRows(agencyColumns).
		AddRow(id, name, slug, nil, nil, isActive, nil, nil, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
}

// ---- CreateAgency ----

func TestCreateAgency(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAgencyRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(createAgency)).
			WithArgs(sqlmock.AnyArg(), "Sunny Tours", "sunny-tours", nil, nil).
			WillReturnRows(agencyRow("agency-1", "Sunny Tours", "sunny-tours", true))

		created, err := repo.CreateAgency(testContext(), models.Agency{
			Name: "Sunny Tours",
			Slug: "sunny-tours",
		})
		require.NoError(t, err)

		assert.Equal(t, "agency-1", created.ID)
		assert.True(t, created.IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate slug", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAgencyRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(createAgency)).
			WillReturnError(uniqueViolation())

		_, err := repo.CreateAgency(testContext(), models.Agency{Name: "x", Slug: "taken"})
		assert.ErrorIs(t, err, ErrSlugAlreadyExists)
	})
}

// ---- ListAgencies ----

func TestListAgencies(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAgencyRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(listAgencies)).
		WillReturnRows(sqlmock.NewRows(agencyColumns).
			AddRow("agency-2", "Beta", "beta", nil, nil, true, nil, nil, time.Now()).
			AddRow("agency-1", "Alpha", "alpha", nil, nil, false, nil, nil, time.Now()))

	agencies, err := repo.ListAgencies(testContext())
	require.NoError(t, err)

	require.Len(t, agencies, 2)
	assert.Equal(t, "agency-2", agencies[0].ID)
	assert.False(t, agencies[1].IsActive)
}

// ---- FindAgencyByID ----

func TestFindAgencyByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAgencyRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(findAgencyByID)).
			WithArgs("agency-1").
			WillReturnRows(agencyRow("agency-1", "Sunny Tours", "sunny-tours", true))

		found, err := repo.FindAgencyByID(testContext(), "agency-1")
		require.NoError(t, err)
		assert.Equal(t, "sunny-tours", found.Slug)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAgencyRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(findAgencyByID)).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindAgencyByID(testContext(), "ghost")
		assert.ErrorIs(t, err, ErrAgencyNotFound)
	})
}

// ---- UpdateAgencyStatus ----

func TestUpdateAgencyStatus(t *testing.T) {
	t.Run("deactivates", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAgencyRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(updateAgencyStatus)).
			WithArgs("agency-1", false).
			WillReturnRows(agencyRow("agency-1", "Sunny Tours", "sunny-tours", false))

		updated, err := repo.UpdateAgencyStatus(testContext(), "agency-1", false)
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAgencyRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(updateAgencyStatus)).
			WithArgs("ghost", true).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateAgencyStatus(testContext(), "ghost", true)
		assert.ErrorIs(t, err, ErrAgencyNotFound)
	})
}

// ---- UpdateAgencyBranding ----

func TestUpdateAgencyBranding(t *testing.T) {
	value := func(s string) models.NullableString {
		return models.NullableString{Set: true, Value: &s}
	}
	null := models.NullableString{Set: true}
	absent := models.NullableString{}

	t.Run("both fields set", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAgencyRepository(db, logger.Nop())

		mock.ExpectQuery(`UPDATE agencies SET logo_url = \$1, primary_color = \$2 WHERE id = \$3`).
			WithArgs("https://cdn.example.com/logo.png", "#FF8800", "agency-1").
			WillReturnRows(agencyRow("agency-1", "Sunny Tours", "sunny-tours", true))

		_, err := repo.UpdateAgencyBranding(testContext(), "agency-1",
			value("https://cdn.example.com/logo.png"), value("#FF8800"))
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("explicit null clears a column without touching the other", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAgencyRepository(db, logger.Nop())

		mock.ExpectQuery(`UPDATE agencies SET primary_color = \$1 WHERE id = \$2`).
			WithArgs(nil, "agency-1").
			WillReturnRows(agencyRow("agency-1", "Sunny Tours", "sunny-tours", true))

		_, err := repo.UpdateAgencyBranding(testContext(), "agency-1", absent, null)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("neither field set degrades to a lookup", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAgencyRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(findAgencyByID)).
			WithArgs("agency-1").
			WillReturnRows(agencyRow("agency-1", "Sunny Tours", "sunny-tours", true))

		got, err := repo.UpdateAgencyBranding(testContext(), "agency-1", absent, absent)
		require.NoError(t, err)
		assert.Equal(t, "agency-1", got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAgencyRepository(db, logger.Nop())

		mock.ExpectQuery(`UPDATE agencies SET logo_url = \$1 WHERE id = \$2`).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateAgencyBranding(testContext(), "ghost", value("url"), absent)
		assert.ErrorIs(t, err, ErrAgencyNotFound)
	})
}
