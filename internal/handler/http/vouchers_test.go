package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotaviva/voucher-api/internal/service"
	"github.com/rotaviva/voucher-api/internal/store"
	"github.com/rotaviva/voucher-api/internal/validators"
	"github.com/rotaviva/voucher-api/models"
)

func voucherRequestBody(t *testing.T) string {
	t.Helper()
	return jsonBody(t, models.CreateVoucherRequest{
		ReservationCode: "ABC123",
		ClientName:      "Ana Souza",
		Flights: []models.FlightInput{
			{Direction: models.DirectionOutbound},
			{Direction: models.DirectionReturn},
		},
	})
}

// ---- createVoucher ----

func TestCreateVoucher_Created(t *testing.T) {
	vouchers := &mockVoucherService{
		createVoucherFn: func(_ context.Context, agencyID string, req models.CreateVoucherRequest) (models.Voucher, error) {
			assert.Equal(t, "agency-1", agencyID, "tenant must come from the token, not the body")
			assert.Equal(t, "ABC123", req.ReservationCode)
			return models.Voucher{ID: "voucher-1", AgencyID: agencyID, ReservationCode: req.ReservationCode}, nil
		},
	}

	h := newTestHandler(&service.Services{VoucherService: vouchers})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/admin/vouchers", strings.NewReader(voucherRequestBody(t))))
	req = withIdentity(req, adminIdentity())
	rec := httptest.NewRecorder()

	h.createVoucher(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Voucher
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "voucher-1", resp.ID)
}

func TestCreateVoucher_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{VoucherService: &mockVoucherService{}})

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/admin/vouchers", strings.NewReader("{broken")))
	req = withIdentity(req, adminIdentity())
	rec := httptest.NewRecorder()

	h.createVoucher(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateVoucher_ValidationError(t *testing.T) {
	vouchers := &mockVoucherService{
		createVoucherFn: func(_ context.Context, _ string, _ models.CreateVoucherRequest) (models.Voucher, error) {
			return models.Voucher{}, validators.ErrMissingDirections
		},
	}

	h := newTestHandler(&service.Services{VoucherService: vouchers})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/admin/vouchers", strings.NewReader(voucherRequestBody(t))))
	req = withIdentity(req, adminIdentity())
	rec := httptest.NewRecorder()

	h.createVoucher(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), validators.ErrMissingDirections.Error())
}

func TestCreateVoucher_DuplicateReservationCode(t *testing.T) {
	vouchers := &mockVoucherService{
		createVoucherFn: func(_ context.Context, _ string, _ models.CreateVoucherRequest) (models.Voucher, error) {
			return models.Voucher{}, store.ErrReservationCodeExists
		},
	}

	h := newTestHandler(&service.Services{VoucherService: vouchers})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/admin/vouchers", strings.NewReader(voucherRequestBody(t))))
	req = withIdentity(req, adminIdentity())
	rec := httptest.NewRecorder()

	h.createVoucher(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateVoucher_SuperadminWithoutAgency(t *testing.T) {
	vouchers := &mockVoucherService{
		createVoucherFn: func(_ context.Context, agencyID string, _ models.CreateVoucherRequest) (models.Voucher, error) {
			assert.Empty(t, agencyID)
			return models.Voucher{}, validators.ErrNoAgencyID
		},
	}

	h := newTestHandler(&service.Services{VoucherService: vouchers})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/admin/vouchers", strings.NewReader(voucherRequestBody(t))))
	req = withIdentity(req, superadminIdentity())
	rec := httptest.NewRecorder()

	h.createVoucher(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- listVouchers ----

func TestListVouchers(t *testing.T) {
	vouchers := &mockVoucherService{
		listVouchersFn: func(_ context.Context, agencyID string) ([]models.Voucher, error) {
			assert.Equal(t, "agency-1", agencyID)
			return []models.Voucher{{ID: "voucher-2"}, {ID: "voucher-1"}}, nil
		},
	}

	h := newTestHandler(&service.Services{VoucherService: vouchers})
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/admin/vouchers", nil))
	req = withIdentity(req, adminIdentity())
	rec := httptest.NewRecorder()

	h.listVouchers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Voucher
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// ---- getVoucher ----

func TestGetVoucher(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		vouchers := &mockVoucherService{
			getVoucherFn: func(_ context.Context, agencyID, voucherID string) (models.Voucher, error) {
				assert.Equal(t, "agency-1", agencyID)
				assert.Equal(t, "voucher-1", voucherID)
				return models.Voucher{ID: "voucher-1"}, nil
			},
		}

		h := newTestHandler(&service.Services{VoucherService: vouchers})
		req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/admin/vouchers/voucher-1", nil))
		req = withIdentity(req, adminIdentity())
		req = withURLParam(req, "voucherId", "voucher-1")
		rec := httptest.NewRecorder()

		h.getVoucher(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		vouchers := &mockVoucherService{
			getVoucherFn: func(_ context.Context, _, _ string) (models.Voucher, error) {
				return models.Voucher{}, store.ErrVoucherNotFound
			},
		}

		h := newTestHandler(&service.Services{VoucherService: vouchers})
		req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/admin/vouchers/ghost", nil))
		req = withIdentity(req, adminIdentity())
		req = withURLParam(req, "voucherId", "ghost")
		rec := httptest.NewRecorder()

		h.getVoucher(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
