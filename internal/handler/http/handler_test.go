package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/internal/service"
	"github.com/rotaviva/voucher-api/internal/utils"
	"github.com/rotaviva/voucher-api/models"
)

// ---- Mock AuthService ----

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn          func(ctx context.Context, email, password string) (models.User, error)
	changePasswordFn func(ctx context.Context, userID, currentPassword, newPassword string) error
	meFn             func(ctx context.Context, userID string) (models.MeResponse, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	return m.changePasswordFn(ctx, userID, currentPassword, newPassword)
}

func (m *mockAuthService) Me(ctx context.Context, userID string) (models.MeResponse, error) {
	return m.meFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ---- Mock AgencyService ----

type mockAgencyService struct {
	createAgencyFn         func(ctx context.Context, req models.CreateAgencyRequest) (models.Agency, error)
	listAgenciesFn         func(ctx context.Context) ([]models.Agency, error)
	updateAgencyStatusFn   func(ctx context.Context, agencyID string, req models.UpdateAgencyStatusRequest) (models.Agency, error)
	updateAgencyBrandingFn func(ctx context.Context, agencyID string, req models.UpdateAgencyBrandingRequest) (models.Agency, error)
	createAgencyUserFn     func(ctx context.Context, agencyID string, req models.CreateAgencyUserRequest) (models.User, error)
	uploadLogoFn           func(ctx context.Context, agencyID string, req models.UploadLogoRequest) (models.UploadLogoResponse, error)
}

func (m *mockAgencyService) CreateAgency(ctx context.Context, req models.CreateAgencyRequest) (models.Agency, error) {
	return m.createAgencyFn(ctx, req)
}

func (m *mockAgencyService) ListAgencies(ctx context.Context) ([]models.Agency, error) {
	return m.listAgenciesFn(ctx)
}

func (m *mockAgencyService) UpdateAgencyStatus(ctx context.Context, agencyID string, req models.UpdateAgencyStatusRequest) (models.Agency, error) {
	return m.updateAgencyStatusFn(ctx, agencyID, req)
}

func (m *mockAgencyService) UpdateAgencyBranding(ctx context.Context, agencyID string, req models.UpdateAgencyBrandingRequest) (models.Agency, error) {
	return m.updateAgencyBrandingFn(ctx, agencyID, req)
}

func (m *mockAgencyService) CreateAgencyUser(ctx context.Context, agencyID string, req models.CreateAgencyUserRequest) (models.User, error) {
	return m.createAgencyUserFn(ctx, agencyID, req)
}

func (m *mockAgencyService) UploadLogo(ctx context.Context, agencyID string, req models.UploadLogoRequest) (models.UploadLogoResponse, error) {
	return m.uploadLogoFn(ctx, agencyID, req)
}

// ---- Mock VoucherService ----

type mockVoucherService struct {
	createVoucherFn func(ctx context.Context, agencyID string, req models.CreateVoucherRequest) (models.Voucher, error)
	listVouchersFn  func(ctx context.Context, agencyID string) ([]models.Voucher, error)
	getVoucherFn    func(ctx context.Context, agencyID, voucherID string) (models.Voucher, error)
	publicLookupFn  func(ctx context.Context, reservationCode string) (models.Voucher, error)
}

func (m *mockVoucherService) CreateVoucher(ctx context.Context, agencyID string, req models.CreateVoucherRequest) (models.Voucher, error) {
	return m.createVoucherFn(ctx, agencyID, req)
}

func (m *mockVoucherService) ListVouchers(ctx context.Context, agencyID string) ([]models.Voucher, error) {
	return m.listVouchersFn(ctx, agencyID)
}

func (m *mockVoucherService) GetVoucher(ctx context.Context, agencyID, voucherID string) (models.Voucher, error) {
	return m.getVoucherFn(ctx, agencyID, voucherID)
}

func (m *mockVoucherService) PublicLookup(ctx context.Context, reservationCode string) (models.Voucher, error) {
	return m.publicLookupFn(ctx, reservationCode)
}

// ---- Shared helpers ----

// allowAllLimiter lets every request through; used where the gate itself is
// not under test.
type allowAllLimiter struct{}

func (allowAllLimiter) Allow(string) (bool, time.Duration) { return true, 0 }
func (allowAllLimiter) Purge()                             {}

// stubPinger fakes the database handle of the health endpoint.
type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error { return p.err }

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, stubPinger{}, allowAllLimiter{}, allowAllLimiter{}, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// withIdentity stores an authenticated caller in the request context, the way
// the auth middleware would.
func withIdentity(r *http.Request, identity models.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), utils.IdentityCtxKey, identity)
	return r.WithContext(ctx)
}

// withURLParam injects a chi route parameter for handlers called outside a
// router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func adminIdentity() models.Identity {
	agencyID := "agency-1"
	return models.Identity{UserID: "user-1", AgencyID: &agencyID, Role: models.RoleAdmin}
}

func superadminIdentity() models.Identity {
	return models.Identity{UserID: "root", Role: models.RoleSuperadmin}
}

// ---- NewHandler ----

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := newTestHandler(&service.Services{})

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svcs := &service.Services{}
	h := newTestHandler(svcs)

	assert.Equal(t, svcs, h.services)
}

// ---- Init — route registration ----

// newRoutedHandler builds a Handler whose services answer every call, so that
// route-registration tests never hit a nil function field.
func newRoutedHandler() *Handler {
	identityToken := models.Token{UserID: "user-1", Role: models.RoleSuperadmin}

	return newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			loginFn: func(_ context.Context, _, _ string) (models.User, error) {
				return models.User{ID: "user-1"}, nil
			},
			createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
				return models.Token{SignedString: "signed"}, nil
			},
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return identityToken, nil
			},
			changePasswordFn: func(_ context.Context, _, _, _ string) error { return nil },
			meFn: func(_ context.Context, _ string) (models.MeResponse, error) {
				return models.MeResponse{}, nil
			},
		},
		AgencyService: &mockAgencyService{
			createAgencyFn: func(_ context.Context, _ models.CreateAgencyRequest) (models.Agency, error) {
				return models.Agency{}, nil
			},
			listAgenciesFn: func(_ context.Context) ([]models.Agency, error) { return nil, nil },
			updateAgencyStatusFn: func(_ context.Context, _ string, _ models.UpdateAgencyStatusRequest) (models.Agency, error) {
				return models.Agency{}, nil
			},
			updateAgencyBrandingFn: func(_ context.Context, _ string, _ models.UpdateAgencyBrandingRequest) (models.Agency, error) {
				return models.Agency{}, nil
			},
			createAgencyUserFn: func(_ context.Context, _ string, _ models.CreateAgencyUserRequest) (models.User, error) {
				return models.User{}, nil
			},
			uploadLogoFn: func(_ context.Context, _ string, _ models.UploadLogoRequest) (models.UploadLogoResponse, error) {
				return models.UploadLogoResponse{}, nil
			},
		},
		VoucherService: &mockVoucherService{
			createVoucherFn: func(_ context.Context, _ string, _ models.CreateVoucherRequest) (models.Voucher, error) {
				return models.Voucher{}, nil
			},
			listVouchersFn: func(_ context.Context, _ string) ([]models.Voucher, error) { return nil, nil },
			getVoucherFn: func(_ context.Context, _, _ string) (models.Voucher, error) {
				return models.Voucher{}, nil
			},
			publicLookupFn: func(_ context.Context, _ string) (models.Voucher, error) {
				return models.Voucher{}, nil
			},
		},
	})
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/"},
	{http.MethodGet, "/health"},
	{http.MethodGet, "/metrics"},
	// unauthenticated, rate-gated
	{http.MethodPost, "/auth/login"},
	{http.MethodGet, "/public/vouchers/ABC123"},
	// authenticated (auth middleware answers 401, not 404/405)
	{http.MethodPost, "/auth/change-password"},
	{http.MethodGet, "/admin/me"},
	{http.MethodPost, "/admin/vouchers"},
	{http.MethodGet, "/admin/vouchers"},
	{http.MethodGet, "/admin/vouchers/voucher-1"},
	{http.MethodGet, "/admin/agencies"},
	{http.MethodPost, "/admin/agencies"},
	{http.MethodPatch, "/admin/agencies/agency-1/status"},
	{http.MethodPatch, "/admin/agencies/agency-1/branding"},
	{http.MethodPost, "/admin/agencies/agency-1/logo"},
	{http.MethodPost, "/admin/agencies/agency-1/users"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newRoutedHandler().Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// A registered route returns anything except 404 (not found) or
			// 405 (method not allowed). Auth-protected routes return 401 —
			// that still proves the route exists.
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newRoutedHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_ProtectedRoutesRejectAnonymousCallers(t *testing.T) {
	router := newRoutedHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/admin/vouchers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInit_AdminCannotManageAgencies(t *testing.T) {
	agencyID := "agency-1"
	h := newRoutedHandler()
	h.services.AuthService.(*mockAuthService).parseTokenFn = func(_ context.Context, _ string) (models.Token, error) {
		return models.Token{UserID: "user-1", AgencyID: &agencyID, Role: models.RoleAdmin}, nil
	}
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/admin/agencies", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ---- Health ----

func TestHealth(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		h := newTestHandler(&service.Services{})

		req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/health", nil))
		rec := httptest.NewRecorder()
		h.health(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"up"`)
	})

	t.Run("database down", func(t *testing.T) {
		h := NewHandler(&service.Services{}, stubPinger{err: context.DeadlineExceeded},
			allowAllLimiter{}, allowAllLimiter{}, logger.Nop())

		req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/health", nil))
		rec := httptest.NewRecorder()
		h.health(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"down"`)
	})
}
