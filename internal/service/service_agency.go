package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/rotaviva/voucher-api/internal/adapter"
	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/internal/store"
	"github.com/rotaviva/voucher-api/internal/utils"
	"github.com/rotaviva/voucher-api/models"
)

// maxLogoSize is the upper bound on decoded logo bytes (7 MiB).
const maxLogoSize = 7 << 20

// allowedLogoTypes maps accepted logo MIME types to the file extension used
// when the upload carries no usable file name.
var allowedLogoTypes = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
}

// agencyService is the default [AgencyService] implementation.
type agencyService struct {
	agencies store.AgencyRepository
	users    store.UserRepository
	objects  adapter.ObjectStore
	logger   *logger.Logger
}

// NewAgencyService constructs an [AgencyService] backed by the given
// repositories and object store.
func NewAgencyService(agencies store.AgencyRepository, users store.UserRepository, objects adapter.ObjectStore, log *logger.Logger) AgencyService {
	return &agencyService{
		agencies: agencies,
		users:    users,
		objects:  objects,
		logger:   log,
	}
}

// CreateAgency implements [AgencyService]. New tenants start active.
func (s *agencyService) CreateAgency(ctx context.Context, req models.CreateAgencyRequest) (models.Agency, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Agency{}, ErrNameRequired
	}

	slug := utils.NormalizeSlug(req.Slug)
	if slug == "" {
		return models.Agency{}, ErrSlugRequired
	}

	return s.agencies.CreateAgency(ctx, models.Agency{
		Name:     name,
		Slug:     slug,
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: true,
	})
}

// ListAgencies implements [AgencyService].
func (s *agencyService) ListAgencies(ctx context.Context) ([]models.Agency, error) {
	return s.agencies.ListAgencies(ctx)
}

// UpdateAgencyStatus implements [AgencyService].
func (s *agencyService) UpdateAgencyStatus(ctx context.Context, agencyID string, req models.UpdateAgencyStatusRequest) (models.Agency, error) {
	if req.IsActive == nil {
		return models.Agency{}, ErrStatusRequired
	}

	return s.agencies.UpdateAgencyStatus(ctx, agencyID, *req.IsActive)
}

// UpdateAgencyBranding implements [AgencyService]. Absent fields keep their
// stored values; explicit nulls clear them.
func (s *agencyService) UpdateAgencyBranding(ctx context.Context, agencyID string, req models.UpdateAgencyBrandingRequest) (models.Agency, error) {
	return s.agencies.UpdateAgencyBranding(ctx, agencyID, req.LogoUrl, req.PrimaryColor)
}

// CreateAgencyUser implements [AgencyService]. An unknown role falls back to
// ADMIN rather than failing the request.
func (s *agencyService) CreateAgencyUser(ctx context.Context, agencyID string, req models.CreateAgencyUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.User{}, ErrNameRequired
	}

	email := utils.NormalizeEmail(req.Email)
	if email == "" {
		return models.User{}, ErrEmailRequired
	}

	if len(req.Password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	if _, err := s.agencies.FindAgencyByID(ctx, agencyID); err != nil {
		return models.User{}, err
	}

	role := req.Role
	if !role.Valid() {
		role = models.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "*agencyService.CreateAgencyUser").Msg("hashing password failed")
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	return s.users.CreateUser(ctx, models.User{
		AgencyID:     &agencyID,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
}

// UploadLogo implements [AgencyService]. The payload is fully validated
// before any upstream call is attempted: content type against the allow-list,
// base64 decodability, and the size ceiling. On success the stored public URL
// is also persisted as the agency's logoUrl.
func (s *agencyService) UploadLogo(ctx context.Context, agencyID string, req models.UploadLogoRequest) (models.UploadLogoResponse, error) {
	log := logger.FromContext(ctx)

	if !s.objects.Configured() {
		return models.UploadLogoResponse{}, adapter.ErrNotConfigured
	}

	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	defaultExt, ok := allowedLogoTypes[contentType]
	if !ok {
		return models.UploadLogoResponse{}, ErrLogoTypeNotAllowed
	}

	data, err := decodeLogoData(req.Data)
	if err != nil {
		return models.UploadLogoResponse{}, err
	}
	if len(data) > maxLogoSize {
		return models.UploadLogoResponse{}, ErrLogoTooLarge
	}

	if _, err = s.agencies.FindAgencyByID(ctx, agencyID); err != nil {
		return models.UploadLogoResponse{}, err
	}

	ext := strings.TrimPrefix(path.Ext(req.FileName), ".")
	if ext == "" {
		ext = defaultExt
	}
	objectPath := fmt.Sprintf("agencies/%s/logo.%s", agencyID, ext)

	url, err := s.objects.Upload(ctx, objectPath, contentType, data)
	if err != nil {
		return models.UploadLogoResponse{}, err
	}

	_, err = s.agencies.UpdateAgencyBranding(ctx, agencyID, models.NullableString{Set: true, Value: &url}, models.NullableString{})
	if err != nil {
		log.Err(err).Str("func", "*agencyService.UploadLogo").Str("agencyID", agencyID).Msg("persisting logo url failed")
		return models.UploadLogoResponse{}, err
	}

	return models.UploadLogoResponse{LogoUrl: url}, nil
}

// decodeLogoData decodes the base64 payload, tolerating an optional data-URL
// prefix ("data:image/png;base64,....").
func decodeLogoData(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrLogoDataInvalid
	}

	if strings.HasPrefix(raw, "data:") {
		_, encoded, found := strings.Cut(raw, ",")
		if !found {
			return nil, ErrLogoDataInvalid
		}
		raw = encoded
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLogoDataInvalid, err)
	}

	return data, nil
}
