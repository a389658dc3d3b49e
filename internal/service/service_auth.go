package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rotaviva/voucher-api/internal/config"
	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/internal/store"
	"github.com/rotaviva/voucher-api/internal/utils"
	"github.com/rotaviva/voucher-api/models"
)

// minPasswordLength is the minimum accepted password length for both account
// creation and password rotation.
const minPasswordLength = 6

// authService is the default [AuthService] implementation.
type authService struct {
	users    store.UserRepository
	agencies store.AgencyRepository
	app      config.App
	logger   *logger.Logger
}

// NewAuthService constructs an [AuthService] backed by the given repositories.
func NewAuthService(users store.UserRepository, agencies store.AgencyRepository, app config.App, log *logger.Logger) AuthService {
	return &authService{
		users:    users,
		agencies: agencies,
		app:      app,
		logger:   log,
	}
}

// Login implements [AuthService].
func (s *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user lookup failed")
		return models.User{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	// Superadmins have no agency; everyone else is gated on an active one.
	if user.Role != models.RoleSuperadmin {
		if user.AgencyID == nil {
			return models.User{}, ErrAgencyInactive
		}

		agency, err := s.agencies.FindAgencyByID(ctx, *user.AgencyID)
		if err != nil {
			if errors.Is(err, store.ErrAgencyNotFound) {
				return models.User{}, ErrAgencyInactive
			}
			log.Err(err).Str("func", "*authService.Login").Msg("agency lookup failed")
			return models.User{}, err
		}
		if !agency.IsActive {
			return models.User{}, ErrAgencyInactive
		}
	}

	return user, nil
}

// ChangePassword implements [AuthService].
func (s *authService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("hashing new password failed")
		return fmt.Errorf("hashing new password: %w", err)
	}

	return s.users.UpdatePasswordHash(ctx, userID, string(hash))
}

// Me implements [AuthService]. A dangling agency reference is tolerated and
// reported as a nil agency rather than an error.
func (s *authService) Me(ctx context.Context, userID string) (models.MeResponse, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.MeResponse{}, err
	}

	response := models.MeResponse{User: user}

	if user.AgencyID != nil {
		agency, err := s.agencies.FindAgencyByID(ctx, *user.AgencyID)
		switch {
		case err == nil:
			response.Agency = &agency
		case errors.Is(err, store.ErrAgencyNotFound):
		default:
			return models.MeResponse{}, err
		}
	}

	return response, nil
}

// CreateToken implements [AuthService].
func (s *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(s.app.TokenIssuer, user, s.app.TokenDuration, s.app.TokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateToken").Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken implements [AuthService].
func (s *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.app.TokenSignKey, s.app.TokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
