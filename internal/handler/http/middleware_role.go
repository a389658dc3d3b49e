package http

import (
	"net/http"

	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/internal/utils"
	"github.com/rotaviva/voucher-api/models"
)

// requireRole builds a middleware that rejects callers whose role is not in
// the allowed set. Matching is exact; there is no role hierarchy. Must run
// after the auth middleware, which puts the identity into the context.
func (h *Handler) requireRole(allowed ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				log.Error().Msg("identity missing from context on role-gated route")
				respondError(w, r, ErrEmptyAuthorizationHeader)
				return
			}

			for _, role := range allowed {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.Warn().
				Str("role", string(identity.Role)).
				Str("userID", identity.UserID).
				Msg("role not allowed for route")
			respondError(w, r, ErrForbidden)
		})
	}
}
