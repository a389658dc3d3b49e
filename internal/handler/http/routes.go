package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rotaviva/voucher-api/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)

	router.Get("/", h.banner)
	router.Get("/health", h.health)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// routes without authorization, each behind its own rate gate
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit(h.loginLimiter, "login"))
		r.Post("/auth/login", h.login)
	})
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit(h.publicLimiter, "public"))
		r.Get("/public/vouchers/{reservationCode}", h.publicVoucher)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/change-password", h.changePassword)
		r.Get("/admin/me", h.me)

		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(models.RoleAdmin, models.RoleSuperadmin))

			r.Post("/admin/vouchers", h.createVoucher)
			r.Get("/admin/vouchers", h.listVouchers)
			r.Get("/admin/vouchers/{voucherId}", h.getVoucher)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(models.RoleSuperadmin))

			r.Get("/admin/agencies", h.listAgencies)
			r.Post("/admin/agencies", h.createAgency)
			r.Patch("/admin/agencies/{agencyId}/status", h.updateAgencyStatus)
			r.Patch("/admin/agencies/{agencyId}/branding", h.updateAgencyBranding)
			r.Post("/admin/agencies/{agencyId}/logo", h.uploadLogo)
			r.Post("/admin/agencies/{agencyId}/users", h.createAgencyUser)
		})
	})

	return router
}
