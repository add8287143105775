// AngelaMos | 2026
// handler.go

package analytics

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/bookhaven/internal/core"
	"github.com/carterperez-dev/bookhaven/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	guard *middleware.Guard,
) {
	r.Get("/book-providers", h.BookProviders)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.With(guard.RequireOwner(middleware.QueryParam("email"))).
			Get("/user-analytics", h.UserAnalytics)
		r.Get("/monthly-stats", h.MonthlyStats)
	})
}

func (h *Handler) UserAnalytics(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.UserAnalytics(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		core.HandleError(w, err, "analytics")
		return
	}

	core.OK(w, res)
}

func (h *Handler) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.MonthlyStats(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		core.HandleError(w, err, "analytics")
		return
	}

	core.OK(w, res)
}

func (h *Handler) BookProviders(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.BookProviders(r.Context())
	if err != nil {
		core.HandleError(w, err, "analytics")
		return
	}

	core.OK(w, res)
}
