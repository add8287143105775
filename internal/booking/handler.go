// AngelaMos | 2026
// handler.go

package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/bookhaven/internal/core"
	"github.com/carterperez-dev/bookhaven/internal/middleware"
)

const resourceName = "booking"

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	guard *middleware.Guard,
) {
	r.Post("/add-booking", h.CreateBooking)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		ownerByQuery := guard.RequireOwner(middleware.QueryParam("email"))
		ownerByPath := guard.RequireOwner(middleware.URLParam("email"))

		r.With(ownerByQuery).Get("/my-bookings", h.MyBookings)
		r.With(ownerByQuery).Get("/my-pending", h.MyPending)
		r.With(ownerByPath).Put("/booking-status/{id}/{email}", h.UpdateStatus)
		r.With(ownerByPath).Put("/add-time/{id}/{email}", h.AddCompletedTime)
		r.With(
			guard.RejectIfDemoAdmin,
			guard.RequireOwnerOrAdmin(middleware.URLParam("email")),
		).Delete("/booking/{id}/{email}", h.DeleteBooking)
	})
}

// RegisterAdminRoutes mounts the catalog-wide booking views. r must already
// enforce RequireAdmin.
func (h *Handler) RegisterAdminRoutes(r chi.Router, guard *middleware.Guard) {
	r.Get("/all-bookings", h.ListAll)
	r.With(guard.RejectIfDemoAdmin).Delete("/all-bookings", h.DeleteAll)
}

func (h *Handler) MyBookings(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.MyBookings(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) MyPending(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.MyPending(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	fields, ok := h.decodeFields(w, r, &req)
	if !ok {
		return
	}
	req.Extra = core.UndeclaredFields(fields, []any{req, Booking{}})

	res, err := h.service.CreateBooking(r.Context(), req)
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) AddCompletedTime(w http.ResponseWriter, r *http.Request) {
	var req AddTimeRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.service.AddCompletedTime(r.Context(), chi.URLParam(r, "id"), req.CompletedAt)
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.DeleteBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListAll(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.DeleteAll(r.Context())
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	_, ok := h.decodeFields(w, r, dst)
	return ok
}

// decodeFields validates dst and also returns every submitted field.
func (h *Handler) decodeFields(
	w http.ResponseWriter,
	r *http.Request,
	dst any,
) (map[string]any, bool) {
	fields, err := core.DecodeBody(r, dst)
	if err != nil {
		core.BadRequest(w, "invalid request body")
		return nil, false
	}

	if err := h.validator.Struct(dst); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return nil, false
	}

	return fields, true
}
