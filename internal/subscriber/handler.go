// AngelaMos | 2026
// handler.go

package subscriber

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/bookhaven/internal/core"
	"github.com/carterperez-dev/bookhaven/internal/middleware"
)

const resourceName = "subscriber"

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

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/emails", h.List)
	r.Post("/email", h.Subscribe)
}

// RegisterAdminRoutes mounts the purge route. r must already enforce
// RequireAdmin.
func (h *Handler) RegisterAdminRoutes(r chi.Router, guard *middleware.Guard) {
	r.With(guard.RejectIfDemoAdmin).Delete("/email/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.service.List(r.Context())
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, subs)
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	fields, err := core.DecodeBody(r, &req)
	if err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}
	req.Extra = core.UndeclaredFields(fields, []any{req, Subscriber{}})

	res, err := h.service.Subscribe(r.Context(), req)
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}
