// AngelaMos | 2026
// handler.go

package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/bookhaven/internal/core"
	"github.com/carterperez-dev/bookhaven/internal/middleware"
)

const resourceName = "user"

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
	r.Put("/add-user", h.SyncUser)

	r.With(
		authenticator,
		guard.RequireOwner(middleware.URLParam("email")),
	).Get("/role/{email}", h.GetRole)
}

// RegisterAdminRoutes mounts user management. r must already enforce
// RequireAdmin.
func (h *Handler) RegisterAdminRoutes(r chi.Router, guard *middleware.Guard) {
	r.Get("/total-admin", h.CountAdmins)
	r.Get("/users", h.ListUsers)
	r.With(guard.RejectIfDemoAdmin).Patch("/user-update/{email}", h.UpdateRole)
	r.With(guard.RejectIfDemoAdmin).Delete("/user/{id}", h.DeleteUser)
}

func (h *Handler) SyncUser(w http.ResponseWriter, r *http.Request) {
	var req SyncUserRequest
	fields, ok := h.decodeFields(w, r, &req)
	if !ok {
		return
	}
	req.Extra = core.UndeclaredFields(fields, []any{req, User{}})

	res, err := h.service.SyncUser(r.Context(), req)
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) GetRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.service.GetRole(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, RoleResponse{Role: role})
}

func (h *Handler) CountAdmins(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.CountAdmins(r.Context())
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, TotalAdminResponse{TotalAdmin: n})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, users)
}

func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req UpdateRoleRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.service.UpdateRole(r.Context(), chi.URLParam(r, "email"), req.Role)
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "id"))
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
