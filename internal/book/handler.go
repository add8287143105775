// AngelaMos | 2026
// handler.go

package book

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/bookhaven/internal/core"
	"github.com/carterperez-dev/bookhaven/internal/middleware"
)

const resourceName = "book"

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
	r.Get("/all-books", h.ListBooks)
	r.Get("/latest-books", h.LatestBooks)
	r.Get("/providers-books", h.ProviderBooks)
	r.Get("/book/{id}", h.GetBook)
	r.Post("/book", h.CreateBook)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		ownerByPath := guard.RequireOwner(middleware.URLParam("email"))

		r.With(guard.RequireOwner(middleware.QueryParam("email"))).
			Get("/unavailable-ids", h.UnavailableIDs)
		r.With(ownerByPath).Put("/book/{id}/{email}", h.UpdateBook)
		r.With(ownerByPath).Put("/book-status/{id}/{email}", h.UpdateStatus)
		r.With(ownerByPath).Put("/my-all-books/{email}", h.UpdateProviderProfile)
		r.Patch("/add-review/{id}", h.AddReview)
		r.With(
			guard.RejectIfDemoAdmin,
			guard.RequireOwnerOrAdmin(middleware.URLParam("email")),
		).Delete("/book/{id}/{email}", h.DeleteBook)
	})
}

func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	page, err := parsePositiveQuery(r, "page", DefaultPage)
	if err != nil {
		core.BadRequest(w, "page must be a positive integer")
		return
	}

	limit, err := parsePositiveQuery(r, "limit", DefaultLimit)
	if err != nil {
		core.BadRequest(w, "limit must be a positive integer")
		return
	}

	res, err := h.service.ListBooks(r.Context(), ListParams{
		Page:   page,
		Limit:  limit,
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) LatestBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.LatestBooks(r.Context())
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, books)
}

func (h *Handler) ProviderBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ProviderBooks(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, books)
}

func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.service.GetBook(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, book)
}

func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	fields, ok := h.decodeFields(w, r, &req)
	if !ok {
		return
	}
	req.Extra = core.UndeclaredFields(fields, []any{req, Book{}})

	res, err := h.service.CreateBook(r.Context(), req)
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) UnavailableIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := h.service.UnavailableIDs(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, ids)
}

func (h *Handler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	var req UpdateBookRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.service.UpdateBook(r.Context(), chi.URLParam(r, "id"), req)
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

	res, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.BookStatus)
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) UpdateProviderProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProviderRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.service.UpdateProviderProfile(
		r.Context(),
		chi.URLParam(r, "email"),
		req,
	)
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) AddReview(w http.ResponseWriter, r *http.Request) {
	var req AddReviewRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.service.AddReview(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		core.HandleError(w, err, resourceName)
		return
	}

	core.OK(w, res)
}

func (h *Handler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.DeleteBook(r.Context(), chi.URLParam(r, "id"))
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

// parsePositiveQuery returns def when key is absent and an error when it is
// present but not a positive integer.
func parsePositiveQuery(r *http.Request, key string, def int) (int, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return def, nil
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
