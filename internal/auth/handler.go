// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/bookhaven/internal/core"
	"github.com/carterperez-dev/bookhaven/internal/middleware"
)

type Handler struct {
	service    *Service
	validator  *validator.Validate
	production bool
}

func NewHandler(service *Service, production bool) *Handler {
	return &Handler{
		service:    service,
		validator:  validator.New(validator.WithRequiredStructEnabled()),
		production: production,
	}
}

// RegisterRoutes mounts token issuance and logout. issueLimiter guards
// POST /jwt separately from the global limiter.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	issueLimiter func(http.Handler) http.Handler,
) {
	if issueLimiter != nil {
		r.With(issueLimiter).Post("/jwt", h.IssueToken)
	} else {
		r.Post("/jwt", h.IssueToken)
	}
	r.Get("/logout", h.Logout)
}

func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req IssueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	issued, err := h.service.Issue(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "email is required")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	http.SetCookie(w, h.tokenCookie(issued.Token, issued.ExpiresAt))

	core.OK(w, TokenResponse{
		Success:   true,
		ExpiresAt: issued.ExpiresAt.Unix(),
	})
}

// Logout clears the identity cookie. Revocation failures are logged and do
// not block the cookie from being cleared.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.ExtractToken(r); token != "" {
		if err := h.service.Revoke(r.Context(), token); err != nil {
			slog.Warn("token revocation failed", "error", err)
		}
	}

	cookie := h.tokenCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)

	core.Acknowledge(w)
}

func (h *Handler) tokenCookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}

	if h.production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}

	return cookie
}
