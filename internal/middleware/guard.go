// AngelaMos | 2026
// guard.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

const roleAdmin = "admin"

// RoleLookup resolves the stored role for an identity email.
// It returns core.ErrNotFound when no user record exists.
type RoleLookup interface {
	GetRole(ctx context.Context, email string) (string, error)
}

// DenialRecorder is notified whenever a policy rejects a request.
type DenialRecorder interface {
	RecordAuthzDenial(reason string)
}

// ParamFunc extracts the owner email a policy compares the identity against.
type ParamFunc func(r *http.Request) string

func URLParam(name string) ParamFunc {
	return func(r *http.Request) string {
		return chi.URLParam(r, name)
	}
}

func QueryParam(name string) ParamFunc {
	return func(r *http.Request) string {
		return r.URL.Query().Get(name)
	}
}

type GuardOption func(*Guard)

func WithDenialRecorder(rec DenialRecorder) GuardOption {
	return func(g *Guard) {
		g.recorder = rec
	}
}

// Guard holds the authorization policies that run after Authenticator.
type Guard struct {
	roles     RoleLookup
	demoAdmin string
	recorder  DenialRecorder
}

func NewGuard(roles RoleLookup, demoAdmin string, opts ...GuardOption) *Guard {
	g := &Guard{
		roles:     roles,
		demoAdmin: strings.ToLower(strings.TrimSpace(demoAdmin)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Guard) isDemoAdmin(email string) bool {
	return g.demoAdmin != "" && strings.EqualFold(email, g.demoAdmin)
}

func (g *Guard) isAdmin(ctx context.Context, email string) (bool, error) {
	role, err := g.roles.GetRole(ctx, email)
	if errors.Is(err, core.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return role == roleAdmin, nil
}

func (g *Guard) deny(w http.ResponseWriter, reason string, err *core.AppError) {
	if g.recorder != nil {
		g.recorder.RecordAuthzDenial(reason)
	}
	core.JSONError(w, err)
}

// RequireAdmin admits stored admins and the demo admin. The demo admin is
// flagged in the context so RejectIfDemoAdmin can stop its mutations.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := GetEmail(r.Context())
		if email == "" {
			g.deny(w, "unauthenticated", core.UnauthorizedError(""))
			return
		}

		if g.isDemoAdmin(email) {
			ctx := context.WithValue(r.Context(), DemoAdminKey, true)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		admin, err := g.isAdmin(r.Context(), email)
		if err != nil {
			core.InternalServerError(w, err)
			return
		}
		if !admin {
			g.deny(w, "not_admin", core.ForbiddenError("forbidden access"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireOwner admits only the identity named by param.
func (g *Guard) RequireOwner(param ParamFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := GetEmail(r.Context())
			owner := param(r)

			if email == "" || owner == "" || !strings.EqualFold(email, owner) {
				g.deny(w, "not_owner", core.ForbiddenError("forbidden access"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireOwnerOrAdmin admits the identity named by param or any stored admin.
func (g *Guard) RequireOwnerOrAdmin(param ParamFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := GetEmail(r.Context())
			if email == "" {
				g.deny(w, "unauthenticated", core.UnauthorizedError(""))
				return
			}

			owner := param(r)
			if owner != "" && strings.EqualFold(email, owner) {
				next.ServeHTTP(w, r)
				return
			}

			admin, err := g.isAdmin(r.Context(), email)
			if err != nil {
				core.InternalServerError(w, err)
				return
			}
			if !admin {
				g.deny(w, "not_owner_or_admin", core.ForbiddenError("forbidden access"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RejectIfDemoAdmin stops any request made by the demo admin identity.
func (g *Guard) RejectIfDemoAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsDemoAdmin(r.Context()) || g.isDemoAdmin(GetEmail(r.Context())) {
			g.deny(w, "demo_read_only", core.ReadOnlyDemoError())
			return
		}

		next.ServeHTTP(w, r)
	})
}
