// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

type contextKey string

const (
	EmailKey     contextKey = "identity_email"
	ClaimsKey    contextKey = "jwt_claims"
	DemoAdminKey contextKey = "demo_admin"
)

// TokenCookieName is the cookie carrying the identity token.
const TokenCookieName = "token"

type TokenVerifier interface {
	VerifyAccessToken(
		ctx context.Context,
		token string,
	) (*IdentityClaims, error)
}

type IdentityClaims struct {
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

// Authenticator rejects requests without a valid identity token and
// attaches the decoded identity to the request context.
func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("unauthorized access"),
				)
				return
			}

			claims, err := verifier.VerifyAccessToken(r.Context(), token)
			if err != nil {
				handleAuthError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), claims)))
		})
	}
}

func WithIdentity(ctx context.Context, claims *IdentityClaims) context.Context {
	ctx = context.WithValue(ctx, EmailKey, claims.Email)
	return context.WithValue(ctx, ClaimsKey, claims)
}

// ExtractToken reads the identity cookie, falling back to a bearer header.
func ExtractToken(r *http.Request) string {
	if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func handleAuthError(w http.ResponseWriter, err error) {
	if core.IsAppError(err) {
		core.JSONError(w, err)
		return
	}

	switch {
	case errors.Is(err, core.ErrTokenExpired):
		core.JSONError(w, core.TokenExpiredError())
	case errors.Is(err, core.ErrTokenRevoked):
		core.JSONError(w, core.TokenRevokedError())
	case errors.Is(err, core.ErrTokenInvalid):
		core.JSONError(w, core.TokenInvalidError())
	default:
		core.JSONError(w, core.TokenInvalidError())
	}
}

func GetEmail(ctx context.Context) string {
	if email, ok := ctx.Value(EmailKey).(string); ok {
		return email
	}
	return ""
}

func GetClaims(ctx context.Context) *IdentityClaims {
	if claims, ok := ctx.Value(ClaimsKey).(*IdentityClaims); ok {
		return claims
	}
	return nil
}

func IsAuthenticated(ctx context.Context) bool {
	return GetEmail(ctx) != ""
}

// IsDemoAdmin reports whether RequireAdmin let the request through as the
// read-only demo admin.
func IsDemoAdmin(ctx context.Context) bool {
	demo, _ := ctx.Value(DemoAdminKey).(bool)
	return demo
}
