// AngelaMos | 2026
// handler_test.go

package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/bookhaven/internal/core"
	"github.com/carterperez-dev/bookhaven/internal/middleware"
)

const demoAdmin = "demo@example.com"

type emailVerifier struct{}

func (emailVerifier) VerifyAccessToken(
	_ context.Context,
	token string,
) (*middleware.IdentityClaims, error) {
	return &middleware.IdentityClaims{Email: token}, nil
}

func newTestRouter(repo *fakeRepository) http.Handler {
	svc := newTestService(repo)
	guard := middleware.NewGuard(svc, demoAdmin)
	authn := middleware.Authenticator(emailVerifier{})
	h := NewHandler(svc)

	r := chi.NewRouter()
	h.RegisterRoutes(r, authn, guard)
	r.Group(func(r chi.Router) {
		r.Use(authn, guard.RequireAdmin)
		h.RegisterAdminRoutes(r, guard)
	})
	return r
}

func serve(router http.Handler, method, path, identity, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if identity != "" {
		req.Header.Set("Authorization", "Bearer "+identity)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSyncUserIgnoresRoleInBody(t *testing.T) {
	repo := newFakeRepository()
	router := newTestRouter(repo)

	rec := serve(router, http.MethodPut, "/add-user", "",
		`{"email":"reader@example.com","name":"Reader","role":"admin","_id":"abc"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, ok := repo.get("reader@example.com")
	require.True(t, ok)
	assert.Equal(t, RoleGuest, stored.Role)
	assert.NotContains(t, stored.Extra, "role")
	assert.NotContains(t, stored.Extra, "_id")

	rec = serve(router, http.MethodPut, "/add-user", "", `{"name":"nobody"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRoleOwnerOnly(t *testing.T) {
	repo := newFakeRepository()
	repo.put(User{Email: "reader@example.com", Role: RoleGuest})
	router := newTestRouter(repo)

	rec := serve(router, http.MethodGet, "/role/reader@example.com", "reader@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"role":"guest"}`, rec.Body.String())

	rec = serve(router, http.MethodGet, "/role/reader@example.com", "other@example.com", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(router, http.MethodGet, "/role/reader@example.com", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetRoleMissingUser(t *testing.T) {
	router := newTestRouter(newFakeRepository())

	rec := serve(router, http.MethodGet, "/role/ghost@example.com", "ghost@example.com", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body core.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "user not found", body.Message)
}

func TestAdminUserRoutes(t *testing.T) {
	repo := newFakeRepository()
	repo.put(User{Email: "boss@example.com", Role: RoleAdmin})
	target := repo.put(User{Email: "reader@example.com", Role: RoleGuest})
	router := newTestRouter(repo)

	rec := serve(router, http.MethodGet, "/total-admin", "boss@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalAdmin":1}`, rec.Body.String())

	rec = serve(router, http.MethodGet, "/users", "reader@example.com", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(router, http.MethodPatch, "/user-update/reader@example.com", demoAdmin,
		`{"role":"admin"}`)
	require.Equal(t, http.StatusPaymentRequired, rec.Code)
	stored, _ := repo.get("reader@example.com")
	assert.Equal(t, RoleGuest, stored.Role)

	rec = serve(router, http.MethodPatch, "/user-update/reader@example.com", "boss@example.com",
		`{"role":"owner"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(router, http.MethodPatch, "/user-update/Reader@example.com", "boss@example.com",
		`{"role":"admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	stored, _ = repo.get("reader@example.com")
	assert.Equal(t, RoleAdmin, stored.Role)

	rec = serve(router, http.MethodPatch, "/user-update/ghost@example.com", "boss@example.com",
		`{"role":"admin"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, http.MethodDelete, "/user/"+target.ID.Hex(), demoAdmin, "")
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)

	rec = serve(router, http.MethodDelete, "/user/"+target.ID.Hex(), "boss@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	_, ok := repo.get("reader@example.com")
	assert.False(t, ok)
}

func TestDemoAdminCanListUsers(t *testing.T) {
	repo := newFakeRepository()
	repo.put(User{Email: "reader@example.com", Role: RoleGuest})
	router := newTestRouter(repo)

	rec := serve(router, http.MethodGet, "/users", demoAdmin, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var users []User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&users))
	assert.Len(t, users, 1)
}

func TestSyncUserStoresProfileFields(t *testing.T) {
	repo := newFakeRepository()
	router := newTestRouter(repo)

	rec := serve(router, http.MethodPut, "/add-user", "",
		`{"email":"Reader@Example.com","photo":"p.png","phone":"555-0101","created_at":"never"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, ok := repo.get("reader@example.com")
	require.True(t, ok)
	assert.Equal(t, "p.png", stored.Photo)
	assert.Equal(t, "555-0101", stored.Extra["phone"])
	assert.NotContains(t, stored.Extra, "created_at")
}
