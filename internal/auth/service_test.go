// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewService(newTestManager(t), client, true), mr
}

func TestServiceIssueAndVerify(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, IssueTokenRequest{Email: "reader@example.com"})
	require.NoError(t, err)

	claims, err := svc.VerifyAccessToken(ctx, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", claims.Email)
}

func TestServiceRevokeDenylistsToken(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, IssueTokenRequest{Email: "reader@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, issued.Token))
	assert.True(t, mr.Exists(denylistPrefix+issued.TokenID))
	assert.Positive(t, mr.TTL(denylistPrefix+issued.TokenID))

	_, err = svc.VerifyAccessToken(ctx, issued.Token)
	require.ErrorIs(t, err, core.ErrTokenRevoked)
}

func TestServiceRevokeIgnoresInvalidToken(t *testing.T) {
	svc, mr := newTestService(t)

	require.NoError(t, svc.Revoke(context.Background(), "garbage"))
	assert.Empty(t, mr.Keys())
}

func TestServiceWithoutRevocation(t *testing.T) {
	svc := NewService(newTestManager(t), nil, true)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, IssueTokenRequest{Email: "reader@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, issued.Token))

	_, err = svc.VerifyAccessToken(ctx, issued.Token)
	require.NoError(t, err)
}
