// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/bookhaven/internal/core"
	"github.com/carterperez-dev/bookhaven/internal/middleware"
)

const denylistPrefix = "denylist:"

type Service struct {
	jwt            *JWTManager
	redis          *redis.Client
	revokeOnLogout bool
}

func NewService(
	jwt *JWTManager,
	redisClient *redis.Client,
	revokeOnLogout bool,
) *Service {
	return &Service{
		jwt:            jwt,
		redis:          redisClient,
		revokeOnLogout: revokeOnLogout && redisClient != nil,
	}
}

func (s *Service) Issue(
	_ context.Context,
	req IssueTokenRequest,
) (*IssuedToken, error) {
	issued, err := s.jwt.CreateAccessToken(req.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return issued, nil
}

// VerifyAccessToken checks signature and expiry, then the logout denylist.
func (s *Service) VerifyAccessToken(
	ctx context.Context,
	tokenString string,
) (*middleware.IdentityClaims, error) {
	claims, err := s.jwt.ParseAccessToken(tokenString)
	if err != nil {
		return nil, err
	}

	if !s.revokeOnLogout || claims.TokenID == "" {
		return claims, nil
	}

	revoked, err := s.isRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenRevoked)
	}

	return claims, nil
}

// Revoke denylists a still-valid token until it would have expired.
// Invalid or already expired tokens are ignored.
func (s *Service) Revoke(ctx context.Context, tokenString string) error {
	if !s.revokeOnLogout || tokenString == "" {
		return nil
	}

	claims, err := s.jwt.ParseAccessToken(tokenString)
	if err != nil {
		if errors.Is(err, core.ErrTokenInvalid) ||
			errors.Is(err, core.ErrTokenExpired) {
			return nil
		}
		return err
	}

	if claims.TokenID == "" {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := s.redis.Set(ctx, denylistPrefix+claims.TokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("denylist token: %w", err)
	}

	return nil
}

func (s *Service) isRevoked(ctx context.Context, jti string) (bool, error) {
	exists, err := s.redis.Exists(ctx, denylistPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check denylist: %w", err)
	}
	return exists > 0, nil
}

func (s *Service) TokenLifetime() time.Duration {
	return s.jwt.Expire()
}

var _ middleware.TokenVerifier = (*Service)(nil)
