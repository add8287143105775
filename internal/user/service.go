// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carterperez-dev/bookhaven/internal/core"
	"github.com/carterperez-dev/bookhaven/internal/middleware"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SyncUser records a signed-in profile. An existing admin keeps the role;
// everyone else is stored as a guest.
func (s *Service) SyncUser(
	ctx context.Context,
	req SyncUserRequest,
) (core.UpdateResult, error) {
	email := core.NormalizeEmail(req.Email)
	if email == "" {
		return core.UpdateResult{}, fmt.Errorf("sync user: empty email: %w", core.ErrInvalidInput)
	}

	role := RoleGuest
	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.IsAdmin() {
			role = RoleAdmin
		}
	case errors.Is(err, core.ErrNotFound):
	default:
		return core.UpdateResult{}, err
	}

	return s.repo.Upsert(ctx, Profile{
		Email: email,
		Name:  strings.TrimSpace(req.Name),
		Photo: strings.TrimSpace(req.Photo),
		Extra: req.Extra,
	}, role, s.now().UTC())
}

// GetRole returns core.ErrNotFound when no user is stored for email.
func (s *Service) GetRole(ctx context.Context, email string) (string, error) {
	u, err := s.repo.GetByEmail(ctx, core.NormalizeEmail(email))
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		return []User{}, nil
	}
	return users, nil
}

func (s *Service) CountAdmins(ctx context.Context) (int64, error) {
	return s.repo.CountByRole(ctx, RoleAdmin)
}

func (s *Service) UpdateRole(
	ctx context.Context,
	email, role string,
) (core.UpdateResult, error) {
	if role != RoleGuest && role != RoleAdmin {
		return core.UpdateResult{}, fmt.Errorf(
			"update role: invalid role %q: %w",
			role,
			core.ErrInvalidInput,
		)
	}

	return s.repo.UpdateRole(ctx, core.NormalizeEmail(email), role)
}

func (s *Service) DeleteUser(ctx context.Context, id string) (core.DeleteResult, error) {
	oid, err := core.ParseObjectID(id)
	if err != nil {
		return core.DeleteResult{}, err
	}
	return s.repo.Delete(ctx, oid)
}

var _ middleware.RoleLookup = (*Service)(nil)
