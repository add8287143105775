// AngelaMos | 2026
// service.go

package subscriber

import (
	"context"
	"strings"
	"time"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Subscriber, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		return []Subscriber{}, nil
	}
	return subs, nil
}

func (s *Service) Subscribe(
	ctx context.Context,
	req SubscribeRequest,
) (core.InsertResult, error) {
	return s.repo.Create(ctx, &Subscriber{
		Email:        strings.TrimSpace(req.Email),
		Name:         strings.TrimSpace(req.Name),
		SubscribedAt: s.now().UTC(),
		Extra:        req.Extra,
	})
}

// Delete removes one subscriber, or all of them when id is DeleteAllID.
func (s *Service) Delete(ctx context.Context, id string) (core.DeleteResult, error) {
	if id == DeleteAllID {
		return s.repo.DeleteAll(ctx)
	}

	oid, err := core.ParseObjectID(id)
	if err != nil {
		return core.DeleteResult{}, err
	}
	return s.repo.Delete(ctx, oid)
}
