// AngelaMos | 2026
// service.go

package analytics

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

const (
	statusProgress  = "Progress"
	statusCompleted = "Completed"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// UserAnalytics runs the six counts concurrently and fails on the first
// error.
func (s *Service) UserAnalytics(ctx context.Context, email string) (*UserAnalytics, error) {
	email = core.NormalizeEmail(email)

	var res UserAnalytics
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		res.TotalBooks, err = s.repo.CountBooks(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		res.MyBooks, err = s.repo.CountBooks(gctx, email)
		return err
	})
	g.Go(func() (err error) {
		res.TotalBooking, err = s.repo.CountBookings(gctx, "", "")
		return err
	})
	g.Go(func() (err error) {
		res.MyBookings, err = s.repo.CountBookings(gctx, email, "")
		return err
	})
	g.Go(func() (err error) {
		res.MyProgress, err = s.repo.CountBookings(gctx, email, statusProgress)
		return err
	})
	g.Go(func() (err error) {
		res.MyCompleted, err = s.repo.CountBookings(gctx, email, statusCompleted)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}

// MonthlyStats counts books per month label, the text of added_time before
// the first space, in first-seen order. Books with an empty label are
// skipped.
func (s *Service) MonthlyStats(ctx context.Context, email string) ([]MonthCount, error) {
	times, err := s.repo.AddedTimes(ctx, core.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	out := []MonthCount{}
	index := make(map[string]int)
	for _, t := range times {
		month, _, _ := strings.Cut(t, " ")
		if month == "" {
			continue
		}

		if i, ok := index[month]; ok {
			out[i].Count++
			continue
		}
		index[month] = len(out)
		out = append(out, MonthCount{Month: month, Count: 1})
	}

	return out, nil
}

func (s *Service) BookProviders(ctx context.Context) (*BookProvidersResponse, error) {
	var (
		total     int64
		providers []ProviderSummary
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		providers, err = s.repo.BookProviders(gctx)
		return err
	})
	g.Go(func() (err error) {
		total, err = s.repo.CountBookings(gctx, "", "")
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if providers == nil {
		providers = []ProviderSummary{}
	}
	return &BookProvidersResponse{TotalBookings: total, Result: providers}, nil
}
