// AngelaMos | 2026
// service.go

package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// MyBookings lists the requester's bookings with cart and in-progress totals.
func (s *Service) MyBookings(ctx context.Context, email string) (*MyBookingsResponse, error) {
	email = core.NormalizeEmail(email)
	filter := Filter{UserEmail: email}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	filter.Status = StatusProgress
	progress, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Find(ctx, Filter{UserEmail: email})
	if err != nil {
		return nil, err
	}

	return &MyBookingsResponse{
		TotalCart:     total,
		TotalProgress: progress,
		Result:        nonNil(bookings),
	}, nil
}

// MyPending lists bookings made against the provider's books.
func (s *Service) MyPending(ctx context.Context, email string) ([]Booking, error) {
	bookings, err := s.repo.Find(ctx, Filter{ProviderEmail: core.NormalizeEmail(email)})
	if err != nil {
		return nil, err
	}
	return nonNil(bookings), nil
}

func (s *Service) CreateBooking(
	ctx context.Context,
	req CreateBookingRequest,
) (core.InsertResult, error) {
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = StatusPending
	}

	b := &Booking{
		BookID:             req.BookID,
		BookName:           req.BookName,
		BookImage:          req.BookImage,
		UserEmail:          core.NormalizeEmail(req.UserEmail),
		UserName:           req.UserName,
		ProviderEmail:      core.NormalizeEmail(req.ProviderEmail),
		ProviderName:       req.ProviderName,
		ProviderImage:      req.ProviderImage,
		TakingDate:         req.TakingDate,
		SpecialInstruction: req.SpecialInstruction,
		Status:             status,
		Extra:              req.Extra,
	}

	return s.repo.Create(ctx, b)
}

func (s *Service) UpdateStatus(
	ctx context.Context,
	id, status string,
) (core.UpdateResult, error) {
	oid, err := core.ParseObjectID(id)
	if err != nil {
		return core.UpdateResult{}, err
	}

	status = strings.TrimSpace(status)
	if status == "" {
		return core.UpdateResult{}, fmt.Errorf("update booking status: empty status: %w", core.ErrInvalidInput)
	}

	return s.repo.SetField(ctx, oid, "status", status)
}

func (s *Service) AddCompletedTime(
	ctx context.Context,
	id, completedAt string,
) (core.UpdateResult, error) {
	oid, err := core.ParseObjectID(id)
	if err != nil {
		return core.UpdateResult{}, err
	}
	return s.repo.SetField(ctx, oid, "completed_at", completedAt)
}

func (s *Service) DeleteBooking(ctx context.Context, id string) (core.DeleteResult, error) {
	oid, err := core.ParseObjectID(id)
	if err != nil {
		return core.DeleteResult{}, err
	}
	return s.repo.Delete(ctx, oid)
}

// ListAll returns every booking, or only those in status when it is set
// to anything but All.
func (s *Service) ListAll(ctx context.Context, status string) ([]Booking, error) {
	filter := Filter{}
	if status != "" && status != FilterAll {
		filter.Status = status
	}

	bookings, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return nonNil(bookings), nil
}

func (s *Service) DeleteAll(ctx context.Context) (core.DeleteResult, error) {
	return s.repo.DeleteAll(ctx)
}

func nonNil(bookings []Booking) []Booking {
	if bookings == nil {
		return []Booking{}
	}
	return bookings
}
