// AngelaMos | 2026
// service.go

package book

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	LatestCount  = 6
)

// CascadeRecorder observes how many books a provider profile edit touched.
type CascadeRecorder interface {
	RecordCascade(modified int64)
}

type Service struct {
	repo     Repository
	tx       core.TxRunner
	recorder CascadeRecorder
	now      func() time.Time
}

// NewService wires the book service. tx may be nil, in which case
// provider cascades run without a transaction.
func NewService(
	repo Repository,
	tx core.TxRunner,
	recorder CascadeRecorder,
) *Service {
	if tx == nil {
		tx = core.NoTx{}
	}
	return &Service{
		repo:     repo,
		tx:       tx,
		recorder: recorder,
		now:      time.Now,
	}
}

func (s *Service) ListBooks(
	ctx context.Context,
	params ListParams,
) (*ListBooksResponse, error) {
	if params.Page <= 0 || params.Limit <= 0 {
		return nil, fmt.Errorf(
			"list books: page and limit must be positive: %w",
			core.ErrInvalidInput,
		)
	}
	if params.Limit > MaxLimit {
		return nil, fmt.Errorf(
			"list books: limit above %d: %w",
			MaxLimit,
			core.ErrInvalidInput,
		)
	}

	books, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	limit := int64(params.Limit)
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return &ListBooksResponse{
		TotalPages: pages,
		TotalBooks: total,
		Result:     nonNil(books),
	}, nil
}

func (s *Service) LatestBooks(ctx context.Context) ([]Book, error) {
	books, err := s.repo.Latest(ctx, LatestCount)
	if err != nil {
		return nil, err
	}
	return nonNil(books), nil
}

// ProviderBooks returns every book when email is empty.
func (s *Service) ProviderBooks(ctx context.Context, email string) ([]Book, error) {
	books, err := s.repo.ListByProvider(ctx, core.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	return nonNil(books), nil
}

func (s *Service) GetBook(ctx context.Context, id string) (*Book, error) {
	oid, err := core.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, oid)
}

func (s *Service) CreateBook(
	ctx context.Context,
	req CreateBookRequest,
) (core.InsertResult, error) {
	status := StatusAvailable
	if req.BookStatus != "" {
		normalized, ok := NormalizeStatus(req.BookStatus)
		if !ok {
			return core.InsertResult{}, fmt.Errorf(
				"create book: invalid status %q: %w",
				req.BookStatus,
				core.ErrInvalidInput,
			)
		}
		status = normalized
	}

	addedTime := strings.TrimSpace(req.AddedTime)
	if addedTime == "" {
		addedTime = s.now().Format(AddedTimeLayout)
	}

	book := &Book{
		BookName:         req.BookName,
		BookImage:        req.BookImage,
		Description:      req.Description,
		ProviderEmail:    core.NormalizeEmail(req.ProviderEmail),
		ProviderName:     req.ProviderName,
		ProviderImage:    req.ProviderImage,
		ProviderLocation: req.ProviderLocation,
		ProviderPhone:    req.ProviderPhone,
		BookStatus:       status,
		AddedTime:        addedTime,
		Extra:            req.Extra,
	}

	return s.repo.Create(ctx, book)
}

func (s *Service) UpdateBook(
	ctx context.Context,
	id string,
	req UpdateBookRequest,
) (core.UpdateResult, error) {
	oid, err := core.ParseObjectID(id)
	if err != nil {
		return core.UpdateResult{}, err
	}

	update := req.toUpdate()
	if update.IsEmpty() {
		return core.UpdateResult{}, fmt.Errorf(
			"update book: no fields to update: %w",
			core.ErrInvalidInput,
		)
	}

	return s.repo.Upsert(ctx, oid, update)
}

func (s *Service) UpdateStatus(
	ctx context.Context,
	id string,
	status string,
) (core.UpdateResult, error) {
	oid, err := core.ParseObjectID(id)
	if err != nil {
		return core.UpdateResult{}, err
	}

	normalized, ok := NormalizeStatus(status)
	if !ok {
		return core.UpdateResult{}, fmt.Errorf(
			"update status: invalid status %q: %w",
			status,
			core.ErrInvalidInput,
		)
	}

	return s.repo.Upsert(ctx, oid, Update{BookStatus: &normalized})
}

func (s *Service) UnavailableIDs(
	ctx context.Context,
	email string,
) ([]primitive.ObjectID, error) {
	ids, err := s.repo.UnavailableIDs(ctx, core.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []primitive.ObjectID{}
	}
	return ids, nil
}

// UpdateProviderProfile copies a provider's new name and photo onto every
// book they list. Without a transactional runner a failure part way
// through leaves the earlier books updated.
func (s *Service) UpdateProviderProfile(
	ctx context.Context,
	email string,
	req UpdateProviderRequest,
) (core.UpdateResult, error) {
	if req.Name == nil && req.Photo == nil {
		return core.UpdateResult{}, fmt.Errorf(
			"update provider: name or photo is required: %w",
			core.ErrInvalidInput,
		)
	}

	var result core.UpdateResult
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		res, err := s.repo.UpdateProvider(ctx, core.NormalizeEmail(email), req.Name, req.Photo)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return core.UpdateResult{}, err
	}

	if s.recorder != nil {
		s.recorder.RecordCascade(result.ModifiedCount)
	}

	return result, nil
}

func (s *Service) AddReview(
	ctx context.Context,
	id string,
	req AddReviewRequest,
) (core.UpdateResult, error) {
	oid, err := core.ParseObjectID(id)
	if err != nil {
		return core.UpdateResult{}, err
	}
	return s.repo.SetReview(ctx, oid, req.Name, req.Review)
}

func (s *Service) DeleteBook(ctx context.Context, id string) (core.DeleteResult, error) {
	oid, err := core.ParseObjectID(id)
	if err != nil {
		return core.DeleteResult{}, err
	}
	return s.repo.Delete(ctx, oid)
}

func nonNil(books []Book) []Book {
	if books == nil {
		return []Book{}
	}
	return books
}
