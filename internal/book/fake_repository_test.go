// AngelaMos | 2026
// fake_repository_test.go

package book

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

type fakeRepository struct {
	mu        sync.Mutex
	order     []primitive.ObjectID
	books     map[primitive.ObjectID]*Book
	updateErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{books: make(map[primitive.ObjectID]*Book)}
}

func (f *fakeRepository) insert(b Book) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	f.books[b.ID] = &b
	f.order = append(f.order, b.ID)
	return b.ID
}

func (f *fakeRepository) get(id primitive.ObjectID) (Book, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[id]
	if !ok {
		return Book{}, false
	}
	return *b, true
}

func (f *fakeRepository) all() []Book {
	out := make([]Book, 0, len(f.order))
	for _, id := range f.order {
		if b, ok := f.books[id]; ok {
			out = append(out, *b)
		}
	}
	return out
}

func matchesSearch(b Book, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(b.BookName), term) ||
		strings.Contains(strings.ToLower(b.ProviderName), term) ||
		strings.Contains(strings.ToLower(b.ProviderLocation), term)
}

func (f *fakeRepository) List(_ context.Context, p ListParams) ([]Book, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []Book
	for _, b := range f.all() {
		if matchesSearch(b, p.Search) {
			matched = append(matched, b)
		}
	}

	total := int64(len(matched))
	start := int(p.Skip())
	if start > len(matched) {
		start = len(matched)
	}
	end := min(start+p.Limit, len(matched))
	return matched[start:end], total, nil
}

func (f *fakeRepository) Latest(_ context.Context, n int64) ([]Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	books := f.all()
	out := make([]Book, 0, n)
	for i := len(books) - 1; i >= 0 && int64(len(out)) < n; i-- {
		out = append(out, books[i])
	}
	return out, nil
}

func (f *fakeRepository) ListByProvider(_ context.Context, email string) ([]Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []Book
	for _, b := range f.all() {
		if email == "" || b.ProviderEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id primitive.ObjectID) (*Book, error) {
	b, ok := f.get(id)
	if !ok {
		return nil, fmt.Errorf("get book: %w", core.ErrNotFound)
	}
	return &b, nil
}

func (f *fakeRepository) Create(_ context.Context, b *Book) (core.InsertResult, error) {
	id := f.insert(*b)
	b.ID = id
	return core.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

func (f *fakeRepository) Upsert(
	_ context.Context,
	id primitive.ObjectID,
	u Update,
) (core.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.books[id]
	res := core.UpdateResult{Acknowledged: true}
	if !ok {
		b = &Book{ID: id}
		f.books[id] = b
		f.order = append(f.order, id)
		res.UpsertedCount = 1
		res.UpsertedID = id.Hex()
	} else {
		res.MatchedCount = 1
	}

	before := *b
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&b.BookName, u.BookName)
	apply(&b.BookImage, u.BookImage)
	apply(&b.ProviderPhone, u.ProviderPhone)
	apply(&b.ProviderLocation, u.ProviderLocation)
	apply(&b.Description, u.Description)
	apply(&b.BookStatus, u.BookStatus)

	if ok && !reflect.DeepEqual(*b, before) {
		res.ModifiedCount = 1
	}
	return res, nil
}

func (f *fakeRepository) UnavailableIDs(
	_ context.Context,
	email string,
) ([]primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var ids []primitive.ObjectID
	for _, b := range f.all() {
		if b.ProviderEmail == email && b.BookStatus == StatusUnavailable {
			ids = append(ids, b.ID)
		}
	}
	return ids, nil
}

func (f *fakeRepository) UpdateProvider(
	_ context.Context,
	email string,
	name, image *string,
) (core.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return core.UpdateResult{}, f.updateErr
	}

	res := core.UpdateResult{Acknowledged: true}
	for _, id := range f.order {
		b := f.books[id]
		if b == nil || b.ProviderEmail != email {
			continue
		}
		res.MatchedCount++
		before := *b
		if name != nil {
			b.ProviderName = *name
		}
		if image != nil {
			b.ProviderImage = *image
		}
		if !reflect.DeepEqual(*b, before) {
			res.ModifiedCount++
		}
	}
	return res, nil
}

func (f *fakeRepository) SetReview(
	_ context.Context,
	id primitive.ObjectID,
	name, review string,
) (core.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.books[id]
	if !ok {
		return core.UpdateResult{}, fmt.Errorf("add review: %w", core.ErrNotFound)
	}
	b.UserName = name
	b.UserReview = review
	return core.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeRepository) Delete(_ context.Context, id primitive.ObjectID) (core.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.books[id]; !ok {
		return core.DeleteResult{}, fmt.Errorf("delete book: %w", core.ErrNotFound)
	}
	delete(f.books, id)
	return core.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type recordingTx struct {
	calls int
}

func (r *recordingTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls++
	return fn(ctx)
}

type cascadeCounter struct {
	total int64
}

func (c *cascadeCounter) RecordCascade(modified int64) {
	c.total += modified
}

var errBoom = errors.New("boom")
