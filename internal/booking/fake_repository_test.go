// AngelaMos | 2026
// fake_repository_test.go

package booking

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

type fakeRepository struct {
	mu       sync.Mutex
	order    []primitive.ObjectID
	bookings map[primitive.ObjectID]*Booking
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{bookings: make(map[primitive.ObjectID]*Booking)}
}

func (f *fakeRepository) insert(b Booking) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	f.bookings[b.ID] = &b
	f.order = append(f.order, b.ID)
	return b.ID
}

func (f *fakeRepository) get(id primitive.ObjectID) (Booking, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return Booking{}, false
	}
	return *b, true
}

func (f *fakeRepository) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

func matches(b *Booking, filter Filter) bool {
	return (filter.UserEmail == "" || b.UserEmail == filter.UserEmail) &&
		(filter.ProviderEmail == "" || b.ProviderEmail == filter.ProviderEmail) &&
		(filter.Status == "" || b.Status == filter.Status)
}

func (f *fakeRepository) Find(_ context.Context, filter Filter) ([]Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []Booking
	for _, id := range f.order {
		if b, ok := f.bookings[id]; ok && matches(b, filter) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepository) Count(ctx context.Context, filter Filter) (int64, error) {
	found, err := f.Find(ctx, filter)
	return int64(len(found)), err
}

func (f *fakeRepository) Create(_ context.Context, b *Booking) (core.InsertResult, error) {
	id := f.insert(*b)
	b.ID = id
	return core.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

func (f *fakeRepository) SetField(
	_ context.Context,
	id primitive.ObjectID,
	field, value string,
) (core.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := core.UpdateResult{Acknowledged: true}
	b, ok := f.bookings[id]
	if !ok {
		b = &Booking{ID: id}
		f.bookings[id] = b
		f.order = append(f.order, id)
		res.UpsertedCount = 1
		res.UpsertedID = id.Hex()
	} else {
		res.MatchedCount = 1
	}

	var dst *string
	switch field {
	case "status":
		dst = &b.Status
	case "completed_at":
		dst = &b.CompletedAt
	default:
		return core.UpdateResult{}, fmt.Errorf("unknown field %q", field)
	}

	if ok && *dst != value {
		res.ModifiedCount = 1
	}
	*dst = value
	return res, nil
}

func (f *fakeRepository) Delete(_ context.Context, id primitive.ObjectID) (core.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.bookings[id]; !ok {
		return core.DeleteResult{}, fmt.Errorf("delete booking: %w", core.ErrNotFound)
	}
	delete(f.bookings, id)
	return core.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (f *fakeRepository) DeleteAll(_ context.Context) (core.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := int64(len(f.bookings))
	f.bookings = make(map[primitive.ObjectID]*Booking)
	f.order = nil
	return core.DeleteResult{Acknowledged: true, DeletedCount: n}, nil
}
