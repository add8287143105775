// AngelaMos | 2026
// fake_repository_test.go

package user

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

var errBoom = errors.New("boom")

type fakeRepository struct {
	mu      sync.Mutex
	users   map[string]*User
	findErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: make(map[string]*User)}
}

func (f *fakeRepository) put(u User) User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users[u.Email] = &u
	return u
}

func (f *fakeRepository) get(email string) (User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return User{}, false
	}
	return *u, true
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.users[email]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepository) Upsert(
	_ context.Context,
	p Profile,
	role string,
	now time.Time,
) (core.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := core.UpdateResult{Acknowledged: true}
	u, ok := f.users[p.Email]
	if !ok {
		u = &User{ID: primitive.NewObjectID(), Email: p.Email, CreatedAt: now}
		f.users[p.Email] = u
		res.UpsertedCount = 1
		res.UpsertedID = u.ID.Hex()
	} else {
		res.MatchedCount = 1
		res.ModifiedCount = 1
	}

	u.Role = role
	u.LastSyncAt = now
	if p.Name != "" {
		u.Name = p.Name
	}
	if p.Photo != "" {
		u.Photo = p.Photo
	}
	for k, v := range p.Extra {
		if u.Extra == nil {
			u.Extra = bson.M{}
		}
		u.Extra[k] = v
	}
	return res, nil
}

func (f *fakeRepository) List(_ context.Context) ([]User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeRepository) CountByRole(_ context.Context, role string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepository) UpdateRole(
	_ context.Context,
	email, role string,
) (core.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[email]
	if !ok {
		return core.UpdateResult{}, fmt.Errorf("update role: %w", core.ErrNotFound)
	}

	res := core.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if u.Role != role {
		res.ModifiedCount = 1
	}
	u.Role = role
	return res, nil
}

func (f *fakeRepository) Delete(
	_ context.Context,
	id primitive.ObjectID,
) (core.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
			return core.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return core.DeleteResult{}, fmt.Errorf("delete user: %w", core.ErrNotFound)
}
