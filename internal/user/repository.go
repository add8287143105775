// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Upsert(ctx context.Context, p Profile, role string, now time.Time) (core.UpdateResult, error)
	List(ctx context.Context) ([]User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	UpdateRole(ctx context.Context, email, role string) (core.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (core.DeleteResult, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(db *core.Database) Repository {
	return &repository{coll: db.Users()}
}

func NewRepositoryFromCollection(coll *mongo.Collection) Repository {
	return &repository{coll: coll}
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (_ *User, err error) {
	ctx, span := core.StartDBSpan(ctx, core.UsersCollection, "findOne")
	defer func() { core.EndSpan(span, err) }()

	var u User
	err = r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if core.IsNoDocuments(err) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &u, nil
}

func (r *repository) Upsert(
	ctx context.Context,
	p Profile,
	role string,
	now time.Time,
) (_ core.UpdateResult, err error) {
	ctx, span := core.StartDBSpan(ctx, core.UsersCollection, "updateOne")
	defer func() { core.EndSpan(span, err) }()

	set := bson.M{}
	for k, v := range p.Extra {
		set[k] = v
	}
	set["email"] = p.Email
	set["role"] = role
	set["last_sync_at"] = now
	if p.Name != "" {
		set["name"] = p.Name
	}
	if p.Photo != "" {
		set["photo"] = p.Photo
	}

	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"email": p.Email},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	if core.IsDuplicateKeyError(err) {
		return core.UpdateResult{}, core.ErrDuplicateKey
	}
	if err != nil {
		return core.UpdateResult{}, fmt.Errorf("upsert user: %w", err)
	}

	return core.NewUpdateResult(res), nil
}

func (r *repository) List(ctx context.Context) (_ []User, err error) {
	ctx, span := core.StartDBSpan(ctx, core.UsersCollection, "find")
	defer func() { core.EndSpan(span, err) }()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var users []User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *repository) CountByRole(
	ctx context.Context,
	role string,
) (_ int64, err error) {
	ctx, span := core.StartDBSpan(ctx, core.UsersCollection, "countDocuments")
	defer func() { core.EndSpan(span, err) }()

	n, err := r.coll.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *repository) UpdateRole(
	ctx context.Context,
	email, role string,
) (_ core.UpdateResult, err error) {
	ctx, span := core.StartDBSpan(ctx, core.UsersCollection, "updateOne")
	defer func() { core.EndSpan(span, err) }()

	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return core.UpdateResult{}, fmt.Errorf("update role: %w", err)
	}
	if res.MatchedCount == 0 {
		return core.UpdateResult{}, fmt.Errorf("update role: %w", core.ErrNotFound)
	}

	return core.NewUpdateResult(res), nil
}

func (r *repository) Delete(
	ctx context.Context,
	id primitive.ObjectID,
) (_ core.DeleteResult, err error) {
	ctx, span := core.StartDBSpan(ctx, core.UsersCollection, "deleteOne")
	defer func() { core.EndSpan(span, err) }()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return core.DeleteResult{}, fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return core.DeleteResult{}, fmt.Errorf("delete user: %w", core.ErrNotFound)
	}

	return core.NewDeleteResult(res), nil
}
