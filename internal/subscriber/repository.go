// AngelaMos | 2026
// repository.go

package subscriber

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Subscriber, error)
	Create(ctx context.Context, s *Subscriber) (core.InsertResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (core.DeleteResult, error)
	DeleteAll(ctx context.Context) (core.DeleteResult, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(db *core.Database) Repository {
	return &repository{coll: db.Emails()}
}

func NewRepositoryFromCollection(coll *mongo.Collection) Repository {
	return &repository{coll: coll}
}

func (r *repository) List(ctx context.Context) (_ []Subscriber, err error) {
	ctx, span := core.StartDBSpan(ctx, core.EmailsCollection, "find")
	defer func() { core.EndSpan(span, err) }()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}

	var subs []Subscriber
	if err = cursor.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("decode subscribers: %w", err)
	}
	return subs, nil
}

func (r *repository) Create(
	ctx context.Context,
	s *Subscriber,
) (_ core.InsertResult, err error) {
	ctx, span := core.StartDBSpan(ctx, core.EmailsCollection, "insertOne")
	defer func() { core.EndSpan(span, err) }()

	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}

	res, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return core.InsertResult{}, fmt.Errorf("create subscriber: %w", err)
	}
	return core.NewInsertResult(res), nil
}

func (r *repository) Delete(
	ctx context.Context,
	id primitive.ObjectID,
) (_ core.DeleteResult, err error) {
	ctx, span := core.StartDBSpan(ctx, core.EmailsCollection, "deleteOne")
	defer func() { core.EndSpan(span, err) }()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return core.DeleteResult{}, fmt.Errorf("delete subscriber: %w", err)
	}
	if res.DeletedCount == 0 {
		return core.DeleteResult{}, fmt.Errorf("delete subscriber: %w", core.ErrNotFound)
	}
	return core.NewDeleteResult(res), nil
}

func (r *repository) DeleteAll(ctx context.Context) (_ core.DeleteResult, err error) {
	ctx, span := core.StartDBSpan(ctx, core.EmailsCollection, "deleteMany")
	defer func() { core.EndSpan(span, err) }()

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return core.DeleteResult{}, fmt.Errorf("purge subscribers: %w", err)
	}
	return core.NewDeleteResult(res), nil
}
