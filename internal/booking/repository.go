// AngelaMos | 2026
// repository.go

package booking

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

// Filter selects bookings by equality. Empty fields are ignored.
type Filter struct {
	UserEmail     string
	ProviderEmail string
	Status        string
}

func (f Filter) toBSON() bson.M {
	q := bson.M{}
	if f.UserEmail != "" {
		q["user_email"] = f.UserEmail
	}
	if f.ProviderEmail != "" {
		q["provider_email"] = f.ProviderEmail
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	return q
}

type Repository interface {
	Find(ctx context.Context, filter Filter) ([]Booking, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	Create(ctx context.Context, b *Booking) (core.InsertResult, error)
	SetField(ctx context.Context, id primitive.ObjectID, field, value string) (core.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (core.DeleteResult, error)
	DeleteAll(ctx context.Context) (core.DeleteResult, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(db *core.Database) Repository {
	return &repository{coll: db.Bookings()}
}

func NewRepositoryFromCollection(coll *mongo.Collection) Repository {
	return &repository{coll: coll}
}

func (r *repository) Find(ctx context.Context, filter Filter) (_ []Booking, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BookingsCollection, "find")
	defer func() { core.EndSpan(span, err) }()

	cursor, err := r.coll.Find(ctx, filter.toBSON())
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}

	bookings := make([]Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *repository) Count(ctx context.Context, filter Filter) (_ int64, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BookingsCollection, "countDocuments")
	defer func() { core.EndSpan(span, err) }()

	n, err := r.coll.CountDocuments(ctx, filter.toBSON())
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

func (r *repository) Create(ctx context.Context, b *Booking) (_ core.InsertResult, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BookingsCollection, "insertOne")
	defer func() { core.EndSpan(span, err) }()

	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}

	res, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return core.InsertResult{}, fmt.Errorf("create booking: %w", err)
	}
	return core.NewInsertResult(res), nil
}

// SetField upserts a single field on the booking with id.
func (r *repository) SetField(
	ctx context.Context,
	id primitive.ObjectID,
	field, value string,
) (_ core.UpdateResult, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BookingsCollection, "updateOne")
	defer func() { core.EndSpan(span, err) }()

	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{field: value}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return core.UpdateResult{}, fmt.Errorf("update booking %s: %w", field, err)
	}
	return core.NewUpdateResult(res), nil
}

func (r *repository) Delete(ctx context.Context, id primitive.ObjectID) (_ core.DeleteResult, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BookingsCollection, "deleteOne")
	defer func() { core.EndSpan(span, err) }()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return core.DeleteResult{}, fmt.Errorf("delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return core.DeleteResult{}, fmt.Errorf("delete booking: %w", core.ErrNotFound)
	}
	return core.NewDeleteResult(res), nil
}

func (r *repository) DeleteAll(ctx context.Context) (_ core.DeleteResult, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BookingsCollection, "deleteMany")
	defer func() { core.EndSpan(span, err) }()

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return core.DeleteResult{}, fmt.Errorf("delete all bookings: %w", err)
	}
	return core.NewDeleteResult(res), nil
}
