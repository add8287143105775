// AngelaMos | 2026
// repository.go

package book

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

type Repository interface {
	List(ctx context.Context, params ListParams) ([]Book, int64, error)
	Latest(ctx context.Context, n int64) ([]Book, error)
	ListByProvider(ctx context.Context, email string) ([]Book, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Book, error)
	Create(ctx context.Context, book *Book) (core.InsertResult, error)
	Upsert(ctx context.Context, id primitive.ObjectID, u Update) (core.UpdateResult, error)
	UnavailableIDs(ctx context.Context, email string) ([]primitive.ObjectID, error)
	UpdateProvider(ctx context.Context, email string, name, image *string) (core.UpdateResult, error)
	SetReview(ctx context.Context, id primitive.ObjectID, name, review string) (core.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (core.DeleteResult, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(db *core.Database) Repository {
	return &repository{coll: db.Books()}
}

func NewRepositoryFromCollection(coll *mongo.Collection) Repository {
	return &repository{coll: coll}
}

// searchFilter matches the quoted term case-insensitively against the
// title, provider name and provider location.
func searchFilter(term string) bson.M {
	if term == "" {
		return bson.M{}
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"book_name": pattern},
		bson.M{"provider_name": pattern},
		bson.M{"provider_location": pattern},
	}}
}

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) (_ []Book, _ int64, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BooksCollection, "find")
	defer func() { core.EndSpan(span, err) }()

	filter := searchFilter(params.Search)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	opts := options.Find().
		SetSkip(params.Skip()).
		SetLimit(int64(params.Limit))

	books, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}

	return books, total, nil
}

func (r *repository) Latest(ctx context.Context, n int64) (_ []Book, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BooksCollection, "find")
	defer func() { core.EndSpan(span, err) }()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(n)

	books, err := r.find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("latest books: %w", err)
	}
	return books, nil
}

func (r *repository) ListByProvider(
	ctx context.Context,
	email string,
) (_ []Book, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BooksCollection, "find")
	defer func() { core.EndSpan(span, err) }()

	filter := bson.M{}
	if email != "" {
		filter["provider_email"] = email
	}

	books, err := r.find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("provider books: %w", err)
	}
	return books, nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (_ *Book, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BooksCollection, "findOne")
	defer func() { core.EndSpan(span, err) }()

	var book Book
	err = r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if core.IsNoDocuments(err) {
		return nil, fmt.Errorf("get book: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}

	return &book, nil
}

func (r *repository) Create(
	ctx context.Context,
	book *Book,
) (_ core.InsertResult, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BooksCollection, "insertOne")
	defer func() { core.EndSpan(span, err) }()

	if book.ID.IsZero() {
		book.ID = primitive.NewObjectID()
	}

	res, err := r.coll.InsertOne(ctx, book)
	if err != nil {
		return core.InsertResult{}, fmt.Errorf("create book: %w", err)
	}

	return core.NewInsertResult(res), nil
}

func (r *repository) Upsert(
	ctx context.Context,
	id primitive.ObjectID,
	u Update,
) (_ core.UpdateResult, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BooksCollection, "updateOne")
	defer func() { core.EndSpan(span, err) }()

	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc(u)},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return core.UpdateResult{}, fmt.Errorf("update book: %w", err)
	}

	return core.NewUpdateResult(res), nil
}

func updateDoc(u Update) bson.M {
	set := bson.M{}
	if u.BookName != nil {
		set["book_name"] = *u.BookName
	}
	if u.BookImage != nil {
		set["book_image"] = *u.BookImage
	}
	if u.ProviderPhone != nil {
		set["provider_phone"] = *u.ProviderPhone
	}
	if u.ProviderLocation != nil {
		set["provider_location"] = *u.ProviderLocation
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.BookStatus != nil {
		set["book_status"] = *u.BookStatus
	}
	return set
}

func (r *repository) UnavailableIDs(
	ctx context.Context,
	email string,
) (_ []primitive.ObjectID, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BooksCollection, "find")
	defer func() { core.EndSpan(span, err) }()

	filter := bson.M{
		"book_status":    StatusUnavailable,
		"provider_email": email,
	}
	opts := options.Find().SetProjection(bson.M{"_id": 1})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("unavailable ids: %w", err)
	}

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode unavailable ids: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (r *repository) UpdateProvider(
	ctx context.Context,
	email string,
	name, image *string,
) (_ core.UpdateResult, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BooksCollection, "updateMany")
	defer func() { core.EndSpan(span, err) }()

	set := bson.M{}
	if name != nil {
		set["provider_name"] = *name
	}
	if image != nil {
		set["provider_image"] = *image
	}

	res, err := r.coll.UpdateMany(
		ctx,
		bson.M{"provider_email": email},
		bson.M{"$set": set},
	)
	if err != nil {
		return core.UpdateResult{}, fmt.Errorf("update provider books: %w", err)
	}

	return core.NewUpdateResult(res), nil
}

func (r *repository) SetReview(
	ctx context.Context,
	id primitive.ObjectID,
	name, review string,
) (_ core.UpdateResult, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BooksCollection, "updateOne")
	defer func() { core.EndSpan(span, err) }()

	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"user_name": name, "user_review": review}},
	)
	if err != nil {
		return core.UpdateResult{}, fmt.Errorf("add review: %w", err)
	}
	if res.MatchedCount == 0 {
		return core.UpdateResult{}, fmt.Errorf("add review: %w", core.ErrNotFound)
	}

	return core.NewUpdateResult(res), nil
}

func (r *repository) Delete(
	ctx context.Context,
	id primitive.ObjectID,
) (_ core.DeleteResult, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BooksCollection, "deleteOne")
	defer func() { core.EndSpan(span, err) }()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return core.DeleteResult{}, fmt.Errorf("delete book: %w", err)
	}
	if res.DeletedCount == 0 {
		return core.DeleteResult{}, fmt.Errorf("delete book: %w", core.ErrNotFound)
	}

	return core.NewDeleteResult(res), nil
}

func (r *repository) find(
	ctx context.Context,
	filter any,
	opts ...*options.FindOptions,
) ([]Book, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	books := make([]Book, 0)
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}
