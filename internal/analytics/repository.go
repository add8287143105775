// AngelaMos | 2026
// repository.go

package analytics

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

type Repository interface {
	// CountBooks counts every book when providerEmail is empty.
	CountBooks(ctx context.Context, providerEmail string) (int64, error)
	// CountBookings ignores empty arguments.
	CountBookings(ctx context.Context, userEmail, status string) (int64, error)
	AddedTimes(ctx context.Context, providerEmail string) ([]string, error)
	BookProviders(ctx context.Context) ([]ProviderSummary, error)
}

type repository struct {
	books    *mongo.Collection
	bookings *mongo.Collection
}

func NewRepository(db *core.Database) Repository {
	return &repository{books: db.Books(), bookings: db.Bookings()}
}

func NewRepositoryFromCollections(books, bookings *mongo.Collection) Repository {
	return &repository{books: books, bookings: bookings}
}

func (r *repository) CountBooks(
	ctx context.Context,
	providerEmail string,
) (_ int64, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BooksCollection, "countDocuments")
	defer func() { core.EndSpan(span, err) }()

	filter := bson.M{}
	if providerEmail != "" {
		filter["provider_email"] = providerEmail
	}

	n, err := r.books.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return n, nil
}

func (r *repository) CountBookings(
	ctx context.Context,
	userEmail, status string,
) (_ int64, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BookingsCollection, "countDocuments")
	defer func() { core.EndSpan(span, err) }()

	filter := bson.M{}
	if userEmail != "" {
		filter["user_email"] = userEmail
	}
	if status != "" {
		filter["status"] = status
	}

	n, err := r.bookings.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

func (r *repository) AddedTimes(
	ctx context.Context,
	providerEmail string,
) (_ []string, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BooksCollection, "find")
	defer func() { core.EndSpan(span, err) }()

	filter := bson.M{}
	if providerEmail != "" {
		filter["provider_email"] = providerEmail
	}

	cursor, err := r.books.Find(ctx, filter,
		options.Find().SetProjection(bson.M{"added_time": 1}))
	if err != nil {
		return nil, fmt.Errorf("find added times: %w", err)
	}

	var rows []struct {
		AddedTime string `bson:"added_time"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode added times: %w", err)
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.AddedTime)
	}
	return out, nil
}

// providersPipeline groups books by provider. Sorting by _id first makes
// firstBookId the provider's oldest book.
func providersPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$provider_email"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "firstBookId", Value: bson.D{{Key: "$first", Value: "$_id"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "email", Value: "$_id"},
			{Key: "count", Value: 1},
			{Key: "firstBookId", Value: 1},
			{Key: "_id", Value: 0},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "email", Value: 1}}}},
	}
}

func (r *repository) BookProviders(ctx context.Context) (_ []ProviderSummary, err error) {
	ctx, span := core.StartDBSpan(ctx, core.BooksCollection, "aggregate")
	defer func() { core.EndSpan(span, err) }()

	cursor, err := r.books.Aggregate(ctx, providersPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate providers: %w", err)
	}

	var out []ProviderSummary
	if err = cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode providers: %w", err)
	}
	return out, nil
}
