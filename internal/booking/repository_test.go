// AngelaMos | 2026
// repository_test.go

package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

func TestFilterToBSON(t *testing.T) {
	assert.Empty(t, Filter{}.toBSON())
	assert.Equal(t,
		bson.M{"user_email": "a@x.com", "status": StatusProgress},
		Filter{UserEmail: "a@x.com", Status: StatusProgress}.toBSON(),
	)
	assert.Equal(t,
		bson.M{"provider_email": "p@x.com"},
		Filter{ProviderEmail: "p@x.com"}.toBSON(),
	)
}

func TestRepositoryFind(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "bookHaven.bookings", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: id},
				{Key: "user_email", Value: "a@x.com"},
				{Key: "provider_email", Value: "p@x.com"},
				{Key: "status", Value: StatusPending},
			},
		))

		got, err := NewRepositoryFromCollection(mt.Coll).Find(
			context.Background(), Filter{UserEmail: "a@x.com"})
		require.NoError(mt, err)
		require.Len(mt, got, 1)
		assert.Equal(mt, id, got[0].ID)
		assert.Equal(mt, StatusPending, got[0].Status)
	})

	mt.Run("empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "bookHaven.bookings", mtest.FirstBatch))

		got, err := NewRepositoryFromCollection(mt.Coll).Find(context.Background(), Filter{})
		require.NoError(mt, err)
		assert.NotNil(mt, got)
		assert.Empty(mt, got)
	})
}

func TestRepositoryDeleteMissing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}))

		_, err := NewRepositoryFromCollection(mt.Coll).Delete(
			context.Background(), primitive.NewObjectID())
		require.ErrorIs(mt, err, core.ErrNotFound)
	})

	mt.Run("deleted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}))

		res, err := NewRepositoryFromCollection(mt.Coll).Delete(
			context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.DeletedCount)
	})
}
