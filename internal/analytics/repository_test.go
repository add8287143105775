// AngelaMos | 2026
// repository_test.go

package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestProvidersPipelineStages(t *testing.T) {
	pipeline := providersPipeline()
	require.Len(t, pipeline, 4)

	stages := make([]string, 0, len(pipeline))
	for _, stage := range pipeline {
		stages = append(stages, stage[0].Key)
	}
	assert.Equal(t, []string{"$sort", "$group", "$project", "$sort"}, stages)

	group := pipeline[1][0].Value.(bson.D)
	assert.Equal(t, "$provider_email", group[0].Value)
	assert.Equal(t, bson.D{{Key: "$first", Value: "$_id"}}, group[2].Value)
}

func TestRepositoryBookProviders(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decode", func(mt *mtest.T) {
		first := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "bookHaven.books", mtest.FirstBatch,
			bson.D{
				{Key: "count", Value: int32(2)},
				{Key: "firstBookId", Value: first},
				{Key: "email", Value: "p@x.com"},
			},
		))

		repo := NewRepositoryFromCollections(mt.Coll, mt.Coll)
		res, err := repo.BookProviders(context.Background())
		require.NoError(mt, err)
		require.Len(mt, res, 1)
		assert.Equal(mt, ProviderSummary{Email: "p@x.com", Count: 2, FirstBookID: first}, res[0])
	})
}

func TestRepositoryAddedTimes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("projection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "bookHaven.books", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "added_time", Value: "May 1, 2024"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}},
		))

		repo := NewRepositoryFromCollections(mt.Coll, mt.Coll)
		res, err := repo.AddedTimes(context.Background(), "p@x.com")
		require.NoError(mt, err)
		assert.Equal(mt, []string{"May 1, 2024", ""}, res)
	})
}
